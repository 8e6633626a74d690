// README: Runner service: mock code login, presence, profile updates.
package runner

import "gameday/internal/types"

// demoRunnerID is who every runner code resolves to while auth is
// mocked.
const demoRunnerID = types.ID("runner1")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Login accepts any non-empty code and resolves it to the demo runner.
func (s *Service) Login(code string) (Runner, error) {
	if code == "" {
		return Runner{}, ErrBadRequest
	}
	r, err := s.store.Get(demoRunnerID)
	if err != nil {
		return Runner{}, ErrInvalidCode
	}
	return r, nil
}

func (s *Service) Get(id types.ID) (Runner, error) {
	return s.store.Get(id)
}

func (s *Service) Update(id types.ID, p Patch) (Runner, error) {
	return s.store.Update(id, p)
}

func (s *Service) SetOnline(id types.ID, online bool) (Runner, error) {
	return s.store.Update(id, Patch{IsOnline: &online})
}

func (s *Service) ListOnline() []Runner {
	return s.store.ListOnline()
}
