// README: Order service: placement, vendor-side advancement, chat.
package order

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"gameday/internal/types"
)

// Pricing computes the checkout money breakdown from an order's
// subtotal. Implemented by the menu module.
type Pricing interface {
	Quote(subtotal, tip types.Money) (tax, serviceFee, total types.Money)
}

type Service struct {
	store   *Store
	pricing Pricing
}

func NewService(store *Store, pricing Pricing) *Service {
	return &Service{store: store, pricing: pricing}
}

type PlaceCommand struct {
	CustomerID    types.ID
	Items         []Item
	Seat          Seat
	Contact       Contact
	DeliveryPrefs DeliveryPrefs
	Tip           Tip
	Payment       Payment
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\-\(\)]{10,}$`)
)

// Place validates the command, recomputes the money breakdown from the
// item list, and stores the order as received. Totals sent by clients
// are never trusted.
func (s *Service) Place(cmd PlaceCommand) (Order, error) {
	if err := validatePlace(cmd); err != nil {
		return Order{}, err
	}

	var subtotal types.Money
	for _, it := range cmd.Items {
		subtotal += it.Price * types.Money(it.Quantity)
	}
	tax, fee, total := s.pricing.Quote(subtotal, cmd.Tip.Amount)

	customerID := cmd.CustomerID
	if customerID == "" {
		customerID = types.ID(fmt.Sprintf("customer_%d", s.store.Now().UnixMilli()))
	}

	o := s.store.Create(Order{
		CustomerID:    customerID,
		Items:         cmd.Items,
		Seat:          cmd.Seat,
		Contact:       cmd.Contact,
		DeliveryPrefs: cmd.DeliveryPrefs,
		Tip:           cmd.Tip,
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceFee:    fee,
		Total:         total,
		ETAMinutes:    8 + rand.Intn(10),
		Payment:       cmd.Payment,
	})
	s.store.AddMessage(o.ID, SenderCustomer,
		"Order placed successfully! We'll start preparing your food shortly.")
	return o, nil
}

func (s *Service) Get(id types.ID) (Order, error) {
	return s.store.Get(id)
}

func (s *Service) ListByRunner(runnerID types.ID) []Order {
	return s.store.ListByRunner(runnerID)
}

// Advance moves an order one step along the lifecycle. This is the
// entry point for vendor- and runner-side progress updates (kitchen
// marking preparing, runner marking picked up and so on).
func (s *Service) Advance(id types.ID, to Status) (Order, error) {
	return s.store.Update(id, Patch{Status: &to})
}

// PostMessage appends a chat message after checking the order exists
// and the input is well formed.
func (s *Service) PostMessage(orderID types.ID, sender Sender, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" || (sender != SenderRunner && sender != SenderCustomer) {
		return Message{}, ErrBadRequest
	}
	if _, err := s.store.Get(orderID); err != nil {
		return Message{}, err
	}
	return s.store.AddMessage(orderID, sender, text), nil
}

func (s *Service) Messages(orderID types.ID) []Message {
	return s.store.Messages(orderID)
}

func validatePlace(cmd PlaceCommand) error {
	if len(cmd.Items) == 0 {
		return ErrBadRequest
	}
	for _, it := range cmd.Items {
		if it.Name == "" || it.Price < 0 || it.Quantity <= 0 {
			return ErrBadRequest
		}
	}
	if cmd.Seat.Section == "" || cmd.Seat.Row == "" || cmd.Seat.Seat == "" {
		return ErrBadRequest
	}
	switch cmd.Contact.Method {
	case ContactEmail:
		if !emailRe.MatchString(cmd.Contact.Value) {
			return ErrBadRequest
		}
	case ContactSMS:
		if !phoneRe.MatchString(strings.ReplaceAll(cmd.Contact.Value, " ", "")) {
			return ErrBadRequest
		}
	default:
		return ErrBadRequest
	}
	if cmd.DeliveryPrefs.Type != DeliveryLeaveAtSeat && cmd.DeliveryPrefs.Type != DeliveryHandoff {
		return ErrBadRequest
	}
	if cmd.Tip.Amount < 0 {
		return ErrBadRequest
	}
	return nil
}
