// README: Menu catalog entries.
package menu

import "gameday/internal/types"

type Item struct {
	ID          types.ID    `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       types.Money `json:"price"`
	Category    string      `json:"category"`
	Available   bool        `json:"available"`
}
