// README: Runner (delivery courier) record.
package runner

import "gameday/internal/types"

type Runner struct {
	ID             types.ID    `json:"id"`
	Name           string      `json:"name"`
	IsOnline       bool        `json:"isOnline"`
	CurrentSection string      `json:"currentSection,omitempty"`
	ActiveOrderIDs []types.ID  `json:"activeOrderIds"`
	EarningsToday  types.Money `json:"earningsToday"`

	// Display-only performance counters; nothing downstream keys off
	// these.
	CompletedDeliveries int     `json:"completedDeliveries"`
	OnTimeRate          float64 `json:"onTimeRate"`
	AvgDeliveryTime     float64 `json:"avgDeliveryTime"`
}
