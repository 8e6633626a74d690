// README: Delivery batch: one runner, several claimed orders, one route.
package dispatch

import (
	"time"

	"gameday/internal/types"
)

type BatchStatus string

const (
	BatchActive    BatchStatus = "active"
	BatchCompleted BatchStatus = "completed"
	BatchCancelled BatchStatus = "cancelled"
)

type Batch struct {
	ID                   types.ID    `json:"id"`
	RunnerID             types.ID    `json:"runnerId"`
	OrderIDs             []types.ID  `json:"orderIds"`
	Route                []string    `json:"route"`
	RouteEstimateMinutes int         `json:"routeEstimateMinutes"`
	TotalPayout          types.Money `json:"totalPayout"`
	Status               BatchStatus `json:"status"`
	CreatedAt            time.Time   `json:"createdAt"`
}
