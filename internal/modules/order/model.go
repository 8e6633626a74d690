// README: Order aggregate, chat messages, and status definitions.
package order

import (
	"time"

	"gameday/internal/types"
)

type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusPickedUp  Status = "picked_up"
	StatusEnRoute   Status = "en_route"
	StatusDelivered Status = "delivered"
)

// AllowedTransitions is the delivery lifecycle as code. Strictly
// linear: no skipping, no regressions, delivered is terminal.
var AllowedTransitions = map[Status][]Status{
	StatusReceived:  {StatusPreparing},
	StatusPreparing: {StatusPickedUp},
	StatusPickedUp:  {StatusEnRoute},
	StatusEnRoute:   {StatusDelivered},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

const (
	ContactEmail = "email"
	ContactSMS   = "sms"

	DeliveryLeaveAtSeat = "leave_at_seat"
	DeliveryHandoff     = "handoff"
)

type Item struct {
	ID       types.ID    `json:"id"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Quantity int         `json:"quantity"`
	Category string      `json:"category"`
}

// Seat locates the customer. Only Section feeds the geometry model;
// row and seat are for the runner's eyes.
type Seat struct {
	Section string `json:"section"`
	Row     string `json:"row"`
	Seat    string `json:"seat"`
}

type Contact struct {
	Method string `json:"method"`
	Value  string `json:"value"`
}

type DeliveryPrefs struct {
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

type Tip struct {
	Amount     types.Money `json:"amount"`
	Percentage int         `json:"percentage,omitempty"`
}

// Payment is a mock card reference; no processor is involved.
type Payment struct {
	Type  string `json:"type"`
	Last4 string `json:"last4"`
}

type Order struct {
	ID            types.ID      `json:"id"`
	CustomerID    types.ID      `json:"customerId"`
	Items         []Item        `json:"items"`
	Seat          Seat          `json:"seat"`
	Contact       Contact       `json:"contact"`
	DeliveryPrefs DeliveryPrefs `json:"deliveryPrefs"`
	Tip           Tip           `json:"tip"`
	Subtotal      types.Money   `json:"subtotal"`
	Tax           types.Money   `json:"tax"`
	ServiceFee    types.Money   `json:"serviceFee"`
	Total         types.Money   `json:"total"`
	Status        Status        `json:"status"`
	RunnerID      *types.ID     `json:"runnerId,omitempty"`
	LockTS        *time.Time    `json:"lockTs,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	ETAMinutes    int           `json:"etaMinutes"`
	Payment       Payment       `json:"paymentMethod"`
}

// Claimed reports whether a runner holds this order.
func (o *Order) Claimed() bool {
	return o.RunnerID != nil
}

type Sender string

const (
	SenderRunner   Sender = "runner"
	SenderCustomer Sender = "customer"
)

// Message is immutable once created; per-order history is append-only
// in creation order.
type Message struct {
	ID      types.ID  `json:"id"`
	OrderID types.ID  `json:"orderId"`
	Sender  Sender    `json:"sender"`
	Text    string    `json:"text"`
	TS      time.Time `json:"ts"`
}
