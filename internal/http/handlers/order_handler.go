// README: Order handlers for placement, lookup, status, and chat.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gameday/internal/modules/order"
	"gameday/internal/types"
)

type OrderHandler struct {
	order *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{order: svc}
}

type placeOrderReq struct {
	CustomerID    string              `json:"customerId"`
	Items         []order.Item        `json:"items"`
	Seat          order.Seat          `json:"seat"`
	Contact       order.Contact       `json:"contact"`
	DeliveryPrefs order.DeliveryPrefs `json:"deliveryPrefs"`
	Tip           order.Tip           `json:"tip"`
	Payment       order.Payment       `json:"paymentMethod"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	o, err := h.order.Place(order.PlaceCommand{
		CustomerID:    types.ID(req.CustomerID),
		Items:         req.Items,
		Seat:          req.Seat,
		Contact:       req.Contact,
		DeliveryPrefs: req.DeliveryPrefs,
		Tip:           req.Tip,
		Payment:       req.Payment,
	})
	if err != nil {
		writeOrderError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, o)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	o, err := h.order.Get(types.ID(id))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, o)
}

type advanceReq struct {
	Status string `json:"status"`
}

// Advance is the vendor-side progress update (kitchen marking
// preparing, runner marking picked up and onward).
func (h *OrderHandler) Advance(c *gin.Context) {
	id := c.Param("id")
	var req advanceReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		writeError(c, http.StatusBadRequest, "missing status")
		return
	}
	o, err := h.order.Advance(types.ID(id), order.Status(req.Status))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, o)
}

func (h *OrderHandler) Messages(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.order.Get(types.ID(id)); err != nil {
		writeOrderError(c, err)
		return
	}
	msgs := h.order.Messages(types.ID(id))
	if msgs == nil {
		msgs = []order.Message{}
	}
	writeJSON(c, http.StatusOK, msgs)
}

type postMessageReq struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

func (h *OrderHandler) PostMessage(c *gin.Context) {
	id := c.Param("id")
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	m, err := h.order.PostMessage(types.ID(id), order.Sender(req.Sender), req.Text)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, m)
}
