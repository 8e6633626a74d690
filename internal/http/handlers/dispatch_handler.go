// README: Dispatch handlers: nearby discovery, claim/release, batches.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gameday/internal/modules/dispatch"
	"gameday/internal/modules/order"
	"gameday/internal/types"
)

type DispatchHandler struct {
	dispatch *dispatch.Service
	order    *order.Service
}

func NewDispatchHandler(dispatchSvc *dispatch.Service, orderSvc *order.Service) *DispatchHandler {
	return &DispatchHandler{dispatch: dispatchSvc, order: orderSvc}
}

// Nearby returns the claimable page for a polling runner. An unknown
// or offline runner gets an empty list, not an error.
func (h *DispatchHandler) Nearby(c *gin.Context) {
	runnerID := c.Query("runner_id")
	if runnerID == "" {
		writeError(c, http.StatusBadRequest, "missing runner_id")
		return
	}
	orders := h.dispatch.NearbyOrders(types.ID(runnerID))
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(c, http.StatusOK, orders)
}

type claimReq struct {
	RunnerID string `json:"runnerId"`
	OrderID  string `json:"orderId"`
}

func (h *DispatchHandler) Claim(c *gin.Context) {
	var req claimReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.dispatch.Claim(dispatch.ClaimCommand{
		RunnerID: types.ID(req.RunnerID),
		OrderID:  types.ID(req.OrderID),
	})
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	o, err := h.order.Get(types.ID(req.OrderID))
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, o)
}

type releaseReq struct {
	OrderID string `json:"orderId"`
}

func (h *DispatchHandler) Release(c *gin.Context) {
	var req releaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.dispatch.Release(types.ID(req.OrderID)); err != nil {
		writeDispatchError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createBatchReq struct {
	RunnerID string   `json:"runnerId"`
	OrderIDs []string `json:"orderIds"`
}

func (h *DispatchHandler) CreateBatch(c *gin.Context) {
	var req createBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	ids := make([]types.ID, len(req.OrderIDs))
	for i, id := range req.OrderIDs {
		ids[i] = types.ID(id)
	}
	b, err := h.dispatch.CreateBatch(dispatch.CreateBatchCommand{
		RunnerID: types.ID(req.RunnerID),
		OrderIDs: ids,
	})
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, b)
}

func (h *DispatchHandler) ListBatches(c *gin.Context) {
	runnerID := c.Query("runner_id")
	if runnerID == "" {
		writeError(c, http.StatusBadRequest, "missing runner_id")
		return
	}
	batches := h.dispatch.BatchesByRunner(types.ID(runnerID))
	if batches == nil {
		batches = []dispatch.Batch{}
	}
	writeJSON(c, http.StatusOK, batches)
}

type batchStatusReq struct {
	Status string `json:"status"`
}

func (h *DispatchHandler) SetBatchStatus(c *gin.Context) {
	id := c.Param("id")
	var req batchStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		writeError(c, http.StatusBadRequest, "missing status")
		return
	}
	if err := h.dispatch.SetBatchStatus(types.ID(id), dispatch.BatchStatus(req.Status)); err != nil {
		writeDispatchError(c, err)
		return
	}
	b, err := h.dispatch.Batch(types.ID(id))
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}
