// README: Runner handlers for login, presence, and profile.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gameday/internal/modules/runner"
	"gameday/internal/types"
)

type RunnerHandler struct {
	runner *runner.Service
}

func NewRunnerHandler(svc *runner.Service) *RunnerHandler {
	return &RunnerHandler{runner: svc}
}

type loginReq struct {
	Code string `json:"code"`
}

func (h *RunnerHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	r, err := h.runner.Login(req.Code)
	if err != nil {
		writeRunnerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

type runnerStatusReq struct {
	RunnerID       string  `json:"runnerId"`
	IsOnline       *bool   `json:"isOnline"`
	CurrentSection *string `json:"currentSection"`
}

// Status patches the online flag and reported section. Absent fields
// are left alone.
func (h *RunnerHandler) Status(c *gin.Context) {
	var req runnerStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.RunnerID == "" {
		writeError(c, http.StatusBadRequest, "missing runnerId")
		return
	}
	r, err := h.runner.Update(types.ID(req.RunnerID), runner.Patch{
		IsOnline:       req.IsOnline,
		CurrentSection: req.CurrentSection,
	})
	if err != nil {
		writeRunnerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *RunnerHandler) Me(c *gin.Context) {
	id := c.Query("runner_id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing runner_id")
		return
	}
	r, err := h.runner.Get(types.ID(id))
	if err != nil {
		writeRunnerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}
