// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gameday/internal/modules/dispatch"
	"gameday/internal/modules/menu"
	"gameday/internal/modules/order"
	"gameday/internal/modules/runner"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeOrderError(c *gin.Context, err error) {
	switch err {
	case order.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case order.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case order.ErrInvalidState:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeRunnerError(c *gin.Context, err error) {
	switch err {
	case runner.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case runner.ErrInvalidCode:
		writeError(c, http.StatusUnauthorized, err.Error())
	case runner.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeDispatchError(c *gin.Context, err error) {
	switch err {
	case dispatch.ErrBadRequest, dispatch.ErrRunnerUnavailable:
		writeError(c, http.StatusBadRequest, err.Error())
	case dispatch.ErrNotFound, order.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case dispatch.ErrClaimConflict, dispatch.ErrOrderNotOwned:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeMenuError(c *gin.Context, err error) {
	switch err {
	case menu.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
