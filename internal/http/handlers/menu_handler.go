// README: Menu handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gameday/internal/modules/menu"
	"gameday/internal/types"
)

type MenuHandler struct {
	menu *menu.Store
}

func NewMenuHandler(store *menu.Store) *MenuHandler {
	return &MenuHandler{menu: store}
}

func (h *MenuHandler) List(c *gin.Context) {
	items := h.menu.List()
	if items == nil {
		items = []menu.Item{}
	}
	writeJSON(c, http.StatusOK, items)
}

func (h *MenuHandler) Get(c *gin.Context) {
	it, err := h.menu.Item(types.ID(c.Param("id")))
	if err != nil {
		writeMenuError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}
