package controllers

import (
	"net/http"

	"github.com/Mohisvst29/moal/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /menu
// The section list is always non-empty: the baseline backfills whatever the
// remote catalog could not provide.
func (h *MenuController) Sections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": h.Svc.Sections(),
		"status":   h.Svc.Status(),
	})
}

// GET /menu/status
func (h *MenuController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Status())
}

// POST /menu/refresh
// Manual retry: re-runs probe → fetch → resolve. There is no automatic
// backoff anywhere else.
func (h *MenuController) Refresh(c *gin.Context) {
	h.Svc.Refresh()
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": h.Svc.Status()})
}
