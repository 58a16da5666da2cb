package controllers

import (
	"errors"
	"net/http"

	"github.com/Mohisvst29/moal/services"
	"github.com/Mohisvst29/moal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController { return &AdminController{Svc: s} }

// Validation failures block the write; mutation failures keep the admin's
// form state on the client so nothing has to be re-entered.
func adminErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, services.ErrOfferPrice), errors.Is(err, services.ErrDuplicateSize):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

// GET /admin/catalog
func (h *AdminController) Catalog(c *gin.Context) {
	sections, items, offers, err := h.Svc.ListAll()
	if err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections, "items": items, "offers": offers})
}

// POST /admin/sections
func (h *AdminController) CreateSection(c *gin.Context) {
	var req services.SectionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !utils.ValidImageRef(req.Image) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image reference"})
		return
	}
	section, err := h.Svc.CreateSection(&req)
	if err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "section": section})
}

// PATCH /admin/sections/:id
func (h *AdminController) UpdateSection(c *gin.Context) {
	var req services.SectionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !utils.ValidImageRef(req.Image) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image reference"})
		return
	}
	if err := h.Svc.UpdateSection(c.Param("id"), &req); err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /admin/sections/:id
func (h *AdminController) DeleteSection(c *gin.Context) {
	if err := h.Svc.DeleteSection(c.Param("id")); err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "section deleted"})
}

// POST /admin/items
func (h *AdminController) CreateItem(c *gin.Context) {
	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !utils.ValidImageRef(req.Image) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image reference"})
		return
	}
	item, err := h.Svc.CreateItem(&req)
	if err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": item})
}

// PATCH /admin/items/:id
func (h *AdminController) UpdateItem(c *gin.Context) {
	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !utils.ValidImageRef(req.Image) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image reference"})
		return
	}
	if err := h.Svc.UpdateItem(c.Param("id"), &req); err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /admin/items/:id
func (h *AdminController) DeleteItem(c *gin.Context) {
	if err := h.Svc.DeleteItem(c.Param("id")); err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "item deleted"})
}

// POST /admin/offers
func (h *AdminController) CreateOffer(c *gin.Context) {
	var req services.OfferIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !utils.ValidImageRef(req.Image) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image reference"})
		return
	}
	offer, err := h.Svc.CreateOffer(&req)
	if err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "offer": offer})
}

// PATCH /admin/offers/:id
func (h *AdminController) UpdateOffer(c *gin.Context) {
	var req services.OfferIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !utils.ValidImageRef(req.Image) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image reference"})
		return
	}
	if err := h.Svc.UpdateOffer(c.Param("id"), &req); err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /admin/offers/:id
func (h *AdminController) DeleteOffer(c *gin.Context) {
	if err := h.Svc.DeleteOffer(c.Param("id")); err != nil {
		adminErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "offer deleted"})
}
