package controllers

import (
	"net/http"

	"github.com/Mohisvst29/moal/services"
	"github.com/Mohisvst29/moal/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Checkout *services.CheckoutService
}

func NewCartController(catalog *services.CatalogService, cart *services.CartService, checkout *services.CheckoutService) *CartController {
	return &CartController{Catalog: catalog, Cart: cart, Checkout: checkout}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	session := utils.SessionID(c)
	cart, total, count := h.Cart.Get(session)
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total_price": total, "total_items": count})
}

type addLineReq struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size"`
}

// POST /cart/items
// The item's display fields and price come from the current resolved
// catalog, offers included, so the client only ever sends identities.
func (h *CartController) Add(c *gin.Context) {
	session := utils.SessionID(c)

	var req addLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	item, ok := h.Catalog.FindItem(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "item not found"})
		return
	}

	var sizePrice int64
	if req.Size != "" {
		found := false
		for _, s := range item.Sizes {
			if s.Size == req.Size {
				sizePrice = s.Price
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown size"})
			return
		}
	}

	h.Cart.Add(session, item, req.Size, sizePrice)
	cart, total, count := h.Cart.Get(session)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "cart": cart, "total_price": total, "total_items": count})
}

type updateQtyReq struct {
	ItemID   string `json:"item_id" binding:"required"`
	Size     string `json:"size"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// PATCH /cart/items
// Absolute quantity set; zero or negative removes the line.
func (h *CartController) UpdateQuantity(c *gin.Context) {
	session := utils.SessionID(c)

	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.Cart.UpdateQuantity(session, req.ItemID, req.Size, *req.Quantity)
	cart, total, count := h.Cart.Get(session)
	c.JSON(http.StatusOK, gin.H{"ok": true, "cart": cart, "total_price": total, "total_items": count})
}

type removeLineReq struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size"`
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	session := utils.SessionID(c)

	var req removeLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.Cart.Remove(session, req.ItemID, req.Size)
	cart, total, count := h.Cart.Get(session)
	c.JSON(http.StatusOK, gin.H{"ok": true, "cart": cart, "total_price": total, "total_items": count})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	session := utils.SessionID(c)
	h.Cart.Clear(session)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type tableReq struct {
	TableNumber string `json:"table_number"`
}

// PATCH /cart/table
// Free text; empty means takeaway.
func (h *CartController) SetTable(c *gin.Context) {
	session := utils.SessionID(c)

	var req tableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.Cart.SetTable(session, req.TableNumber)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type openReq struct {
	Open *bool `json:"open" binding:"required"`
}

// PATCH /cart/open
func (h *CartController) SetOpen(c *gin.Context) {
	session := utils.SessionID(c)

	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.Cart.SetOpen(session, *req.Open)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /cart/checkout
// Returns the WhatsApp handoff; clearing the cart stays the client's call.
func (h *CartController) CheckoutHandoff(c *gin.Context) {
	session := utils.SessionID(c)

	cart, total, _ := h.Cart.Get(session)
	if len(cart.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "cart is empty"})
		return
	}

	message := h.Checkout.BuildMessage(cart.Lines, cart.TableNumber, total)
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": message,
		"url":     h.Checkout.WhatsAppURL(message),
	})
}
