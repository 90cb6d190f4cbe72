package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

const storeTimeout = 5 * time.Second

type CartHandler struct {
	cart *usecase.Cart
}

func NewCartHandler(cart *usecase.Cart) *CartHandler {
	return &CartHandler{cart: cart}
}

type addToCartReq struct {
	Name     string `form:"name" json:"name"`
	Quantity *int   `form:"quantity" json:"quantity"`
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBind(&req); err != nil {
		popupError(c, http.StatusBadRequest, "Invalid input 🚫")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	msg, err := h.cart.Add(ctx, req.Name, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "popup": true, "refresh": true})
}

type removeFromCartReq struct {
	Name string `form:"name" json:"name"`
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req removeFromCartReq
	if err := c.ShouldBind(&req); err != nil {
		popupError(c, http.StatusBadRequest, "Invalid input 🚫")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	msg, err := h.cart.Remove(ctx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "popup": true, "refresh": true})
}

// ViewCart returns the current cart. A store failure falls back to the
// catalog view instead of an error page.
func (h *CartHandler) ViewCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	lines, total, err := h.cart.View(ctx)
	if err != nil {
		c.Redirect(http.StatusFound, "/menus")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart_items": linesJSON(lines),
		"total":      domain.Rand(total),
	})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if err := h.cart.Clear(ctx); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared! 🗑️", "popup": true, "redirect": "/view_cart"})
}
