package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

// Checkout can wait on the cart lock and the store, so it gets a longer
// budget than plain cart operations. The notification has its own timeout.
const checkoutTimeout = 15 * time.Second

type CheckoutHandler struct {
	checkout *usecase.Checkout
	cart     *usecase.Cart
}

func NewCheckoutHandler(checkout *usecase.Checkout, cart *usecase.Cart) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, cart: cart}
}

// Show renders the checkout model: current cart, total, and the
// remembered customer for form pre-fill.
func (h *CheckoutHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	lines, total, err := h.cart.View(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	remembered := gin.H{}
	if cust, ok := h.checkout.Remembered(); ok {
		remembered = gin.H{
			"name":       cust.Name,
			"surname":    cust.Surname,
			"phone":      cust.Phone,
			"email":      cust.Email,
			"remembered": true,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_items":          linesJSON(lines),
		"total":               domain.Rand(total),
		"remembered_customer": remembered,
	})
}

type checkoutReq struct {
	Name          string `form:"name" json:"name"`
	Surname       string `form:"surname" json:"surname"`
	Phone         string `form:"phone" json:"phone"`
	Email         string `form:"email" json:"email"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
	SpecialNote   string `form:"special_note" json:"special_note"`
	// Checkbox value: any non-empty value counts as opted in.
	Remember string `form:"remember" json:"remember"`
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBind(&req); err != nil {
		popupError(c, http.StatusBadRequest, "Invalid input 🚫")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), checkoutTimeout)
	defer cancel()

	order, err := h.checkout.Execute(ctx, usecase.CheckoutInput{
		Name:          req.Name,
		Surname:       req.Surname,
		Phone:         req.Phone,
		Email:         req.Email,
		PaymentMethod: req.PaymentMethod,
		SpecialNote:   req.SpecialNote,
		Remember:      req.Remember != "",
	})
	if err != nil {
		if errors.Is(err, domain.ErrPaymentMethodUnavailable) {
			popupError(c, http.StatusBadRequest,
				fmt.Sprintf("%s payment is coming soon and not available yet 🚧", req.PaymentMethod))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Collection order %s placed! Total: %s 🎉",
			order.Number, domain.FormatRand(order.TotalCents)),
		"order_number": order.Number,
		"cart_items":   linesJSON(order.Lines),
		"total":        domain.Rand(order.TotalCents),
		"popup":        true,
		"redirect":     "/view_cart",
	})
}
