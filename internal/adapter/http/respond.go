package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/logging"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

// Responses follow the storefront popup contract: a "popup" flag plus
// either "message" or "error", with optional "redirect"/"refresh" hints
// for the page script.

func popupError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg, "popup": true})
}

func productJSON(p domain.Product) gin.H {
	h := gin.H{
		"name":        p.Name,
		"price":       domain.Rand(p.PriceCents),
		"description": p.Description,
	}
	if p.Type != "" {
		h["type"] = p.Type
	}
	return h
}

func lineJSON(l domain.CartLine) gin.H {
	return gin.H{
		"name":     l.Name,
		"amount":   domain.Rand(l.AmountCents),
		"quantity": l.Quantity,
		"total":    domain.Rand(l.LineTotal()),
	}
}

func linesJSON(lines []domain.CartLine) []gin.H {
	out := make([]gin.H, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineJSON(l))
	}
	return out
}

// respondError maps usecase errors to the popup contract. Unexpected
// errors are logged with their cause and answered with a generic message;
// internal details never reach the client.
func respondError(c *gin.Context, err error) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		popupError(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		popupError(c, http.StatusBadRequest, "Quantity must be positive 🚫")
	case errors.Is(err, usecase.ErrProductNotFound):
		popupError(c, http.StatusNotFound, "Item not found in menu 🚫")
	case errors.Is(err, usecase.ErrLineNotFound):
		popupError(c, http.StatusNotFound, "Item not found in cart 😞")
	case errors.Is(err, usecase.ErrEmptyCart):
		popupError(c, http.StatusBadRequest, "Cart is empty 😞")
	case errors.Is(err, domain.ErrUnsupportedPaymentMethod):
		popupError(c, http.StatusBadRequest, "Invalid payment method 🚫")
	case errors.Is(err, domain.ErrPaymentMethodUnavailable):
		popupError(c, http.StatusBadRequest, "This payment method is coming soon and not available yet 🚧")
	default:
		logging.From(c).Error("request failed", "error", err.Error())
		popupError(c, http.StatusInternalServerError, "Something went wrong on our side 🚫")
	}
}
