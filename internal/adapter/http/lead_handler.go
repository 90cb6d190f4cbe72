package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

type LeadHandler struct {
	leads *usecase.Leads
}

func NewLeadHandler(leads *usecase.Leads) *LeadHandler {
	return &LeadHandler{leads: leads}
}

type joinReq struct {
	Name    string `form:"name" json:"name"`
	Phone   string `form:"phone" json:"phone"`
	Email   string `form:"email" json:"email"`
	Package string `form:"package" json:"package"`
}

func (h *LeadHandler) SubmitJoin(c *gin.Context) {
	var req joinReq
	if err := c.ShouldBind(&req); err != nil {
		popupError(c, http.StatusBadRequest, "Invalid input 🚫")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	err := h.leads.SubmitJoin(ctx, domain.JoinRequest{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Package: req.Package,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Join request submitted! Zama will contact you soon. 🎉",
		"popup":   true,
	})
}

type contactReq struct {
	Name    string `form:"name" json:"name"`
	Phone   string `form:"phone" json:"phone"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

func (h *LeadHandler) SubmitContact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBind(&req); err != nil {
		popupError(c, http.StatusBadRequest, "Invalid input 🚫")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	err := h.leads.SubmitContact(ctx, domain.ContactMessage{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully! 🎉", "popup": true})
}
