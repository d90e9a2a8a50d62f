package handlers

import (
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) List(c *gin.Context) {
	methods, err := h.paymentService.GetAll()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"payment_methods": methods})
}

type updatePaymentRequest struct {
	Enabled     bool   `json:"enabled"`
	PhoneNumber string `json:"phone_number"`
	VisaCard    string `json:"visa_card"`
	Email       string `json:"email"`
}

func (h *PaymentHandler) Update(c *gin.Context) {
	method := c.Param("method_name")

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	update := services.PaymentMethodUpdate{
		Enabled:     req.Enabled,
		PhoneNumber: req.PhoneNumber,
		VisaCard:    req.VisaCard,
		Email:       req.Email,
	}
	if err := h.paymentService.Update(method, update); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Payment method updated.", nil)
}
