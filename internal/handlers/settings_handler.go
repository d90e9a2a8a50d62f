package handlers

import (
	"errors"
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetShipping reports the current flat shipping fee. A missing setting reads
// as zero rather than an error, matching what checkout charges in that case.
func (h *SettingsHandler) GetShipping(c *gin.Context) {
	fee, err := h.settingsService.ShippingFee()
	if err != nil {
		var notFound *services.NotFoundError
		if !errors.As(err, &notFound) {
			fail(c, err)
			return
		}
		fee = 0
	}
	ok(c, http.StatusOK, "", gin.H{"shipping_fee": fee})
}

type updateShippingRequest struct {
	Value float64 `json:"value"`
}

func (h *SettingsHandler) UpdateShipping(c *gin.Context) {
	var req updateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	if err := h.settingsService.UpdateShippingFee(req.Value); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Shipping fee updated.", nil)
}
