package handlers

import (
	"net/http"
	"path/filepath"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService services.OrderService
	uploadDir    string
}

func NewOrderHandler(orderService services.OrderService, uploadDir string) *OrderHandler {
	return &OrderHandler{orderService: orderService, uploadDir: uploadDir}
}

// Create accepts the checkout form: payment method, delivery address, phone,
// the cart items as a JSON string, and an optional payment receipt image.
func (h *OrderHandler) Create(c *gin.Context) {
	principal := CurrentPrincipal(c)

	intake := services.OrderIntake{
		PaymentMethod: c.PostForm("payment_method"),
		Address:       c.PostForm("address"),
		Phone:         c.PostForm("phone"),
		ItemsJSON:     c.PostForm("items"),
	}
	if principal != nil {
		intake.UserID = principal.ID
	}

	if file, err := c.FormFile("receipt"); err == nil {
		path := filepath.Join(h.uploadDir, "receipts", uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save receipt."})
			return
		}
		intake.ReceiptPath = path
	}

	orderID, err := h.orderService.Intake(intake)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Order placed successfully.", gin.H{"order_id": orderID})
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"orders": orders})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id."})
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"order": order})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id."})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	if err := h.orderService.UpdateStatus(id, req.Status); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Order status updated.", nil)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id."})
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Order deleted.", nil)
}
