package handlers

import (
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ColorHandler struct {
	colorService services.ColorService
}

func NewColorHandler(colorService services.ColorService) *ColorHandler {
	return &ColorHandler{colorService: colorService}
}

func (h *ColorHandler) List(c *gin.Context) {
	colors, err := h.colorService.GetAll()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"colors": colors})
}

func (h *ColorHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid color id."})
		return
	}

	color, err := h.colorService.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"color": color})
}

type colorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

func (h *ColorHandler) Create(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	color, err := h.colorService.Create(req.Name, req.HexCode)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Color created.", gin.H{"color": color})
}

func (h *ColorHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid color id."})
		return
	}

	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	color, err := h.colorService.Update(id, req.Name, req.HexCode)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Color updated.", gin.H{"color": color})
}

func (h *ColorHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid color id."})
		return
	}

	if err := h.colorService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Color deleted.", nil)
}
