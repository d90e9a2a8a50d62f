package handlers

import (
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"categories": categories})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id."})
		return
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"category": category})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	category, err := h.categoryService.Create(req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Category created.", gin.H{"category": category})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id."})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	category, err := h.categoryService.Update(id, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Category updated.", gin.H{"category": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id."})
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Category deleted.", nil)
}

type deleteManyRequest struct {
	IDs []uint `json:"ids"`
}

func (h *CategoryHandler) DeleteMany(c *gin.Context) {
	var req deleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	if err := h.categoryService.DeleteMany(req.IDs); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Categories deleted.", nil)
}
