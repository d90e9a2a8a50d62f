package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"storefront/internal/repository"
	"storefront/internal/services"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService services.ProductService
	uploadDir      string
}

func NewProductHandler(productService services.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{productService: productService, uploadDir: uploadDir}
}

func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.productService.List(c.Request.Context(), listFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"products": items})
}

func (h *ProductHandler) Page(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid page number."})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, pagination, err := h.productService.ListPage(c.Request.Context(), listFilter(c), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"products": items, "pagination": pagination})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id."})
		return
	}

	detail, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"product": detail})
}

func (h *ProductHandler) Create(c *gin.Context) {
	input, err := h.parseProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	id, err := h.productService.Create(c.Request.Context(), *input)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Product created.", gin.H{"product_id": id})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id."})
		return
	}

	input, err := h.parseProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.productService.Update(c.Request.Context(), id, *input); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Product updated.", nil)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id."})
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Product deleted.", nil)
}

func (h *ProductHandler) DeleteImage(c *gin.Context) {
	productID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id."})
		return
	}
	imageID, err := paramID(c, "imageId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image id."})
		return
	}

	if err := h.productService.DeleteImage(c.Request.Context(), productID, imageID); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Image deleted.", nil)
}

// parseProductForm decodes the multipart product form. Image files arrive
// under fields named color_images_<colorID> and are stored on disk before the
// service ever sees them.
func (h *ProductHandler) parseProductForm(c *gin.Context) (*services.ProductInput, error) {
	input := services.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Gender:      c.PostForm("gender"),
		SizeType:    c.PostForm("size_type"),
	}

	input.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
	if raw := c.PostForm("discount_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			input.DiscountPrice = &v
		}
	}
	if raw := c.PostForm("category_id"); raw != "" {
		id, _ := strconv.ParseUint(raw, 10, 64)
		input.CategoryID = uint(id)
	}

	if raw := c.PostForm("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Sizes); err != nil {
			return nil, &services.ValidationError{Message: "Invalid sizes format."}
		}
	}
	if raw := c.PostForm("colors"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ColorIDs); err != nil {
			return nil, &services.ValidationError{Message: "Invalid colors format."}
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return &input, nil
	}
	for field, files := range form.File {
		if !strings.HasPrefix(field, "color_images_") {
			continue
		}
		colorID, err := strconv.ParseUint(strings.TrimPrefix(field, "color_images_"), 10, 64)
		if err != nil {
			continue
		}
		for order, file := range files {
			path := filepath.Join(h.uploadDir, "products", uuid.NewString()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, path); err != nil {
				return nil, err
			}
			input.Images = append(input.Images, services.ImageInput{
				ColorID: uint(colorID),
				Path:    path,
				Order:   order,
			})
		}
	}
	return &input, nil
}

func listFilter(c *gin.Context) repository.ProductFilter {
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Gender:   normalizeGender(c.Query("gender")),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	return filter
}

// normalizeGender title-cases the query value so ?gender=men matches rows
// stored as "Men". The "all" sentinel is passed through untouched.
func normalizeGender(gender string) string {
	if gender == "" {
		return ""
	}
	lower := strings.ToLower(gender)
	if lower == "all" {
		return "all"
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
