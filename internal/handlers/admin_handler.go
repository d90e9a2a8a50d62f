package handlers

import (
	"net/http"
	"path/filepath"
	"storefront/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService services.AdminService
	uploadDir    string
}

func NewAdminHandler(adminService services.AdminService, uploadDir string) *AdminHandler {
	return &AdminHandler{adminService: adminService, uploadDir: uploadDir}
}

func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.adminService.List(CurrentPrincipal(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"admins": admins})
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	admin, err := h.adminService.Create(CurrentPrincipal(c), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Admin created.", gin.H{"admin": admin})
}

type updateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

func (h *AdminHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid admin id."})
		return
	}

	var req updateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	update := services.AdminUpdate{Name: req.Name, Email: req.Email, Role: req.Role, IsActive: req.IsActive}
	if err := h.adminService.Update(CurrentPrincipal(c), id, update); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Admin updated.", nil)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid admin id."})
		return
	}

	if err := h.adminService.Delete(CurrentPrincipal(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Admin deleted.", nil)
}

func (h *AdminHandler) Profile(c *gin.Context) {
	principal := CurrentPrincipal(c)
	admin, err := h.adminService.GetByID(principal.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"admin": admin})
}

// UpdateProfile accepts multipart form data so the profile photo can be
// uploaded alongside the field changes.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	principal := CurrentPrincipal(c)

	update := services.ProfileUpdate{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		CurrentPassword: c.PostForm("current_password"),
		NewPassword:     c.PostForm("new_password"),
	}

	if file, err := c.FormFile("profile_photo"); err == nil {
		path := filepath.Join(h.uploadDir, "profiles", uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save profile photo."})
			return
		}
		update.ProfilePhoto = path
	}

	admin, err := h.adminService.UpdateProfile(principal.ID, update)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Profile updated.", gin.H{"admin": admin})
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err
}
