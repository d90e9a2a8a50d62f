package handlers

import (
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	user, token, err := h.authService.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, "Account created.", gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "", gin.H{"token": token, "user": user})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format."})
		return
	}

	admin, token, err := h.authService.AdminLogin(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "", gin.H{"token": token, "admin": admin})
}

// Me returns the principal behind the current token.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided."})
		return
	}
	ok(c, http.StatusOK, "", gin.H{"user": principal})
}

// Logout is a no-op server side; tokens are stateless and expire on their
// own. The endpoint exists so clients have a uniform place to end a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	ok(c, http.StatusOK, "Logged out.", nil)
}
