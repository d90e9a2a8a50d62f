package handlers

import (
	"errors"
	"log"
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

// ok writes the success envelope, merging extra fields into the body.
func ok(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail maps a service error onto the failure envelope. Unclassified errors
// are reported with a generic message so database details never reach the
// client.
func fail(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		authErr       *services.AuthError
		forbiddenErr  *services.ForbiddenError
		notFoundErr   *services.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": authErr.Message})
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": forbiddenErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFoundErr.Message})
	default:
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
	}
}
