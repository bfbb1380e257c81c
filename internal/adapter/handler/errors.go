package handler

import (
	"campus_security_backend/internal/core/domain"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Store failures are
// logged with context and answered with the generic message only.
func respondError(c *gin.Context, err error, notFound, generic string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: validationErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Detail: notFound})
	default:
		log.Printf("[API] %s %s: %s: %v", c.Request.Method, c.FullPath(), generic, err)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: generic})
	}
}

// bindJSON decodes the body, answering 422 on malformed or incomplete payloads.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
