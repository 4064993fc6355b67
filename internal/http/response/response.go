// Package response renders the JSON envelope every endpoint uses:
// {success, message, data?, errors?}, plus a pagination object on lists.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// List writes a 200 envelope carrying a page of results.
func List(c *gin.Context, data interface{}, pagination domain.Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// Error writes a failure envelope with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// ValidationError writes a 400 envelope with field-level errors.
func ValidationError(c *gin.Context, errors []string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation error",
		Errors:  errors,
	})
}

// AbortError writes a failure envelope and stops the handler chain.
// Middleware uses this form.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}
