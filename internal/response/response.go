package response

import (
	"errors"
	"net/http"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/gin-gonic/gin"
)

// envelope is the uniform JSON response body.
type envelope struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// paginatedEnvelope adds pagination metadata to a list response.
type paginatedEnvelope struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope{Data: data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Error: message})
}

// Paginated writes a 200 response for one page of items.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, paginatedEnvelope{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Error maps a domain error onto the matching HTTP status. Unknown errors
// become opaque 500s.
func Error(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, envelope{Error: notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, envelope{Error: validation.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, envelope{Error: conflict.Error()})
	default:
		c.JSON(http.StatusInternalServerError, envelope{Error: "internal server error"})
	}
}
