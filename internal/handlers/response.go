package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
	"github.com/horizontrails/agency-backoffice/pkg/validator"
)

// Response is the envelope returned by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// PageResponse is the envelope of paginated listings
type PageResponse struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}

func respondPage[T any](c *gin.Context, page *models.Page[T]) {
	c.JSON(http.StatusOK, PageResponse{Success: true, Data: page.Items, Pagination: page.Pagination})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// errorResponder maps service errors onto the envelope
type errorResponder struct {
	logger *logrus.Logger
	entity string
}

func (r errorResponder) fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		body := Response{Success: false, Message: verr.Message}
		if verr.HasFields() {
			body.Errors = verr.Fields
		} else {
			body.Errors = verr.Details
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, services.ErrReferenceNotFound):
		respondError(c, http.StatusBadRequest, "Package not found")
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, r.entity+" not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrDuplicate):
		respondError(c, http.StatusBadRequest, r.entity+" already exists")
	default:
		r.logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func invalidBody(c *gin.Context) {
	respondError(c, http.StatusBadRequest, "Invalid request body")
}

// bindJSON decodes the body into obj and runs its binding tags. Tag failures
// are answered with per-field errors, decode failures with "Invalid request body".
func (r errorResponder) bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	if fields, ok := validator.FromBinding(err, obj); ok {
		r.fail(c, &services.ValidationError{Message: fields.Error(), Fields: fields})
		return false
	}
	invalidBody(c)
	return false
}
