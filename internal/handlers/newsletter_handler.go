package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

// NewsletterHandler handles newsletter signups
type NewsletterHandler struct {
	newsletter *services.NewsletterService
	errorResponder
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletter *services.NewsletterService, logger *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletter:     newsletter,
		errorResponder: errorResponder{logger: logger, entity: "Subscription"},
	}
}

// Subscribe handles POST /api/v1/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	sub, err := h.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			respondError(c, http.StatusBadRequest, "Email already subscribed")
			return
		}
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, sub, "Subscribed successfully")
}

// List handles GET /api/v1/admin/newsletter
func (h *NewsletterHandler) List(c *gin.Context) {
	req := services.NewPageRequest(c.Query("page"), c.Query("limit"), services.DefaultListLimit)

	page, err := h.newsletter.List(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}
