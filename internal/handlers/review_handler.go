package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

// ReviewHandler handles review submission and moderation
type ReviewHandler struct {
	reviews *services.ReviewService
	errorResponder
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews:        reviews,
		errorResponder: errorResponder{logger: logger, entity: "Review"},
	}
}

// Create handles POST /api/v1/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req models.CreateReviewRequest
	if !h.bindJSON(c, &req) {
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, review, "Thank you! Your review will be published after moderation")
}

// ListPublic handles GET /api/v1/reviews. There is no pagination on this listing.
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	var opts services.ReviewListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	reviews, err := h.reviews.ListPublic(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}

// List handles GET /api/v1/admin/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	var opts services.ReviewListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.reviews.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateStatus handles PUT /api/v1/admin/reviews/:id
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	review, err := h.reviews.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, review, "Review status updated")
}

// Delete handles DELETE /api/v1/admin/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Review deleted successfully")
}
