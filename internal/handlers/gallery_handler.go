package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

// GalleryHandler handles gallery requests
type GalleryHandler struct {
	gallery *services.GalleryService
	errorResponder
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(gallery *services.GalleryService, logger *logrus.Logger) *GalleryHandler {
	return &GalleryHandler{
		gallery:        gallery,
		errorResponder: errorResponder{logger: logger, entity: "Gallery item"},
	}
}

// List handles GET /api/v1/gallery
func (h *GalleryHandler) List(c *gin.Context) {
	var opts services.GalleryListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.gallery.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}

// Create handles POST /api/v1/admin/gallery
func (h *GalleryHandler) Create(c *gin.Context) {
	var req models.CreateGalleryItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.gallery.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, item, "Gallery item created successfully")
}

// Delete handles DELETE /api/v1/admin/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.gallery.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Gallery item deleted successfully")
}
