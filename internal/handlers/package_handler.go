package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

// PackageHandler handles catalog requests
type PackageHandler struct {
	packages *services.PackageService
	errorResponder
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packages *services.PackageService, logger *logrus.Logger) *PackageHandler {
	return &PackageHandler{
		packages:       packages,
		errorResponder: errorResponder{logger: logger, entity: "Package"},
	}
}

// ListPublic handles GET /api/v1/packages
func (h *PackageHandler) ListPublic(c *gin.Context) {
	var opts services.PackageListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.packages.ListPublic(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}

// GetPublic handles GET /api/v1/packages/:id
func (h *PackageHandler) GetPublic(c *gin.Context) {
	pkg, err := h.packages.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, pkg, "")
}

// List handles GET /api/v1/admin/packages
func (h *PackageHandler) List(c *gin.Context) {
	var opts services.PackageListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.packages.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}

// Get handles GET /api/v1/admin/packages/:id
func (h *PackageHandler) Get(c *gin.Context) {
	pkg, err := h.packages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, pkg, "")
}

// Create handles POST /api/v1/admin/packages
func (h *PackageHandler) Create(c *gin.Context) {
	var req models.PackageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	pkg, err := h.packages.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, pkg, "Package created successfully")
}

// Update handles PUT /api/v1/admin/packages/:id
func (h *PackageHandler) Update(c *gin.Context) {
	var req models.PackageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	pkg, err := h.packages.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, pkg, "Package updated successfully")
}

// Delete handles DELETE /api/v1/admin/packages/:id
func (h *PackageHandler) Delete(c *gin.Context) {
	if err := h.packages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Package deleted successfully")
}
