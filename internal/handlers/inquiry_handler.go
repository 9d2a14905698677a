package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

// InquiryHandler handles inquiry and contact form requests
type InquiryHandler struct {
	inquiries *services.InquiryService
	errorResponder
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiries *services.InquiryService, logger *logrus.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiries:      inquiries,
		errorResponder: errorResponder{logger: logger, entity: "Inquiry"},
	}
}

// Create handles POST /api/v1/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req models.CreateInquiryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiries.Create(c.Request.Context(), &req, submitter(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, inquiry, "Inquiry sent successfully")
}

// CreateContact handles POST /api/v1/contact
func (h *InquiryHandler) CreateContact(c *gin.Context) {
	var req models.CreateInquiryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiries.CreateContact(c.Request.Context(), &req, submitter(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, inquiry, "Message sent successfully")
}

// List handles GET /api/v1/admin/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
	var opts services.InquiryListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.inquiries.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}

// Get handles GET /api/v1/admin/inquiries/:id
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.inquiries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, inquiry, "")
}

// UpdateStatus handles PUT /api/v1/admin/inquiries/:id
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiries.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, inquiry, "Inquiry status updated")
}
