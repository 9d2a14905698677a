package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
	"github.com/horizontrails/agency-backoffice/internal/utils"
)

// BookingHandler handles booking requests
type BookingHandler struct {
	bookings *services.BookingService
	errorResponder
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *services.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookings:       bookings,
		errorResponder: errorResponder{logger: logger, entity: "Booking"},
	}
}

func submitter(c *gin.Context) services.Submitter {
	return services.Submitter{IP: utils.GetRealIP(c), UserAgent: c.Request.UserAgent()}
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if !h.bindJSON(c, &req) {
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), &req, submitter(c))
	if err != nil {
		// bookings report an unknown package as 404, inquiries as 400
		if errors.Is(err, services.ErrReferenceNotFound) {
			respondError(c, http.StatusNotFound, "Package not found")
			return
		}
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, booking, "Booking submitted successfully")
}

// List handles GET /api/v1/admin/bookings
func (h *BookingHandler) List(c *gin.Context) {
	var opts services.BookingListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.bookings.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, page)
}

// Get handles GET /api/v1/admin/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, booking, "")
}

// UpdateStatus handles PUT /api/v1/admin/bookings/:id
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, booking, "Booking status updated")
}
