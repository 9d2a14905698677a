package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/middleware"
	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

// AuthHandler handles back-office authentication and user management
type AuthHandler struct {
	auth   *services.AuthService
	logger *logrus.Logger
	errorResponder
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		auth:           auth,
		logger:         logger,
		errorResponder: errorResponder{logger: logger, entity: "User"},
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.logger.WithFields(logrus.Fields{
				"username": req.Username,
				"ip":       c.ClientIP(),
			}).Warn("Failed login attempt")
		}
		h.fail(c, err)
		return
	}

	h.logger.WithField("user_id", resp.User.ID).Info("User logged in")
	respond(c, http.StatusOK, resp, "Login successful")
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Refresh token is required")
		return
	}

	resp, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp, "")
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), userCtx.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, user, "")
}

// CreateUser handles POST /api/v1/admin/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.auth.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser handles PUT /api/v1/admin/users/:id
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.auth.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, user, "User updated successfully")
}
