// Package handlers contains HTTP request handlers for the chatcart service.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akarlsons/chatcart-service/internal/middleware"
	"github.com/akarlsons/chatcart-service/internal/service"
)

// AuthHandler handles authentication and profile HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieHelper
	tokenMaxAge int
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		tokenMaxAge: int(tokenExpiry.Seconds()),
	}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	ProfilePic string `json:"profilePic"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the profile update payload. Pointer
// fields distinguish absent fields from empty ones.
type UpdateProfileRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	ProfilePic  *string `json:"profilePic"`
	OldPassword string  `json:"oldPassword"`
	NewPassword string  `json:"newPassword"`
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup fields"
// @Success 201 {object} models.PublicUser
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	h.cookies.SetSessionCookie(c, token, h.tokenMaxAge)
	c.JSON(http.StatusCreated, user.Public())
}

// Login godoc
// @Summary User login
// @Description Authenticate a user and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	h.cookies.SetSessionCookie(c, token, h.tokenMaxAge)
	c.JSON(http.StatusOK, user.Public())
}

// Logout godoc
// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Idempotent: no store access, only the client-side artifact is
	// cleared. A previously issued token stays valid until expiry.
	h.cookies.ClearSessionCookie(c)
	respondMessage(c, http.StatusOK, "Logged out successfully")
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} models.PublicUser
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update profile fields; changing the password requires the old one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/auth/update-profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.authService.UpdateProfile(c.Request.Context(), user.ID, service.ProfileUpdate{
		FullName:    req.FullName,
		Email:       req.Email,
		ProfilePic:  req.ProfilePic,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated.Public())
}

// respondAuthError maps service errors onto the auth surface's statuses.
// Unknown email and wrong password share one message on purpose.
func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, service.ErrEmailExists):
		respondMessage(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, service.ErrPasswordTooShort):
		respondMessage(c, http.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, service.ErrOldPasswordNeeded):
		respondMessage(c, http.StatusBadRequest, "Old password is required")
	case errors.Is(err, service.ErrUserNotFound):
		respondMessage(c, http.StatusUnauthorized, "Unauthorized")
	default:
		respondMessage(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
