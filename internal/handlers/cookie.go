package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarlsons/chatcart-service/internal/middleware"
)

// CookieConfig controls session cookie attributes.
type CookieConfig struct {
	// Secure marks the cookie transport-only; enabled outside development.
	Secure bool
	Domain string
	Path   string
}

// CookieHelper manages the session cookie.
type CookieHelper struct {
	config CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(config CookieConfig) *CookieHelper {
	if config.Path == "" {
		config.Path = "/"
	}
	return &CookieHelper{config: config}
}

// SetSessionCookie attaches the session token to the response.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string, maxAge int) {
	h.setCookie(c, token, maxAge)
}

// ClearSessionCookie overwrites the session cookie with an empty,
// immediately expiring value.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

// GetSessionToken retrieves the session token from the request cookie.
func (h *CookieHelper) GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.SessionCookie,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for the session cookie
	)
}
