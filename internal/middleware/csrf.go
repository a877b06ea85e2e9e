package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CSRFConfig holds configuration for CSRF protection middleware.
type CSRFConfig struct {
	// AllowedOrigins should match the CORS allowed origins.
	AllowedOrigins []string
}

// CSRF returns middleware that validates Origin/Referer headers on
// state-changing requests. Required for the cookie-based session: browsers
// attach the session cookie to every request against the domain.
func CSRF(config CSRFConfig) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(config.AllowedOrigins))
	for _, origin := range config.AllowedOrigins {
		allowedSet[normalizeOrigin(origin)] = true
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if !allowedSet[normalizeOrigin(origin)] {
				abortCSRF(c, "invalid origin")
				return
			}
			c.Next()
			return
		}

		// Older browsers may send only Referer.
		if referer := c.GetHeader("Referer"); referer != "" {
			if !allowedSet[normalizeOrigin(refererOrigin(referer))] {
				abortCSRF(c, "invalid referer")
				return
			}
			c.Next()
			return
		}

		// Neither header present: reject rather than guess.
		abortCSRF(c, "missing origin")
	}
}

func abortCSRF(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"message": "CSRF validation failed: " + reason,
	})
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(origin), "/")
}

// refererOrigin reduces a referer URL to its scheme://host origin.
func refererOrigin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
