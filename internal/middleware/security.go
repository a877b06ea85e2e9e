package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityMiddleware applies CORS headers with origin validation for the
// browser frontends.
type SecurityMiddleware struct {
	allowedOrigins   map[string]bool
	allowedMethods   string
	allowedHeaders   string
	allowCredentials bool
}

// NewSecurityMiddleware creates a SecurityMiddleware allowing the given
// origins, methods and headers. Credentialed requests must be enabled for
// the session cookie to travel cross-origin.
func NewSecurityMiddleware(allowedOrigins []string, allowedMethods, allowedHeaders string, allowCredentials bool) *SecurityMiddleware {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originSet[normalizeOrigin(origin)] = true
	}
	return &SecurityMiddleware{
		allowedOrigins:   originSet,
		allowedMethods:   allowedMethods,
		allowedHeaders:   allowedHeaders,
		allowCredentials: allowCredentials,
	}
}

// Apply returns the gin handler enforcing the configured policy.
func (m *SecurityMiddleware) Apply() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && m.allowedOrigins[normalizeOrigin(origin)] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", m.allowedMethods)
			c.Header("Access-Control-Allow-Headers", m.allowedHeaders)
			if m.allowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// MethodsCSV joins HTTP method names the way the middleware expects them.
func MethodsCSV(methods ...string) string {
	return strings.Join(methods, ",")
}
