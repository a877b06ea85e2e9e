// Package middleware provides HTTP middleware for the chatcart service.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarlsons/chatcart-service/internal/models"
	"github.com/akarlsons/chatcart-service/internal/repository"
	"github.com/akarlsons/chatcart-service/internal/service"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "jwt"

// userContextKey is where the resolved user is attached on the gin context.
const userContextKey = "currentUser"

// RequireAuth gates protected routes. It resolves the session cookie to a
// user record and attaches it to the request context; any failure (missing,
// malformed, expired, bad signature, unknown user) aborts with 401 before
// the handler runs.
func RequireAuth(tokens service.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser attaches a resolved user to the gin context.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user attached by RequireAuth, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
}
