// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trackify/backend/internal/application/adapter"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// ActorKey is the context key for the authenticated actor.
	ActorKey ContextKey = "actor"
	// AccountEmailKey is the context key for the authenticated account's email.
	AccountEmailKey ContextKey = "account_email"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		// Check Bearer prefix
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		// Extract token
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		// Validate token
		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		// Store actor in context
		c.Set(string(ActorKey), valueobject.Actor{
			AccountID: claims.AccountID,
			Role:      claims.Role,
		})
		c.Set(string(AccountEmailKey), claims.Email)

		c.Next()
	}
}

// RequireAdmin rejects authenticated callers that are not administrators.
// It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok {
			abortUnauthorized(c, "Authentication required", domainerror.ErrCodeMissingToken)
			return
		}
		if !actor.Role.IsAdministrator() {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Administrator access required",
				Code:  string(domainerror.ErrCodeForbidden),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActorFromContext extracts the authenticated actor from the Gin context.
func GetActorFromContext(c *gin.Context) (valueobject.Actor, bool) {
	value, exists := c.Get(string(ActorKey))
	if !exists {
		return valueobject.Actor{}, false
	}
	actor, ok := value.(valueobject.Actor)
	return actor, ok
}

// GetAccountEmailFromContext extracts the account email from the Gin context.
func GetAccountEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(AccountEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}
