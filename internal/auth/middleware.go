package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/logger"
	"imobiliaria-backend/internal/scope"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireAuth
const (
	ScopeKey  = "scope"
	ClaimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token, resolves the caller's company scope
// and stores both in the gin context. The caller identity is also attached to
// the request context for logging.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		s := m.service.ScopeFor(claims)
		c.Set(ClaimsKey, claims)
		c.Set(ScopeKey, s)

		ctx := context.WithValue(c.Request.Context(), logger.UserKey, claims.Email)
		ctx = context.WithValue(ctx, logger.CompanyKey, s.CompanyID())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SetScope stores a resolved scope in the gin context
func SetScope(c *gin.Context, s scope.Scope) {
	c.Set(ScopeKey, s)
}

// GetScope returns the caller's scope. Without RequireAuth upstream the zero
// scope is returned, which every repository rejects.
func GetScope(c *gin.Context) scope.Scope {
	if v, exists := c.Get(ScopeKey); exists {
		if s, ok := v.(scope.Scope); ok {
			return s
		}
	}
	return scope.Scope{}
}

// GetAuthClaims extracts the full auth claims from the gin context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	if claims, exists := c.Get(ClaimsKey); exists {
		if authClaims, ok := claims.(*AuthClaims); ok {
			return authClaims, true
		}
	}
	return nil, false
}
