package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dc-atlas-api-server/internal/auth"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID  = "user_id"
	CtxRole    = "user_role"
	CtxCountry = "user_country"
	CtxEmail   = "user_email"
)

// Authenticate validates the bearer token and places the caller's identity
// into the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthenticate sets identity context when a valid bearer token is
// presented and lets anonymous requests through untouched. The catalog
// listing uses it: prioritization needs the caller's country when known.
func OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c); ok {
			setClaims(c, claims)
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context) (*auth.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}
	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims *auth.JWTClaims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxRole, claims.Role)
	c.Set(CtxCountry, claims.Country)
	c.Set(CtxEmail, claims.Email)
}

// Authorize is a middleware factory gating a route group on caller roles.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(CtxRole)
		if !exists {
			// Authenticate must run first.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User role not found in context"})
			return
		}
		role, ok := roleValue.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User role has an invalid type"})
			return
		}
		for _, allowed := range allowedRoles {
			if allowed == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}
