package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/domain"
	"github.com/AbidMulla/off-compus-backend/internal/http/response"
)

// AuthMW wraps the JWT verification middleware
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithJWT verifies the bearer token. Verification is stateless: the
// signature and embedded expiry decide, the token store is not
// consulted. On success the user id and role land in the context.
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenParts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			response.AbortError(c, http.StatusUnauthorized, "Access denied. No token provided or invalid format")
			return
		}

		claims, err := mw.tokenSvc.Validate(tokenParts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				response.AbortError(c, http.StatusUnauthorized, "Token has expired")
				return
			}
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}
