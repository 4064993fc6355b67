package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/internal/http/response"
)

// CasbinMW wraps the casbin enforcer for route authorization
type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce authorizes the request by the role the JWT middleware put in
// the context. Policy subjects use the "role_" prefix.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "Access denied. No token provided or invalid format")
			return
		}

		sub := "role_" + role.(string)
		allowed, err := mw.enforcer.Enforce(sub, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "Authorization check failed")
			return
		}
		if !allowed {
			response.AbortError(c, http.StatusForbidden, "Access denied. Insufficient permissions")
			return
		}

		c.Next()
	}
}
