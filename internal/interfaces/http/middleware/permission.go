package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tastehunt/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
}

// RequireView creates middleware that requires view access to a resource.
// Access is decided by the caller's role via the central access policy.
func RequireView(resource identity.Resource) gin.HandlerFunc {
	return RequireViewWithConfig(resource, PermissionConfig{})
}

// RequireViewWithConfig creates view-access middleware with custom config
func RequireViewWithConfig(resource identity.Resource, cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			handlePermissionDenied(c, cfg, resource, "No authentication claims found")
			return
		}

		if !identity.CanView(caller.Role, resource) {
			handlePermissionDenied(c, cfg, resource, "Role lacks access to resource")
			return
		}

		if cfg.Logger != nil {
			cfg.Logger.Debug("Permission check passed",
				zap.String("user_id", caller.ID.String()),
				zap.String("role", string(caller.Role)),
				zap.String("resource", string(resource)),
			)
		}

		c.Next()
	}
}

// RequireRole creates middleware that requires one of the given roles
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			handlePermissionDenied(c, PermissionConfig{}, "", "No authentication claims found")
			return
		}

		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		handlePermissionDenied(c, PermissionConfig{}, "", "Role not permitted")
	}
}

// handlePermissionDenied handles permission denied scenarios
func handlePermissionDenied(c *gin.Context, cfg PermissionConfig, resource identity.Resource, reason string) {
	if cfg.Logger != nil {
		role := GetJWTRole(c)
		cfg.Logger.Warn("Permission denied",
			zap.String("reason", reason),
			zap.String("role", role),
			zap.String("resource", string(resource)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ERR_FORBIDDEN",
			"message": "Access denied: insufficient permissions",
		},
	})
}
