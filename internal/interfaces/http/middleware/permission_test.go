package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/infrastructure/auth"
)

func setClaims(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &auth.Claims{
			UserID: uuid.New().String(),
			Email:  "staff@tastehunt.test",
			Role:   role,
		}
		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTRoleKey, claims.Role)
		c.Next()
	}
}

func permissionRouter(role string, resource identity.Resource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(setClaims(role))
	engine.GET("/protected", RequireView(resource), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRequireView(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource identity.Resource
		want     int
	}{
		{name: "admin can view dashboard", role: "admin", resource: identity.ResourceDashboardStats, want: http.StatusOK},
		{name: "cashier cannot view dashboard", role: "cashier", resource: identity.ResourceDashboardStats, want: http.StatusForbidden},
		{name: "cashier can view period report", role: "cashier", resource: identity.ResourcePeriodReport, want: http.StatusOK},
		{name: "chef can view period report", role: "chef", resource: identity.ResourcePeriodReport, want: http.StatusOK},
		{name: "admin cannot view period report", role: "admin", resource: identity.ResourcePeriodReport, want: http.StatusForbidden},
		{name: "staff cannot view receipt", role: "staff", resource: identity.ResourceReceipt, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := permissionRouter(tt.role, tt.resource)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireView_NoClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", RequireView(identity.ResourceDashboardStats), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(role string) int {
		engine := gin.New()
		engine.Use(setClaims(role))
		engine.POST("/orders", RequireRole("staff", "cashier", "admin"), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		engine.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, run("staff"))
	assert.Equal(t, http.StatusCreated, run("admin"))
	assert.Equal(t, http.StatusForbidden, run("chef"))
}
