package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/identity"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/auth"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/config"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/handler"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// newTestEngine wires the route table with zero-value handlers. The cases
// below only exercise the middleware boundary, so no handler body runs.
func newTestEngine(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-bytes!!",
		TokenExpiration: time.Hour,
		Issuer:          "listrik-test",
	})

	engine := gin.New()
	Setup(engine, Config{
		AuthHandler:      &handler.AuthHandler{},
		TariffHandler:    &handler.TariffHandler{},
		CustomerHandler:  &handler.CustomerHandler{},
		UsageHandler:     &handler.UsageHandler{},
		BillHandler:      &handler.BillHandler{},
		DashboardHandler: &handler.DashboardHandler{},
		PortalHandler:    &handler.PortalHandler{},
		HealthHandler:    &handler.HealthHandler{},
		JWTService:       jwtService,
		CORS:             middleware.DefaultCORSConfig(),
	})
	return engine, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role identity.Role) string {
	t.Helper()
	token, err := jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "someone",
		Name:     "Someone",
		Role:     role,
	})
	require.NoError(t, err)
	return token.AccessToken
}

func request(engine *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouteAuthorizationBoundary(t *testing.T) {
	engine, jwtService := newTestEngine(t)
	adminToken := tokenFor(t, jwtService, identity.RoleAdmin)
	customerToken := tokenFor(t, jwtService, identity.RoleCustomer)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"admin surface needs a token", http.MethodGet, "/api/admin/stats", "", http.StatusUnauthorized},
		{"portal surface needs a token", http.MethodGet, "/api/portal/dashboard", "", http.StatusUnauthorized},
		{"customer cannot reach admin surface", http.MethodGet, "/api/admin/tariffs", customerToken, http.StatusForbidden},
		{"admin cannot reach the portal", http.MethodGet, "/api/portal/bills", adminToken, http.StatusForbidden},
		{"customer cannot delete customers", http.MethodDelete, "/api/admin/customers/" + uuid.NewString(), customerToken, http.StatusForbidden},
		{"admin cannot pay through the portal", http.MethodPost, "/api/portal/bills/" + uuid.NewString() + "/pay", adminToken, http.StatusForbidden},
		{"unknown route is 404", http.MethodGet, "/api/admin/nonexistent", adminToken, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(engine, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestLoginRouteIsPublic(t *testing.T) {
	engine, _ := newTestEngine(t)

	// no token required to reach the handler; the empty body fails
	// binding before the service is ever touched
	w := request(engine, http.MethodPost, "/api/auth/login", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
