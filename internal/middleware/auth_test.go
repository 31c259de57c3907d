package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/zultopia/freshsure-be/internal/logger"
	"github.com/zultopia/freshsure-be/internal/services"
	"github.com/zultopia/freshsure-be/internal/types"
)

const testSecret = "middleware-test-secret"

func newTestAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init test logger: %v", err)
	}
	// Token validation never touches the database, so repos stay nil.
	authService := services.NewAuthService(nil, log, nil, nil, testSecret, time.Hour)
	return NewAuthMiddleware(log, authService)
}

func signTestToken(t *testing.T, role types.UserRole, secret string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       uuid.New().String(),
		"email":     "tester@example.com",
		"role":      string(role),
		"companyId": uuid.New().String(),
		"iat":       now.Unix(),
		"exp":       now.Add(expiresIn).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func protectedRouter(t *testing.T, am *AuthMiddleware, roles ...types.UserRole) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api", am.RequireAuth())
	handler := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	if len(roles) > 0 {
		group.GET("/resource", am.RequireRoles(roles...), handler)
	} else {
		group.GET("/resource", handler)
	}
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/resource", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := protectedRouter(t, newTestAuthMiddleware(t))
	if w := doRequest(router, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without a token", w.Code)
	}
}

func TestRequireAuthBadSignature(t *testing.T) {
	router := protectedRouter(t, newTestAuthMiddleware(t))
	token := signTestToken(t, types.UserRoleFarmer, "some-other-secret", time.Hour)
	if w := doRequest(router, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for a foreign signature", w.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	router := protectedRouter(t, newTestAuthMiddleware(t))
	token := signTestToken(t, types.UserRoleFarmer, testSecret, -time.Minute)
	if w := doRequest(router, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for an expired token", w.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	router := protectedRouter(t, newTestAuthMiddleware(t))
	token := signTestToken(t, types.UserRoleFarmer, testSecret, time.Hour)
	if w := doRequest(router, token); w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 for a valid token", w.Code)
	}
}

func TestRequireRolesRejectsWrongRole(t *testing.T) {
	am := newTestAuthMiddleware(t)
	router := protectedRouter(t, am, types.UserRoleLogistics)
	token := signTestToken(t, types.UserRoleFarmer, testSecret, time.Hour)
	if w := doRequest(router, token); w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for a role outside the gate", w.Code)
	}
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	am := newTestAuthMiddleware(t)
	router := protectedRouter(t, am, types.UserRoleLogistics)
	token := signTestToken(t, types.UserRoleLogistics, testSecret, time.Hour)
	if w := doRequest(router, token); w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 for a listed role", w.Code)
	}
}

func TestRequireRolesAdminAlwaysPasses(t *testing.T) {
	am := newTestAuthMiddleware(t)
	router := protectedRouter(t, am, types.UserRoleRetail)
	token := signTestToken(t, types.UserRoleAdmin, testSecret, time.Hour)
	if w := doRequest(router, token); w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 for ADMIN", w.Code)
	}
}
