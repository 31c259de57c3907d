package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/zultopia/freshsure-be/internal/handlers"
	"github.com/zultopia/freshsure-be/internal/logger"
	"github.com/zultopia/freshsure-be/internal/middleware"
	"github.com/zultopia/freshsure-be/internal/services"
	"github.com/zultopia/freshsure-be/internal/types"
)

const routerTestSecret = "router-test-secret"

// newTestRouter wires the full route table with nil services. Registration
// never touches a service, so this is enough to inspect paths, methods, and
// role gates.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init test logger: %v", err)
	}
	authService := services.NewAuthService(nil, log, nil, nil, routerTestSecret, time.Hour)
	return NewRouter(RouterConfig{
		AuthHandler:           handlers.NewAuthHandler(authService),
		CompanyHandler:        handlers.NewCompanyHandler(nil),
		CommodityHandler:      handlers.NewCommodityHandler(nil),
		BatchHandler:          handlers.NewBatchHandler(nil),
		SensorHandler:         handlers.NewSensorHandler(nil),
		QualityHandler:        handlers.NewQualityHandler(nil),
		RecommendationHandler: handlers.NewRecommendationHandler(nil),
		ActionHandler:         handlers.NewActionHandler(nil),
		LogisticsHandler:      handlers.NewLogisticsHandler(nil),
		RetailHandler:         handlers.NewRetailHandler(nil),
		FeedbackHandler:       handlers.NewFeedbackHandler(nil),
		OutcomeHandler:        handlers.NewOutcomeHandler(nil),
		AnalyticsHandler:      handlers.NewAnalyticsHandler(nil),
		HealthcheckHandler:    handlers.NewHealthcheckHandler(),
		AuthMiddleware:        middleware.NewAuthMiddleware(log, authService),
	})
}

func routeSet(router *gin.Engine) map[string]bool {
	set := map[string]bool{}
	for _, r := range router.Routes() {
		set[r.Method+" "+r.Path] = true
	}
	return set
}

func TestRouteTable(t *testing.T) {
	routes := routeSet(newTestRouter(t))

	for _, want := range []string{
		"GET /api/batches/summary",
		"PATCH /api/batches/:id",
		"GET /api/actions/stats",
		"PATCH /api/actions/:id",
		"GET /api/outcomes/stats",
		"GET /api/recommendations/priority/:priority",
		"PATCH /api/recommendations/:id",
		"GET /api/retail/inventory/low-stock",
		"PATCH /api/companies/:id",
		"PATCH /api/commodities/:id",
		"PATCH /api/sensors/:id",
		"PATCH /api/logistics/batch-routes/:id",
	} {
		if !routes[want] {
			t.Fatalf("route table missing %q", want)
		}
	}

	for key := range routes {
		if strings.HasSuffix(key, "/stats/summary") {
			t.Fatalf("stale stats path registered: %q", key)
		}
	}
	for _, stale := range []string{
		"PUT /api/batches/:id",
		"PUT /api/actions/:id",
		"PUT /api/recommendations/:id",
	} {
		if routes[stale] {
			t.Fatalf("partial update still registered as %q", stale)
		}
	}
}

func signRouterTestToken(t *testing.T, role types.UserRole) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       uuid.New().String(),
		"email":     "tester@example.com",
		"role":      string(role),
		"companyId": uuid.New().String(),
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routerTestSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestBatchUpdateGateExcludesRetail(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/batches/"+uuid.New().String(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signRouterTestToken(t, types.UserRoleRetail))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for RETAIL on batch update", w.Code)
	}
}
