package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePageParamsDefaults(t *testing.T) {
	c := testContext(t, "/api/batches")
	page, err := parsePageParams(c)
	if err != nil {
		t.Fatalf("parsePageParams returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("defaults = %+v, want page 1 limit 10", page)
	}
}

func TestParsePageParamsExplicit(t *testing.T) {
	c := testContext(t, "/api/batches?page=4&limit=100")
	page, err := parsePageParams(c)
	if err != nil {
		t.Fatalf("parsePageParams returned error: %v", err)
	}
	if page.Page != 4 || page.Limit != 100 {
		t.Fatalf("parsed = %+v, want page 4 limit 100", page)
	}
}

func TestParsePageParamsRejectsBadValues(t *testing.T) {
	for _, target := range []string{
		"/api/batches?page=0",
		"/api/batches?page=abc",
		"/api/batches?limit=0",
		"/api/batches?limit=101",
		"/api/batches?limit=-5",
	} {
		c := testContext(t, target)
		if _, err := parsePageParams(c); err == nil {
			t.Fatalf("parsePageParams(%q) accepted an out-of-range value", target)
		}
	}
}

func TestParseIntQuery(t *testing.T) {
	c := testContext(t, "/api/actions/stats")
	if n, err := parseIntQuery(c, "days", 30, 365); err != nil || n != 30 {
		t.Fatalf("absent days = %d, %v, want default 30", n, err)
	}

	c = testContext(t, "/api/actions/stats?days=90")
	if n, err := parseIntQuery(c, "days", 30, 365); err != nil || n != 90 {
		t.Fatalf("days=90 parsed as %d, %v", n, err)
	}

	c = testContext(t, "/api/actions/stats?days=400")
	if _, err := parseIntQuery(c, "days", 30, 365); err == nil {
		t.Fatal("parseIntQuery accepted a value above max")
	}
}

func TestParseOptionalUUIDQuery(t *testing.T) {
	c := testContext(t, "/api/batches")
	if id, err := parseOptionalUUIDQuery(c, "commodityId"); err != nil || id != nil {
		t.Fatalf("absent commodityId = %v, %v, want nil", id, err)
	}

	c = testContext(t, "/api/batches?commodityId=6f1c9f9e-62a1-4c7e-9f3a-0b9f6a2f4d11")
	id, err := parseOptionalUUIDQuery(c, "commodityId")
	if err != nil || id == nil {
		t.Fatalf("valid commodityId = %v, %v", id, err)
	}

	c = testContext(t, "/api/batches?commodityId=not-a-uuid")
	if _, err := parseOptionalUUIDQuery(c, "commodityId"); err == nil {
		t.Fatal("parseOptionalUUIDQuery accepted a malformed uuid")
	}
}

func TestParseOptionalDateQuery(t *testing.T) {
	c := testContext(t, "/api/outcomes?startDate=2025-06-01")
	d, err := parseOptionalDateQuery(c, "startDate")
	if err != nil || d == nil {
		t.Fatalf("plain date = %v, %v", d, err)
	}
	if d.Year() != 2025 || d.Month() != 6 || d.Day() != 1 {
		t.Fatalf("parsed date = %v, want 2025-06-01", d)
	}

	c = testContext(t, "/api/outcomes?startDate=2025-06-01T10:30:00Z")
	if d, err = parseOptionalDateQuery(c, "startDate"); err != nil || d == nil || d.Hour() != 10 {
		t.Fatalf("rfc3339 date = %v, %v", d, err)
	}

	c = testContext(t, "/api/outcomes?startDate=June+1st")
	if _, err = parseOptionalDateQuery(c, "startDate"); err == nil {
		t.Fatal("parseOptionalDateQuery accepted a malformed date")
	}
}
