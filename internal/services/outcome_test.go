package services

import (
	"math"
	"testing"
	"github.com/shopspring/decimal"
	"github.com/zultopia/freshsure-be/internal/types"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestComputeOutcomeStats(t *testing.T) {
	outcomes := []*types.Outcome{
		{SoldQty: nd("100"), WastedQty: nd("5"), AvgSellPrice: nd("25000")},
		{SoldQty: nd("40"), WastedQty: nd("5"), AvgSellPrice: nd("45375")},
		{SpoilageReason: ptr("mould")},
	}

	stats := ComputeOutcomeStats(outcomes)
	if stats.TotalSold != 140 {
		t.Fatalf("totalSold = %v, want 140", stats.TotalSold)
	}
	if stats.TotalWasted != 10 {
		t.Fatalf("totalWasted = %v, want 10", stats.TotalWasted)
	}
	if stats.TotalRevenue != 4315000 {
		t.Fatalf("totalRevenue = %v, want 4315000", stats.TotalRevenue)
	}
	wantRate := 10.0 / 150.0 * 100
	if math.Abs(stats.WasteRate-wantRate) > 1e-9 {
		t.Fatalf("wasteRate = %v, want %v", stats.WasteRate, wantRate)
	}
	if stats.Count != 3 {
		t.Fatalf("count = %d, want 3", stats.Count)
	}
}

func TestComputeOutcomeStatsEmptyWindow(t *testing.T) {
	stats := ComputeOutcomeStats(nil)
	if stats.TotalSold != 0 || stats.TotalWasted != 0 || stats.TotalRevenue != 0 {
		t.Fatalf("empty window totals = %+v, want zeros", stats)
	}
	if stats.WasteRate != 0 {
		t.Fatalf("wasteRate on zero denominator = %v, want 0", stats.WasteRate)
	}
}

func TestComputeOutcomeStatsNullQuantities(t *testing.T) {
	// Sold without a price contributes quantity but no revenue.
	outcomes := []*types.Outcome{
		{SoldQty: nd("30")},
		{WastedQty: nd("30")},
	}
	stats := ComputeOutcomeStats(outcomes)
	if stats.TotalRevenue != 0 {
		t.Fatalf("revenue without prices = %v, want 0", stats.TotalRevenue)
	}
	if stats.WasteRate != 50 {
		t.Fatalf("wasteRate = %v, want 50", stats.WasteRate)
	}
}

func ptr(s string) *string {
	return &s
}
