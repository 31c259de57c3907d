package types

import (
	"testing"
)

func TestParseUserRole(t *testing.T) {
	for _, valid := range []string{"FARMER", "LOGISTICS", "RETAIL", "ADMIN"} {
		if _, err := ParseUserRole(valid); err != nil {
			t.Fatalf("ParseUserRole(%q) returned error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "farmer", "MANAGER", "ADMIN "} {
		if _, err := ParseUserRole(invalid); err == nil {
			t.Fatalf("ParseUserRole(%q) accepted an invalid role", invalid)
		}
	}
}

func TestParseBatchStatus(t *testing.T) {
	if s, err := ParseBatchStatus("IN_TRANSIT"); err != nil || s != BatchStatusInTransit {
		t.Fatalf("ParseBatchStatus(IN_TRANSIT) = %v, %v", s, err)
	}
	if _, err := ParseBatchStatus("EXPIRED"); err == nil {
		t.Fatal("ParseBatchStatus accepted EXPIRED")
	}
}

func TestParseActionTaken(t *testing.T) {
	if a, err := ParseActionTaken("PENDING"); err != nil || a != ActionTakenPending {
		t.Fatalf("ParseActionTaken(PENDING) = %v, %v", a, err)
	}
	if _, err := ParseActionTaken("DECLINED"); err == nil {
		t.Fatal("ParseActionTaken accepted DECLINED")
	}
}

func TestParseRecommendationType(t *testing.T) {
	for _, valid := range []string{"SELL_FAST", "STORE", "REROUTE", "DOWNGRADE", "DISCOUNT", "PRIORITY_SHIP"} {
		if _, err := ParseRecommendationType(valid); err != nil {
			t.Fatalf("ParseRecommendationType(%q) returned error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"SELL", "RELOCATE", "PRICE_DOWN", "DONATE", "DISCARD"} {
		if _, err := ParseRecommendationType(invalid); err == nil {
			t.Fatalf("ParseRecommendationType accepted %q", invalid)
		}
	}
}

func TestParseCompanyType(t *testing.T) {
	for _, valid := range []string{"FARM", "LOGISTICS", "RETAIL", "PROCESSOR"} {
		if _, err := ParseCompanyType(valid); err != nil {
			t.Fatalf("ParseCompanyType(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseCompanyType("DISTRIBUTOR"); err == nil {
		t.Fatal("ParseCompanyType accepted DISTRIBUTOR")
	}
}

func TestParseCommodityCategory(t *testing.T) {
	for _, valid := range []string{"FRUIT", "VEGETABLE", "MEAT", "DAIRY", "GRAIN", "OTHER"} {
		if _, err := ParseCommodityCategory(valid); err != nil {
			t.Fatalf("ParseCommodityCategory(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseCommodityCategory("SEAFOOD"); err == nil {
		t.Fatal("ParseCommodityCategory accepted SEAFOOD")
	}
}

func TestParseSensorType(t *testing.T) {
	for _, valid := range []string{"TEMPERATURE", "HUMIDITY", "PH", "IMAGING", "MANUAL", "GAS", "PRESSURE"} {
		if _, err := ParseSensorType(valid); err != nil {
			t.Fatalf("ParseSensorType(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseSensorType("CAMERA"); err == nil {
		t.Fatal("ParseSensorType accepted CAMERA")
	}
}

func TestParseBatchRouteStatus(t *testing.T) {
	if s, err := ParseBatchRouteStatus("CANCELLED"); err != nil || s != BatchRouteStatusCancelled {
		t.Fatalf("ParseBatchRouteStatus(CANCELLED) = %v, %v", s, err)
	}
	if s, err := ParseBatchRouteStatus("DELIVERED"); err != nil || s != BatchRouteStatusDelivered {
		t.Fatalf("ParseBatchRouteStatus(DELIVERED) = %v, %v", s, err)
	}
	for _, invalid := range []string{"DONE", "COMPLETED"} {
		if _, err := ParseBatchRouteStatus(invalid); err == nil {
			t.Fatalf("ParseBatchRouteStatus accepted %q", invalid)
		}
	}
}
