package types

import (
  "time"
  "github.com/shopspring/decimal"
)

// Patch structs carry partial updates. Only non-nil fields are applied;
// everything else stays untouched. An all-nil patch is a no-op.

type CompanyPatch struct {
  Name        *string      `json:"name"`
  CompanyType *CompanyType `json:"companyType"`
  Country     *string      `json:"country"`
}

type CommodityPatch struct {
  Name              *string            `json:"name"`
  Category          *CommodityCategory `json:"category"`
  BaseShelfLifeDays *int               `json:"baseShelfLifeDays"`
}

type BatchPatch struct {
  HarvestDate     *time.Time       `json:"harvestDate"`
  Quantity        *decimal.Decimal `json:"quantity"`
  Unit            *string          `json:"unit"`
  CurrentLocation *string          `json:"currentLocation"`
  Status          *BatchStatus     `json:"status"`
}

type SensorPatch struct {
  Model       *string `json:"model"`
  InstalledAt *string `json:"installedAt"`
  IsActive    *bool   `json:"isActive"`
}

type RecommendationPatch struct {
  Explanation *string   `json:"explanation"`
  Priority    *Priority `json:"priority"`
}

type ActionPatch struct {
  ActionTaken *ActionTaken `json:"actionTaken"`
  Notes       *string      `json:"notes"`
}

type BatchRoutePatch struct {
  Status    *BatchRouteStatus `json:"status"`
  StartedAt *time.Time        `json:"startedAt"`
  EndedAt   *time.Time        `json:"endedAt"`
}
