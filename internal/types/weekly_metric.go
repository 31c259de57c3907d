package types

import (
  "time"
  "github.com/google/uuid"
)

// WeeklyMetric is a pre-aggregated per-company-per-week snapshot written by
// an external rollup process. The analytics listing only filters and sorts
// these rows.
type WeeklyMetric struct {
  ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  CompanyID          uuid.UUID `gorm:"type:uuid;not null;column:company_id" json:"companyId"`
  WeekStart          time.Time `gorm:"not null;column:week_start" json:"weekStart"`
  WasteReductionPct  *float64  `gorm:"column:waste_reduction_pct" json:"wasteReductionPct"`
  RevenueUpliftPct   *float64  `gorm:"column:revenue_uplift_pct" json:"revenueUpliftPct"`
  AvgShelfLifeGainHr *float64  `gorm:"column:avg_shelf_life_gain_hr" json:"avgShelfLifeGainHr"`
  CreatedAt          time.Time `gorm:"not null;default:now()" json:"createdAt"`

  Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (WeeklyMetric) TableName() string {
  return "weekly_metric"
}
