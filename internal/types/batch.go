package types

import (
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

type Batch struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  CommodityID     uuid.UUID       `gorm:"type:uuid;not null;column:commodity_id" json:"commodityId"`
  OwnerCompanyID  uuid.UUID       `gorm:"type:uuid;not null;column:owner_company_id" json:"ownerCompanyId"`
  HarvestDate     *time.Time      `gorm:"column:harvest_date" json:"harvestDate"`
  Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null;column:quantity" json:"quantity"`
  Unit            string          `gorm:"not null;column:unit" json:"unit"`
  CurrentLocation *string         `gorm:"column:current_location" json:"currentLocation"`
  Status          BatchStatus     `gorm:"type:varchar(16);not null;default:'ACTIVE';column:status" json:"status"`
  CreatedAt       time.Time       `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updatedAt"`

  Commodity            *Commodity             `gorm:"foreignKey:CommodityID" json:"commodity,omitempty"`
  OwnerCompany         *Company               `gorm:"foreignKey:OwnerCompanyID" json:"ownerCompany,omitempty"`
  QualityScores        []*QualityScore        `gorm:"foreignKey:BatchID" json:"qualityScores,omitempty"`
  ShelfLifePredictions []*ShelfLifePrediction `gorm:"foreignKey:BatchID" json:"shelfLifePredictions,omitempty"`
  Recommendations      []*Recommendation      `gorm:"foreignKey:BatchID" json:"recommendations,omitempty"`
  SensorReadings       []*SensorReading       `gorm:"foreignKey:BatchID" json:"sensorReadings,omitempty"`
}

func (Batch) TableName() string {
  return "batch"
}
