package types

import (
  "time"
  "github.com/google/uuid"
)

// QualityScore rows are append-only snapshots written by the external
// scoring process. They are never updated or deleted.
type QualityScore struct {
  ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID      uuid.UUID `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  QualityScore float64   `gorm:"not null;column:quality_score" json:"qualityScore"`
  Confidence   float64   `gorm:"not null;column:confidence" json:"confidence"`
  CalculatedAt time.Time `gorm:"not null;default:now();column:calculated_at" json:"calculatedAt"`

  Batch *Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
}

func (QualityScore) TableName() string {
  return "quality_score"
}

// ShelfLifePrediction rows are append-only, same lifecycle as QualityScore.
type ShelfLifePrediction struct {
  ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID        uuid.UUID `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  RemainingHours float64   `gorm:"not null;column:remaining_hours" json:"remainingHours"`
  MinEstimate    float64   `gorm:"not null;column:min_estimate" json:"minEstimate"`
  MaxEstimate    float64   `gorm:"not null;column:max_estimate" json:"maxEstimate"`
  RiskLevel      RiskLevel `gorm:"type:varchar(16);not null;column:risk_level" json:"riskLevel"`
  CalculatedAt   time.Time `gorm:"not null;default:now();column:calculated_at" json:"calculatedAt"`

  Batch *Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
}

func (ShelfLifePrediction) TableName() string {
  return "shelf_life_prediction"
}
