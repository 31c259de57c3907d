package types

import (
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

// Outcome is the realized disposition of (part of) a batch. A batch can have
// several outcomes recorded over time as it sells down. Rows are immutable.
type Outcome struct {
  ID             uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID        uuid.UUID           `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  SoldQty        decimal.NullDecimal `gorm:"type:decimal(12,2);column:sold_qty" json:"soldQty"`
  WastedQty      decimal.NullDecimal `gorm:"type:decimal(12,2);column:wasted_qty" json:"wastedQty"`
  AvgSellPrice   decimal.NullDecimal `gorm:"type:decimal(12,2);column:avg_sell_price" json:"avgSellPrice"`
  SpoilageReason *string             `gorm:"column:spoilage_reason" json:"spoilageReason"`
  RecordedAt     time.Time           `gorm:"not null;default:now();column:recorded_at" json:"recordedAt"`

  Batch *Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
}

func (Outcome) TableName() string {
  return "outcome"
}
