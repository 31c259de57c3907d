package types

import (
  "time"
  "github.com/google/uuid"
)

type Commodity struct {
  ID                uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name              string            `gorm:"not null;column:name" json:"name"`
  Category          CommodityCategory `gorm:"type:varchar(16);not null;column:category" json:"category"`
  BaseShelfLifeDays int               `gorm:"not null;column:base_shelf_life_days" json:"baseShelfLifeDays"`
  CreatedAt         time.Time         `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt         time.Time         `gorm:"not null;default:now()" json:"updatedAt"`

  Batches []*Batch `gorm:"foreignKey:CommodityID" json:"batches,omitempty"`

  BatchCount *int64 `gorm:"-" json:"batchCount,omitempty"`
}

func (Commodity) TableName() string {
  return "commodity"
}
