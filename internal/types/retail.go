package types

import (
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

type Store struct {
  ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name      string    `gorm:"not null;column:name" json:"name"`
  Location  *string   `gorm:"column:location" json:"location"`
  CompanyID uuid.UUID `gorm:"type:uuid;not null;column:company_id" json:"companyId"`
  CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

  Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Store) TableName() string {
  return "store"
}

type RetailInventory struct {
  ID        uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID   uuid.UUID       `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  StoreID   uuid.UUID       `gorm:"type:uuid;not null;column:store_id" json:"storeId"`
  StockQty  decimal.Decimal `gorm:"type:decimal(12,2);not null;column:stock_qty" json:"stockQty"`
  CreatedAt time.Time       `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt time.Time       `gorm:"not null;default:now()" json:"updatedAt"`

  Batch                  *Batch                   `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
  Store                  *Store                   `gorm:"foreignKey:StoreID" json:"store,omitempty"`
  PricingRecommendations []*PricingRecommendation `gorm:"foreignKey:InventoryID" json:"pricingRecommendations,omitempty"`
}

func (RetailInventory) TableName() string {
  return "retail_inventory"
}

type PricingRecommendation struct {
  ID               uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  InventoryID      uuid.UUID       `gorm:"type:uuid;not null;column:inventory_id" json:"inventoryId"`
  OriginalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;column:original_price" json:"originalPrice"`
  RecommendedPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;column:recommended_price" json:"recommendedPrice"`
  DiscountPct      float64         `gorm:"not null;column:discount_pct" json:"discountPct"`
  Reason           *string         `gorm:"column:reason" json:"reason"`
  CreatedAt        time.Time       `gorm:"not null;default:now()" json:"createdAt"`

  Inventory *RetailInventory `gorm:"foreignKey:InventoryID" json:"inventory,omitempty"`
}

func (PricingRecommendation) TableName() string {
  return "pricing_recommendation"
}
