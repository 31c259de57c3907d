package types

import (
  "time"
  "github.com/google/uuid"
)

type Company struct {
  ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name        string      `gorm:"not null;column:name" json:"name"`
  CompanyType CompanyType `gorm:"type:varchar(16);not null;column:company_type" json:"companyType"`
  Country     *string     `gorm:"column:country" json:"country"`
  CreatedAt   time.Time   `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time   `gorm:"not null;default:now()" json:"updatedAt"`

  Users   []*User  `gorm:"foreignKey:CompanyID" json:"users,omitempty"`
  Batches []*Batch `gorm:"foreignKey:OwnerCompanyID" json:"batches,omitempty"`

  // Filled by the list/getById queries, never persisted.
  UserCount  *int64 `gorm:"-" json:"userCount,omitempty"`
  BatchCount *int64 `gorm:"-" json:"batchCount,omitempty"`
}

func (Company) TableName() string {
  return "company"
}
