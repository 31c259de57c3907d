package types

import (
  "time"
  "github.com/google/uuid"
)

type User struct {
  ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name         string    `gorm:"not null;column:name" json:"name"`
  Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
  PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
  Role         UserRole  `gorm:"type:varchar(16);not null;column:role" json:"role"`
  CompanyID    uuid.UUID `gorm:"type:uuid;not null;column:company_id" json:"companyId"`
  CreatedAt    time.Time `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updatedAt"`

  Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (User) TableName() string {
  return "user"
}

// UserRef is the trimmed user shape embedded in cross-entity responses.
type UserRef struct {
  ID    uuid.UUID `json:"id"`
  Name  string    `json:"name"`
  Email string    `json:"email,omitempty"`
}

func (u *User) Ref() *UserRef {
  if u == nil {
    return nil
  }
  return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
