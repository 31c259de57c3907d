package types

import (
  "time"
  "github.com/google/uuid"
)

type Feedback struct {
  ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID       uuid.UUID  `gorm:"type:uuid;not null;column:user_id" json:"userId"`
  BatchID      *uuid.UUID `gorm:"type:uuid;column:batch_id" json:"batchId"`
  FeedbackType string     `gorm:"not null;column:feedback_type" json:"feedbackType"`
  Message      string     `gorm:"not null;column:message" json:"message"`
  CreatedAt    time.Time  `gorm:"not null;default:now()" json:"createdAt"`

  User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
  Batch *Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
}

func (Feedback) TableName() string {
  return "feedback"
}
