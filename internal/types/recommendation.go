package types

import (
  "time"
  "github.com/google/uuid"
)

type Recommendation struct {
  ID                 uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID            uuid.UUID          `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  RecommendationType RecommendationType `gorm:"type:varchar(16);not null;column:recommendation_type" json:"recommendationType"`
  Explanation        *string            `gorm:"column:explanation" json:"explanation"`
  Priority           Priority           `gorm:"type:varchar(16);not null;column:priority" json:"priority"`
  CreatedAt          time.Time          `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt          time.Time          `gorm:"not null;default:now()" json:"updatedAt"`

  Batch   *Batch    `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
  Actions []*Action `gorm:"foreignKey:RecommendationID" json:"actions,omitempty"`
}

func (Recommendation) TableName() string {
  return "recommendation"
}

// Action records the user response to a recommendation. Only ActionTaken and
// Notes are mutable after creation.
type Action struct {
  ID               uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  RecommendationID uuid.UUID   `gorm:"type:uuid;not null;column:recommendation_id" json:"recommendationId"`
  UserID           uuid.UUID   `gorm:"type:uuid;not null;column:user_id" json:"userId"`
  ActionTaken      ActionTaken `gorm:"type:varchar(16);not null;column:action_taken" json:"actionTaken"`
  Notes            *string     `gorm:"column:notes" json:"notes"`
  ExecutedAt       *time.Time  `gorm:"column:executed_at" json:"executedAt"`
  CreatedAt        time.Time   `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt        time.Time   `gorm:"not null;default:now()" json:"updatedAt"`

  Recommendation *Recommendation `gorm:"foreignKey:RecommendationID" json:"recommendation,omitempty"`
  User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Action) TableName() string {
  return "action"
}
