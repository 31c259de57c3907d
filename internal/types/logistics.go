package types

import (
  "time"
  "github.com/google/uuid"
)

type Route struct {
  ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  FromLocation    string     `gorm:"not null;column:from_location" json:"fromLocation"`
  ToLocation      string     `gorm:"not null;column:to_location" json:"toLocation"`
  DistanceKm      float64    `gorm:"not null;column:distance_km" json:"distanceKm"`
  EstimatedTimeHr float64    `gorm:"not null;column:estimated_time_hr" json:"estimatedTimeHr"`
  CompanyID       *uuid.UUID `gorm:"type:uuid;column:company_id" json:"companyId"`
  CreatedAt       time.Time  `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt       time.Time  `gorm:"not null;default:now()" json:"updatedAt"`

  BatchRoutes []*BatchRoute `gorm:"foreignKey:RouteID" json:"batchRoutes,omitempty"`

  BatchRouteCount *int64 `gorm:"-" json:"batchRouteCount,omitempty"`
}

func (Route) TableName() string {
  return "route"
}

type BatchRoute struct {
  ID        uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID   uuid.UUID        `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  RouteID   uuid.UUID        `gorm:"type:uuid;not null;column:route_id" json:"routeId"`
  Status    BatchRouteStatus `gorm:"type:varchar(16);not null;default:'PLANNED';column:status" json:"status"`
  StartedAt *time.Time       `gorm:"column:started_at" json:"startedAt"`
  EndedAt   *time.Time       `gorm:"column:ended_at" json:"endedAt"`
  CreatedAt time.Time        `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt time.Time        `gorm:"not null;default:now()" json:"updatedAt"`

  Batch *Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
  Route *Route `gorm:"foreignKey:RouteID" json:"route,omitempty"`
}

func (BatchRoute) TableName() string {
  return "batch_route"
}
