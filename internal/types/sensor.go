package types

import (
  "time"
  "github.com/google/uuid"
)

type Sensor struct {
  ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  SensorType  SensorType `gorm:"type:varchar(16);not null;column:sensor_type" json:"sensorType"`
  Model       *string    `gorm:"column:model" json:"model"`
  InstalledAt *string    `gorm:"column:installed_at" json:"installedAt"`
  IsActive    bool       `gorm:"not null;default:true;column:is_active" json:"isActive"`
  CreatedAt   time.Time  `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updatedAt"`

  Readings []*SensorReading `gorm:"foreignKey:SensorID" json:"readings,omitempty"`

  ReadingCount *int64 `gorm:"-" json:"readingCount,omitempty"`
}

func (Sensor) TableName() string {
  return "sensor"
}

type SensorReading struct {
  ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  BatchID     uuid.UUID `gorm:"type:uuid;not null;column:batch_id" json:"batchId"`
  SensorID    uuid.UUID `gorm:"type:uuid;not null;column:sensor_id" json:"sensorId"`
  Temperature *float64  `gorm:"column:temperature" json:"temperature"`
  Humidity    *float64  `gorm:"column:humidity" json:"humidity"`
  PH          *float64  `gorm:"column:ph" json:"ph"`
  GasLevel    *float64  `gorm:"column:gas_level" json:"gasLevel"`
  Pressure    *float64  `gorm:"column:pressure" json:"pressure"`
  ImageURL    *string   `gorm:"column:image_url" json:"imageUrl"`
  Notes       *string   `gorm:"column:notes" json:"notes"`
  Timestamp   time.Time `gorm:"not null;default:now();column:timestamp" json:"timestamp"`

  Batch  *Batch  `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
  Sensor *Sensor `gorm:"foreignKey:SensorID" json:"sensor,omitempty"`
}

func (SensorReading) TableName() string {
  return "sensor_reading"
}
