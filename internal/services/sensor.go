package services

import (
  "context"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

type SensorService interface {
  Create(ctx context.Context, sensor *types.Sensor) (*types.Sensor, error)
  List(ctx context.Context, page types.PageParams, isActive *bool) ([]*types.Sensor, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Sensor, error)
  Update(ctx context.Context, id uuid.UUID, patch types.SensorPatch) (*types.Sensor, error)
  RecordReading(ctx context.Context, reading *types.SensorReading) (*types.SensorReading, error)
  ListReadings(ctx context.Context, batchID uuid.UUID, page types.PageParams, filter repos.ReadingFilter) ([]*types.SensorReading, types.Pagination, error)
}

type sensorService struct {
  db         *gorm.DB
  log        *logger.Logger
  sensorRepo repos.SensorRepo
  batchRepo  repos.BatchRepo
}

func NewSensorService(db *gorm.DB, log *logger.Logger, sensorRepo repos.SensorRepo, batchRepo repos.BatchRepo) SensorService {
  return &sensorService{
    db:         db,
    log:        log.With("service", "SensorService"),
    sensorRepo: sensorRepo,
    batchRepo:  batchRepo,
  }
}

func (ss *sensorService) Create(ctx context.Context, sensor *types.Sensor) (*types.Sensor, error) {
  sensor.ID = uuid.New()
  created, err := ss.sensorRepo.Create(ctx, nil, sensor)
  if err != nil {
    return nil, fmt.Errorf("failed to create sensor: %w", err)
  }
  ss.log.Info("sensor created", "sensor_id", created.ID, "sensor_type", created.SensorType)
  return created, nil
}

func (ss *sensorService) List(ctx context.Context, page types.PageParams, isActive *bool) ([]*types.Sensor, types.Pagination, error) {
  sensors, total, err := ss.sensorRepo.List(ctx, nil, page, isActive)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list sensors: %w", err)
  }
  if err := ss.sensorRepo.AttachReadingCounts(ctx, nil, sensors); err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to attach reading counts: %w", err)
  }
  return sensors, types.NewPagination(page.Page, page.Limit, total), nil
}

func (ss *sensorService) GetByID(ctx context.Context, id uuid.UUID) (*types.Sensor, error) {
  sensor, err := ss.sensorRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("SENSOR_NOT_FOUND", fmt.Errorf("sensor %s not found", id))
    }
    return nil, fmt.Errorf("failed to get sensor: %w", err)
  }
  if err := ss.sensorRepo.AttachReadingCounts(ctx, nil, []*types.Sensor{sensor}); err != nil {
    return nil, fmt.Errorf("failed to attach reading counts: %w", err)
  }
  return sensor, nil
}

func (ss *sensorService) Update(ctx context.Context, id uuid.UUID, patch types.SensorPatch) (*types.Sensor, error) {
  updated, err := ss.sensorRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("SENSOR_NOT_FOUND", fmt.Errorf("sensor %s not found", id))
    }
    return nil, fmt.Errorf("failed to update sensor: %w", err)
  }
  return updated, nil
}

func (ss *sensorService) RecordReading(ctx context.Context, reading *types.SensorReading) (*types.SensorReading, error) {
  if _, err := ss.batchRepo.GetByID(ctx, nil, reading.BatchID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", reading.BatchID))
    }
    return nil, fmt.Errorf("failed to look up batch: %w", err)
  }
  sensor, err := ss.sensorRepo.GetByID(ctx, nil, reading.SensorID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("SENSOR_NOT_FOUND", fmt.Errorf("sensor %s does not exist", reading.SensorID))
    }
    return nil, fmt.Errorf("failed to look up sensor: %w", err)
  }
  if !sensor.IsActive {
    return nil, apierr.Invalid("SENSOR_INACTIVE", fmt.Errorf("sensor %s is not active", sensor.ID))
  }

  reading.ID = uuid.New()
  created, err := ss.sensorRepo.CreateReading(ctx, nil, reading)
  if err != nil {
    return nil, fmt.Errorf("failed to record reading: %w", err)
  }
  return created, nil
}

func (ss *sensorService) ListReadings(ctx context.Context, batchID uuid.UUID, page types.PageParams, filter repos.ReadingFilter) ([]*types.SensorReading, types.Pagination, error) {
  readings, total, err := ss.sensorRepo.ListReadings(ctx, nil, batchID, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list readings: %w", err)
  }
  return readings, types.NewPagination(page.Page, page.Limit, total), nil
}
