package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type ReadingFilter struct {
  StartDate *time.Time
  EndDate   *time.Time
}

type SensorRepo interface {
  Create(ctx context.Context, tx *gorm.DB, sensor *types.Sensor) (*types.Sensor, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, isActive *bool) ([]*types.Sensor, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Sensor, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.SensorPatch) (*types.Sensor, error)
  AttachReadingCounts(ctx context.Context, tx *gorm.DB, sensors []*types.Sensor) error
  CreateReading(ctx context.Context, tx *gorm.DB, reading *types.SensorReading) (*types.SensorReading, error)
  ListReadings(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, page types.PageParams, filter ReadingFilter) ([]*types.SensorReading, int64, error)
}

type sensorRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSensorRepo(db *gorm.DB, baseLog *logger.Logger) SensorRepo {
  return &sensorRepo{db: db, log: baseLog.With("repo", "SensorRepo")}
}

func (sr *sensorRepo) Create(ctx context.Context, tx *gorm.DB, sensor *types.Sensor) (*types.Sensor, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if err := transaction.WithContext(ctx).Create(sensor).Error; err != nil {
    return nil, err
  }
  return sensor, nil
}

func (sr *sensorRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, isActive *bool) ([]*types.Sensor, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Sensor{})
  if isActive != nil {
    query = query.Where("is_active = ?", *isActive)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Sensor
  if err := query.
    Order("created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (sr *sensorRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Sensor, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var result types.Sensor
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (sr *sensorRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.SensorPatch) (*types.Sensor, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  updates := map[string]interface{}{}
  if patch.Model != nil {
    updates["model"] = *patch.Model
  }
  if patch.InstalledAt != nil {
    updates["installed_at"] = *patch.InstalledAt
  }
  if patch.IsActive != nil {
    updates["is_active"] = *patch.IsActive
  }
  if len(updates) > 0 {
    res := transaction.WithContext(ctx).
      Model(&types.Sensor{}).
      Where("id = ?", id).
      Updates(updates)
    if res.Error != nil {
      return nil, res.Error
    }
    if res.RowsAffected == 0 {
      return nil, gorm.ErrRecordNotFound
    }
  }
  return sr.GetByID(ctx, transaction, id)
}

func (sr *sensorRepo) AttachReadingCounts(ctx context.Context, tx *gorm.DB, sensors []*types.Sensor) error {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if len(sensors) == 0 {
    return nil
  }

  ids := make([]uuid.UUID, 0, len(sensors))
  for _, s := range sensors {
    ids = append(ids, s.ID)
  }

  type row struct {
    SensorID uuid.UUID
    N        int64
  }
  var rows []row
  if err := transaction.WithContext(ctx).
    Model(&types.SensorReading{}).
    Select("sensor_id, count(*) AS n").
    Where("sensor_id IN ?", ids).
    Group("sensor_id").
    Scan(&rows).Error; err != nil {
    return err
  }

  counts := map[uuid.UUID]int64{}
  for _, r := range rows {
    counts[r.SensorID] = r.N
  }
  for _, s := range sensors {
    n := counts[s.ID]
    s.ReadingCount = &n
  }
  return nil
}

func (sr *sensorRepo) CreateReading(ctx context.Context, tx *gorm.DB, reading *types.SensorReading) (*types.SensorReading, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if err := transaction.WithContext(ctx).Create(reading).Error; err != nil {
    return nil, err
  }

  var result types.SensorReading
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Preload("Sensor").
    Where("id = ?", reading.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (sr *sensorRepo) ListReadings(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, page types.PageParams, filter ReadingFilter) ([]*types.SensorReading, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.SensorReading{}).
    Where("batch_id = ?", batchID)
  if filter.StartDate != nil {
    query = query.Where("timestamp >= ?", *filter.StartDate)
  }
  if filter.EndDate != nil {
    query = query.Where("timestamp <= ?", *filter.EndDate)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.SensorReading
  if err := query.
    Preload("Sensor").
    Order("timestamp DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}
