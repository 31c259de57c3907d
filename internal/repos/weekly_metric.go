package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type WeeklyMetricRepo interface {
  Create(ctx context.Context, tx *gorm.DB, metric *types.WeeklyMetric) (*types.WeeklyMetric, error)
  ListSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.WeeklyMetric, error)
}

type weeklyMetricRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewWeeklyMetricRepo(db *gorm.DB, baseLog *logger.Logger) WeeklyMetricRepo {
  return &weeklyMetricRepo{db: db, log: baseLog.With("repo", "WeeklyMetricRepo")}
}

func (wr *weeklyMetricRepo) Create(ctx context.Context, tx *gorm.DB, metric *types.WeeklyMetric) (*types.WeeklyMetric, error) {
  transaction := tx
  if transaction == nil {
    transaction = wr.db
  }
  if err := transaction.WithContext(ctx).Create(metric).Error; err != nil {
    return nil, err
  }

  var result types.WeeklyMetric
  if err := transaction.WithContext(ctx).
    Preload("Company").
    Where("id = ?", metric.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (wr *weeklyMetricRepo) ListSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.WeeklyMetric, error) {
  transaction := tx
  if transaction == nil {
    transaction = wr.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.WeeklyMetric{}).
    Where("week_start >= ?", since)
  if companyID != nil {
    query = query.Where("company_id = ?", *companyID)
  }

  var results []*types.WeeklyMetric
  if err := query.
    Preload("Company").
    Order("week_start DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
