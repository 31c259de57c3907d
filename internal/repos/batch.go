package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type BatchFilter struct {
  CompanyID   *uuid.UUID
  CommodityID *uuid.UUID
  Status      *types.BatchStatus
  StartDate   *time.Time
  EndDate     *time.Time
}

type BatchStatusCount struct {
  Status types.BatchStatus
  N      int64
}

type BatchRepo interface {
  Create(ctx context.Context, tx *gorm.DB, batch *types.Batch) (*types.Batch, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter BatchFilter) ([]*types.Batch, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Batch, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.BatchPatch) (*types.Batch, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Count(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID) (int64, error)
  CountByStatus(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID) ([]BatchStatusCount, error)
  CountWithStatus(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, status types.BatchStatus) (int64, error)
  CountDistinctCommodities(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID) (int64, error)
}

type batchRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewBatchRepo(db *gorm.DB, baseLog *logger.Logger) BatchRepo {
  return &batchRepo{db: db, log: baseLog.With("repo", "BatchRepo")}
}

func (br *batchRepo) Create(ctx context.Context, tx *gorm.DB, batch *types.Batch) (*types.Batch, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  if err := transaction.WithContext(ctx).Create(batch).Error; err != nil {
    return nil, err
  }
  return br.GetByID(ctx, transaction, batch.ID)
}

func (br *batchRepo) applyFilter(query *gorm.DB, filter BatchFilter) *gorm.DB {
  if filter.CompanyID != nil {
    query = query.Where("owner_company_id = ?", *filter.CompanyID)
  }
  if filter.CommodityID != nil {
    query = query.Where("commodity_id = ?", *filter.CommodityID)
  }
  if filter.Status != nil {
    query = query.Where("status = ?", *filter.Status)
  }
  if filter.StartDate != nil {
    query = query.Where("created_at >= ?", *filter.StartDate)
  }
  if filter.EndDate != nil {
    query = query.Where("created_at <= ?", *filter.EndDate)
  }
  return query
}

func (br *batchRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter BatchFilter) ([]*types.Batch, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  query := br.applyFilter(transaction.WithContext(ctx).Model(&types.Batch{}), filter)

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Batch
  if err := query.
    Preload("Commodity").
    Preload("OwnerCompany").
    Order("created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (br *batchRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Batch, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  var result types.Batch
  if err := transaction.WithContext(ctx).
    Preload("Commodity").
    Preload("OwnerCompany").
    Preload("QualityScores", func(db *gorm.DB) *gorm.DB {
      return db.Order("calculated_at DESC").Limit(10)
    }).
    Preload("ShelfLifePredictions", func(db *gorm.DB) *gorm.DB {
      return db.Order("calculated_at DESC").Limit(10)
    }).
    Preload("Recommendations", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at DESC").Limit(10)
    }).
    Preload("Recommendations.Actions").
    Preload("Recommendations.Actions.User").
    Preload("SensorReadings", func(db *gorm.DB) *gorm.DB {
      return db.Order("timestamp DESC").Limit(50)
    }).
    Preload("SensorReadings.Sensor").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (br *batchRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.BatchPatch) (*types.Batch, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  updates := map[string]interface{}{}
  if patch.HarvestDate != nil {
    updates["harvest_date"] = *patch.HarvestDate
  }
  if patch.Quantity != nil {
    updates["quantity"] = *patch.Quantity
  }
  if patch.Unit != nil {
    updates["unit"] = *patch.Unit
  }
  if patch.CurrentLocation != nil {
    updates["current_location"] = *patch.CurrentLocation
  }
  if patch.Status != nil {
    updates["status"] = *patch.Status
  }
  if len(updates) > 0 {
    res := transaction.WithContext(ctx).
      Model(&types.Batch{}).
      Where("id = ?", id).
      Updates(updates)
    if res.Error != nil {
      return nil, res.Error
    }
    if res.RowsAffected == 0 {
      return nil, gorm.ErrRecordNotFound
    }
  }

  var result types.Batch
  if err := transaction.WithContext(ctx).
    Preload("Commodity").
    Preload("OwnerCompany").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (br *batchRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  res := transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Batch{})
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  return nil
}

func (br *batchRepo) scoped(ctx context.Context, transaction *gorm.DB, companyID *uuid.UUID) *gorm.DB {
  query := transaction.WithContext(ctx).Model(&types.Batch{})
  if companyID != nil {
    query = query.Where("owner_company_id = ?", *companyID)
  }
  return query
}

func (br *batchRepo) Count(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  var count int64
  if err := br.scoped(ctx, transaction, companyID).Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (br *batchRepo) CountByStatus(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID) ([]BatchStatusCount, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  var rows []BatchStatusCount
  if err := br.scoped(ctx, transaction, companyID).
    Select("status, count(*) AS n").
    Group("status").
    Scan(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (br *batchRepo) CountWithStatus(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, status types.BatchStatus) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  var count int64
  if err := br.scoped(ctx, transaction, companyID).
    Where("status = ?", status).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (br *batchRepo) CountDistinctCommodities(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  var count int64
  if err := br.scoped(ctx, transaction, companyID).
    Distinct("commodity_id").
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
