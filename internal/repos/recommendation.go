package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RecommendationFilter struct {
  BatchID            *uuid.UUID
  Priority           *types.Priority
  RecommendationType *types.RecommendationType
  CompanyID          *uuid.UUID
}

type RecommendationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rec *types.Recommendation) (*types.Recommendation, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter RecommendationFilter) ([]*types.Recommendation, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recommendation, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.RecommendationPatch) (*types.Recommendation, error)
  ListByPriority(ctx context.Context, tx *gorm.DB, priority types.Priority, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error)
  ListCritical(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error)
}

// priorityRankSQL ranks severities CRITICAL > WARNING > INFO. The column is
// varchar, where plain DESC would sort WARNING first alphabetically.
const priorityRankSQL = "CASE recommendation.priority WHEN 'CRITICAL' THEN 3 WHEN 'WARNING' THEN 2 ELSE 1 END"

type recommendationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepo {
  return &recommendationRepo{db: db, log: baseLog.With("repo", "RecommendationRepo")}
}

func (rr *recommendationRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.Recommendation) (*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if err := transaction.WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }

  var result types.Recommendation
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Preload("Actions.User").
    Where("id = ?", rec.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *recommendationRepo) applyFilter(query *gorm.DB, filter RecommendationFilter) *gorm.DB {
  if filter.BatchID != nil {
    query = query.Where("recommendation.batch_id = ?", *filter.BatchID)
  }
  if filter.Priority != nil {
    query = query.Where("recommendation.priority = ?", *filter.Priority)
  }
  if filter.RecommendationType != nil {
    query = query.Where("recommendation.recommendation_type = ?", *filter.RecommendationType)
  }
  if filter.CompanyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "recommendation".batch_id`).
      Where(`"batch".owner_company_id = ?`, *filter.CompanyID)
  }
  return query
}

func (rr *recommendationRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter RecommendationFilter) ([]*types.Recommendation, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  query := rr.applyFilter(transaction.WithContext(ctx).Model(&types.Recommendation{}), filter)

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Recommendation
  if err := query.
    Preload("Batch.Commodity").
    Preload("Batch.OwnerCompany").
    Preload("Actions", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at DESC")
    }).
    Preload("Actions.User").
    Order(priorityRankSQL + " DESC, recommendation.created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (rr *recommendationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var result types.Recommendation
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Preload("Batch.OwnerCompany").
    Preload("Actions", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at DESC")
    }).
    Preload("Actions.User").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *recommendationRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.RecommendationPatch) (*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  updates := map[string]interface{}{}
  if patch.Explanation != nil {
    updates["explanation"] = *patch.Explanation
  }
  if patch.Priority != nil {
    updates["priority"] = *patch.Priority
  }
  if len(updates) > 0 {
    res := transaction.WithContext(ctx).
      Model(&types.Recommendation{}).
      Where("id = ?", id).
      Updates(updates)
    if res.Error != nil {
      return nil, res.Error
    }
    if res.RowsAffected == 0 {
      return nil, gorm.ErrRecordNotFound
    }
  }
  return rr.GetByID(ctx, transaction, id)
}

func (rr *recommendationRepo) ListByPriority(ctx context.Context, tx *gorm.DB, priority types.Priority, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.Recommendation{}).
    Where("recommendation.priority = ?", priority)
  if companyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "recommendation".batch_id`).
      Where(`"batch".owner_company_id = ?`, *companyID)
  }

  var results []*types.Recommendation
  if err := query.
    Preload("Batch.Commodity").
    Preload("Actions", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at DESC")
    }).
    Order("recommendation.created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *recommendationRepo) ListCritical(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error) {
  return rr.ListByPriority(ctx, tx, types.PriorityCritical, companyID, limit)
}
