package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type ActionFilter struct {
  UserID           *uuid.UUID
  RecommendationID *uuid.UUID
  ActionTaken      *types.ActionTaken
  // CompanyID restricts to actions whose user belongs to the company.
  CompanyID *uuid.UUID
}

type ActionTakenCount struct {
  ActionTaken types.ActionTaken
  N           int64
}

type ActionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, action *types.Action) (*types.Action, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter ActionFilter) ([]*types.Action, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Action, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.ActionPatch) (*types.Action, error)
  CountSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) (int64, error)
  GroupByActionTakenSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]ActionTakenCount, error)
  RecentSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID, limit int) ([]*types.Action, error)
}

type actionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewActionRepo(db *gorm.DB, baseLog *logger.Logger) ActionRepo {
  return &actionRepo{db: db, log: baseLog.With("repo", "ActionRepo")}
}

func (ar *actionRepo) Create(ctx context.Context, tx *gorm.DB, action *types.Action) (*types.Action, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if err := transaction.WithContext(ctx).Create(action).Error; err != nil {
    return nil, err
  }

  var result types.Action
  if err := transaction.WithContext(ctx).
    Preload("Recommendation.Batch.Commodity").
    Preload("User").
    Where("id = ?", action.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (ar *actionRepo) applyFilter(query *gorm.DB, filter ActionFilter) *gorm.DB {
  if filter.UserID != nil {
    query = query.Where("action.user_id = ?", *filter.UserID)
  }
  if filter.RecommendationID != nil {
    query = query.Where("action.recommendation_id = ?", *filter.RecommendationID)
  }
  if filter.ActionTaken != nil {
    query = query.Where("action.action_taken = ?", *filter.ActionTaken)
  }
  if filter.CompanyID != nil {
    query = query.
      Joins(`JOIN "user" ON "user".id = "action".user_id`).
      Where(`"user".company_id = ?`, *filter.CompanyID)
  }
  return query
}

func (ar *actionRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter ActionFilter) ([]*types.Action, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  query := ar.applyFilter(transaction.WithContext(ctx).Model(&types.Action{}), filter)

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Action
  if err := query.
    Preload("Recommendation.Batch.Commodity").
    Preload("User").
    Order("action.created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (ar *actionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Action, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var result types.Action
  if err := transaction.WithContext(ctx).
    Preload("Recommendation.Batch.Commodity").
    Preload("Recommendation.Batch.OwnerCompany").
    Preload("User.Company").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (ar *actionRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.ActionPatch) (*types.Action, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  updates := map[string]interface{}{}
  if patch.ActionTaken != nil {
    updates["action_taken"] = *patch.ActionTaken
    // executedAt tracks the moment the decision last changed.
    updates["executed_at"] = time.Now().UTC()
  }
  if patch.Notes != nil {
    updates["notes"] = *patch.Notes
  }
  if len(updates) > 0 {
    res := transaction.WithContext(ctx).
      Model(&types.Action{}).
      Where("id = ?", id).
      Updates(updates)
    if res.Error != nil {
      return nil, res.Error
    }
    if res.RowsAffected == 0 {
      return nil, gorm.ErrRecordNotFound
    }
  }

  var result types.Action
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (ar *actionRepo) windowed(ctx context.Context, transaction *gorm.DB, since time.Time, companyID *uuid.UUID) *gorm.DB {
  query := transaction.WithContext(ctx).
    Model(&types.Action{}).
    Where("action.created_at >= ?", since)
  if companyID != nil {
    query = query.
      Joins(`JOIN "user" ON "user".id = "action".user_id`).
      Where(`"user".company_id = ?`, *companyID)
  }
  return query
}

func (ar *actionRepo) CountSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var count int64
  if err := ar.windowed(ctx, transaction, since, companyID).Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (ar *actionRepo) GroupByActionTakenSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]ActionTakenCount, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var rows []ActionTakenCount
  if err := ar.windowed(ctx, transaction, since, companyID).
    Select("action.action_taken, count(*) AS n").
    Group("action.action_taken").
    Scan(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (ar *actionRepo) RecentSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID, limit int) ([]*types.Action, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var results []*types.Action
  if err := ar.windowed(ctx, transaction, since, companyID).
    Preload("Recommendation.Batch.Commodity").
    Preload("User").
    Order("action.created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
