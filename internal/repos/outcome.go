package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type OutcomeFilter struct {
  BatchID   *uuid.UUID
  CompanyID *uuid.UUID
  StartDate *time.Time
  EndDate   *time.Time
}

type OutcomeRepo interface {
  Create(ctx context.Context, tx *gorm.DB, outcome *types.Outcome) (*types.Outcome, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter OutcomeFilter) ([]*types.Outcome, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Outcome, error)
  ListSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.Outcome, error)
}

type outcomeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewOutcomeRepo(db *gorm.DB, baseLog *logger.Logger) OutcomeRepo {
  return &outcomeRepo{db: db, log: baseLog.With("repo", "OutcomeRepo")}
}

func (or *outcomeRepo) Create(ctx context.Context, tx *gorm.DB, outcome *types.Outcome) (*types.Outcome, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  if err := transaction.WithContext(ctx).Create(outcome).Error; err != nil {
    return nil, err
  }
  return or.GetByID(ctx, transaction, outcome.ID)
}

func (or *outcomeRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter OutcomeFilter) ([]*types.Outcome, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  query := transaction.WithContext(ctx).Model(&types.Outcome{})
  if filter.BatchID != nil {
    query = query.Where("outcome.batch_id = ?", *filter.BatchID)
  }
  if filter.CompanyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "outcome".batch_id`).
      Where(`"batch".owner_company_id = ?`, *filter.CompanyID)
  }
  if filter.StartDate != nil {
    query = query.Where("outcome.recorded_at >= ?", *filter.StartDate)
  }
  if filter.EndDate != nil {
    query = query.Where("outcome.recorded_at <= ?", *filter.EndDate)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Outcome
  if err := query.
    Preload("Batch.Commodity").
    Order("outcome.recorded_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (or *outcomeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Outcome, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  var result types.Outcome
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Preload("Batch.OwnerCompany").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (or *outcomeRepo) ListSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.Outcome, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.Outcome{}).
    Where("outcome.recorded_at >= ?", since)
  if companyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "outcome".batch_id`).
      Where(`"batch".owner_company_id = ?`, *companyID)
  }

  var results []*types.Outcome
  if err := query.
    Order("outcome.recorded_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
