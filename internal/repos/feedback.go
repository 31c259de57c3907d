package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type FeedbackFilter struct {
  UserID       *uuid.UUID
  BatchID      *uuid.UUID
  FeedbackType *string
}

type FeedbackRepo interface {
  Create(ctx context.Context, tx *gorm.DB, feedback *types.Feedback) (*types.Feedback, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter FeedbackFilter) ([]*types.Feedback, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Feedback, error)
}

type feedbackRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) FeedbackRepo {
  return &feedbackRepo{db: db, log: baseLog.With("repo", "FeedbackRepo")}
}

func (fr *feedbackRepo) Create(ctx context.Context, tx *gorm.DB, feedback *types.Feedback) (*types.Feedback, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  if err := transaction.WithContext(ctx).Create(feedback).Error; err != nil {
    return nil, err
  }
  return fr.GetByID(ctx, transaction, feedback.ID)
}

func (fr *feedbackRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter FeedbackFilter) ([]*types.Feedback, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Feedback{})
  if filter.UserID != nil {
    query = query.Where("user_id = ?", *filter.UserID)
  }
  if filter.BatchID != nil {
    query = query.Where("batch_id = ?", *filter.BatchID)
  }
  if filter.FeedbackType != nil {
    query = query.Where("feedback_type = ?", *filter.FeedbackType)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Feedback
  if err := query.
    Preload("User").
    Preload("Batch.Commodity").
    Order("created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (fr *feedbackRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Feedback, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  var result types.Feedback
  if err := transaction.WithContext(ctx).
    Preload("User").
    Preload("Batch.Commodity").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}
