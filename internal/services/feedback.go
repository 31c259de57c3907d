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

type FeedbackService interface {
  Create(ctx context.Context, feedback *types.Feedback) (*types.Feedback, error)
  List(ctx context.Context, page types.PageParams, filter repos.FeedbackFilter) ([]*types.Feedback, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Feedback, error)
}

type feedbackService struct {
  db           *gorm.DB
  log          *logger.Logger
  feedbackRepo repos.FeedbackRepo
  batchRepo    repos.BatchRepo
}

func NewFeedbackService(db *gorm.DB, log *logger.Logger, feedbackRepo repos.FeedbackRepo, batchRepo repos.BatchRepo) FeedbackService {
  return &feedbackService{
    db:           db,
    log:          log.With("service", "FeedbackService"),
    feedbackRepo: feedbackRepo,
    batchRepo:    batchRepo,
  }
}

func (fs *feedbackService) Create(ctx context.Context, feedback *types.Feedback) (*types.Feedback, error) {
  if feedback.BatchID != nil {
    if _, err := fs.batchRepo.GetByID(ctx, nil, *feedback.BatchID); err != nil {
      if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", *feedback.BatchID))
      }
      return nil, fmt.Errorf("failed to look up batch: %w", err)
    }
  }

  feedback.ID = uuid.New()
  created, err := fs.feedbackRepo.Create(ctx, nil, feedback)
  if err != nil {
    return nil, fmt.Errorf("failed to create feedback: %w", err)
  }
  fs.log.Info("feedback recorded", "feedback_id", created.ID, "feedback_type", created.FeedbackType)
  return created, nil
}

func (fs *feedbackService) List(ctx context.Context, page types.PageParams, filter repos.FeedbackFilter) ([]*types.Feedback, types.Pagination, error) {
  feedback, total, err := fs.feedbackRepo.List(ctx, nil, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list feedback: %w", err)
  }
  return feedback, types.NewPagination(page.Page, page.Limit, total), nil
}

func (fs *feedbackService) GetByID(ctx context.Context, id uuid.UUID) (*types.Feedback, error) {
  feedback, err := fs.feedbackRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("FEEDBACK_NOT_FOUND", fmt.Errorf("feedback %s not found", id))
    }
    return nil, fmt.Errorf("failed to get feedback: %w", err)
  }
  return feedback, nil
}
