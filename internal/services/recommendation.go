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

type RecommendationService interface {
  Create(ctx context.Context, rec *types.Recommendation) (*types.Recommendation, error)
  List(ctx context.Context, page types.PageParams, filter repos.RecommendationFilter) ([]*types.Recommendation, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Recommendation, error)
  Update(ctx context.Context, id uuid.UUID, patch types.RecommendationPatch) (*types.Recommendation, error)
  ListByPriority(ctx context.Context, priority types.Priority, companyID *uuid.UUID) ([]*types.Recommendation, error)
  ListCritical(ctx context.Context, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error)
}

type recommendationService struct {
  db                 *gorm.DB
  log                *logger.Logger
  recommendationRepo repos.RecommendationRepo
  batchRepo          repos.BatchRepo
}

func NewRecommendationService(
  db *gorm.DB,
  log *logger.Logger,
  recommendationRepo repos.RecommendationRepo,
  batchRepo repos.BatchRepo,
) RecommendationService {
  return &recommendationService{
    db:                 db,
    log:                log.With("service", "RecommendationService"),
    recommendationRepo: recommendationRepo,
    batchRepo:          batchRepo,
  }
}

func (rs *recommendationService) Create(ctx context.Context, rec *types.Recommendation) (*types.Recommendation, error) {
  if _, err := rs.batchRepo.GetByID(ctx, nil, rec.BatchID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", rec.BatchID))
    }
    return nil, fmt.Errorf("failed to look up batch: %w", err)
  }

  rec.ID = uuid.New()
  created, err := rs.recommendationRepo.Create(ctx, nil, rec)
  if err != nil {
    return nil, fmt.Errorf("failed to create recommendation: %w", err)
  }
  rs.log.Info("recommendation created",
    "recommendation_id", created.ID,
    "batch_id", created.BatchID,
    "priority", created.Priority)
  return created, nil
}

func (rs *recommendationService) List(ctx context.Context, page types.PageParams, filter repos.RecommendationFilter) ([]*types.Recommendation, types.Pagination, error) {
  recs, total, err := rs.recommendationRepo.List(ctx, nil, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list recommendations: %w", err)
  }
  return recs, types.NewPagination(page.Page, page.Limit, total), nil
}

func (rs *recommendationService) GetByID(ctx context.Context, id uuid.UUID) (*types.Recommendation, error) {
  rec, err := rs.recommendationRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("RECOMMENDATION_NOT_FOUND", fmt.Errorf("recommendation %s not found", id))
    }
    return nil, fmt.Errorf("failed to get recommendation: %w", err)
  }
  return rec, nil
}

func (rs *recommendationService) Update(ctx context.Context, id uuid.UUID, patch types.RecommendationPatch) (*types.Recommendation, error) {
  updated, err := rs.recommendationRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("RECOMMENDATION_NOT_FOUND", fmt.Errorf("recommendation %s not found", id))
    }
    return nil, fmt.Errorf("failed to update recommendation: %w", err)
  }
  return updated, nil
}

func (rs *recommendationService) ListByPriority(ctx context.Context, priority types.Priority, companyID *uuid.UUID) ([]*types.Recommendation, error) {
  recs, err := rs.recommendationRepo.ListByPriority(ctx, nil, priority, companyID, 50)
  if err != nil {
    return nil, fmt.Errorf("failed to list recommendations by priority: %w", err)
  }
  return recs, nil
}

func (rs *recommendationService) ListCritical(ctx context.Context, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error) {
  recs, err := rs.recommendationRepo.ListCritical(ctx, nil, companyID, limit)
  if err != nil {
    return nil, fmt.Errorf("failed to list critical recommendations: %w", err)
  }
  return recs, nil
}
