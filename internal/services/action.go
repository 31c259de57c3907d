package services

import (
  "context"
  "errors"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

// ActionStats summarizes decision activity over a trailing window. ByStatus
// only carries keys that actually occurred in the window.
type ActionStats struct {
  Total    int64                       `json:"total"`
  ByStatus map[types.ActionTaken]int64 `json:"byStatus"`
  Recent   []*types.Action             `json:"recent"`
}

type ActionService interface {
  Create(ctx context.Context, action *types.Action) (*types.Action, error)
  List(ctx context.Context, page types.PageParams, filter repos.ActionFilter) ([]*types.Action, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Action, error)
  Update(ctx context.Context, id uuid.UUID, patch types.ActionPatch) (*types.Action, error)
  Stats(ctx context.Context, days int, companyID *uuid.UUID) (*ActionStats, error)
}

type actionService struct {
  db                 *gorm.DB
  log                *logger.Logger
  actionRepo         repos.ActionRepo
  recommendationRepo repos.RecommendationRepo
}

func NewActionService(
  db *gorm.DB,
  log *logger.Logger,
  actionRepo repos.ActionRepo,
  recommendationRepo repos.RecommendationRepo,
) ActionService {
  return &actionService{
    db:                 db,
    log:                log.With("service", "ActionService"),
    actionRepo:         actionRepo,
    recommendationRepo: recommendationRepo,
  }
}

func (as *actionService) Create(ctx context.Context, action *types.Action) (*types.Action, error) {
  if _, err := as.recommendationRepo.GetByID(ctx, nil, action.RecommendationID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("RECOMMENDATION_NOT_FOUND", fmt.Errorf("recommendation %s does not exist", action.RecommendationID))
    }
    return nil, fmt.Errorf("failed to look up recommendation: %w", err)
  }

  action.ID = uuid.New()
  if action.ActionTaken == "" {
    action.ActionTaken = types.ActionTakenPending
  }
  // Every recorded decision is stamped at intake, including PENDING ones.
  if action.ExecutedAt == nil {
    now := time.Now().UTC()
    action.ExecutedAt = &now
  }

  created, err := as.actionRepo.Create(ctx, nil, action)
  if err != nil {
    return nil, fmt.Errorf("failed to create action: %w", err)
  }
  as.log.Info("action recorded",
    "action_id", created.ID,
    "recommendation_id", created.RecommendationID,
    "action_taken", created.ActionTaken)
  return created, nil
}

func (as *actionService) List(ctx context.Context, page types.PageParams, filter repos.ActionFilter) ([]*types.Action, types.Pagination, error) {
  actions, total, err := as.actionRepo.List(ctx, nil, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list actions: %w", err)
  }
  return actions, types.NewPagination(page.Page, page.Limit, total), nil
}

func (as *actionService) GetByID(ctx context.Context, id uuid.UUID) (*types.Action, error) {
  action, err := as.actionRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("ACTION_NOT_FOUND", fmt.Errorf("action %s not found", id))
    }
    return nil, fmt.Errorf("failed to get action: %w", err)
  }
  return action, nil
}

func (as *actionService) Update(ctx context.Context, id uuid.UUID, patch types.ActionPatch) (*types.Action, error) {
  updated, err := as.actionRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("ACTION_NOT_FOUND", fmt.Errorf("action %s not found", id))
    }
    return nil, fmt.Errorf("failed to update action: %w", err)
  }
  return updated, nil
}

func (as *actionService) Stats(ctx context.Context, days int, companyID *uuid.UUID) (*ActionStats, error) {
  if days <= 0 {
    days = 30
  }
  since := time.Now().UTC().AddDate(0, 0, -days)

  total, err := as.actionRepo.CountSince(ctx, nil, since, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to count actions: %w", err)
  }
  grouped, err := as.actionRepo.GroupByActionTakenSince(ctx, nil, since, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to group actions: %w", err)
  }
  recent, err := as.actionRepo.RecentSince(ctx, nil, since, companyID, 10)
  if err != nil {
    return nil, fmt.Errorf("failed to load recent actions: %w", err)
  }

  byStatus := map[types.ActionTaken]int64{}
  for _, g := range grouped {
    byStatus[g.ActionTaken] = g.N
  }
  return &ActionStats{
    Total:    total,
    ByStatus: byStatus,
    Recent:   recent,
  }, nil
}
