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

type LogisticsService interface {
  CreateRoute(ctx context.Context, route *types.Route) (*types.Route, error)
  ListRoutes(ctx context.Context, page types.PageParams, companyID *uuid.UUID) ([]*types.Route, types.Pagination, error)
  GetRouteByID(ctx context.Context, id uuid.UUID) (*types.Route, error)
  AssignBatch(ctx context.Context, batchRoute *types.BatchRoute) (*types.BatchRoute, error)
  UpdateBatchRoute(ctx context.Context, id uuid.UUID, patch types.BatchRoutePatch) (*types.BatchRoute, error)
  ListBatchRoutes(ctx context.Context, batchID uuid.UUID, status *types.BatchRouteStatus) ([]*types.BatchRoute, error)
  ListActiveBatchRoutes(ctx context.Context, page types.PageParams, companyID *uuid.UUID) ([]*types.BatchRoute, types.Pagination, error)
}

type logisticsService struct {
  db             *gorm.DB
  log            *logger.Logger
  routeRepo      repos.RouteRepo
  batchRouteRepo repos.BatchRouteRepo
  batchRepo      repos.BatchRepo
}

func NewLogisticsService(
  db *gorm.DB,
  log *logger.Logger,
  routeRepo repos.RouteRepo,
  batchRouteRepo repos.BatchRouteRepo,
  batchRepo repos.BatchRepo,
) LogisticsService {
  return &logisticsService{
    db:             db,
    log:            log.With("service", "LogisticsService"),
    routeRepo:      routeRepo,
    batchRouteRepo: batchRouteRepo,
    batchRepo:      batchRepo,
  }
}

func (ls *logisticsService) CreateRoute(ctx context.Context, route *types.Route) (*types.Route, error) {
  route.ID = uuid.New()
  created, err := ls.routeRepo.Create(ctx, nil, route)
  if err != nil {
    return nil, fmt.Errorf("failed to create route: %w", err)
  }
  ls.log.Info("route created", "route_id", created.ID)
  return created, nil
}

func (ls *logisticsService) ListRoutes(ctx context.Context, page types.PageParams, companyID *uuid.UUID) ([]*types.Route, types.Pagination, error) {
  routes, total, err := ls.routeRepo.List(ctx, nil, page, companyID)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list routes: %w", err)
  }
  if err := ls.routeRepo.AttachBatchRouteCounts(ctx, nil, routes); err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to attach batch route counts: %w", err)
  }
  return routes, types.NewPagination(page.Page, page.Limit, total), nil
}

func (ls *logisticsService) GetRouteByID(ctx context.Context, id uuid.UUID) (*types.Route, error) {
  route, err := ls.routeRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("ROUTE_NOT_FOUND", fmt.Errorf("route %s not found", id))
    }
    return nil, fmt.Errorf("failed to get route: %w", err)
  }
  return route, nil
}

func (ls *logisticsService) AssignBatch(ctx context.Context, batchRoute *types.BatchRoute) (*types.BatchRoute, error) {
  if _, err := ls.batchRepo.GetByID(ctx, nil, batchRoute.BatchID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", batchRoute.BatchID))
    }
    return nil, fmt.Errorf("failed to look up batch: %w", err)
  }
  if _, err := ls.routeRepo.GetByID(ctx, nil, batchRoute.RouteID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("ROUTE_NOT_FOUND", fmt.Errorf("route %s does not exist", batchRoute.RouteID))
    }
    return nil, fmt.Errorf("failed to look up route: %w", err)
  }

  batchRoute.ID = uuid.New()
  if batchRoute.Status == "" {
    batchRoute.Status = types.BatchRouteStatusPlanned
  }
  created, err := ls.batchRouteRepo.Create(ctx, nil, batchRoute)
  if err != nil {
    return nil, fmt.Errorf("failed to assign batch to route: %w", err)
  }
  ls.log.Info("batch assigned to route",
    "batch_route_id", created.ID,
    "batch_id", created.BatchID,
    "route_id", created.RouteID)
  return created, nil
}

func (ls *logisticsService) UpdateBatchRoute(ctx context.Context, id uuid.UUID, patch types.BatchRoutePatch) (*types.BatchRoute, error) {
  updated, err := ls.batchRouteRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("BATCH_ROUTE_NOT_FOUND", fmt.Errorf("batch route %s not found", id))
    }
    return nil, fmt.Errorf("failed to update batch route: %w", err)
  }
  return updated, nil
}

func (ls *logisticsService) ListBatchRoutes(ctx context.Context, batchID uuid.UUID, status *types.BatchRouteStatus) ([]*types.BatchRoute, error) {
  batchRoutes, err := ls.batchRouteRepo.ListByBatch(ctx, nil, batchID, status)
  if err != nil {
    return nil, fmt.Errorf("failed to list batch routes: %w", err)
  }
  return batchRoutes, nil
}

func (ls *logisticsService) ListActiveBatchRoutes(ctx context.Context, page types.PageParams, companyID *uuid.UUID) ([]*types.BatchRoute, types.Pagination, error) {
  batchRoutes, total, err := ls.batchRouteRepo.ListActive(ctx, nil, page, companyID)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list active batch routes: %w", err)
  }
  return batchRoutes, types.NewPagination(page.Page, page.Limit, total), nil
}
