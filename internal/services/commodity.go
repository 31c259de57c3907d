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

type CommodityService interface {
  Create(ctx context.Context, commodity *types.Commodity) (*types.Commodity, error)
  List(ctx context.Context, page types.PageParams, category *types.CommodityCategory) ([]*types.Commodity, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Commodity, error)
  Update(ctx context.Context, id uuid.UUID, patch types.CommodityPatch) (*types.Commodity, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type commodityService struct {
  db            *gorm.DB
  log           *logger.Logger
  commodityRepo repos.CommodityRepo
}

func NewCommodityService(db *gorm.DB, log *logger.Logger, commodityRepo repos.CommodityRepo) CommodityService {
  return &commodityService{
    db:            db,
    log:           log.With("service", "CommodityService"),
    commodityRepo: commodityRepo,
  }
}

func (cs *commodityService) Create(ctx context.Context, commodity *types.Commodity) (*types.Commodity, error) {
  commodity.ID = uuid.New()
  created, err := cs.commodityRepo.Create(ctx, nil, commodity)
  if err != nil {
    return nil, fmt.Errorf("failed to create commodity: %w", err)
  }
  cs.log.Info("commodity created", "commodity_id", created.ID, "category", created.Category)
  return created, nil
}

func (cs *commodityService) List(ctx context.Context, page types.PageParams, category *types.CommodityCategory) ([]*types.Commodity, types.Pagination, error) {
  commodities, total, err := cs.commodityRepo.List(ctx, nil, page, category)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list commodities: %w", err)
  }
  if err := cs.commodityRepo.AttachBatchCounts(ctx, nil, commodities); err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to attach batch counts: %w", err)
  }
  return commodities, types.NewPagination(page.Page, page.Limit, total), nil
}

func (cs *commodityService) GetByID(ctx context.Context, id uuid.UUID) (*types.Commodity, error) {
  commodity, err := cs.commodityRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("COMMODITY_NOT_FOUND", fmt.Errorf("commodity %s not found", id))
    }
    return nil, fmt.Errorf("failed to get commodity: %w", err)
  }
  if err := cs.commodityRepo.AttachBatchCounts(ctx, nil, []*types.Commodity{commodity}); err != nil {
    return nil, fmt.Errorf("failed to attach batch counts: %w", err)
  }
  return commodity, nil
}

func (cs *commodityService) Update(ctx context.Context, id uuid.UUID, patch types.CommodityPatch) (*types.Commodity, error) {
  updated, err := cs.commodityRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("COMMODITY_NOT_FOUND", fmt.Errorf("commodity %s not found", id))
    }
    return nil, fmt.Errorf("failed to update commodity: %w", err)
  }
  return updated, nil
}

func (cs *commodityService) Delete(ctx context.Context, id uuid.UUID) error {
  if err := cs.commodityRepo.Delete(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apierr.NotFound("COMMODITY_NOT_FOUND", fmt.Errorf("commodity %s not found", id))
    }
    return fmt.Errorf("failed to delete commodity: %w", err)
  }
  cs.log.Info("commodity deleted", "commodity_id", id)
  return nil
}
