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

// BatchSummary is the aggregate shape behind the batch stats endpoint.
type BatchSummary struct {
  Total       int64                       `json:"total"`
  ByStatus    map[types.BatchStatus]int64 `json:"byStatus"`
  ByCommodity int64                       `json:"byCommodity"`
}

type BatchService interface {
  Create(ctx context.Context, batch *types.Batch) (*types.Batch, error)
  List(ctx context.Context, page types.PageParams, filter repos.BatchFilter) ([]*types.Batch, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Batch, error)
  Update(ctx context.Context, id uuid.UUID, patch types.BatchPatch) (*types.Batch, error)
  Delete(ctx context.Context, id uuid.UUID) error
  Summary(ctx context.Context, companyID *uuid.UUID) (*BatchSummary, error)
}

type batchService struct {
  db            *gorm.DB
  log           *logger.Logger
  batchRepo     repos.BatchRepo
  commodityRepo repos.CommodityRepo
  companyRepo   repos.CompanyRepo
  qualityRepo   repos.QualityRepo
}

func NewBatchService(
  db *gorm.DB,
  log *logger.Logger,
  batchRepo repos.BatchRepo,
  commodityRepo repos.CommodityRepo,
  companyRepo repos.CompanyRepo,
  qualityRepo repos.QualityRepo,
) BatchService {
  return &batchService{
    db:            db,
    log:           log.With("service", "BatchService"),
    batchRepo:     batchRepo,
    commodityRepo: commodityRepo,
    companyRepo:   companyRepo,
    qualityRepo:   qualityRepo,
  }
}

func (bs *batchService) Create(ctx context.Context, batch *types.Batch) (*types.Batch, error) {
  if _, err := bs.commodityRepo.GetByID(ctx, nil, batch.CommodityID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("COMMODITY_NOT_FOUND", fmt.Errorf("commodity %s does not exist", batch.CommodityID))
    }
    return nil, fmt.Errorf("failed to look up commodity: %w", err)
  }
  if _, err := bs.companyRepo.GetByID(ctx, nil, batch.OwnerCompanyID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("COMPANY_NOT_FOUND", fmt.Errorf("company %s does not exist", batch.OwnerCompanyID))
    }
    return nil, fmt.Errorf("failed to look up company: %w", err)
  }

  batch.ID = uuid.New()
  if batch.Status == "" {
    batch.Status = types.BatchStatusActive
  }
  created, err := bs.batchRepo.Create(ctx, nil, batch)
  if err != nil {
    return nil, fmt.Errorf("failed to create batch: %w", err)
  }
  bs.log.Info("batch created", "batch_id", created.ID, "commodity_id", created.CommodityID)
  return created, nil
}

func (bs *batchService) List(ctx context.Context, page types.PageParams, filter repos.BatchFilter) ([]*types.Batch, types.Pagination, error) {
  batches, total, err := bs.batchRepo.List(ctx, nil, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list batches: %w", err)
  }
  if err := bs.attachLatest(ctx, batches); err != nil {
    return nil, types.Pagination{}, err
  }
  return batches, types.NewPagination(page.Page, page.Limit, total), nil
}

// attachLatest fills each batch with its newest score and prediction so list
// rows carry current freshness context without a per-row query.
func (bs *batchService) attachLatest(ctx context.Context, batches []*types.Batch) error {
  if len(batches) == 0 {
    return nil
  }
  ids := make([]uuid.UUID, 0, len(batches))
  for _, b := range batches {
    ids = append(ids, b.ID)
  }

  scores, err := bs.qualityRepo.LatestScoresByBatchIDs(ctx, nil, ids)
  if err != nil {
    return fmt.Errorf("failed to load latest quality scores: %w", err)
  }
  predictions, err := bs.qualityRepo.LatestPredictionsByBatchIDs(ctx, nil, ids)
  if err != nil {
    return fmt.Errorf("failed to load latest predictions: %w", err)
  }

  for _, b := range batches {
    if s, ok := scores[b.ID]; ok {
      b.QualityScores = []*types.QualityScore{s}
    }
    if p, ok := predictions[b.ID]; ok {
      b.ShelfLifePredictions = []*types.ShelfLifePrediction{p}
    }
  }
  return nil
}

func (bs *batchService) GetByID(ctx context.Context, id uuid.UUID) (*types.Batch, error) {
  batch, err := bs.batchRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("BATCH_NOT_FOUND", fmt.Errorf("batch %s not found", id))
    }
    return nil, fmt.Errorf("failed to get batch: %w", err)
  }
  return batch, nil
}

func (bs *batchService) Update(ctx context.Context, id uuid.UUID, patch types.BatchPatch) (*types.Batch, error) {
  updated, err := bs.batchRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("BATCH_NOT_FOUND", fmt.Errorf("batch %s not found", id))
    }
    return nil, fmt.Errorf("failed to update batch: %w", err)
  }
  return updated, nil
}

func (bs *batchService) Delete(ctx context.Context, id uuid.UUID) error {
  if err := bs.batchRepo.Delete(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apierr.NotFound("BATCH_NOT_FOUND", fmt.Errorf("batch %s not found", id))
    }
    return fmt.Errorf("failed to delete batch: %w", err)
  }
  bs.log.Info("batch deleted", "batch_id", id)
  return nil
}

func (bs *batchService) Summary(ctx context.Context, companyID *uuid.UUID) (*BatchSummary, error) {
  total, err := bs.batchRepo.Count(ctx, nil, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to count batches: %w", err)
  }
  statusRows, err := bs.batchRepo.CountByStatus(ctx, nil, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to count batches by status: %w", err)
  }
  commodities, err := bs.batchRepo.CountDistinctCommodities(ctx, nil, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to count commodities: %w", err)
  }

  byStatus := map[types.BatchStatus]int64{}
  for _, r := range statusRows {
    byStatus[r.Status] = r.N
  }
  return &BatchSummary{
    Total:       total,
    ByStatus:    byStatus,
    ByCommodity: commodities,
  }, nil
}
