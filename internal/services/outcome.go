package services

import (
  "context"
  "errors"
  "fmt"
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

// OutcomeStats aggregates realized dispositions over a trailing window.
// WasteRate is a percentage; it is 0 when nothing was sold or wasted.
type OutcomeStats struct {
  TotalSold    float64 `json:"totalSold"`
  TotalWasted  float64 `json:"totalWasted"`
  TotalRevenue float64 `json:"totalRevenue"`
  WasteRate    float64 `json:"wasteRate"`
  Count        int     `json:"count"`
}

type OutcomeService interface {
  Create(ctx context.Context, outcome *types.Outcome) (*types.Outcome, error)
  List(ctx context.Context, page types.PageParams, filter repos.OutcomeFilter) ([]*types.Outcome, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Outcome, error)
  Stats(ctx context.Context, days int, companyID *uuid.UUID) (*OutcomeStats, error)
}

type outcomeService struct {
  db          *gorm.DB
  log         *logger.Logger
  outcomeRepo repos.OutcomeRepo
  batchRepo   repos.BatchRepo
}

func NewOutcomeService(db *gorm.DB, log *logger.Logger, outcomeRepo repos.OutcomeRepo, batchRepo repos.BatchRepo) OutcomeService {
  return &outcomeService{
    db:          db,
    log:         log.With("service", "OutcomeService"),
    outcomeRepo: outcomeRepo,
    batchRepo:   batchRepo,
  }
}

func (os *outcomeService) Create(ctx context.Context, outcome *types.Outcome) (*types.Outcome, error) {
  if _, err := os.batchRepo.GetByID(ctx, nil, outcome.BatchID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", outcome.BatchID))
    }
    return nil, fmt.Errorf("failed to look up batch: %w", err)
  }

  outcome.ID = uuid.New()
  if outcome.RecordedAt.IsZero() {
    outcome.RecordedAt = time.Now().UTC()
  }
  created, err := os.outcomeRepo.Create(ctx, nil, outcome)
  if err != nil {
    return nil, fmt.Errorf("failed to create outcome: %w", err)
  }
  os.log.Info("outcome recorded", "outcome_id", created.ID, "batch_id", created.BatchID)
  return created, nil
}

func (os *outcomeService) List(ctx context.Context, page types.PageParams, filter repos.OutcomeFilter) ([]*types.Outcome, types.Pagination, error) {
  outcomes, total, err := os.outcomeRepo.List(ctx, nil, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list outcomes: %w", err)
  }
  return outcomes, types.NewPagination(page.Page, page.Limit, total), nil
}

func (os *outcomeService) GetByID(ctx context.Context, id uuid.UUID) (*types.Outcome, error) {
  outcome, err := os.outcomeRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("OUTCOME_NOT_FOUND", fmt.Errorf("outcome %s not found", id))
    }
    return nil, fmt.Errorf("failed to get outcome: %w", err)
  }
  return outcome, nil
}

func (os *outcomeService) Stats(ctx context.Context, days int, companyID *uuid.UUID) (*OutcomeStats, error) {
  if days <= 0 {
    days = 30
  }
  since := time.Now().UTC().AddDate(0, 0, -days)

  outcomes, err := os.outcomeRepo.ListSince(ctx, nil, since, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to load outcomes: %w", err)
  }
  return ComputeOutcomeStats(outcomes), nil
}

// ComputeOutcomeStats folds outcome rows into window totals. Null quantities
// count as zero; revenue is soldQty times avgSellPrice per row.
func ComputeOutcomeStats(outcomes []*types.Outcome) *OutcomeStats {
  sold := decimal.Zero
  wasted := decimal.Zero
  revenue := decimal.Zero

  for _, o := range outcomes {
    if o.SoldQty.Valid {
      sold = sold.Add(o.SoldQty.Decimal)
      if o.AvgSellPrice.Valid {
        revenue = revenue.Add(o.SoldQty.Decimal.Mul(o.AvgSellPrice.Decimal))
      }
    }
    if o.WastedQty.Valid {
      wasted = wasted.Add(o.WastedQty.Decimal)
    }
  }

  wasteRate := 0.0
  if total := sold.Add(wasted); total.IsPositive() {
    wasteRate = wasted.Div(total).InexactFloat64() * 100
  }

  return &OutcomeStats{
    TotalSold:    sold.InexactFloat64(),
    TotalWasted:  wasted.InexactFloat64(),
    TotalRevenue: revenue.InexactFloat64(),
    WasteRate:    wasteRate,
    Count:        len(outcomes),
  }
}
