package services

import (
  "context"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RetailService interface {
  CreateStore(ctx context.Context, store *types.Store) (*types.Store, error)
  ListStores(ctx context.Context, page types.PageParams, companyID *uuid.UUID) ([]*types.Store, types.Pagination, error)
  GetStoreByID(ctx context.Context, id uuid.UUID) (*types.Store, error)
  CreateInventory(ctx context.Context, inventory *types.RetailInventory) (*types.RetailInventory, error)
  ListInventory(ctx context.Context, page types.PageParams, filter repos.InventoryFilter) ([]*types.RetailInventory, types.Pagination, error)
  ListLowStock(ctx context.Context, storeID *uuid.UUID, threshold decimal.Decimal) ([]*types.RetailInventory, error)
  GetInventoryByID(ctx context.Context, id uuid.UUID) (*types.RetailInventory, error)
  UpdateStock(ctx context.Context, id uuid.UUID, stockQty decimal.Decimal) (*types.RetailInventory, error)
  CreatePricing(ctx context.Context, pricing *types.PricingRecommendation) (*types.PricingRecommendation, error)
  ListPricing(ctx context.Context, inventoryID uuid.UUID, limit int) ([]*types.PricingRecommendation, error)
}

type retailService struct {
  db          *gorm.DB
  log         *logger.Logger
  storeRepo   repos.StoreRepo
  retailRepo  repos.RetailRepo
  batchRepo   repos.BatchRepo
  companyRepo repos.CompanyRepo
  qualityRepo repos.QualityRepo
}

func NewRetailService(
  db *gorm.DB,
  log *logger.Logger,
  storeRepo repos.StoreRepo,
  retailRepo repos.RetailRepo,
  batchRepo repos.BatchRepo,
  companyRepo repos.CompanyRepo,
  qualityRepo repos.QualityRepo,
) RetailService {
  return &retailService{
    db:          db,
    log:         log.With("service", "RetailService"),
    storeRepo:   storeRepo,
    retailRepo:  retailRepo,
    batchRepo:   batchRepo,
    companyRepo: companyRepo,
    qualityRepo: qualityRepo,
  }
}

func (rs *retailService) CreateStore(ctx context.Context, store *types.Store) (*types.Store, error) {
  if _, err := rs.companyRepo.GetByID(ctx, nil, store.CompanyID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("COMPANY_NOT_FOUND", fmt.Errorf("company %s does not exist", store.CompanyID))
    }
    return nil, fmt.Errorf("failed to look up company: %w", err)
  }

  store.ID = uuid.New()
  created, err := rs.storeRepo.Create(ctx, nil, store)
  if err != nil {
    return nil, fmt.Errorf("failed to create store: %w", err)
  }
  rs.log.Info("store created", "store_id", created.ID, "company_id", created.CompanyID)
  return created, nil
}

func (rs *retailService) ListStores(ctx context.Context, page types.PageParams, companyID *uuid.UUID) ([]*types.Store, types.Pagination, error) {
  stores, total, err := rs.storeRepo.List(ctx, nil, page, companyID)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list stores: %w", err)
  }
  return stores, types.NewPagination(page.Page, page.Limit, total), nil
}

func (rs *retailService) GetStoreByID(ctx context.Context, id uuid.UUID) (*types.Store, error) {
  store, err := rs.storeRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("STORE_NOT_FOUND", fmt.Errorf("store %s not found", id))
    }
    return nil, fmt.Errorf("failed to get store: %w", err)
  }
  return store, nil
}

func (rs *retailService) CreateInventory(ctx context.Context, inventory *types.RetailInventory) (*types.RetailInventory, error) {
  if _, err := rs.batchRepo.GetByID(ctx, nil, inventory.BatchID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", inventory.BatchID))
    }
    return nil, fmt.Errorf("failed to look up batch: %w", err)
  }
  if _, err := rs.storeRepo.GetByID(ctx, nil, inventory.StoreID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("STORE_NOT_FOUND", fmt.Errorf("store %s does not exist", inventory.StoreID))
    }
    return nil, fmt.Errorf("failed to look up store: %w", err)
  }
  if inventory.StockQty.IsNegative() {
    return nil, apierr.Invalid("INVALID_STOCK_QTY", errors.New("stockQty must not be negative"))
  }

  inventory.ID = uuid.New()
  created, err := rs.retailRepo.CreateInventory(ctx, nil, inventory)
  if err != nil {
    return nil, fmt.Errorf("failed to create inventory: %w", err)
  }
  rs.log.Info("inventory created", "inventory_id", created.ID, "store_id", created.StoreID)
  return created, nil
}

func (rs *retailService) ListInventory(ctx context.Context, page types.PageParams, filter repos.InventoryFilter) ([]*types.RetailInventory, types.Pagination, error) {
  inventory, total, err := rs.retailRepo.ListInventory(ctx, nil, page, filter)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list inventory: %w", err)
  }
  if err := rs.attachLatest(ctx, inventory); err != nil {
    return nil, types.Pagination{}, err
  }
  return inventory, types.NewPagination(page.Page, page.Limit, total), nil
}

// attachLatest fills each inventory row with its batch's newest quality score
// and shelf-life prediction plus the row's newest pricing recommendation, so
// list rows carry current freshness context without a per-row query.
func (rs *retailService) attachLatest(ctx context.Context, inventory []*types.RetailInventory) error {
  if len(inventory) == 0 {
    return nil
  }
  batchIDs := make([]uuid.UUID, 0, len(inventory))
  inventoryIDs := make([]uuid.UUID, 0, len(inventory))
  for _, inv := range inventory {
    batchIDs = append(batchIDs, inv.BatchID)
    inventoryIDs = append(inventoryIDs, inv.ID)
  }

  scores, err := rs.qualityRepo.LatestScoresByBatchIDs(ctx, nil, batchIDs)
  if err != nil {
    return fmt.Errorf("failed to load latest quality scores: %w", err)
  }
  predictions, err := rs.qualityRepo.LatestPredictionsByBatchIDs(ctx, nil, batchIDs)
  if err != nil {
    return fmt.Errorf("failed to load latest predictions: %w", err)
  }
  pricing, err := rs.retailRepo.LatestPricingByInventoryIDs(ctx, nil, inventoryIDs)
  if err != nil {
    return fmt.Errorf("failed to load latest pricing recommendations: %w", err)
  }

  for _, inv := range inventory {
    if inv.Batch != nil {
      if s, ok := scores[inv.BatchID]; ok {
        inv.Batch.QualityScores = []*types.QualityScore{s}
      }
      if p, ok := predictions[inv.BatchID]; ok {
        inv.Batch.ShelfLifePredictions = []*types.ShelfLifePrediction{p}
      }
    }
    if pr, ok := pricing[inv.ID]; ok {
      inv.PricingRecommendations = []*types.PricingRecommendation{pr}
    }
  }
  return nil
}

func (rs *retailService) ListLowStock(ctx context.Context, storeID *uuid.UUID, threshold decimal.Decimal) ([]*types.RetailInventory, error) {
  inventory, err := rs.retailRepo.ListLowStock(ctx, nil, storeID, threshold)
  if err != nil {
    return nil, fmt.Errorf("failed to list low-stock inventory: %w", err)
  }
  return inventory, nil
}

func (rs *retailService) GetInventoryByID(ctx context.Context, id uuid.UUID) (*types.RetailInventory, error) {
  inventory, err := rs.retailRepo.GetInventoryByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("INVENTORY_NOT_FOUND", fmt.Errorf("inventory %s not found", id))
    }
    return nil, fmt.Errorf("failed to get inventory: %w", err)
  }
  return inventory, nil
}

func (rs *retailService) UpdateStock(ctx context.Context, id uuid.UUID, stockQty decimal.Decimal) (*types.RetailInventory, error) {
  if stockQty.IsNegative() {
    return nil, apierr.Invalid("INVALID_STOCK_QTY", errors.New("stockQty must not be negative"))
  }
  updated, err := rs.retailRepo.UpdateStock(ctx, nil, id, stockQty)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("INVENTORY_NOT_FOUND", fmt.Errorf("inventory %s not found", id))
    }
    return nil, fmt.Errorf("failed to update stock: %w", err)
  }
  return updated, nil
}

func (rs *retailService) CreatePricing(ctx context.Context, pricing *types.PricingRecommendation) (*types.PricingRecommendation, error) {
  if _, err := rs.retailRepo.GetInventoryByID(ctx, nil, pricing.InventoryID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("INVENTORY_NOT_FOUND", fmt.Errorf("inventory %s does not exist", pricing.InventoryID))
    }
    return nil, fmt.Errorf("failed to look up inventory: %w", err)
  }
  if pricing.OriginalPrice.IsNegative() || pricing.RecommendedPrice.IsNegative() {
    return nil, apierr.Invalid("INVALID_PRICE", errors.New("prices must not be negative"))
  }

  pricing.ID = uuid.New()
  created, err := rs.retailRepo.CreatePricing(ctx, nil, pricing)
  if err != nil {
    return nil, fmt.Errorf("failed to create pricing recommendation: %w", err)
  }
  rs.log.Info("pricing recommendation created",
    "pricing_id", created.ID,
    "inventory_id", created.InventoryID,
    "discount_pct", created.DiscountPct)
  return created, nil
}

func (rs *retailService) ListPricing(ctx context.Context, inventoryID uuid.UUID, limit int) ([]*types.PricingRecommendation, error) {
  pricing, err := rs.retailRepo.ListPricing(ctx, nil, inventoryID, limit)
  if err != nil {
    return nil, fmt.Errorf("failed to list pricing recommendations: %w", err)
  }
  return pricing, nil
}
