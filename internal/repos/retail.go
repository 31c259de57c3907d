package repos

import (
  "context"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type StoreRepo interface {
  Create(ctx context.Context, tx *gorm.DB, store *types.Store) (*types.Store, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.Store, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Store, error)
}

type storeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
  return &storeRepo{db: db, log: baseLog.With("repo", "StoreRepo")}
}

func (sr *storeRepo) Create(ctx context.Context, tx *gorm.DB, store *types.Store) (*types.Store, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if err := transaction.WithContext(ctx).Create(store).Error; err != nil {
    return nil, err
  }
  return store, nil
}

func (sr *storeRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.Store, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Store{})
  if companyID != nil {
    query = query.Where("company_id = ?", *companyID)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Store
  if err := query.
    Preload("Company").
    Order("name ASC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (sr *storeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Store, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var result types.Store
  if err := transaction.WithContext(ctx).
    Preload("Company").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

type InventoryFilter struct {
  StoreID *uuid.UUID
  BatchID *uuid.UUID
}

type RetailRepo interface {
  CreateInventory(ctx context.Context, tx *gorm.DB, inventory *types.RetailInventory) (*types.RetailInventory, error)
  ListInventory(ctx context.Context, tx *gorm.DB, page types.PageParams, filter InventoryFilter) ([]*types.RetailInventory, int64, error)
  ListLowStock(ctx context.Context, tx *gorm.DB, storeID *uuid.UUID, threshold decimal.Decimal) ([]*types.RetailInventory, error)
  GetInventoryByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RetailInventory, error)
  UpdateStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, stockQty decimal.Decimal) (*types.RetailInventory, error)
  CreatePricing(ctx context.Context, tx *gorm.DB, pricing *types.PricingRecommendation) (*types.PricingRecommendation, error)
  ListPricing(ctx context.Context, tx *gorm.DB, inventoryID uuid.UUID, limit int) ([]*types.PricingRecommendation, error)
  LatestPricingByInventoryIDs(ctx context.Context, tx *gorm.DB, inventoryIDs []uuid.UUID) (map[uuid.UUID]*types.PricingRecommendation, error)
}

type retailRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRetailRepo(db *gorm.DB, baseLog *logger.Logger) RetailRepo {
  return &retailRepo{db: db, log: baseLog.With("repo", "RetailRepo")}
}

func (rr *retailRepo) CreateInventory(ctx context.Context, tx *gorm.DB, inventory *types.RetailInventory) (*types.RetailInventory, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if err := transaction.WithContext(ctx).Create(inventory).Error; err != nil {
    return nil, err
  }
  return rr.GetInventoryByID(ctx, transaction, inventory.ID)
}

func (rr *retailRepo) ListInventory(ctx context.Context, tx *gorm.DB, page types.PageParams, filter InventoryFilter) ([]*types.RetailInventory, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  query := transaction.WithContext(ctx).Model(&types.RetailInventory{})
  if filter.StoreID != nil {
    query = query.Where("store_id = ?", *filter.StoreID)
  }
  if filter.BatchID != nil {
    query = query.Where("batch_id = ?", *filter.BatchID)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.RetailInventory
  if err := query.
    Preload("Batch.Commodity").
    Preload("Store").
    Order("created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (rr *retailRepo) ListLowStock(ctx context.Context, tx *gorm.DB, storeID *uuid.UUID, threshold decimal.Decimal) ([]*types.RetailInventory, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  query := transaction.WithContext(ctx).Where("stock_qty <= ?", threshold)
  if storeID != nil {
    query = query.Where("store_id = ?", *storeID)
  }

  var results []*types.RetailInventory
  if err := query.
    Preload("Batch.Commodity").
    Preload("Store").
    Order("stock_qty ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *retailRepo) GetInventoryByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RetailInventory, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var result types.RetailInventory
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Preload("Store").
    Preload("PricingRecommendations", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at DESC")
    }).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *retailRepo) UpdateStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, stockQty decimal.Decimal) (*types.RetailInventory, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  res := transaction.WithContext(ctx).
    Model(&types.RetailInventory{}).
    Where("id = ?", id).
    Update("stock_qty", stockQty)
  if res.Error != nil {
    return nil, res.Error
  }
  if res.RowsAffected == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return rr.GetInventoryByID(ctx, transaction, id)
}

func (rr *retailRepo) CreatePricing(ctx context.Context, tx *gorm.DB, pricing *types.PricingRecommendation) (*types.PricingRecommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if err := transaction.WithContext(ctx).Create(pricing).Error; err != nil {
    return nil, err
  }

  var result types.PricingRecommendation
  if err := transaction.WithContext(ctx).
    Preload("Inventory.Batch.Commodity").
    Preload("Inventory.Store").
    Where("id = ?", pricing.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *retailRepo) ListPricing(ctx context.Context, tx *gorm.DB, inventoryID uuid.UUID, limit int) ([]*types.PricingRecommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var results []*types.PricingRecommendation
  if err := transaction.WithContext(ctx).
    Where("inventory_id = ?", inventoryID).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *retailRepo) LatestPricingByInventoryIDs(ctx context.Context, tx *gorm.DB, inventoryIDs []uuid.UUID) (map[uuid.UUID]*types.PricingRecommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  out := map[uuid.UUID]*types.PricingRecommendation{}
  if len(inventoryIDs) == 0 {
    return out, nil
  }

  var results []*types.PricingRecommendation
  if err := transaction.WithContext(ctx).
    Model(&types.PricingRecommendation{}).
    Select(`DISTINCT ON (inventory_id) *`).
    Where("inventory_id IN ?", inventoryIDs).
    Order("inventory_id, created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  for _, p := range results {
    out[p.InventoryID] = p
  }
  return out, nil
}
