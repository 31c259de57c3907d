package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type CommodityRepo interface {
  Create(ctx context.Context, tx *gorm.DB, commodity *types.Commodity) (*types.Commodity, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, category *types.CommodityCategory) ([]*types.Commodity, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Commodity, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.CommodityPatch) (*types.Commodity, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  AttachBatchCounts(ctx context.Context, tx *gorm.DB, commodities []*types.Commodity) error
}

type commodityRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCommodityRepo(db *gorm.DB, baseLog *logger.Logger) CommodityRepo {
  return &commodityRepo{db: db, log: baseLog.With("repo", "CommodityRepo")}
}

func (cr *commodityRepo) Create(ctx context.Context, tx *gorm.DB, commodity *types.Commodity) (*types.Commodity, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if err := transaction.WithContext(ctx).Create(commodity).Error; err != nil {
    return nil, err
  }
  return commodity, nil
}

func (cr *commodityRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, category *types.CommodityCategory) ([]*types.Commodity, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Commodity{})
  if category != nil {
    query = query.Where("category = ?", *category)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Commodity
  if err := query.
    Order("name ASC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (cr *commodityRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Commodity, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var result types.Commodity
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (cr *commodityRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.CommodityPatch) (*types.Commodity, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  updates := map[string]interface{}{}
  if patch.Name != nil {
    updates["name"] = *patch.Name
  }
  if patch.Category != nil {
    updates["category"] = *patch.Category
  }
  if patch.BaseShelfLifeDays != nil {
    updates["base_shelf_life_days"] = *patch.BaseShelfLifeDays
  }
  if len(updates) > 0 {
    if err := transaction.WithContext(ctx).
      Model(&types.Commodity{}).
      Where("id = ?", id).
      Updates(updates).Error; err != nil {
      return nil, err
    }
  }
  return cr.GetByID(ctx, transaction, id)
}

func (cr *commodityRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  res := transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Commodity{})
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  return nil
}

func (cr *commodityRepo) AttachBatchCounts(ctx context.Context, tx *gorm.DB, commodities []*types.Commodity) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if len(commodities) == 0 {
    return nil
  }

  ids := make([]uuid.UUID, 0, len(commodities))
  for _, c := range commodities {
    ids = append(ids, c.ID)
  }

  type row struct {
    CommodityID uuid.UUID
    N           int64
  }
  var rows []row
  if err := transaction.WithContext(ctx).
    Model(&types.Batch{}).
    Select("commodity_id, count(*) AS n").
    Where("commodity_id IN ?", ids).
    Group("commodity_id").
    Scan(&rows).Error; err != nil {
    return err
  }

  counts := map[uuid.UUID]int64{}
  for _, r := range rows {
    counts[r.CommodityID] = r.N
  }
  for _, c := range commodities {
    n := counts[c.ID]
    c.BatchCount = &n
  }
  return nil
}
