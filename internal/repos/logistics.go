package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RouteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, route *types.Route) (*types.Route, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.Route, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Route, error)
  AttachBatchRouteCounts(ctx context.Context, tx *gorm.DB, routes []*types.Route) error
}

type routeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRouteRepo(db *gorm.DB, baseLog *logger.Logger) RouteRepo {
  return &routeRepo{db: db, log: baseLog.With("repo", "RouteRepo")}
}

func (rr *routeRepo) Create(ctx context.Context, tx *gorm.DB, route *types.Route) (*types.Route, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if err := transaction.WithContext(ctx).Create(route).Error; err != nil {
    return nil, err
  }
  return route, nil
}

func (rr *routeRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.Route, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Route{})
  if companyID != nil {
    query = query.Where("company_id = ?", *companyID)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Route
  if err := query.
    Order("created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (rr *routeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Route, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var result types.Route
  if err := transaction.WithContext(ctx).
    Preload("BatchRoutes", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at DESC")
    }).
    Preload("BatchRoutes.Batch.Commodity").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *routeRepo) AttachBatchRouteCounts(ctx context.Context, tx *gorm.DB, routes []*types.Route) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if len(routes) == 0 {
    return nil
  }

  ids := make([]uuid.UUID, 0, len(routes))
  for _, r := range routes {
    ids = append(ids, r.ID)
  }

  type row struct {
    RouteID uuid.UUID
    N       int64
  }
  var rows []row
  if err := transaction.WithContext(ctx).
    Model(&types.BatchRoute{}).
    Select("route_id, count(*) AS n").
    Where("route_id IN ?", ids).
    Group("route_id").
    Scan(&rows).Error; err != nil {
    return err
  }

  counts := map[uuid.UUID]int64{}
  for _, r := range rows {
    counts[r.RouteID] = r.N
  }
  for _, r := range routes {
    n := counts[r.ID]
    r.BatchRouteCount = &n
  }
  return nil
}

type BatchRouteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, batchRoute *types.BatchRoute) (*types.BatchRoute, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.BatchRoute, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.BatchRoutePatch) (*types.BatchRoute, error)
  ListByBatch(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, status *types.BatchRouteStatus) ([]*types.BatchRoute, error)
  ListActive(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.BatchRoute, int64, error)
}

type batchRouteRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewBatchRouteRepo(db *gorm.DB, baseLog *logger.Logger) BatchRouteRepo {
  return &batchRouteRepo{db: db, log: baseLog.With("repo", "BatchRouteRepo")}
}

func (br *batchRouteRepo) Create(ctx context.Context, tx *gorm.DB, batchRoute *types.BatchRoute) (*types.BatchRoute, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  if err := transaction.WithContext(ctx).Create(batchRoute).Error; err != nil {
    return nil, err
  }
  return br.GetByID(ctx, transaction, batchRoute.ID)
}

func (br *batchRouteRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.BatchRoute, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }
  var result types.BatchRoute
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Preload("Route").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (br *batchRouteRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.BatchRoutePatch) (*types.BatchRoute, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  updates := map[string]interface{}{}
  if patch.Status != nil {
    updates["status"] = *patch.Status
    // Transitions stamp their own timestamps when the caller did not.
    switch *patch.Status {
    case types.BatchRouteStatusInTransit:
      if patch.StartedAt == nil {
        updates["started_at"] = time.Now().UTC()
      }
    case types.BatchRouteStatusDelivered, types.BatchRouteStatusCancelled:
      if patch.EndedAt == nil {
        updates["ended_at"] = time.Now().UTC()
      }
    }
  }
  if patch.StartedAt != nil {
    updates["started_at"] = *patch.StartedAt
  }
  if patch.EndedAt != nil {
    updates["ended_at"] = *patch.EndedAt
  }
  if len(updates) > 0 {
    res := transaction.WithContext(ctx).
      Model(&types.BatchRoute{}).
      Where("id = ?", id).
      Updates(updates)
    if res.Error != nil {
      return nil, res.Error
    }
    if res.RowsAffected == 0 {
      return nil, gorm.ErrRecordNotFound
    }
  }
  return br.GetByID(ctx, transaction, id)
}

func (br *batchRouteRepo) ListByBatch(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, status *types.BatchRouteStatus) ([]*types.BatchRoute, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  query := transaction.WithContext(ctx).Where("batch_id = ?", batchID)
  if status != nil {
    query = query.Where("status = ?", *status)
  }

  var results []*types.BatchRoute
  if err := query.
    Preload("Route").
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (br *batchRouteRepo) ListActive(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.BatchRoute, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.BatchRoute{}).
    Where("batch_route.status IN ?", []types.BatchRouteStatus{types.BatchRouteStatusPlanned, types.BatchRouteStatusInTransit})
  if companyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "batch_route".batch_id`).
      Where(`"batch".owner_company_id = ?`, *companyID)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.BatchRoute
  if err := query.
    Preload("Batch.Commodity").
    Preload("Batch.OwnerCompany").
    Preload("Route").
    Order("batch_route.created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}
