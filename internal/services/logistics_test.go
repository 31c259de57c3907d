package services

import (
	"context"
	"testing"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/zultopia/freshsure-be/internal/types"
)

// fakeBatchRouteRepo records the optional filters passed down so the listing
// plumbing can be checked without a database.
type fakeBatchRouteRepo struct {
	routes      []*types.BatchRoute
	lastStatus  *types.BatchRouteStatus
	lastCompany *uuid.UUID
}

func (f *fakeBatchRouteRepo) Create(ctx context.Context, tx *gorm.DB, batchRoute *types.BatchRoute) (*types.BatchRoute, error) {
	return batchRoute, nil
}

func (f *fakeBatchRouteRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.BatchRoute, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBatchRouteRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.BatchRoutePatch) (*types.BatchRoute, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBatchRouteRepo) ListByBatch(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, status *types.BatchRouteStatus) ([]*types.BatchRoute, error) {
	f.lastStatus = status
	return f.routes, nil
}

func (f *fakeBatchRouteRepo) ListActive(ctx context.Context, tx *gorm.DB, page types.PageParams, companyID *uuid.UUID) ([]*types.BatchRoute, int64, error) {
	f.lastCompany = companyID
	return f.routes, int64(len(f.routes)), nil
}

func TestListBatchRoutesForwardsStatusFilter(t *testing.T) {
	fake := &fakeBatchRouteRepo{routes: []*types.BatchRoute{{ID: uuid.New()}}}
	svc := NewLogisticsService(nil, newTestLogger(t), nil, fake, nil)

	status := types.BatchRouteStatusDelivered
	routes, err := svc.ListBatchRoutes(context.Background(), uuid.New(), &status)
	if err != nil {
		t.Fatalf("ListBatchRoutes returned error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(routes))
	}
	if fake.lastStatus == nil || *fake.lastStatus != types.BatchRouteStatusDelivered {
		t.Fatalf("status = %v, want DELIVERED", fake.lastStatus)
	}

	if _, err := svc.ListBatchRoutes(context.Background(), uuid.New(), nil); err != nil {
		t.Fatalf("ListBatchRoutes without status returned error: %v", err)
	}
	if fake.lastStatus != nil {
		t.Fatalf("status = %v, want nil when unfiltered", fake.lastStatus)
	}
}

func TestListActiveBatchRoutesForwardsCompanyFilter(t *testing.T) {
	fake := &fakeBatchRouteRepo{}
	svc := NewLogisticsService(nil, newTestLogger(t), nil, fake, nil)

	companyID := uuid.New()
	_, pagination, err := svc.ListActiveBatchRoutes(context.Background(), types.PageParams{Page: 1, Limit: 20}, &companyID)
	if err != nil {
		t.Fatalf("ListActiveBatchRoutes returned error: %v", err)
	}
	if fake.lastCompany == nil || *fake.lastCompany != companyID {
		t.Fatalf("companyID = %v, want %v", fake.lastCompany, companyID)
	}
	if pagination.Total != 0 {
		t.Fatalf("total = %d, want 0", pagination.Total)
	}
}
