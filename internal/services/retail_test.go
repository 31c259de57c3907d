package services

import (
	"context"
	"testing"
	"time"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"github.com/zultopia/freshsure-be/internal/repos"
	"github.com/zultopia/freshsure-be/internal/types"
)

// fakeRetailRepo serves canned inventory rows and records the low-stock
// filters it was handed.
type fakeRetailRepo struct {
	inventory     []*types.RetailInventory
	pricing       map[uuid.UUID]*types.PricingRecommendation
	lastThreshold decimal.Decimal
	lastStoreID   *uuid.UUID
}

func (f *fakeRetailRepo) CreateInventory(ctx context.Context, tx *gorm.DB, inventory *types.RetailInventory) (*types.RetailInventory, error) {
	return inventory, nil
}

func (f *fakeRetailRepo) ListInventory(ctx context.Context, tx *gorm.DB, page types.PageParams, filter repos.InventoryFilter) ([]*types.RetailInventory, int64, error) {
	return f.inventory, int64(len(f.inventory)), nil
}

func (f *fakeRetailRepo) ListLowStock(ctx context.Context, tx *gorm.DB, storeID *uuid.UUID, threshold decimal.Decimal) ([]*types.RetailInventory, error) {
	f.lastStoreID = storeID
	f.lastThreshold = threshold
	return f.inventory, nil
}

func (f *fakeRetailRepo) GetInventoryByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RetailInventory, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRetailRepo) UpdateStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, stockQty decimal.Decimal) (*types.RetailInventory, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRetailRepo) CreatePricing(ctx context.Context, tx *gorm.DB, pricing *types.PricingRecommendation) (*types.PricingRecommendation, error) {
	return pricing, nil
}

func (f *fakeRetailRepo) ListPricing(ctx context.Context, tx *gorm.DB, inventoryID uuid.UUID, limit int) ([]*types.PricingRecommendation, error) {
	return nil, nil
}

func (f *fakeRetailRepo) LatestPricingByInventoryIDs(ctx context.Context, tx *gorm.DB, inventoryIDs []uuid.UUID) (map[uuid.UUID]*types.PricingRecommendation, error) {
	if f.pricing == nil {
		return map[uuid.UUID]*types.PricingRecommendation{}, nil
	}
	return f.pricing, nil
}

// fakeQualityRepo serves the latest-per-batch maps used by inventory listings.
type fakeQualityRepo struct {
	scores      map[uuid.UUID]*types.QualityScore
	predictions map[uuid.UUID]*types.ShelfLifePrediction
}

func (f *fakeQualityRepo) CreateScore(ctx context.Context, tx *gorm.DB, score *types.QualityScore) (*types.QualityScore, error) {
	return score, nil
}

func (f *fakeQualityRepo) LatestScore(ctx context.Context, tx *gorm.DB, batchID uuid.UUID) (*types.QualityScore, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQualityRepo) ScoreHistory(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, limit int) ([]*types.QualityScore, error) {
	return nil, nil
}

func (f *fakeQualityRepo) LatestScoresByBatchIDs(ctx context.Context, tx *gorm.DB, batchIDs []uuid.UUID) (map[uuid.UUID]*types.QualityScore, error) {
	if f.scores == nil {
		return map[uuid.UUID]*types.QualityScore{}, nil
	}
	return f.scores, nil
}

func (f *fakeQualityRepo) ScoresSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.QualityScore, error) {
	return nil, nil
}

func (f *fakeQualityRepo) RecentScores(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, limit int) ([]*types.QualityScore, error) {
	return nil, nil
}

func (f *fakeQualityRepo) CreatePrediction(ctx context.Context, tx *gorm.DB, prediction *types.ShelfLifePrediction) (*types.ShelfLifePrediction, error) {
	return prediction, nil
}

func (f *fakeQualityRepo) LatestPrediction(ctx context.Context, tx *gorm.DB, batchID uuid.UUID) (*types.ShelfLifePrediction, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQualityRepo) PredictionHistory(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, limit int) ([]*types.ShelfLifePrediction, error) {
	return nil, nil
}

func (f *fakeQualityRepo) LatestPredictionsByBatchIDs(ctx context.Context, tx *gorm.DB, batchIDs []uuid.UUID) (map[uuid.UUID]*types.ShelfLifePrediction, error) {
	if f.predictions == nil {
		return map[uuid.UUID]*types.ShelfLifePrediction{}, nil
	}
	return f.predictions, nil
}

func TestListInventoryAttachesLatestContext(t *testing.T) {
	batchID := uuid.New()
	inventoryID := uuid.New()
	row := &types.RetailInventory{
		ID:      inventoryID,
		BatchID: batchID,
		Batch:   &types.Batch{ID: batchID},
	}
	bare := &types.RetailInventory{
		ID:      uuid.New(),
		BatchID: uuid.New(),
		Batch:   &types.Batch{ID: uuid.New()},
	}
	retailRepo := &fakeRetailRepo{
		inventory: []*types.RetailInventory{row, bare},
		pricing: map[uuid.UUID]*types.PricingRecommendation{
			inventoryID: {ID: uuid.New(), InventoryID: inventoryID},
		},
	}
	qualityRepo := &fakeQualityRepo{
		scores: map[uuid.UUID]*types.QualityScore{
			batchID: {ID: uuid.New(), BatchID: batchID, QualityScore: 82.5},
		},
		predictions: map[uuid.UUID]*types.ShelfLifePrediction{
			batchID: {ID: uuid.New(), BatchID: batchID, RemainingHours: 48},
		},
	}
	svc := NewRetailService(nil, newTestLogger(t), nil, retailRepo, nil, nil, qualityRepo)

	inventory, _, err := svc.ListInventory(context.Background(), types.PageParams{Page: 1, Limit: 20}, repos.InventoryFilter{})
	if err != nil {
		t.Fatalf("ListInventory returned error: %v", err)
	}
	if len(inventory) != 2 {
		t.Fatalf("got %d rows, want 2", len(inventory))
	}
	if len(inventory[0].Batch.QualityScores) != 1 || inventory[0].Batch.QualityScores[0].QualityScore != 82.5 {
		t.Fatalf("latest quality score not attached: %v", inventory[0].Batch.QualityScores)
	}
	if len(inventory[0].Batch.ShelfLifePredictions) != 1 || inventory[0].Batch.ShelfLifePredictions[0].RemainingHours != 48 {
		t.Fatalf("latest prediction not attached: %v", inventory[0].Batch.ShelfLifePredictions)
	}
	if len(inventory[0].PricingRecommendations) != 1 {
		t.Fatalf("latest pricing not attached: %v", inventory[0].PricingRecommendations)
	}
	if len(inventory[1].Batch.QualityScores) != 0 || len(inventory[1].PricingRecommendations) != 0 {
		t.Fatal("rows without history must stay empty")
	}
}

func TestListLowStockForwardsFilters(t *testing.T) {
	retailRepo := &fakeRetailRepo{}
	svc := NewRetailService(nil, newTestLogger(t), nil, retailRepo, nil, nil, &fakeQualityRepo{})

	storeID := uuid.New()
	threshold := decimal.NewFromInt(10)
	if _, err := svc.ListLowStock(context.Background(), &storeID, threshold); err != nil {
		t.Fatalf("ListLowStock returned error: %v", err)
	}
	if retailRepo.lastStoreID == nil || *retailRepo.lastStoreID != storeID {
		t.Fatalf("storeID = %v, want %v", retailRepo.lastStoreID, storeID)
	}
	if !retailRepo.lastThreshold.Equal(threshold) {
		t.Fatalf("threshold = %v, want %v", retailRepo.lastThreshold, threshold)
	}
}
