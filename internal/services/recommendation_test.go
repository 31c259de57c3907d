package services

import (
	"context"
	"testing"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/zultopia/freshsure-be/internal/repos"
	"github.com/zultopia/freshsure-be/internal/types"
)

// fakeRecommendationRepo records the arguments of the last priority listing
// so the service's fixed page size can be checked without a database.
type fakeRecommendationRepo struct {
	rec          *types.Recommendation
	recs         []*types.Recommendation
	lastPriority types.Priority
	lastCompany  *uuid.UUID
	lastLimit    int
}

func (f *fakeRecommendationRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.Recommendation) (*types.Recommendation, error) {
	return rec, nil
}

func (f *fakeRecommendationRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter repos.RecommendationFilter) ([]*types.Recommendation, int64, error) {
	return f.recs, int64(len(f.recs)), nil
}

func (f *fakeRecommendationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recommendation, error) {
	if f.rec == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.rec, nil
}

func (f *fakeRecommendationRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.RecommendationPatch) (*types.Recommendation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecommendationRepo) ListByPriority(ctx context.Context, tx *gorm.DB, priority types.Priority, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error) {
	f.lastPriority = priority
	f.lastCompany = companyID
	f.lastLimit = limit
	return f.recs, nil
}

func (f *fakeRecommendationRepo) ListCritical(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, limit int) ([]*types.Recommendation, error) {
	return f.recs, nil
}

func TestListByPriorityCapsAtFifty(t *testing.T) {
	fake := &fakeRecommendationRepo{
		recs: []*types.Recommendation{{ID: uuid.New(), Priority: types.PriorityWarning}},
	}
	svc := NewRecommendationService(nil, newTestLogger(t), fake, nil)

	companyID := uuid.New()
	recs, err := svc.ListByPriority(context.Background(), types.PriorityWarning, &companyID)
	if err != nil {
		t.Fatalf("ListByPriority returned error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if fake.lastLimit != 50 {
		t.Fatalf("limit = %d, want 50", fake.lastLimit)
	}
	if fake.lastPriority != types.PriorityWarning {
		t.Fatalf("priority = %v, want WARNING", fake.lastPriority)
	}
	if fake.lastCompany == nil || *fake.lastCompany != companyID {
		t.Fatalf("companyID = %v, want %v", fake.lastCompany, companyID)
	}
}
