package services

import (
	"context"
	"testing"
	"time"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/zultopia/freshsure-be/internal/logger"
	"github.com/zultopia/freshsure-be/internal/repos"
	"github.com/zultopia/freshsure-be/internal/types"
)

// fakeActionRepo serves canned stats so Stats can be exercised without a
// database.
type fakeActionRepo struct {
	total     int64
	grouped   []repos.ActionTakenCount
	recent    []*types.Action
	lastSince time.Time
	lastLimit int
}

func (f *fakeActionRepo) Create(ctx context.Context, tx *gorm.DB, action *types.Action) (*types.Action, error) {
	return action, nil
}

func (f *fakeActionRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams, filter repos.ActionFilter) ([]*types.Action, int64, error) {
	return nil, 0, nil
}

func (f *fakeActionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Action, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.ActionPatch) (*types.Action, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) CountSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) (int64, error) {
	f.lastSince = since
	return f.total, nil
}

func (f *fakeActionRepo) GroupByActionTakenSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]repos.ActionTakenCount, error) {
	return f.grouped, nil
}

func (f *fakeActionRepo) RecentSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID, limit int) ([]*types.Action, error) {
	f.lastLimit = limit
	return f.recent, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init test logger: %v", err)
	}
	return log
}

func TestActionStatsOnlyObservedStatuses(t *testing.T) {
	fake := &fakeActionRepo{
		total: 5,
		grouped: []repos.ActionTakenCount{
			{ActionTaken: types.ActionTakenPending, N: 3},
			{ActionTaken: types.ActionTakenAccepted, N: 2},
		},
		recent: []*types.Action{{ID: uuid.New()}},
	}
	svc := NewActionService(nil, newTestLogger(t), fake, nil)

	stats, err := svc.Stats(context.Background(), 14, nil)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 5 {
		t.Fatalf("total = %d, want 5", stats.Total)
	}
	wantSince := time.Now().UTC().AddDate(0, 0, -14)
	if diff := fake.lastSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("since = %v, want about %v", fake.lastSince, wantSince)
	}
	if len(stats.ByStatus) != 2 {
		t.Fatalf("byStatus carries %d keys, want only the 2 observed", len(stats.ByStatus))
	}
	if stats.ByStatus[types.ActionTakenPending] != 3 || stats.ByStatus[types.ActionTakenAccepted] != 2 {
		t.Fatalf("byStatus = %v", stats.ByStatus)
	}
	if _, present := stats.ByStatus[types.ActionTakenIgnored]; present {
		t.Fatal("byStatus includes a status with no actions in the window")
	}
	if fake.lastLimit != 10 {
		t.Fatalf("recent limit = %d, want 10", fake.lastLimit)
	}
}

func TestActionCreateStampsExecutedAt(t *testing.T) {
	recRepo := &fakeRecommendationRepo{rec: &types.Recommendation{ID: uuid.New()}}
	svc := NewActionService(nil, newTestLogger(t), &fakeActionRepo{}, recRepo)

	created, err := svc.Create(context.Background(), &types.Action{
		RecommendationID: recRepo.rec.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ActionTaken != types.ActionTakenPending {
		t.Fatalf("actionTaken = %v, want PENDING default", created.ActionTaken)
	}
	if created.ExecutedAt == nil {
		t.Fatal("executedAt not stamped on create")
	}
	if d := time.Since(*created.ExecutedAt); d < -time.Minute || d > time.Minute {
		t.Fatalf("executedAt = %v, want about now", *created.ExecutedAt)
	}
}

func TestActionStatsDefaultWindow(t *testing.T) {
	fake := &fakeActionRepo{}
	svc := NewActionService(nil, newTestLogger(t), fake, nil)

	stats, err := svc.Stats(context.Background(), 0, nil)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	want := time.Now().UTC().AddDate(0, 0, -30)
	if diff := fake.lastSince.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("since = %v, want about %v", fake.lastSince, want)
	}
	if len(stats.ByStatus) != 0 {
		t.Fatalf("byStatus for empty window = %v, want empty", stats.ByStatus)
	}
}
