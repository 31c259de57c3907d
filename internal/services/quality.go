package services

import (
  "context"
  "errors"
  "fmt"
  "sort"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

// QualityPerformancePoint is one UTC-day bucket of score averages.
type QualityPerformancePoint struct {
  Date     string  `json:"date"`
  AvgScore float64 `json:"averageScore"`
  Count    int     `json:"count"`
}

type QualityService interface {
  RecordScore(ctx context.Context, score *types.QualityScore) (*types.QualityScore, error)
  LatestScore(ctx context.Context, batchID uuid.UUID) (*types.QualityScore, error)
  ScoreHistory(ctx context.Context, batchID uuid.UUID, limit int) ([]*types.QualityScore, error)
  RecordPrediction(ctx context.Context, prediction *types.ShelfLifePrediction) (*types.ShelfLifePrediction, error)
  LatestPrediction(ctx context.Context, batchID uuid.UUID) (*types.ShelfLifePrediction, error)
  PredictionHistory(ctx context.Context, batchID uuid.UUID, limit int) ([]*types.ShelfLifePrediction, error)
  Performance(ctx context.Context, days int, companyID *uuid.UUID) ([]QualityPerformancePoint, error)
}

type qualityService struct {
  db          *gorm.DB
  log         *logger.Logger
  qualityRepo repos.QualityRepo
  batchRepo   repos.BatchRepo
}

func NewQualityService(db *gorm.DB, log *logger.Logger, qualityRepo repos.QualityRepo, batchRepo repos.BatchRepo) QualityService {
  return &qualityService{
    db:          db,
    log:         log.With("service", "QualityService"),
    qualityRepo: qualityRepo,
    batchRepo:   batchRepo,
  }
}

func (qs *qualityService) requireBatch(ctx context.Context, batchID uuid.UUID) error {
  if _, err := qs.batchRepo.GetByID(ctx, nil, batchID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apierr.Invalid("BATCH_NOT_FOUND", fmt.Errorf("batch %s does not exist", batchID))
    }
    return fmt.Errorf("failed to look up batch: %w", err)
  }
  return nil
}

func (qs *qualityService) RecordScore(ctx context.Context, score *types.QualityScore) (*types.QualityScore, error) {
  if err := qs.requireBatch(ctx, score.BatchID); err != nil {
    return nil, err
  }
  score.ID = uuid.New()
  if score.CalculatedAt.IsZero() {
    score.CalculatedAt = time.Now().UTC()
  }
  created, err := qs.qualityRepo.CreateScore(ctx, nil, score)
  if err != nil {
    return nil, fmt.Errorf("failed to record quality score: %w", err)
  }
  return created, nil
}

func (qs *qualityService) LatestScore(ctx context.Context, batchID uuid.UUID) (*types.QualityScore, error) {
  score, err := qs.qualityRepo.LatestScore(ctx, nil, batchID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("SCORE_NOT_FOUND", fmt.Errorf("no quality score for batch %s", batchID))
    }
    return nil, fmt.Errorf("failed to get latest score: %w", err)
  }
  return score, nil
}

func (qs *qualityService) ScoreHistory(ctx context.Context, batchID uuid.UUID, limit int) ([]*types.QualityScore, error) {
  scores, err := qs.qualityRepo.ScoreHistory(ctx, nil, batchID, limit)
  if err != nil {
    return nil, fmt.Errorf("failed to get score history: %w", err)
  }
  return scores, nil
}

func (qs *qualityService) RecordPrediction(ctx context.Context, prediction *types.ShelfLifePrediction) (*types.ShelfLifePrediction, error) {
  if err := qs.requireBatch(ctx, prediction.BatchID); err != nil {
    return nil, err
  }
  prediction.ID = uuid.New()
  if prediction.CalculatedAt.IsZero() {
    prediction.CalculatedAt = time.Now().UTC()
  }
  created, err := qs.qualityRepo.CreatePrediction(ctx, nil, prediction)
  if err != nil {
    return nil, fmt.Errorf("failed to record shelf-life prediction: %w", err)
  }
  return created, nil
}

func (qs *qualityService) LatestPrediction(ctx context.Context, batchID uuid.UUID) (*types.ShelfLifePrediction, error) {
  prediction, err := qs.qualityRepo.LatestPrediction(ctx, nil, batchID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("PREDICTION_NOT_FOUND", fmt.Errorf("no shelf-life prediction for batch %s", batchID))
    }
    return nil, fmt.Errorf("failed to get latest prediction: %w", err)
  }
  return prediction, nil
}

func (qs *qualityService) PredictionHistory(ctx context.Context, batchID uuid.UUID, limit int) ([]*types.ShelfLifePrediction, error) {
  predictions, err := qs.qualityRepo.PredictionHistory(ctx, nil, batchID, limit)
  if err != nil {
    return nil, fmt.Errorf("failed to get prediction history: %w", err)
  }
  return predictions, nil
}

// Performance buckets scores into UTC calendar days and averages per day.
// Days with no scores are omitted rather than zero-filled.
func (qs *qualityService) Performance(ctx context.Context, days int, companyID *uuid.UUID) ([]QualityPerformancePoint, error) {
  if days <= 0 {
    days = 7
  }
  since := time.Now().UTC().AddDate(0, 0, -days)

  scores, err := qs.qualityRepo.ScoresSince(ctx, nil, since, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to load scores: %w", err)
  }
  return BucketScoresByDay(scores), nil
}

// BucketScoresByDay reduces scores to per-day averages sorted by date.
func BucketScoresByDay(scores []*types.QualityScore) []QualityPerformancePoint {
  type bucket struct {
    sum   float64
    count int
  }
  buckets := map[string]*bucket{}
  for _, s := range scores {
    day := s.CalculatedAt.UTC().Format("2006-01-02")
    b := buckets[day]
    if b == nil {
      b = &bucket{}
      buckets[day] = b
    }
    b.sum += s.QualityScore
    b.count++
  }

  points := make([]QualityPerformancePoint, 0, len(buckets))
  for day, b := range buckets {
    points = append(points, QualityPerformancePoint{
      Date:     day,
      AvgScore: b.sum / float64(b.count),
      Count:    b.count,
    })
  }
  sort.Slice(points, func(i, j int) bool {
    return points[i].Date < points[j].Date
  })
  return points
}
