package services

import (
  "context"
  "errors"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

// Dashboard is the landing-page aggregate: batch counts, the freshest
// quality scores, and how many critical recommendations are open.
type Dashboard struct {
  Batches                 DashboardBatches `json:"batches"`
  RecentQualityScores     []DashboardScore `json:"recentQualityScores"`
  CriticalRecommendations int              `json:"criticalRecommendations"`
}

type DashboardBatches struct {
  Total    int64                       `json:"total"`
  Active   int64                       `json:"active"`
  ByStatus map[types.BatchStatus]int64 `json:"byStatus"`
}

type DashboardScore struct {
  Date      time.Time `json:"date"`
  Score     float64   `json:"score"`
  Commodity string    `json:"commodity"`
}

type AnalyticsService interface {
  Dashboard(ctx context.Context, companyID *uuid.UUID) (*Dashboard, error)
  WeeklyMetrics(ctx context.Context, weeks int, companyID *uuid.UUID) ([]*types.WeeklyMetric, error)
  RecordWeeklyMetric(ctx context.Context, metric *types.WeeklyMetric) (*types.WeeklyMetric, error)
}

type analyticsService struct {
  db                 *gorm.DB
  log                *logger.Logger
  batchRepo          repos.BatchRepo
  qualityRepo        repos.QualityRepo
  recommendationRepo repos.RecommendationRepo
  weeklyMetricRepo   repos.WeeklyMetricRepo
  companyRepo        repos.CompanyRepo
}

func NewAnalyticsService(
  db *gorm.DB,
  log *logger.Logger,
  batchRepo repos.BatchRepo,
  qualityRepo repos.QualityRepo,
  recommendationRepo repos.RecommendationRepo,
  weeklyMetricRepo repos.WeeklyMetricRepo,
  companyRepo repos.CompanyRepo,
) AnalyticsService {
  return &analyticsService{
    db:                 db,
    log:                log.With("service", "AnalyticsService"),
    batchRepo:          batchRepo,
    qualityRepo:        qualityRepo,
    recommendationRepo: recommendationRepo,
    weeklyMetricRepo:   weeklyMetricRepo,
    companyRepo:        companyRepo,
  }
}

func (an *analyticsService) Dashboard(ctx context.Context, companyID *uuid.UUID) (*Dashboard, error) {
  total, err := an.batchRepo.Count(ctx, nil, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to count batches: %w", err)
  }
  active, err := an.batchRepo.CountWithStatus(ctx, nil, companyID, types.BatchStatusActive)
  if err != nil {
    return nil, fmt.Errorf("failed to count active batches: %w", err)
  }
  statusRows, err := an.batchRepo.CountByStatus(ctx, nil, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to count batches by status: %w", err)
  }
  recentScores, err := an.qualityRepo.RecentScores(ctx, nil, companyID, 7)
  if err != nil {
    return nil, fmt.Errorf("failed to load recent scores: %w", err)
  }
  critical, err := an.recommendationRepo.ListCritical(ctx, nil, companyID, 10)
  if err != nil {
    return nil, fmt.Errorf("failed to load critical recommendations: %w", err)
  }

  byStatus := map[types.BatchStatus]int64{}
  for _, r := range statusRows {
    byStatus[r.Status] = r.N
  }
  scores := make([]DashboardScore, 0, len(recentScores))
  for _, s := range recentScores {
    point := DashboardScore{Date: s.CalculatedAt, Score: s.QualityScore}
    if s.Batch != nil && s.Batch.Commodity != nil {
      point.Commodity = s.Batch.Commodity.Name
    }
    scores = append(scores, point)
  }
  return &Dashboard{
    Batches: DashboardBatches{
      Total:    total,
      Active:   active,
      ByStatus: byStatus,
    },
    RecentQualityScores:     scores,
    CriticalRecommendations: len(critical),
  }, nil
}

func (an *analyticsService) WeeklyMetrics(ctx context.Context, weeks int, companyID *uuid.UUID) ([]*types.WeeklyMetric, error) {
  if weeks <= 0 {
    weeks = 12
  }
  since := time.Now().UTC().AddDate(0, 0, -weeks*7)

  metrics, err := an.weeklyMetricRepo.ListSince(ctx, nil, since, companyID)
  if err != nil {
    return nil, fmt.Errorf("failed to load weekly metrics: %w", err)
  }
  return metrics, nil
}

func (an *analyticsService) RecordWeeklyMetric(ctx context.Context, metric *types.WeeklyMetric) (*types.WeeklyMetric, error) {
  if _, err := an.companyRepo.GetByID(ctx, nil, metric.CompanyID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.Invalid("COMPANY_NOT_FOUND", fmt.Errorf("company %s does not exist", metric.CompanyID))
    }
    return nil, fmt.Errorf("failed to look up company: %w", err)
  }

  metric.ID = uuid.New()
  created, err := an.weeklyMetricRepo.Create(ctx, nil, metric)
  if err != nil {
    return nil, fmt.Errorf("failed to record weekly metric: %w", err)
  }
  an.log.Info("weekly metric recorded", "metric_id", created.ID, "company_id", created.CompanyID)
  return created, nil
}
