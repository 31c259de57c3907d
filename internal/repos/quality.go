package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type QualityRepo interface {
  CreateScore(ctx context.Context, tx *gorm.DB, score *types.QualityScore) (*types.QualityScore, error)
  LatestScore(ctx context.Context, tx *gorm.DB, batchID uuid.UUID) (*types.QualityScore, error)
  ScoreHistory(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, limit int) ([]*types.QualityScore, error)
  LatestScoresByBatchIDs(ctx context.Context, tx *gorm.DB, batchIDs []uuid.UUID) (map[uuid.UUID]*types.QualityScore, error)
  ScoresSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.QualityScore, error)
  RecentScores(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, limit int) ([]*types.QualityScore, error)

  CreatePrediction(ctx context.Context, tx *gorm.DB, prediction *types.ShelfLifePrediction) (*types.ShelfLifePrediction, error)
  LatestPrediction(ctx context.Context, tx *gorm.DB, batchID uuid.UUID) (*types.ShelfLifePrediction, error)
  PredictionHistory(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, limit int) ([]*types.ShelfLifePrediction, error)
  LatestPredictionsByBatchIDs(ctx context.Context, tx *gorm.DB, batchIDs []uuid.UUID) (map[uuid.UUID]*types.ShelfLifePrediction, error)
}

type qualityRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewQualityRepo(db *gorm.DB, baseLog *logger.Logger) QualityRepo {
  return &qualityRepo{db: db, log: baseLog.With("repo", "QualityRepo")}
}

func (qr *qualityRepo) CreateScore(ctx context.Context, tx *gorm.DB, score *types.QualityScore) (*types.QualityScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  if err := transaction.WithContext(ctx).Create(score).Error; err != nil {
    return nil, err
  }

  var result types.QualityScore
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Where("id = ?", score.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (qr *qualityRepo) LatestScore(ctx context.Context, tx *gorm.DB, batchID uuid.UUID) (*types.QualityScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  var result types.QualityScore
  if err := transaction.WithContext(ctx).
    Where("batch_id = ?", batchID).
    Order("calculated_at DESC").
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (qr *qualityRepo) ScoreHistory(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, limit int) ([]*types.QualityScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  var results []*types.QualityScore
  if err := transaction.WithContext(ctx).
    Where("batch_id = ?", batchID).
    Order("calculated_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// LatestScoresByBatchIDs resolves the newest score per batch with a single
// DISTINCT ON query instead of one lookup per row.
func (qr *qualityRepo) LatestScoresByBatchIDs(ctx context.Context, tx *gorm.DB, batchIDs []uuid.UUID) (map[uuid.UUID]*types.QualityScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  out := map[uuid.UUID]*types.QualityScore{}
  if len(batchIDs) == 0 {
    return out, nil
  }

  var results []*types.QualityScore
  if err := transaction.WithContext(ctx).
    Model(&types.QualityScore{}).
    Select(`DISTINCT ON (batch_id) *`).
    Where("batch_id IN ?", batchIDs).
    Order("batch_id, calculated_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  for _, s := range results {
    out[s.BatchID] = s
  }
  return out, nil
}

func (qr *qualityRepo) ScoresSince(ctx context.Context, tx *gorm.DB, since time.Time, companyID *uuid.UUID) ([]*types.QualityScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.QualityScore{}).
    Where("quality_score.calculated_at >= ?", since)
  if companyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "quality_score".batch_id`).
      Where(`"batch".owner_company_id = ?`, *companyID)
  }

  var results []*types.QualityScore
  if err := query.
    Order("quality_score.calculated_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (qr *qualityRepo) RecentScores(ctx context.Context, tx *gorm.DB, companyID *uuid.UUID, limit int) ([]*types.QualityScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  query := transaction.WithContext(ctx).Model(&types.QualityScore{})
  if companyID != nil {
    query = query.
      Joins(`JOIN "batch" ON "batch".id = "quality_score".batch_id`).
      Where(`"batch".owner_company_id = ?`, *companyID)
  }

  var results []*types.QualityScore
  if err := query.
    Preload("Batch.Commodity").
    Order("quality_score.calculated_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (qr *qualityRepo) CreatePrediction(ctx context.Context, tx *gorm.DB, prediction *types.ShelfLifePrediction) (*types.ShelfLifePrediction, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  if err := transaction.WithContext(ctx).Create(prediction).Error; err != nil {
    return nil, err
  }

  var result types.ShelfLifePrediction
  if err := transaction.WithContext(ctx).
    Preload("Batch.Commodity").
    Where("id = ?", prediction.ID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (qr *qualityRepo) LatestPrediction(ctx context.Context, tx *gorm.DB, batchID uuid.UUID) (*types.ShelfLifePrediction, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  var result types.ShelfLifePrediction
  if err := transaction.WithContext(ctx).
    Where("batch_id = ?", batchID).
    Order("calculated_at DESC").
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (qr *qualityRepo) PredictionHistory(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, limit int) ([]*types.ShelfLifePrediction, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  var results []*types.ShelfLifePrediction
  if err := transaction.WithContext(ctx).
    Where("batch_id = ?", batchID).
    Order("calculated_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (qr *qualityRepo) LatestPredictionsByBatchIDs(ctx context.Context, tx *gorm.DB, batchIDs []uuid.UUID) (map[uuid.UUID]*types.ShelfLifePrediction, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }
  out := map[uuid.UUID]*types.ShelfLifePrediction{}
  if len(batchIDs) == 0 {
    return out, nil
  }

  var results []*types.ShelfLifePrediction
  if err := transaction.WithContext(ctx).
    Model(&types.ShelfLifePrediction{}).
    Select(`DISTINCT ON (batch_id) *`).
    Where("batch_id IN ?", batchIDs).
    Order("batch_id, calculated_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  for _, p := range results {
    out[p.BatchID] = p
  }
  return out, nil
}
