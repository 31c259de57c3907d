package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type QualityHandler struct {
  qualityService services.QualityService
}

func NewQualityHandler(qualityService services.QualityService) *QualityHandler {
  return &QualityHandler{qualityService: qualityService}
}

type createScoreRequest struct {
  BatchID      string     `json:"batchId" binding:"required"`
  QualityScore *float64   `json:"qualityScore" binding:"required"`
  Confidence   *float64   `json:"confidence" binding:"required"`
  CalculatedAt *time.Time `json:"calculatedAt"`
}

func (qh *QualityHandler) CreateScore(c *gin.Context) {
  var req createScoreRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  if *req.QualityScore < 0 || *req.QualityScore > 100 {
    RespondError(c, http.StatusBadRequest, "INVALID_SCORE", errInvalidScoreRange)
    return
  }
  if *req.Confidence < 0 || *req.Confidence > 1 {
    RespondError(c, http.StatusBadRequest, "INVALID_CONFIDENCE", errInvalidConfidenceRange)
    return
  }

  score := &types.QualityScore{
    BatchID:      batchID,
    QualityScore: *req.QualityScore,
    Confidence:   *req.Confidence,
  }
  if req.CalculatedAt != nil {
    score.CalculatedAt = *req.CalculatedAt
  }

  created, err := qh.qualityService.RecordScore(c.Request.Context(), score)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (qh *QualityHandler) LatestScore(c *gin.Context) {
  batchID, err := parseUUIDParam(c, "batchId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }

  score, err := qh.qualityService.LatestScore(c.Request.Context(), batchID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, score)
}

func (qh *QualityHandler) ScoreHistory(c *gin.Context) {
  batchID, err := parseUUIDParam(c, "batchId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  limit, err := parseIntQuery(c, "limit", 50, 500)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_LIMIT", err)
    return
  }

  scores, err := qh.qualityService.ScoreHistory(c.Request.Context(), batchID, limit)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": scores})
}

type createPredictionRequest struct {
  BatchID        string     `json:"batchId" binding:"required"`
  RemainingHours *float64   `json:"remainingHours" binding:"required"`
  MinEstimate    *float64   `json:"minEstimate" binding:"required"`
  MaxEstimate    *float64   `json:"maxEstimate" binding:"required"`
  RiskLevel      string     `json:"riskLevel" binding:"required"`
  CalculatedAt   *time.Time `json:"calculatedAt"`
}

func (qh *QualityHandler) CreatePrediction(c *gin.Context) {
  var req createPredictionRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  riskLevel, err := types.ParseRiskLevel(req.RiskLevel)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_RISK_LEVEL", err)
    return
  }
  if *req.MinEstimate > *req.MaxEstimate {
    RespondError(c, http.StatusBadRequest, "INVALID_ESTIMATE_RANGE", errInvalidEstimateRange)
    return
  }

  prediction := &types.ShelfLifePrediction{
    BatchID:        batchID,
    RemainingHours: *req.RemainingHours,
    MinEstimate:    *req.MinEstimate,
    MaxEstimate:    *req.MaxEstimate,
    RiskLevel:      riskLevel,
  }
  if req.CalculatedAt != nil {
    prediction.CalculatedAt = *req.CalculatedAt
  }

  created, err := qh.qualityService.RecordPrediction(c.Request.Context(), prediction)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (qh *QualityHandler) LatestPrediction(c *gin.Context) {
  batchID, err := parseUUIDParam(c, "batchId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }

  prediction, err := qh.qualityService.LatestPrediction(c.Request.Context(), batchID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, prediction)
}

func (qh *QualityHandler) PredictionHistory(c *gin.Context) {
  batchID, err := parseUUIDParam(c, "batchId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  limit, err := parseIntQuery(c, "limit", 50, 500)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_LIMIT", err)
    return
  }

  predictions, err := qh.qualityService.PredictionHistory(c.Request.Context(), batchID, limit)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": predictions})
}

func (qh *QualityHandler) Performance(c *gin.Context) {
  days, err := parseIntQuery(c, "days", 7, 365)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_DAYS", err)
    return
  }
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  points, err := qh.qualityService.Performance(c.Request.Context(), days, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": points, "days": days})
}
