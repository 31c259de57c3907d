package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type AnalyticsHandler struct {
  analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
  return &AnalyticsHandler{analyticsService: analyticsService}
}

func (ah *AnalyticsHandler) Dashboard(c *gin.Context) {
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  dashboard, err := ah.analyticsService.Dashboard(c.Request.Context(), companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, dashboard)
}

func (ah *AnalyticsHandler) WeeklyMetrics(c *gin.Context) {
  weeks, err := parseIntQuery(c, "weeks", 12, 104)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_WEEKS", err)
    return
  }
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  metrics, err := ah.analyticsService.WeeklyMetrics(c.Request.Context(), weeks, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": metrics, "weeks": weeks})
}

type createWeeklyMetricRequest struct {
  CompanyID          string    `json:"companyId" binding:"required"`
  WeekStart          time.Time `json:"weekStart" binding:"required"`
  WasteReductionPct  *float64  `json:"wasteReductionPct"`
  RevenueUpliftPct   *float64  `json:"revenueUpliftPct"`
  AvgShelfLifeGainHr *float64  `json:"avgShelfLifeGainHr"`
}

func (ah *AnalyticsHandler) RecordWeeklyMetric(c *gin.Context) {
  var req createWeeklyMetricRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  companyID, err := uuid.Parse(req.CompanyID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  created, err := ah.analyticsService.RecordWeeklyMetric(c.Request.Context(), &types.WeeklyMetric{
    CompanyID:          companyID,
    WeekStart:          req.WeekStart,
    WasteReductionPct:  req.WasteReductionPct,
    RevenueUpliftPct:   req.RevenueUpliftPct,
    AvgShelfLifeGainHr: req.AvgShelfLifeGainHr,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}
