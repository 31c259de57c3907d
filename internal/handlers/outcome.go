package handlers

import (
  "errors"
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type OutcomeHandler struct {
  outcomeService services.OutcomeService
}

func NewOutcomeHandler(outcomeService services.OutcomeService) *OutcomeHandler {
  return &OutcomeHandler{outcomeService: outcomeService}
}

type createOutcomeRequest struct {
  BatchID        string           `json:"batchId" binding:"required"`
  SoldQty        *decimal.Decimal `json:"soldQty"`
  WastedQty      *decimal.Decimal `json:"wastedQty"`
  AvgSellPrice   *decimal.Decimal `json:"avgSellPrice"`
  SpoilageReason *string          `json:"spoilageReason"`
  RecordedAt     *time.Time       `json:"recordedAt"`
}

func (oh *OutcomeHandler) Create(c *gin.Context) {
  var req createOutcomeRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  if req.SoldQty == nil && req.WastedQty == nil {
    RespondError(c, http.StatusBadRequest, "EMPTY_OUTCOME", errors.New("at least one of soldQty or wastedQty is required"))
    return
  }

  outcome := &types.Outcome{
    BatchID:        batchID,
    SpoilageReason: req.SpoilageReason,
  }
  if req.SoldQty != nil {
    if req.SoldQty.IsNegative() {
      RespondError(c, http.StatusBadRequest, "INVALID_SOLD_QTY", errors.New("soldQty must not be negative"))
      return
    }
    outcome.SoldQty = decimal.NullDecimal{Decimal: *req.SoldQty, Valid: true}
  }
  if req.WastedQty != nil {
    if req.WastedQty.IsNegative() {
      RespondError(c, http.StatusBadRequest, "INVALID_WASTED_QTY", errors.New("wastedQty must not be negative"))
      return
    }
    outcome.WastedQty = decimal.NullDecimal{Decimal: *req.WastedQty, Valid: true}
  }
  if req.AvgSellPrice != nil {
    if req.AvgSellPrice.IsNegative() {
      RespondError(c, http.StatusBadRequest, "INVALID_AVG_SELL_PRICE", errors.New("avgSellPrice must not be negative"))
      return
    }
    outcome.AvgSellPrice = decimal.NullDecimal{Decimal: *req.AvgSellPrice, Valid: true}
  }
  if req.RecordedAt != nil {
    outcome.RecordedAt = *req.RecordedAt
  }

  created, err := oh.outcomeService.Create(c.Request.Context(), outcome)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (oh *OutcomeHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.OutcomeFilter
  if filter.BatchID, err = parseOptionalUUIDQuery(c, "batchId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  if filter.CompanyID, err = parseOptionalUUIDQuery(c, "companyId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }
  if filter.StartDate, err = parseOptionalDateQuery(c, "startDate"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_START_DATE", err)
    return
  }
  if filter.EndDate, err = parseOptionalDateQuery(c, "endDate"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_END_DATE", err)
    return
  }

  outcomes, pagination, err := oh.outcomeService.List(c.Request.Context(), page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, outcomes, pagination)
}

func (oh *OutcomeHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  outcome, err := oh.outcomeService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, outcome)
}

func (oh *OutcomeHandler) Stats(c *gin.Context) {
  days, err := parseIntQuery(c, "days", 30, 365)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_DAYS", err)
    return
  }
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  stats, err := oh.outcomeService.Stats(c.Request.Context(), days, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, stats)
}
