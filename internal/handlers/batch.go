package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type BatchHandler struct {
  batchService services.BatchService
}

func NewBatchHandler(batchService services.BatchService) *BatchHandler {
  return &BatchHandler{batchService: batchService}
}

type createBatchRequest struct {
  CommodityID     string          `json:"commodityId" binding:"required"`
  OwnerCompanyID  string          `json:"ownerCompanyId" binding:"required"`
  HarvestDate     *time.Time      `json:"harvestDate"`
  Quantity        decimal.Decimal `json:"quantity" binding:"required"`
  Unit            string          `json:"unit" binding:"required"`
  CurrentLocation *string         `json:"currentLocation"`
  Status          *string         `json:"status"`
}

func (bh *BatchHandler) Create(c *gin.Context) {
  var req createBatchRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  commodityID, err := uuid.Parse(req.CommodityID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMMODITY_ID", err)
    return
  }
  companyID, err := uuid.Parse(req.OwnerCompanyID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  batch := &types.Batch{
    CommodityID:     commodityID,
    OwnerCompanyID:  companyID,
    HarvestDate:     req.HarvestDate,
    Quantity:        req.Quantity,
    Unit:            req.Unit,
    CurrentLocation: req.CurrentLocation,
  }
  if req.Status != nil {
    status, err := types.ParseBatchStatus(*req.Status)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
      return
    }
    batch.Status = status
  }

  created, err := bh.batchService.Create(c.Request.Context(), batch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (bh *BatchHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.BatchFilter
  if filter.CompanyID, err = parseOptionalUUIDQuery(c, "companyId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }
  if filter.CommodityID, err = parseOptionalUUIDQuery(c, "commodityId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMMODITY_ID", err)
    return
  }
  if raw := c.Query("status"); raw != "" {
    status, err := types.ParseBatchStatus(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
      return
    }
    filter.Status = &status
  }
  if filter.StartDate, err = parseOptionalDateQuery(c, "startDate"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_START_DATE", err)
    return
  }
  if filter.EndDate, err = parseOptionalDateQuery(c, "endDate"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_END_DATE", err)
    return
  }

  batches, pagination, err := bh.batchService.List(c.Request.Context(), page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, batches, pagination)
}

func (bh *BatchHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  batch, err := bh.batchService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, batch)
}

type updateBatchRequest struct {
  HarvestDate     *time.Time       `json:"harvestDate"`
  Quantity        *decimal.Decimal `json:"quantity"`
  Unit            *string          `json:"unit"`
  CurrentLocation *string          `json:"currentLocation"`
  Status          *string          `json:"status"`
}

func (bh *BatchHandler) Update(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateBatchRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  patch := types.BatchPatch{
    HarvestDate:     req.HarvestDate,
    Quantity:        req.Quantity,
    Unit:            req.Unit,
    CurrentLocation: req.CurrentLocation,
  }
  if req.Status != nil {
    status, err := types.ParseBatchStatus(*req.Status)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
      return
    }
    patch.Status = &status
  }

  batch, err := bh.batchService.Update(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, batch)
}

func (bh *BatchHandler) Delete(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  if err := bh.batchService.Delete(c.Request.Context(), id); err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"deleted": true})
}

func (bh *BatchHandler) Summary(c *gin.Context) {
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  summary, err := bh.batchService.Summary(c.Request.Context(), companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, summary)
}
