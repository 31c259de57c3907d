package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type LogisticsHandler struct {
  logisticsService services.LogisticsService
}

func NewLogisticsHandler(logisticsService services.LogisticsService) *LogisticsHandler {
  return &LogisticsHandler{logisticsService: logisticsService}
}

type createRouteRequest struct {
  FromLocation    string   `json:"fromLocation" binding:"required"`
  ToLocation      string   `json:"toLocation" binding:"required"`
  DistanceKm      *float64 `json:"distanceKm" binding:"required"`
  EstimatedTimeHr *float64 `json:"estimatedTimeHr" binding:"required"`
  CompanyID       *string  `json:"companyId"`
}

func (lh *LogisticsHandler) CreateRoute(c *gin.Context) {
  var req createRouteRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  route := &types.Route{
    FromLocation:    req.FromLocation,
    ToLocation:      req.ToLocation,
    DistanceKm:      *req.DistanceKm,
    EstimatedTimeHr: *req.EstimatedTimeHr,
  }
  if req.CompanyID != nil {
    companyID, err := uuid.Parse(*req.CompanyID)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
      return
    }
    route.CompanyID = &companyID
  }

  created, err := lh.logisticsService.CreateRoute(c.Request.Context(), route)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (lh *LogisticsHandler) ListRoutes(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  routes, pagination, err := lh.logisticsService.ListRoutes(c.Request.Context(), page, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, routes, pagination)
}

func (lh *LogisticsHandler) GetRouteByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  route, err := lh.logisticsService.GetRouteByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, route)
}

type assignBatchRequest struct {
  BatchID string  `json:"batchId" binding:"required"`
  RouteID string  `json:"routeId" binding:"required"`
  Status  *string `json:"status"`
}

func (lh *LogisticsHandler) AssignBatch(c *gin.Context) {
  var req assignBatchRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  routeID, err := uuid.Parse(req.RouteID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ROUTE_ID", err)
    return
  }

  batchRoute := &types.BatchRoute{
    BatchID: batchID,
    RouteID: routeID,
  }
  if req.Status != nil {
    status, err := types.ParseBatchRouteStatus(*req.Status)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
      return
    }
    batchRoute.Status = status
  }

  created, err := lh.logisticsService.AssignBatch(c.Request.Context(), batchRoute)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

type updateBatchRouteRequest struct {
  Status    *string    `json:"status"`
  StartedAt *time.Time `json:"startedAt"`
  EndedAt   *time.Time `json:"endedAt"`
}

func (lh *LogisticsHandler) UpdateBatchRoute(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateBatchRouteRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  patch := types.BatchRoutePatch{
    StartedAt: req.StartedAt,
    EndedAt:   req.EndedAt,
  }
  if req.Status != nil {
    status, err := types.ParseBatchRouteStatus(*req.Status)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
      return
    }
    patch.Status = &status
  }

  batchRoute, err := lh.logisticsService.UpdateBatchRoute(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, batchRoute)
}

func (lh *LogisticsHandler) ListBatchRoutes(c *gin.Context) {
  batchID, err := parseUUIDParam(c, "batchId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  var status *types.BatchRouteStatus
  if raw := c.Query("status"); raw != "" {
    parsed, err := types.ParseBatchRouteStatus(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
      return
    }
    status = &parsed
  }

  batchRoutes, err := lh.logisticsService.ListBatchRoutes(c.Request.Context(), batchID, status)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": batchRoutes})
}

func (lh *LogisticsHandler) ListActiveBatchRoutes(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  batchRoutes, pagination, err := lh.logisticsService.ListActiveBatchRoutes(c.Request.Context(), page, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, batchRoutes, pagination)
}
