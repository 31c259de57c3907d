package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RecommendationHandler struct {
  recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
  return &RecommendationHandler{recommendationService: recommendationService}
}

type createRecommendationRequest struct {
  BatchID            string  `json:"batchId" binding:"required"`
  RecommendationType string  `json:"recommendationType" binding:"required"`
  Explanation        *string `json:"explanation"`
  Priority           string  `json:"priority" binding:"required"`
}

func (rh *RecommendationHandler) Create(c *gin.Context) {
  var req createRecommendationRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  recommendationType, err := types.ParseRecommendationType(req.RecommendationType)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_RECOMMENDATION_TYPE", err)
    return
  }
  priority, err := types.ParsePriority(req.Priority)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PRIORITY", err)
    return
  }

  created, err := rh.recommendationService.Create(c.Request.Context(), &types.Recommendation{
    BatchID:            batchID,
    RecommendationType: recommendationType,
    Explanation:        req.Explanation,
    Priority:           priority,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (rh *RecommendationHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.RecommendationFilter
  if filter.BatchID, err = parseOptionalUUIDQuery(c, "batchId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  if filter.CompanyID, err = parseOptionalUUIDQuery(c, "companyId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }
  if raw := c.Query("priority"); raw != "" {
    priority, err := types.ParsePriority(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_PRIORITY", err)
      return
    }
    filter.Priority = &priority
  }
  if raw := c.Query("recommendationType"); raw != "" {
    recommendationType, err := types.ParseRecommendationType(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_RECOMMENDATION_TYPE", err)
      return
    }
    filter.RecommendationType = &recommendationType
  }

  recs, pagination, err := rh.recommendationService.List(c.Request.Context(), page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, recs, pagination)
}

func (rh *RecommendationHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  rec, err := rh.recommendationService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, rec)
}

type updateRecommendationRequest struct {
  Explanation *string `json:"explanation"`
  Priority    *string `json:"priority"`
}

func (rh *RecommendationHandler) Update(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateRecommendationRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  patch := types.RecommendationPatch{Explanation: req.Explanation}
  if req.Priority != nil {
    priority, err := types.ParsePriority(*req.Priority)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_PRIORITY", err)
      return
    }
    patch.Priority = &priority
  }

  rec, err := rh.recommendationService.Update(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, rec)
}

func (rh *RecommendationHandler) ListByPriority(c *gin.Context) {
  priority, err := types.ParsePriority(c.Param("priority"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PRIORITY", err)
    return
  }
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  recs, err := rh.recommendationService.ListByPriority(c.Request.Context(), priority, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": recs})
}

func (rh *RecommendationHandler) ListCritical(c *gin.Context) {
  companyID, err := parseOptionalUUIDQuery(c, "companyId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }
  limit, err := parseIntQuery(c, "limit", 10, 100)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_LIMIT", err)
    return
  }

  recs, err := rh.recommendationService.ListCritical(c.Request.Context(), companyID, limit)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": recs})
}
