package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/requestdata"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type ActionHandler struct {
  actionService services.ActionService
}

func NewActionHandler(actionService services.ActionService) *ActionHandler {
  return &ActionHandler{actionService: actionService}
}

type createActionRequest struct {
  RecommendationID string  `json:"recommendationId" binding:"required"`
  ActionTaken      *string `json:"actionTaken"`
  Notes            *string `json:"notes"`
}

func (ah *ActionHandler) Create(c *gin.Context) {
  var req createActionRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  recommendationID, err := uuid.Parse(req.RecommendationID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_RECOMMENDATION_ID", err)
    return
  }
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", errors.New("missing request identity"))
    return
  }

  action := &types.Action{
    RecommendationID: recommendationID,
    UserID:           rd.UserID,
    Notes:            req.Notes,
  }
  if req.ActionTaken != nil {
    actionTaken, err := types.ParseActionTaken(*req.ActionTaken)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_ACTION_TAKEN", err)
      return
    }
    action.ActionTaken = actionTaken
  }

  created, err := ah.actionService.Create(c.Request.Context(), action)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (ah *ActionHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.ActionFilter
  if filter.UserID, err = parseOptionalUUIDQuery(c, "userId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_USER_ID", err)
    return
  }
  if filter.RecommendationID, err = parseOptionalUUIDQuery(c, "recommendationId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_RECOMMENDATION_ID", err)
    return
  }
  if filter.CompanyID, err = parseOptionalUUIDQuery(c, "companyId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }
  if raw := c.Query("actionTaken"); raw != "" {
    actionTaken, err := types.ParseActionTaken(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_ACTION_TAKEN", err)
      return
    }
    filter.ActionTaken = &actionTaken
  }

  actions, pagination, err := ah.actionService.List(c.Request.Context(), page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, actions, pagination)
}

func (ah *ActionHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  action, err := ah.actionService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, action)
}

type updateActionRequest struct {
  ActionTaken *string `json:"actionTaken"`
  Notes       *string `json:"notes"`
}

func (ah *ActionHandler) Update(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateActionRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  patch := types.ActionPatch{Notes: req.Notes}
  if req.ActionTaken != nil {
    actionTaken, err := types.ParseActionTaken(*req.ActionTaken)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_ACTION_TAKEN", err)
      return
    }
    patch.ActionTaken = &actionTaken
  }

  action, err := ah.actionService.Update(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, action)
}

func (ah *ActionHandler) Stats(c *gin.Context) {
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

  stats, err := ah.actionService.Stats(c.Request.Context(), days, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, stats)
}
