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

type FeedbackHandler struct {
  feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
  return &FeedbackHandler{feedbackService: feedbackService}
}

type createFeedbackRequest struct {
  BatchID      *string `json:"batchId"`
  FeedbackType string  `json:"feedbackType" binding:"required"`
  Message      string  `json:"message" binding:"required"`
}

func (fh *FeedbackHandler) Create(c *gin.Context) {
  var req createFeedbackRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", errors.New("missing request identity"))
    return
  }

  feedback := &types.Feedback{
    UserID:       rd.UserID,
    FeedbackType: req.FeedbackType,
    Message:      req.Message,
  }
  if req.BatchID != nil {
    batchID, err := uuid.Parse(*req.BatchID)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
      return
    }
    feedback.BatchID = &batchID
  }

  created, err := fh.feedbackService.Create(c.Request.Context(), feedback)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (fh *FeedbackHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.FeedbackFilter
  if filter.UserID, err = parseOptionalUUIDQuery(c, "userId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_USER_ID", err)
    return
  }
  if filter.BatchID, err = parseOptionalUUIDQuery(c, "batchId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  if raw := c.Query("feedbackType"); raw != "" {
    filter.FeedbackType = &raw
  }

  feedback, pagination, err := fh.feedbackService.List(c.Request.Context(), page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, feedback, pagination)
}

func (fh *FeedbackHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  feedback, err := fh.feedbackService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, feedback)
}
