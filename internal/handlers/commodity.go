package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type CommodityHandler struct {
  commodityService services.CommodityService
}

func NewCommodityHandler(commodityService services.CommodityService) *CommodityHandler {
  return &CommodityHandler{commodityService: commodityService}
}

type createCommodityRequest struct {
  Name              string `json:"name" binding:"required"`
  Category          string `json:"category" binding:"required"`
  BaseShelfLifeDays int    `json:"baseShelfLifeDays" binding:"required,min=1"`
}

func (ch *CommodityHandler) Create(c *gin.Context) {
  var req createCommodityRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  category, err := types.ParseCommodityCategory(req.Category)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_CATEGORY", err)
    return
  }

  commodity, err := ch.commodityService.Create(c.Request.Context(), &types.Commodity{
    Name:              req.Name,
    Category:          category,
    BaseShelfLifeDays: req.BaseShelfLifeDays,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, commodity)
}

func (ch *CommodityHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }
  var category *types.CommodityCategory
  if raw := c.Query("category"); raw != "" {
    parsed, err := types.ParseCommodityCategory(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_CATEGORY", err)
      return
    }
    category = &parsed
  }

  commodities, pagination, err := ch.commodityService.List(c.Request.Context(), page, category)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, commodities, pagination)
}

func (ch *CommodityHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  commodity, err := ch.commodityService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, commodity)
}

type updateCommodityRequest struct {
  Name              *string `json:"name"`
  Category          *string `json:"category"`
  BaseShelfLifeDays *int    `json:"baseShelfLifeDays"`
}

func (ch *CommodityHandler) Update(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateCommodityRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  patch := types.CommodityPatch{
    Name:              req.Name,
    BaseShelfLifeDays: req.BaseShelfLifeDays,
  }
  if req.Category != nil {
    category, err := types.ParseCommodityCategory(*req.Category)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_CATEGORY", err)
      return
    }
    patch.Category = &category
  }

  commodity, err := ch.commodityService.Update(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, commodity)
}

func (ch *CommodityHandler) Delete(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  if err := ch.commodityService.Delete(c.Request.Context(), id); err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"deleted": true})
}
