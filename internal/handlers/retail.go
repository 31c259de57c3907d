package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RetailHandler struct {
  retailService services.RetailService
}

func NewRetailHandler(retailService services.RetailService) *RetailHandler {
  return &RetailHandler{retailService: retailService}
}

type createStoreRequest struct {
  Name      string  `json:"name" binding:"required"`
  Location  *string `json:"location"`
  CompanyID string  `json:"companyId" binding:"required"`
}

func (rh *RetailHandler) CreateStore(c *gin.Context) {
  var req createStoreRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  companyID, err := uuid.Parse(req.CompanyID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", err)
    return
  }

  created, err := rh.retailService.CreateStore(c.Request.Context(), &types.Store{
    Name:      req.Name,
    Location:  req.Location,
    CompanyID: companyID,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (rh *RetailHandler) ListStores(c *gin.Context) {
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

  stores, pagination, err := rh.retailService.ListStores(c.Request.Context(), page, companyID)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, stores, pagination)
}

func (rh *RetailHandler) GetStoreByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  store, err := rh.retailService.GetStoreByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, store)
}

type createInventoryRequest struct {
  BatchID  string          `json:"batchId" binding:"required"`
  StoreID  string          `json:"storeId" binding:"required"`
  StockQty decimal.Decimal `json:"stockQty" binding:"required"`
}

func (rh *RetailHandler) CreateInventory(c *gin.Context) {
  var req createInventoryRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  storeID, err := uuid.Parse(req.StoreID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_STORE_ID", err)
    return
  }

  created, err := rh.retailService.CreateInventory(c.Request.Context(), &types.RetailInventory{
    BatchID:  batchID,
    StoreID:  storeID,
    StockQty: req.StockQty,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (rh *RetailHandler) ListInventory(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.InventoryFilter
  if filter.StoreID, err = parseOptionalUUIDQuery(c, "storeId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_STORE_ID", err)
    return
  }
  if filter.BatchID, err = parseOptionalUUIDQuery(c, "batchId"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }

  inventory, pagination, err := rh.retailService.ListInventory(c.Request.Context(), page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, inventory, pagination)
}

func (rh *RetailHandler) ListLowStock(c *gin.Context) {
  storeID, err := parseOptionalUUIDQuery(c, "storeId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_STORE_ID", err)
    return
  }
  threshold := decimal.NewFromInt(10)
  if raw := c.Query("threshold"); raw != "" {
    parsed, err := decimal.NewFromString(raw)
    if err != nil || parsed.IsNegative() {
      RespondError(c, http.StatusBadRequest, "INVALID_THRESHOLD", err)
      return
    }
    threshold = parsed
  }

  inventory, err := rh.retailService.ListLowStock(c.Request.Context(), storeID, threshold)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": inventory})
}

func (rh *RetailHandler) GetInventoryByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  inventory, err := rh.retailService.GetInventoryByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, inventory)
}

type updateStockRequest struct {
  StockQty decimal.Decimal `json:"stockQty" binding:"required"`
}

func (rh *RetailHandler) UpdateStock(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateStockRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  inventory, err := rh.retailService.UpdateStock(c.Request.Context(), id, req.StockQty)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, inventory)
}

type createPricingRequest struct {
  InventoryID      string          `json:"inventoryId" binding:"required"`
  OriginalPrice    decimal.Decimal `json:"originalPrice" binding:"required"`
  RecommendedPrice decimal.Decimal `json:"recommendedPrice" binding:"required"`
  DiscountPct      *float64        `json:"discountPct" binding:"required"`
  Reason           *string         `json:"reason"`
}

func (rh *RetailHandler) CreatePricing(c *gin.Context) {
  var req createPricingRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  inventoryID, err := uuid.Parse(req.InventoryID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_INVENTORY_ID", err)
    return
  }

  created, err := rh.retailService.CreatePricing(c.Request.Context(), &types.PricingRecommendation{
    InventoryID:      inventoryID,
    OriginalPrice:    req.OriginalPrice,
    RecommendedPrice: req.RecommendedPrice,
    DiscountPct:      *req.DiscountPct,
    Reason:           req.Reason,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (rh *RetailHandler) ListPricing(c *gin.Context) {
  inventoryID, err := parseUUIDParam(c, "inventoryId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_INVENTORY_ID", err)
    return
  }
  limit, err := parseIntQuery(c, "limit", 20, 100)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_LIMIT", err)
    return
  }

  pricing, err := rh.retailService.ListPricing(c.Request.Context(), inventoryID, limit)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": pricing})
}
