package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type CompanyHandler struct {
  companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
  return &CompanyHandler{companyService: companyService}
}

type createCompanyRequest struct {
  Name        string  `json:"name" binding:"required"`
  CompanyType string  `json:"companyType" binding:"required"`
  Country     *string `json:"country"`
}

func (ch *CompanyHandler) Create(c *gin.Context) {
  var req createCompanyRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  companyType, err := types.ParseCompanyType(req.CompanyType)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_TYPE", err)
    return
  }

  company, err := ch.companyService.Create(c.Request.Context(), &types.Company{
    Name:        req.Name,
    CompanyType: companyType,
    Country:     req.Country,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, company)
}

func (ch *CompanyHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  companies, pagination, err := ch.companyService.List(c.Request.Context(), page)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, companies, pagination)
}

func (ch *CompanyHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  company, err := ch.companyService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, company)
}

type updateCompanyRequest struct {
  Name        *string `json:"name"`
  CompanyType *string `json:"companyType"`
  Country     *string `json:"country"`
}

func (ch *CompanyHandler) Update(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var req updateCompanyRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  patch := types.CompanyPatch{
    Name:    req.Name,
    Country: req.Country,
  }
  if req.CompanyType != nil {
    companyType, err := types.ParseCompanyType(*req.CompanyType)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_TYPE", err)
      return
    }
    patch.CompanyType = &companyType
  }

  company, err := ch.companyService.Update(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, company)
}

func (ch *CompanyHandler) Delete(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  if err := ch.companyService.Delete(c.Request.Context(), id); err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"deleted": true})
}
