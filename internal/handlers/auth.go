package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

type registerRequest struct {
  Name      string `json:"name" binding:"required"`
  Email     string `json:"email" binding:"required,email"`
  Password  string `json:"password" binding:"required,min=8"`
  Role      string `json:"role" binding:"required"`
  CompanyID string `json:"companyId" binding:"required"`
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req registerRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  role, err := types.ParseUserRole(req.Role)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ROLE", err)
    return
  }
  companyID, err := uuid.Parse(req.CompanyID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_COMPANY_ID", errors.New("companyId must be a valid uuid"))
    return
  }

  user, token, err := ah.authService.Register(c.Request.Context(), services.RegisterInput{
    Name:      req.Name,
    Email:     req.Email,
    Password:  req.Password,
    Role:      role,
    CompanyID: companyID,
  })
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, gin.H{"user": user, "token": token})
}

type loginRequest struct {
  Email    string `json:"email" binding:"required,email"`
  Password string `json:"password" binding:"required"`
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req loginRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  user, token, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user, "token": token})
}

func (ah *AuthHandler) Profile(c *gin.Context) {
  user, err := ah.authService.Profile(c.Request.Context())
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, user)
}
