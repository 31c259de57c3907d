package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/types"
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

// ListEnvelope is the shared shape of every paginated listing.
type ListEnvelope struct {
  Data       any              `json:"data"`
  Pagination types.Pagination `json:"pagination"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

// RespondAppError maps a service error onto the wire: typed errors keep
// their status, anything else becomes a 500.
func RespondAppError(c *gin.Context, err error) {
  if ae, ok := apierr.From(err); ok {
    RespondError(c, ae.Status, ae.Code, ae)
    return
  }
  RespondError(c, http.StatusInternalServerError, "INTERNAL", err)
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
  c.JSON(http.StatusCreated, payload)
}

func RespondList(c *gin.Context, data any, pagination types.Pagination) {
  c.JSON(http.StatusOK, ListEnvelope{Data: data, Pagination: pagination})
}
