package handlers

import (
  "fmt"
  "strconv"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/types"
)

// parsePageParams validates page/limit query values. Page floors at 1 and
// limit is clamped to 1..100; a default of 10 applies when limit is absent.
func parsePageParams(c *gin.Context) (types.PageParams, error) {
  page := 1
  if raw := c.Query("page"); raw != "" {
    n, err := strconv.Atoi(raw)
    if err != nil || n < 1 {
      return types.PageParams{}, fmt.Errorf("page must be a positive integer")
    }
    page = n
  }

  limit := 10
  if raw := c.Query("limit"); raw != "" {
    n, err := strconv.Atoi(raw)
    if err != nil || n < 1 || n > 100 {
      return types.PageParams{}, fmt.Errorf("limit must be between 1 and 100")
    }
    limit = n
  }
  return types.PageParams{Page: page, Limit: limit}, nil
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
  id, err := uuid.Parse(c.Param(name))
  if err != nil {
    return uuid.Nil, fmt.Errorf("%s must be a valid uuid", name)
  }
  return id, nil
}

func parseOptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
  raw := c.Query(name)
  if raw == "" {
    return nil, nil
  }
  id, err := uuid.Parse(raw)
  if err != nil {
    return nil, fmt.Errorf("%s must be a valid uuid", name)
  }
  return &id, nil
}

func parseOptionalDateQuery(c *gin.Context, name string) (*time.Time, error) {
  raw := c.Query(name)
  if raw == "" {
    return nil, nil
  }
  if t, err := time.Parse(time.RFC3339, raw); err == nil {
    return &t, nil
  }
  if t, err := time.Parse("2006-01-02", raw); err == nil {
    return &t, nil
  }
  return nil, fmt.Errorf("%s must be an RFC3339 timestamp or YYYY-MM-DD date", name)
}

// parseIntQuery reads a bounded positive integer query value, falling back
// to def when the parameter is absent.
func parseIntQuery(c *gin.Context, name string, def, max int) (int, error) {
  raw := c.Query(name)
  if raw == "" {
    return def, nil
  }
  n, err := strconv.Atoi(raw)
  if err != nil || n < 1 || n > max {
    return 0, fmt.Errorf("%s must be between 1 and %d", name, max)
  }
  return n, nil
}

func parseOptionalBoolQuery(c *gin.Context, name string) (*bool, error) {
  raw := c.Query(name)
  if raw == "" {
    return nil, nil
  }
  b, err := strconv.ParseBool(raw)
  if err != nil {
    return nil, fmt.Errorf("%s must be true or false", name)
  }
  return &b, nil
}
