package middleware

import (
  "fmt"
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/redis/go-redis/v9"
  "github.com/zultopia/freshsure-be/internal/logger"
)

// RateLimitMiddleware throttles by client IP with a fixed window counter in
// redis. When redis is not configured the middleware is a pass-through.
type RateLimitMiddleware struct {
  log    *logger.Logger
  client *redis.Client
  limit  int
  window time.Duration
}

func NewRateLimitMiddleware(log *logger.Logger, client *redis.Client, limit int, window time.Duration) *RateLimitMiddleware {
  return &RateLimitMiddleware{
    log:    log.With("middleware", "RateLimitMiddleware"),
    client: client,
    limit:  limit,
    window: window,
  }
}

func (rm *RateLimitMiddleware) Limit() gin.HandlerFunc {
  return func(c *gin.Context) {
    if rm.client == nil {
      c.Next()
      return
    }
    ctx := c.Request.Context()
    key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

    count, err := rm.client.Incr(ctx, key).Result()
    if err != nil {
      // Redis being down must not take the API with it.
      rm.log.Warn("rate limit check failed", "error", err)
      c.Next()
      return
    }
    if count == 1 {
      if err := rm.client.Expire(ctx, key, rm.window).Err(); err != nil {
        rm.log.Warn("rate limit expire failed", "error", err)
      }
    }
    if count > int64(rm.limit) {
      c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
        "error": "too many requests, please try again later",
      })
      return
    }
    c.Next()
  }
}
