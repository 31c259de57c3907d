package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/zultopia/freshsure-be/internal/handlers"
  "github.com/zultopia/freshsure-be/internal/middleware"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RouterConfig struct {
  AuthHandler           *handlers.AuthHandler
  CompanyHandler        *handlers.CompanyHandler
  CommodityHandler      *handlers.CommodityHandler
  BatchHandler          *handlers.BatchHandler
  SensorHandler         *handlers.SensorHandler
  QualityHandler        *handlers.QualityHandler
  RecommendationHandler *handlers.RecommendationHandler
  ActionHandler         *handlers.ActionHandler
  LogisticsHandler      *handlers.LogisticsHandler
  RetailHandler         *handlers.RetailHandler
  FeedbackHandler       *handlers.FeedbackHandler
  OutcomeHandler        *handlers.OutcomeHandler
  AnalyticsHandler      *handlers.AnalyticsHandler
  HealthcheckHandler    *handlers.HealthcheckHandler
  AuthMiddleware        *middleware.AuthMiddleware
  RateLimitMiddleware   *middleware.RateLimitMiddleware
  AllowOrigins          []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  origins := cfg.AllowOrigins
  if len(origins) == 0 {
    origins = []string{"http://localhost:3000", "http://localhost:5173"}
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))
  if cfg.RateLimitMiddleware != nil {
    router.Use(cfg.RateLimitMiddleware.Limit())
  }

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", cfg.HealthcheckHandler.Check)
  api := router.Group("/api")
  {
    api.POST("/auth/register", cfg.AuthHandler.Register)
    api.POST("/auth/login", cfg.AuthHandler.Login)
  }

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())

  // Auth
  protected.GET("/auth/profile", cfg.AuthHandler.Profile)

  // Companies
  protected.POST("/companies", cfg.AuthMiddleware.RequireRoles(), cfg.CompanyHandler.Create)
  protected.GET("/companies", cfg.CompanyHandler.List)
  protected.GET("/companies/:id", cfg.CompanyHandler.GetByID)
  protected.PATCH("/companies/:id", cfg.AuthMiddleware.RequireRoles(), cfg.CompanyHandler.Update)
  protected.DELETE("/companies/:id", cfg.AuthMiddleware.RequireRoles(), cfg.CompanyHandler.Delete)

  // Commodities
  protected.POST("/commodities", cfg.AuthMiddleware.RequireRoles(types.UserRoleFarmer), cfg.CommodityHandler.Create)
  protected.GET("/commodities", cfg.CommodityHandler.List)
  protected.GET("/commodities/:id", cfg.CommodityHandler.GetByID)
  protected.PATCH("/commodities/:id", cfg.AuthMiddleware.RequireRoles(types.UserRoleFarmer), cfg.CommodityHandler.Update)
  protected.DELETE("/commodities/:id", cfg.AuthMiddleware.RequireRoles(), cfg.CommodityHandler.Delete)

  // Batches
  protected.POST("/batches", cfg.AuthMiddleware.RequireRoles(types.UserRoleFarmer), cfg.BatchHandler.Create)
  protected.GET("/batches", cfg.BatchHandler.List)
  protected.GET("/batches/summary", cfg.BatchHandler.Summary)
  protected.GET("/batches/:id", cfg.BatchHandler.GetByID)
  protected.PATCH("/batches/:id", cfg.AuthMiddleware.RequireRoles(types.UserRoleFarmer, types.UserRoleLogistics), cfg.BatchHandler.Update)
  protected.DELETE("/batches/:id", cfg.AuthMiddleware.RequireRoles(), cfg.BatchHandler.Delete)

  // Sensors and readings
  protected.POST("/sensors", cfg.AuthMiddleware.RequireRoles(types.UserRoleFarmer, types.UserRoleLogistics), cfg.SensorHandler.Create)
  protected.GET("/sensors", cfg.SensorHandler.List)
  protected.GET("/sensors/:id", cfg.SensorHandler.GetByID)
  protected.PATCH("/sensors/:id", cfg.AuthMiddleware.RequireRoles(types.UserRoleFarmer, types.UserRoleLogistics), cfg.SensorHandler.Update)
  protected.POST("/sensors/readings", cfg.SensorHandler.CreateReading)
  protected.GET("/sensors/readings/:batchId", cfg.SensorHandler.ListReadings)

  // Quality scores and shelf-life predictions
  protected.POST("/quality/scores", cfg.QualityHandler.CreateScore)
  protected.GET("/quality/scores/:batchId/latest", cfg.QualityHandler.LatestScore)
  protected.GET("/quality/scores/:batchId/history", cfg.QualityHandler.ScoreHistory)
  protected.POST("/quality/predictions", cfg.QualityHandler.CreatePrediction)
  protected.GET("/quality/predictions/:batchId/latest", cfg.QualityHandler.LatestPrediction)
  protected.GET("/quality/predictions/:batchId/history", cfg.QualityHandler.PredictionHistory)
  protected.GET("/quality/performance", cfg.QualityHandler.Performance)

  // Recommendations
  protected.POST("/recommendations", cfg.RecommendationHandler.Create)
  protected.GET("/recommendations", cfg.RecommendationHandler.List)
  protected.GET("/recommendations/critical", cfg.RecommendationHandler.ListCritical)
  protected.GET("/recommendations/priority/:priority", cfg.RecommendationHandler.ListByPriority)
  protected.GET("/recommendations/:id", cfg.RecommendationHandler.GetByID)
  protected.PATCH("/recommendations/:id", cfg.RecommendationHandler.Update)

  // Actions
  protected.POST("/actions", cfg.ActionHandler.Create)
  protected.GET("/actions", cfg.ActionHandler.List)
  protected.GET("/actions/stats", cfg.ActionHandler.Stats)
  protected.GET("/actions/:id", cfg.ActionHandler.GetByID)
  protected.PATCH("/actions/:id", cfg.ActionHandler.Update)

  // Logistics
  protected.POST("/logistics/routes", cfg.AuthMiddleware.RequireRoles(types.UserRoleLogistics), cfg.LogisticsHandler.CreateRoute)
  protected.GET("/logistics/routes", cfg.LogisticsHandler.ListRoutes)
  protected.GET("/logistics/routes/:id", cfg.LogisticsHandler.GetRouteByID)
  protected.POST("/logistics/batch-routes", cfg.AuthMiddleware.RequireRoles(types.UserRoleLogistics), cfg.LogisticsHandler.AssignBatch)
  protected.PATCH("/logistics/batch-routes/:id", cfg.AuthMiddleware.RequireRoles(types.UserRoleLogistics), cfg.LogisticsHandler.UpdateBatchRoute)
  protected.GET("/logistics/batch-routes/active", cfg.LogisticsHandler.ListActiveBatchRoutes)
  protected.GET("/logistics/batches/:batchId/routes", cfg.LogisticsHandler.ListBatchRoutes)

  // Retail
  protected.POST("/retail/stores", cfg.AuthMiddleware.RequireRoles(types.UserRoleRetail), cfg.RetailHandler.CreateStore)
  protected.GET("/retail/stores", cfg.RetailHandler.ListStores)
  protected.GET("/retail/stores/:id", cfg.RetailHandler.GetStoreByID)
  protected.POST("/retail/inventory", cfg.AuthMiddleware.RequireRoles(types.UserRoleRetail), cfg.RetailHandler.CreateInventory)
  protected.GET("/retail/inventory", cfg.RetailHandler.ListInventory)
  protected.GET("/retail/inventory/low-stock", cfg.RetailHandler.ListLowStock)
  protected.GET("/retail/inventory/:id", cfg.RetailHandler.GetInventoryByID)
  protected.PUT("/retail/inventory/:id/stock", cfg.AuthMiddleware.RequireRoles(types.UserRoleRetail), cfg.RetailHandler.UpdateStock)
  protected.POST("/retail/pricing", cfg.AuthMiddleware.RequireRoles(types.UserRoleRetail), cfg.RetailHandler.CreatePricing)
  protected.GET("/retail/pricing/:inventoryId", cfg.RetailHandler.ListPricing)

  // Feedback
  protected.POST("/feedback", cfg.FeedbackHandler.Create)
  protected.GET("/feedback", cfg.FeedbackHandler.List)
  protected.GET("/feedback/:id", cfg.FeedbackHandler.GetByID)

  // Outcomes
  protected.POST("/outcomes", cfg.OutcomeHandler.Create)
  protected.GET("/outcomes", cfg.OutcomeHandler.List)
  protected.GET("/outcomes/stats", cfg.OutcomeHandler.Stats)
  protected.GET("/outcomes/:id", cfg.OutcomeHandler.GetByID)

  // Analytics
  protected.GET("/analytics/dashboard", cfg.AnalyticsHandler.Dashboard)
  protected.GET("/analytics/weekly-metrics", cfg.AnalyticsHandler.WeeklyMetrics)
  protected.POST("/analytics/weekly-metrics", cfg.AuthMiddleware.RequireRoles(), cfg.AnalyticsHandler.RecordWeeklyMetric)

  return router
}
