package main

import (
  "fmt"
  "os"
  "strings"
  "time"
  "github.com/joho/godotenv"
  "github.com/redis/go-redis/v9"
  "github.com/zultopia/freshsure-be/internal/db"
  "github.com/zultopia/freshsure-be/internal/handlers"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/middleware"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/server"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/utils"
)

func main() {
  // .env is optional; container deployments inject env directly.
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  tokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
  rateLimitMax := utils.GetEnvAsInt("RATE_LIMIT_MAX", 100, log)
  rateLimitWindow := utils.GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 900, log)
  allowOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Redis (optional, rate limiter only)
  var redisClient *redis.Client
  if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
    redisClient = redis.NewClient(&redis.Options{
      Addr:     redisAddr,
      Password: os.Getenv("REDIS_PASSWORD"),
    })
  }

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  companyRepo := repos.NewCompanyRepo(thePG, log)
  commodityRepo := repos.NewCommodityRepo(thePG, log)
  batchRepo := repos.NewBatchRepo(thePG, log)
  sensorRepo := repos.NewSensorRepo(thePG, log)
  qualityRepo := repos.NewQualityRepo(thePG, log)
  recommendationRepo := repos.NewRecommendationRepo(thePG, log)
  actionRepo := repos.NewActionRepo(thePG, log)
  routeRepo := repos.NewRouteRepo(thePG, log)
  batchRouteRepo := repos.NewBatchRouteRepo(thePG, log)
  storeRepo := repos.NewStoreRepo(thePG, log)
  retailRepo := repos.NewRetailRepo(thePG, log)
  feedbackRepo := repos.NewFeedbackRepo(thePG, log)
  outcomeRepo := repos.NewOutcomeRepo(thePG, log)
  weeklyMetricRepo := repos.NewWeeklyMetricRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, userRepo, companyRepo, jwtSecretKey, time.Duration(tokenTTL)*time.Second)
  companyService := services.NewCompanyService(thePG, log, companyRepo)
  commodityService := services.NewCommodityService(thePG, log, commodityRepo)
  batchService := services.NewBatchService(thePG, log, batchRepo, commodityRepo, companyRepo, qualityRepo)
  sensorService := services.NewSensorService(thePG, log, sensorRepo, batchRepo)
  qualityService := services.NewQualityService(thePG, log, qualityRepo, batchRepo)
  recommendationService := services.NewRecommendationService(thePG, log, recommendationRepo, batchRepo)
  actionService := services.NewActionService(thePG, log, actionRepo, recommendationRepo)
  logisticsService := services.NewLogisticsService(thePG, log, routeRepo, batchRouteRepo, batchRepo)
  retailService := services.NewRetailService(thePG, log, storeRepo, retailRepo, batchRepo, companyRepo, qualityRepo)
  feedbackService := services.NewFeedbackService(thePG, log, feedbackRepo, batchRepo)
  outcomeService := services.NewOutcomeService(thePG, log, outcomeRepo, batchRepo)
  analyticsService := services.NewAnalyticsService(thePG, log, batchRepo, qualityRepo, recommendationRepo, weeklyMetricRepo, companyRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  companyHandler := handlers.NewCompanyHandler(companyService)
  commodityHandler := handlers.NewCommodityHandler(commodityService)
  batchHandler := handlers.NewBatchHandler(batchService)
  sensorHandler := handlers.NewSensorHandler(sensorService)
  qualityHandler := handlers.NewQualityHandler(qualityService)
  recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
  actionHandler := handlers.NewActionHandler(actionService)
  logisticsHandler := handlers.NewLogisticsHandler(logisticsService)
  retailHandler := handlers.NewRetailHandler(retailService)
  feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
  outcomeHandler := handlers.NewOutcomeHandler(outcomeService)
  analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
  healthcheckHandler := handlers.NewHealthcheckHandler()

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)
  rateLimitMiddleware := middleware.NewRateLimitMiddleware(log, redisClient, rateLimitMax, time.Duration(rateLimitWindow)*time.Second)

  // Router
  log.Info("Setting up router from main...")
  var origins []string
  if allowOrigins != "" {
    origins = strings.Split(allowOrigins, ",")
  }
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:           authHandler,
    CompanyHandler:        companyHandler,
    CommodityHandler:      commodityHandler,
    BatchHandler:          batchHandler,
    SensorHandler:         sensorHandler,
    QualityHandler:        qualityHandler,
    RecommendationHandler: recommendationHandler,
    ActionHandler:         actionHandler,
    LogisticsHandler:      logisticsHandler,
    RetailHandler:         retailHandler,
    FeedbackHandler:       feedbackHandler,
    OutcomeHandler:        outcomeHandler,
    AnalyticsHandler:      analyticsHandler,
    HealthcheckHandler:    healthcheckHandler,
    AuthMiddleware:        authMiddleware,
    RateLimitMiddleware:   rateLimitMiddleware,
    AllowOrigins:          origins,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
  if err := postgresService.Close(); err != nil {
    log.Warn("Postgres close failed", "error", err)
  }
}
