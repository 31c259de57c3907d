package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
  "github.com/zultopia/freshsure-be/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "freshsure", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  serviceLog.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
  }

  if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Company{},
    &types.User{},
    &types.Commodity{},
    &types.Batch{},
    &types.Sensor{},
    &types.SensorReading{},
    &types.QualityScore{},
    &types.ShelfLifePrediction{},
    &types.Recommendation{},
    &types.Action{},
    &types.Route{},
    &types.BatchRoute{},
    &types.Store{},
    &types.RetailInventory{},
    &types.PricingRecommendation{},
    &types.Feedback{},
    &types.Outcome{},
    &types.WeeklyMetric{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }

  s.log.Info("Configuring foreign key relationships for postgres tables...")
  return s.addForeignKeys()
}

// Children of batch and commodity are ON DELETE RESTRICT: deleting a parent
// that still has dependents must be rejected by the store.
func (s *PostgresService) addForeignKeys() error {
  type fk struct {
    table, name, column, refTable, refColumn, onDelete string
  }
  fks := []fk{
    {"user", "fk_user_company_id", "company_id", "company", "id", "RESTRICT"},
    {"batch", "fk_batch_commodity_id", "commodity_id", "commodity", "id", "RESTRICT"},
    {"batch", "fk_batch_owner_company_id", "owner_company_id", "company", "id", "RESTRICT"},
    {"sensor_reading", "fk_sensor_reading_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"sensor_reading", "fk_sensor_reading_sensor_id", "sensor_id", "sensor", "id", "RESTRICT"},
    {"quality_score", "fk_quality_score_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"shelf_life_prediction", "fk_shelf_life_prediction_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"recommendation", "fk_recommendation_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"action", "fk_action_recommendation_id", "recommendation_id", "recommendation", "id", "RESTRICT"},
    {"action", "fk_action_user_id", "user_id", "user", "id", "RESTRICT"},
    {"route", "fk_route_company_id", "company_id", "company", "id", "SET NULL"},
    {"batch_route", "fk_batch_route_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"batch_route", "fk_batch_route_route_id", "route_id", "route", "id", "RESTRICT"},
    {"store", "fk_store_company_id", "company_id", "company", "id", "RESTRICT"},
    {"retail_inventory", "fk_retail_inventory_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"retail_inventory", "fk_retail_inventory_store_id", "store_id", "store", "id", "RESTRICT"},
    {"pricing_recommendation", "fk_pricing_recommendation_inventory_id", "inventory_id", "retail_inventory", "id", "RESTRICT"},
    {"feedback", "fk_feedback_user_id", "user_id", "user", "id", "RESTRICT"},
    {"feedback", "fk_feedback_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"outcome", "fk_outcome_batch_id", "batch_id", "batch", "id", "RESTRICT"},
    {"weekly_metric", "fk_weekly_metric_company_id", "company_id", "company", "id", "RESTRICT"},
  }
  for _, f := range fks {
    drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, f.table, f.name)
    if err := s.db.Exec(drop).Error; err != nil {
      return fmt.Errorf("failed to drop %s: %w", f.name, err)
    }
    add := fmt.Sprintf(
      `ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q(%q) ON DELETE %s`,
      f.table, f.name, f.column, f.refTable, f.refColumn, f.onDelete,
    )
    if err := s.db.Exec(add).Error; err != nil {
      return fmt.Errorf("failed to add %s: %w", f.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}

func (s *PostgresService) Close() error {
  sqlDB, err := s.db.DB()
  if err != nil {
    return err
  }
  return sqlDB.Close()
}
