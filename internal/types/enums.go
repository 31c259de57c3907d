package types

import (
  "fmt"
)

// Enum values mirror the wire contract exactly. Every inbound string is
// funneled through its Parse helper at the validation boundary so services
// only ever see legal values.

type UserRole string

const (
  UserRoleFarmer    UserRole = "FARMER"
  UserRoleLogistics UserRole = "LOGISTICS"
  UserRoleRetail    UserRole = "RETAIL"
  UserRoleAdmin     UserRole = "ADMIN"
)

func ParseUserRole(s string) (UserRole, error) {
  switch UserRole(s) {
  case UserRoleFarmer, UserRoleLogistics, UserRoleRetail, UserRoleAdmin:
    return UserRole(s), nil
  }
  return "", fmt.Errorf("invalid user role %q", s)
}

type CompanyType string

const (
  CompanyTypeFarm      CompanyType = "FARM"
  CompanyTypeLogistics CompanyType = "LOGISTICS"
  CompanyTypeRetail    CompanyType = "RETAIL"
  CompanyTypeProcessor CompanyType = "PROCESSOR"
)

func ParseCompanyType(s string) (CompanyType, error) {
  switch CompanyType(s) {
  case CompanyTypeFarm, CompanyTypeLogistics, CompanyTypeRetail, CompanyTypeProcessor:
    return CompanyType(s), nil
  }
  return "", fmt.Errorf("invalid company type %q", s)
}

type CommodityCategory string

const (
  CommodityCategoryFruit     CommodityCategory = "FRUIT"
  CommodityCategoryVegetable CommodityCategory = "VEGETABLE"
  CommodityCategoryMeat      CommodityCategory = "MEAT"
  CommodityCategoryDairy     CommodityCategory = "DAIRY"
  CommodityCategoryGrain     CommodityCategory = "GRAIN"
  CommodityCategoryOther     CommodityCategory = "OTHER"
)

func ParseCommodityCategory(s string) (CommodityCategory, error) {
  switch CommodityCategory(s) {
  case CommodityCategoryFruit, CommodityCategoryVegetable, CommodityCategoryMeat,
    CommodityCategoryDairy, CommodityCategoryGrain, CommodityCategoryOther:
    return CommodityCategory(s), nil
  }
  return "", fmt.Errorf("invalid commodity category %q", s)
}

type BatchStatus string

const (
  BatchStatusActive     BatchStatus = "ACTIVE"
  BatchStatusSold       BatchStatus = "SOLD"
  BatchStatusDowngraded BatchStatus = "DOWNGRADED"
  BatchStatusSpoiled    BatchStatus = "SPOILED"
  BatchStatusInTransit  BatchStatus = "IN_TRANSIT"
)

func ParseBatchStatus(s string) (BatchStatus, error) {
  switch BatchStatus(s) {
  case BatchStatusActive, BatchStatusSold, BatchStatusDowngraded, BatchStatusSpoiled, BatchStatusInTransit:
    return BatchStatus(s), nil
  }
  return "", fmt.Errorf("invalid batch status %q", s)
}

type SensorType string

const (
  SensorTypeTemperature SensorType = "TEMPERATURE"
  SensorTypeHumidity    SensorType = "HUMIDITY"
  SensorTypePH          SensorType = "PH"
  SensorTypeImaging     SensorType = "IMAGING"
  SensorTypeManual      SensorType = "MANUAL"
  SensorTypeGas         SensorType = "GAS"
  SensorTypePressure    SensorType = "PRESSURE"
)

func ParseSensorType(s string) (SensorType, error) {
  switch SensorType(s) {
  case SensorTypeTemperature, SensorTypeHumidity, SensorTypePH, SensorTypeImaging,
    SensorTypeManual, SensorTypeGas, SensorTypePressure:
    return SensorType(s), nil
  }
  return "", fmt.Errorf("invalid sensor type %q", s)
}

type RiskLevel string

const (
  RiskLevelLow      RiskLevel = "LOW"
  RiskLevelMedium   RiskLevel = "MEDIUM"
  RiskLevelHigh     RiskLevel = "HIGH"
  RiskLevelCritical RiskLevel = "CRITICAL"
)

func ParseRiskLevel(s string) (RiskLevel, error) {
  switch RiskLevel(s) {
  case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
    return RiskLevel(s), nil
  }
  return "", fmt.Errorf("invalid risk level %q", s)
}

type RecommendationType string

const (
  RecommendationTypeSellFast     RecommendationType = "SELL_FAST"
  RecommendationTypeStore        RecommendationType = "STORE"
  RecommendationTypeReroute      RecommendationType = "REROUTE"
  RecommendationTypeDowngrade    RecommendationType = "DOWNGRADE"
  RecommendationTypeDiscount     RecommendationType = "DISCOUNT"
  RecommendationTypePriorityShip RecommendationType = "PRIORITY_SHIP"
)

func ParseRecommendationType(s string) (RecommendationType, error) {
  switch RecommendationType(s) {
  case RecommendationTypeSellFast, RecommendationTypeStore, RecommendationTypeReroute,
    RecommendationTypeDowngrade, RecommendationTypeDiscount, RecommendationTypePriorityShip:
    return RecommendationType(s), nil
  }
  return "", fmt.Errorf("invalid recommendation type %q", s)
}

type Priority string

const (
  PriorityInfo     Priority = "INFO"
  PriorityWarning  Priority = "WARNING"
  PriorityCritical Priority = "CRITICAL"
)

func ParsePriority(s string) (Priority, error) {
  switch Priority(s) {
  case PriorityInfo, PriorityWarning, PriorityCritical:
    return Priority(s), nil
  }
  return "", fmt.Errorf("invalid priority %q", s)
}

type ActionTaken string

const (
  ActionTakenAccepted ActionTaken = "ACCEPTED"
  ActionTakenModified ActionTaken = "MODIFIED"
  ActionTakenIgnored  ActionTaken = "IGNORED"
  ActionTakenPending  ActionTaken = "PENDING"
)

func ParseActionTaken(s string) (ActionTaken, error) {
  switch ActionTaken(s) {
  case ActionTakenAccepted, ActionTakenModified, ActionTakenIgnored, ActionTakenPending:
    return ActionTaken(s), nil
  }
  return "", fmt.Errorf("invalid action taken value %q", s)
}

type BatchRouteStatus string

const (
  BatchRouteStatusPlanned   BatchRouteStatus = "PLANNED"
  BatchRouteStatusInTransit BatchRouteStatus = "IN_TRANSIT"
  BatchRouteStatusDelivered BatchRouteStatus = "DELIVERED"
  BatchRouteStatusCancelled BatchRouteStatus = "CANCELLED"
)

func ParseBatchRouteStatus(s string) (BatchRouteStatus, error) {
  switch BatchRouteStatus(s) {
  case BatchRouteStatusPlanned, BatchRouteStatusInTransit, BatchRouteStatusDelivered, BatchRouteStatusCancelled:
    return BatchRouteStatus(s), nil
  }
  return "", fmt.Errorf("invalid batch route status %q", s)
}
