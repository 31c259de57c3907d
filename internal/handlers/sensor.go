package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/services"
  "github.com/zultopia/freshsure-be/internal/types"
)

type SensorHandler struct {
  sensorService services.SensorService
}

func NewSensorHandler(sensorService services.SensorService) *SensorHandler {
  return &SensorHandler{sensorService: sensorService}
}

type createSensorRequest struct {
  SensorType  string  `json:"sensorType" binding:"required"`
  Model       *string `json:"model"`
  InstalledAt *string `json:"installedAt"`
  IsActive    *bool   `json:"isActive"`
}

func (sh *SensorHandler) Create(c *gin.Context) {
  var req createSensorRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  sensorType, err := types.ParseSensorType(req.SensorType)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_SENSOR_TYPE", err)
    return
  }

  sensor := &types.Sensor{
    SensorType:  sensorType,
    Model:       req.Model,
    InstalledAt: req.InstalledAt,
    IsActive:    true,
  }
  if req.IsActive != nil {
    sensor.IsActive = *req.IsActive
  }

  created, err := sh.sensorService.Create(c.Request.Context(), sensor)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (sh *SensorHandler) List(c *gin.Context) {
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }
  isActive, err := parseOptionalBoolQuery(c, "isActive")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_IS_ACTIVE", err)
    return
  }

  sensors, pagination, err := sh.sensorService.List(c.Request.Context(), page, isActive)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, sensors, pagination)
}

func (sh *SensorHandler) GetByID(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }

  sensor, err := sh.sensorService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, sensor)
}

func (sh *SensorHandler) Update(c *gin.Context) {
  id, err := parseUUIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_ID", err)
    return
  }
  var patch types.SensorPatch
  if err := c.ShouldBindJSON(&patch); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }

  sensor, err := sh.sensorService.Update(c.Request.Context(), id, patch)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondOK(c, sensor)
}

type createReadingRequest struct {
  BatchID     string     `json:"batchId" binding:"required"`
  SensorID    string     `json:"sensorId" binding:"required"`
  Temperature *float64   `json:"temperature"`
  Humidity    *float64   `json:"humidity"`
  PH          *float64   `json:"ph"`
  GasLevel    *float64   `json:"gasLevel"`
  Pressure    *float64   `json:"pressure"`
  ImageURL    *string    `json:"imageUrl"`
  Notes       *string    `json:"notes"`
  Timestamp   *time.Time `json:"timestamp"`
}

func (sh *SensorHandler) CreateReading(c *gin.Context) {
  var req createReadingRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
    return
  }
  batchID, err := uuid.Parse(req.BatchID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  sensorID, err := uuid.Parse(req.SensorID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_SENSOR_ID", err)
    return
  }

  reading := &types.SensorReading{
    BatchID:     batchID,
    SensorID:    sensorID,
    Temperature: req.Temperature,
    Humidity:    req.Humidity,
    PH:          req.PH,
    GasLevel:    req.GasLevel,
    Pressure:    req.Pressure,
    ImageURL:    req.ImageURL,
    Notes:       req.Notes,
  }
  if req.Timestamp != nil {
    reading.Timestamp = *req.Timestamp
  } else {
    reading.Timestamp = time.Now().UTC()
  }

  created, err := sh.sensorService.RecordReading(c.Request.Context(), reading)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondCreated(c, created)
}

func (sh *SensorHandler) ListReadings(c *gin.Context) {
  batchID, err := parseUUIDParam(c, "batchId")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_BATCH_ID", err)
    return
  }
  page, err := parsePageParams(c)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_PAGINATION", err)
    return
  }

  var filter repos.ReadingFilter
  if filter.StartDate, err = parseOptionalDateQuery(c, "startDate"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_START_DATE", err)
    return
  }
  if filter.EndDate, err = parseOptionalDateQuery(c, "endDate"); err != nil {
    RespondError(c, http.StatusBadRequest, "INVALID_END_DATE", err)
    return
  }

  readings, pagination, err := sh.sensorService.ListReadings(c.Request.Context(), batchID, page, filter)
  if err != nil {
    RespondAppError(c, err)
    return
  }
  RespondList(c, readings, pagination)
}
