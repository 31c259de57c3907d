package handlers

import (
  "errors"
)

var (
  errInvalidScoreRange      = errors.New("qualityScore must be between 0 and 100")
  errInvalidConfidenceRange = errors.New("confidence must be between 0 and 1")
  errInvalidEstimateRange   = errors.New("minEstimate must not exceed maxEstimate")
)
