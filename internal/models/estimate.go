package models

// EstimateRequest carries the planning parameters for a performance
// projection. It mirrors the campaign fields the estimate depends on.
type EstimateRequest struct {
	BoostType    BoostType    `json:"boostType"`
	DailyBudget  float64      `json:"dailyBudget"`
	DurationDays int          `json:"durationDays"`
	AudienceType AudienceType `json:"audienceType"`
	RadiusKm     int          `json:"radiusKm"`
}

// Estimate is a computed performance projection. It is never persisted
// and is recomputed on demand from the campaign parameters.
type Estimate struct {
	DailyImpressions int     `json:"dailyImpressions"`
	DailyClicks      int     `json:"dailyClicks"`
	TotalImpressions int     `json:"totalImpressions"`
	TotalClicks      int     `json:"totalClicks"`
	EstimatedCtr     float64 `json:"estimatedCtr"`
	TotalBudget      float64 `json:"totalBudget"`
}
