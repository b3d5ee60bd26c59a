// Package boost contains the boost-campaign planning core: the
// performance estimate calculator and the creation-wizard draft state.
// Everything here is pure; persistence and transport live elsewhere.
package boost

import (
	"fmt"
	"math"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
)

// baseRates are the per-boost-type starting figures the projection is
// scaled from. CTR is a percentage.
type baseRates struct {
	impressions float64
	clicks      float64
	ctr         float64
}

var boostBases = map[models.BoostType]baseRates{
	models.BoostBusinessProfile: {impressions: 150, clicks: 8, ctr: 5.3},
	models.BoostPromotion:       {impressions: 200, clicks: 12, ctr: 6.0},
	models.BoostMapPin:          {impressions: 120, clicks: 6, ctr: 5.0},
	models.BoostSocialPost:      {impressions: 180, clicks: 10, ctr: 5.6},
}

var audienceMultipliers = map[models.AudienceType]float64{
	models.AudienceLocal:    1.2,
	models.AudienceTargeted: 1.0,
	models.AudienceBroad:    0.8,
}

// radiusMultiplierCap limits the payoff of a wider radius.
const radiusMultiplierCap = 1.5

// Estimate projects campaign performance from its planning parameters.
// It is deterministic: the same inputs always produce the same result.
// Unknown boost or audience types and non-positive or non-finite budgets
// are rejected rather than defaulted.
func Estimate(boostType models.BoostType, dailyBudget float64, durationDays int, audienceType models.AudienceType, radiusKm int) (*models.Estimate, error) {
	base, ok := boostBases[boostType]
	if !ok {
		return nil, fmt.Errorf("unknown boost type %q", boostType)
	}
	audienceMultiplier, ok := audienceMultipliers[audienceType]
	if !ok {
		return nil, fmt.Errorf("unknown audience type %q", audienceType)
	}
	if math.IsNaN(dailyBudget) || math.IsInf(dailyBudget, 0) || dailyBudget <= 0 {
		return nil, fmt.Errorf("daily budget must be a positive amount, got %v", dailyBudget)
	}
	if durationDays < 1 {
		return nil, fmt.Errorf("duration must be at least 1 day, got %d", durationDays)
	}

	radiusMultiplier := math.Min(1+float64(radiusKm)/100, radiusMultiplierCap)
	// Budget pays off sub-linearly.
	budgetMultiplier := math.Log10(dailyBudget)*0.3 + 0.7

	dailyImpressions := int(math.Round(base.impressions * dailyBudget * audienceMultiplier * radiusMultiplier * budgetMultiplier))
	dailyClicks := int(math.Round(float64(dailyImpressions) * base.ctr / 100))

	totalImpressions := dailyImpressions * durationDays
	totalClicks := dailyClicks * durationDays

	var ctr float64
	if totalImpressions > 0 {
		ctr = round2(float64(totalClicks) / float64(totalImpressions) * 100)
	}

	return &models.Estimate{
		DailyImpressions: dailyImpressions,
		DailyClicks:      dailyClicks,
		TotalImpressions: totalImpressions,
		TotalClicks:      totalClicks,
		EstimatedCtr:     ctr,
		TotalBudget:      dailyBudget * float64(durationDays),
	}, nil
}

// EstimateRequest is a convenience wrapper over Estimate for the HTTP
// boundary.
func EstimateRequest(req *models.EstimateRequest) (*models.Estimate, error) {
	return Estimate(req.BoostType, req.DailyBudget, req.DurationDays, req.AudienceType, req.RadiusKm)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
