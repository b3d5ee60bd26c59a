package boost

import (
	"math"
	"testing"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateWorkedExample(t *testing.T) {
	// promotion, 20/day for 7 days, local audience, 5 km radius:
	// budgetMultiplier = log10(20)*0.3+0.7 ~ 1.0903, radiusMultiplier = 1.05
	est, err := Estimate(models.BoostPromotion, 20, 7, models.AudienceLocal, 5)
	require.NoError(t, err)

	assert.Equal(t, 5495, est.DailyImpressions)
	assert.Equal(t, 330, est.DailyClicks)
	assert.Equal(t, 38465, est.TotalImpressions)
	assert.Equal(t, 2310, est.TotalClicks)
	assert.Equal(t, 6.01, est.EstimatedCtr)
	assert.Equal(t, 140.0, est.TotalBudget)
}

func TestEstimateDeterminism(t *testing.T) {
	first, err := Estimate(models.BoostSocialPost, 42.5, 14, models.AudienceBroad, 30)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Estimate(models.BoostSocialPost, 42.5, 14, models.AudienceBroad, 30)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEstimateBudgetMonotonic(t *testing.T) {
	// For budgets >= 1 a larger budget never projects fewer impressions.
	prev := -1
	for budget := 1.0; budget <= 200; budget += 0.5 {
		est, err := Estimate(models.BoostMapPin, budget, 7, models.AudienceTargeted, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, est.DailyImpressions, prev, "budget %v", budget)
		prev = est.DailyImpressions
	}
}

func TestEstimateRadiusCapped(t *testing.T) {
	atCap, err := Estimate(models.BoostBusinessProfile, 25, 7, models.AudienceLocal, 50)
	require.NoError(t, err)
	beyondCap, err := Estimate(models.BoostBusinessProfile, 25, 7, models.AudienceLocal, 100)
	require.NoError(t, err)

	assert.Equal(t, atCap, beyondCap)
}

func TestEstimateAudienceOrdering(t *testing.T) {
	local, err := Estimate(models.BoostPromotion, 50, 7, models.AudienceLocal, 10)
	require.NoError(t, err)
	targeted, err := Estimate(models.BoostPromotion, 50, 7, models.AudienceTargeted, 10)
	require.NoError(t, err)
	broad, err := Estimate(models.BoostPromotion, 50, 7, models.AudienceBroad, 10)
	require.NoError(t, err)

	assert.Greater(t, local.DailyImpressions, targeted.DailyImpressions)
	assert.Greater(t, targeted.DailyImpressions, broad.DailyImpressions)
}

func TestEstimateScalesWithDuration(t *testing.T) {
	est, err := Estimate(models.BoostSocialPost, 12, 30, models.AudienceTargeted, 10)
	require.NoError(t, err)

	assert.Equal(t, est.DailyImpressions*30, est.TotalImpressions)
	assert.Equal(t, est.DailyClicks*30, est.TotalClicks)
	assert.Equal(t, 360.0, est.TotalBudget)
}

func TestEstimateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name         string
		boostType    models.BoostType
		dailyBudget  float64
		durationDays int
		audienceType models.AudienceType
	}{
		{"unknown boost type", "billboard", 20, 7, models.AudienceLocal},
		{"unknown audience type", models.BoostPromotion, 20, 7, "everyone"},
		{"zero budget", models.BoostPromotion, 0, 7, models.AudienceLocal},
		{"negative budget", models.BoostPromotion, -5, 7, models.AudienceLocal},
		{"NaN budget", models.BoostPromotion, math.NaN(), 7, models.AudienceLocal},
		{"infinite budget", models.BoostPromotion, math.Inf(1), 7, models.AudienceLocal},
		{"zero duration", models.BoostPromotion, 20, 0, models.AudienceLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.boostType, tt.dailyBudget, tt.durationDays, tt.audienceType, 10)
			assert.Error(t, err)
		})
	}
}
