package boost

import (
	"errors"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wizard steps. Navigation is strictly linear.
const (
	StepTarget   = 1 // choose what to boost
	StepBudget   = 2 // budget and duration
	StepEstimate = 3 // projected results
	StepAudience = 4 // audience targeting
)

// Planning defaults applied when a draft is opened.
const (
	DefaultDailyBudget  = 10.0
	DefaultDurationDays = 7
	DefaultRadiusKm     = 10

	// Re-promoting an existing campaign suggests escalated spend.
	boostBudgetFactor = 1.5
	boostBudgetCap    = 200.0
)

var (
	ErrTitleRequired  = errors.New("a title is required before continuing")
	ErrAtFinalStep    = errors.New("already at the final step")
	ErrNotAtFinalStep = errors.New("the wizard is not at the final step")
)

// Draft is the transient state of the campaign wizard. It is a plain
// value: every action returns a new Draft and the previous one stays
// untouched, so a caller can always discard or retry.
type Draft struct {
	Step         int
	CampaignID   primitive.ObjectID // set when editing; zero means a new campaign
	BoostType    models.BoostType
	Title        string
	DailyBudget  float64
	DurationDays int
	IsContinuous bool
	AudienceType models.AudienceType
	RadiusKm     int
	Estimate     *models.Estimate
	IsEstimating bool
	IsCreating   bool
}

// NewDraft opens an empty draft for the boost type the user picked.
func NewDraft(boostType models.BoostType) Draft {
	return Draft{
		Step:         StepTarget,
		BoostType:    boostType,
		DailyBudget:  DefaultDailyBudget,
		DurationDays: DefaultDurationDays,
		AudienceType: models.AudienceLocal,
		RadiusKm:     DefaultRadiusKm,
	}
}

// NewDraftForEdit opens a draft pre-populated from an existing campaign.
// Duration resets to the planning default; continuity is derived from
// whether the source campaign has an end date.
func NewDraftForEdit(c *models.Campaign) Draft {
	d := NewDraft(c.BoostType)
	d.CampaignID = c.ID
	d.Title = c.Title
	d.DailyBudget = c.DailyBudget
	d.IsContinuous = c.EndDate == nil
	d.AudienceType = c.AudienceType
	d.RadiusKm = c.RadiusKm
	return d
}

// NewDraftForBoost opens a draft that re-promotes an existing campaign
// as a new one, with the budget raised by half up to the cap.
func NewDraftForBoost(c *models.Campaign) Draft {
	d := NewDraftForEdit(c)
	d.CampaignID = primitive.NilObjectID
	d.Title = "Boosted " + c.Title
	raised := c.DailyBudget * boostBudgetFactor
	if raised > boostBudgetCap {
		raised = boostBudgetCap
	}
	d.DailyBudget = raised
	d.IsContinuous = false
	return d
}

// NewDraftForDuplicate opens a draft that copies an existing campaign
// into a new one with the budget unchanged.
func NewDraftForDuplicate(c *models.Campaign) Draft {
	d := NewDraftForEdit(c)
	d.CampaignID = primitive.NilObjectID
	d.Title = "Copy of " + c.Title
	return d
}

// IsEdit reports whether finalizing the draft updates an existing
// campaign rather than creating one.
func (d Draft) IsEdit() bool {
	return !d.CampaignID.IsZero()
}

// Parameter setters. Each one invalidates a previously computed
// estimate so a stale projection can never be shown.

func (d Draft) WithTitle(title string) Draft {
	d.Title = title
	d.Estimate = nil
	return d
}

func (d Draft) WithBoostType(t models.BoostType) Draft {
	d.BoostType = t
	d.Estimate = nil
	return d
}

func (d Draft) WithDailyBudget(budget float64) Draft {
	d.DailyBudget = budget
	d.Estimate = nil
	return d
}

func (d Draft) WithDurationDays(days int) Draft {
	d.DurationDays = days
	d.Estimate = nil
	return d
}

func (d Draft) WithContinuous(continuous bool) Draft {
	d.IsContinuous = continuous
	d.Estimate = nil
	return d
}

func (d Draft) WithAudienceType(t models.AudienceType) Draft {
	d.AudienceType = t
	d.Estimate = nil
	return d
}

func (d Draft) WithRadiusKm(km int) Draft {
	d.RadiusKm = km
	d.Estimate = nil
	return d
}

// Next advances the wizard one step. Leaving the target step requires a
// title. Entering the estimate step recomputes the projection from the
// current parameters, even if one was computed before.
func (d Draft) Next() (Draft, error) {
	switch d.Step {
	case StepTarget:
		if d.Title == "" {
			return d, ErrTitleRequired
		}
		d.Step = StepBudget
	case StepBudget:
		est, err := Estimate(d.BoostType, d.DailyBudget, d.DurationDays, d.AudienceType, d.RadiusKm)
		if err != nil {
			return d, err
		}
		d.Estimate = est
		d.IsEstimating = false
		d.Step = StepEstimate
	case StepEstimate:
		d.Step = StepAudience
	default:
		return d, ErrAtFinalStep
	}
	return d, nil
}

// Back moves the wizard one step backwards, stopping at the first step.
func (d Draft) Back() Draft {
	if d.Step > StepTarget {
		d.Step--
	}
	return d
}

// StartEstimating marks an estimate request as in flight, for callers
// that fetch the projection from the estimate endpoint instead of
// computing it locally.
func (d Draft) StartEstimating() Draft {
	d.IsEstimating = true
	return d
}

// ApplyEstimate stores a projection fetched remotely.
func (d Draft) ApplyEstimate(est *models.Estimate) Draft {
	d.Estimate = est
	d.IsEstimating = false
	return d
}

// StartCreating marks the launch/update submission as in flight.
func (d Draft) StartCreating() Draft {
	d.IsCreating = true
	return d
}

// FinishCreating records the outcome of a submission. On success the
// draft resets so the wizard closes clean; on failure the draft is kept
// as-is so the user can retry.
func (d Draft) FinishCreating(success bool) Draft {
	if success {
		return Draft{Step: StepTarget}
	}
	d.IsCreating = false
	return d
}

// Finalize assembles the campaign payload submitted on launch. The
// wizard must have reached the last step.
func (d Draft) Finalize(startDate time.Time) (*models.CampaignRequest, error) {
	if d.Step != StepAudience {
		return nil, ErrNotAtFinalStep
	}
	if d.Title == "" {
		return nil, ErrTitleRequired
	}
	return &models.CampaignRequest{
		BoostType:    d.BoostType,
		Title:        d.Title,
		DailyBudget:  d.DailyBudget,
		DurationDays: d.DurationDays,
		IsContinuous: d.IsContinuous,
		AudienceType: d.AudienceType,
		RadiusKm:     d.RadiusKm,
		StartDate:    &startDate,
	}, nil
}
