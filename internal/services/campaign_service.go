package services

import (
	"context"
	"errors"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/boost"
	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// MinDailyBudget is the lowest daily spend a campaign may commit to.
const MinDailyBudget = 5

// CampaignService handles boost campaign business logic. It is the
// single validation boundary for campaign writes: invariants are checked
// here and derived fields are recomputed here, never trusted from input.
type CampaignService struct {
	campaignRepo repositories.CampaignRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo repositories.CampaignRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
	}
}

// GetEstimate computes a performance projection for the given planning
// parameters. Nothing is persisted.
func (s *CampaignService) GetEstimate(ctx context.Context, req *models.EstimateRequest) (*models.Estimate, error) {
	est, err := boost.EstimateRequest(req)
	if err != nil {
		return nil, &ValidationError{Field: "estimate", Message: err.Error()}
	}
	return est, nil
}

// ListCampaigns retrieves an owner's campaigns, newest-first. The filter
// "all" (or an empty filter) returns every status.
func (s *CampaignService) ListCampaigns(ctx context.Context, ownerID primitive.ObjectID, statusFilter string) ([]*models.Campaign, error) {
	var status models.CampaignStatus
	if statusFilter != "" && statusFilter != "all" {
		status = models.CampaignStatus(statusFilter)
		switch status {
		case models.CampaignDraft, models.CampaignActive, models.CampaignPaused, models.CampaignCompleted:
		default:
			return nil, validationf("status", "unknown status filter %q", statusFilter)
		}
	}
	return s.campaignRepo.FindByOwner(ctx, ownerID, status)
}

// GetCampaign retrieves one of the owner's campaigns by ID.
func (s *CampaignService) GetCampaign(ctx context.Context, ownerID, id primitive.ObjectID) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return campaign, nil
}

// CreateCampaign validates the payload and persists a new campaign.
// Campaigns launch live: the initial status is always active.
func (s *CampaignService) CreateCampaign(ctx context.Context, ownerID primitive.ObjectID, req *models.CampaignRequest) (*models.Campaign, error) {
	if err := validateCampaignRequest(req); err != nil {
		return nil, err
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	campaign := &models.Campaign{
		OwnerID:      ownerID,
		BoostType:    req.BoostType,
		Title:        req.Title,
		DailyBudget:  req.DailyBudget,
		DurationDays: req.DurationDays,
		IsContinuous: req.IsContinuous,
		AudienceType: req.AudienceType,
		RadiusKm:     req.RadiusKm,
		Status:       models.CampaignActive,
		StartDate:    startDate,
	}
	applyDerivedFields(campaign)

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		slog.Error("Failed to create campaign", "error", err, "ownerId", ownerID.Hex())
		return nil, err
	}

	slog.Info("Campaign created", "campaignId", campaign.ID.Hex(), "ownerId", ownerID.Hex(), "boostType", campaign.BoostType)
	return campaign, nil
}

// UpdateCampaign replaces the mutable fields of an owner's campaign and
// recomputes the derived ones. The boost type is kept as stored.
func (s *CampaignService) UpdateCampaign(ctx context.Context, ownerID, id primitive.ObjectID, req *models.CampaignRequest) (*models.Campaign, error) {
	if err := validateCampaignRequest(req); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	campaign.Title = req.Title
	campaign.DailyBudget = req.DailyBudget
	campaign.DurationDays = req.DurationDays
	campaign.IsContinuous = req.IsContinuous
	campaign.AudienceType = req.AudienceType
	campaign.RadiusKm = req.RadiusKm
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	applyDerivedFields(campaign)

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, asNotFound(err)
	}

	slog.Info("Campaign updated", "campaignId", campaign.ID.Hex(), "ownerId", ownerID.Hex())
	return campaign, nil
}

// SetStatus moves an owner's campaign to one of active, paused or
// completed. Any other value is rejected and the campaign is untouched.
func (s *CampaignService) SetStatus(ctx context.Context, ownerID, id primitive.ObjectID, status models.CampaignStatus) (*models.Campaign, error) {
	if !models.SettableStatus(status) {
		return nil, validationf("status", "status must be one of active, paused or completed, got %q", status)
	}

	campaign, err := s.campaignRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	campaign.Status = status
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, asNotFound(err)
	}

	slog.Info("Campaign status changed", "campaignId", campaign.ID.Hex(), "status", status)
	return campaign, nil
}

// CountCampaigns counts an owner's campaigns.
func (s *CampaignService) CountCampaigns(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return s.campaignRepo.CountByOwner(ctx, ownerID)
}

// applyDerivedFields recomputes totalBudget and endDate from the primary
// fields. A continuous campaign has no end date; its total budget still
// uses the chosen duration as a planning figure.
func applyDerivedFields(c *models.Campaign) {
	c.TotalBudget = c.DailyBudget * float64(c.DurationDays)
	if c.IsContinuous {
		c.EndDate = nil
	} else {
		end := c.StartDate.AddDate(0, 0, c.DurationDays)
		c.EndDate = &end
	}
}

func validateCampaignRequest(req *models.CampaignRequest) error {
	if !models.ValidBoostType(req.BoostType) {
		return validationf("boostType", "unknown boost type %q", req.BoostType)
	}
	if req.Title == "" {
		return validationf("title", "title is required")
	}
	if req.DailyBudget < MinDailyBudget {
		return validationf("dailyBudget", "daily budget must be at least %d", MinDailyBudget)
	}
	if req.DurationDays < 1 {
		return validationf("durationDays", "duration must be at least 1 day")
	}
	if !models.ValidAudienceType(req.AudienceType) {
		return validationf("audienceType", "unknown audience type %q", req.AudienceType)
	}
	if req.RadiusKm < 1 || req.RadiusKm > 100 {
		return validationf("radiusKm", "radius must be between 1 and 100 km")
	}
	return nil
}

func asNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
