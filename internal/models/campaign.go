package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoostType identifies what a boost campaign promotes.
type BoostType string

const (
	BoostBusinessProfile BoostType = "business-profile"
	BoostPromotion       BoostType = "promotion"
	BoostMapPin          BoostType = "map-pin"
	BoostSocialPost      BoostType = "social-post"
)

// ValidBoostType reports whether t is one of the known boost types.
func ValidBoostType(t BoostType) bool {
	switch t {
	case BoostBusinessProfile, BoostPromotion, BoostMapPin, BoostSocialPost:
		return true
	}
	return false
}

// AudienceType identifies the targeting breadth of a campaign.
type AudienceType string

const (
	AudienceLocal    AudienceType = "local"
	AudienceTargeted AudienceType = "targeted"
	AudienceBroad    AudienceType = "broad"
)

// ValidAudienceType reports whether t is one of the known audience types.
func ValidAudienceType(t AudienceType) bool {
	switch t {
	case AudienceLocal, AudienceTargeted, AudienceBroad:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// SettableStatuses are the statuses a caller may move a campaign to.
// Transitions between them are intentionally unrestricted.
var SettableStatuses = []CampaignStatus{CampaignActive, CampaignPaused, CampaignCompleted}

// SettableStatus reports whether s may be supplied to a status update.
func SettableStatus(s CampaignStatus) bool {
	for _, allowed := range SettableStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// Campaign represents a paid boost campaign owned by a partner.
// EndDate is nil for continuous campaigns. TotalBudget is always
// recomputed on write from DailyBudget and DurationDays.
type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID      primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	BoostType    BoostType          `bson:"boostType" json:"boostType"`
	Title        string             `bson:"title" json:"title"`
	DailyBudget  float64            `bson:"dailyBudget" json:"dailyBudget"`
	DurationDays int                `bson:"durationDays" json:"durationDays"`
	IsContinuous bool               `bson:"isContinuous" json:"isContinuous"`
	AudienceType AudienceType       `bson:"audienceType" json:"audienceType"`
	RadiusKm     int                `bson:"radiusKm" json:"radiusKm"`
	Status       CampaignStatus     `bson:"status" json:"status"`
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	TotalBudget  float64            `bson:"totalBudget" json:"totalBudget"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CampaignRequest is the payload for creating or replacing a campaign.
type CampaignRequest struct {
	BoostType    BoostType    `json:"boostType"`
	Title        string       `json:"title"`
	DailyBudget  float64      `json:"dailyBudget"`
	DurationDays int          `json:"durationDays"`
	IsContinuous bool         `json:"isContinuous"`
	AudienceType AudienceType `json:"audienceType"`
	RadiusKm     int          `json:"radiusKm"`
	StartDate    *time.Time   `json:"startDate,omitempty"`
}

// CampaignStatusRequest is the payload for a status change.
type CampaignStatusRequest struct {
	Status CampaignStatus `json:"status" binding:"required"`
}
