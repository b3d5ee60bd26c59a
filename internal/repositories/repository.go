package repositories

import (
	"context"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerRepository defines the interface for partner account data operations
type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error)
	FindByEmail(ctx context.Context, email string) (*models.Partner, error)
}

// BusinessRepository defines the interface for business profile data operations.
// There is at most one profile document per owner.
type BusinessRepository interface {
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error)
	Upsert(ctx context.Context, business *models.Business) (*models.Business, error)
}

// LocationRepository defines the interface for location data operations.
// Every query is scoped to an owner; a lookup with the wrong owner behaves
// exactly like a lookup of a nonexistent document.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Location, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}

// MaterialRepository defines the interface for material price-list operations
type MaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Material, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID, category models.MaterialCategory) ([]*models.Material, error)
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Coupon, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Coupon, error)
	Update(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}

// CampaignRepository defines the interface for boost campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Campaign, error)
	// FindByOwner returns the owner's campaigns newest-first. An empty
	// status returns all statuses.
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID, status models.CampaignStatus) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}

// SubscriptionRepository defines the interface for subscription data operations
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	// FindByOwner returns the owner's subscription history newest-first
	// by start date.
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Subscription, error)
}
