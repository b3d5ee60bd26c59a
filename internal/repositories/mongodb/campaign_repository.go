package mongodb

import (
	"context"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampaignRepository implements the repositories.CampaignRepository interface
type CampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) repositories.CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaigns"),
	}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		campaign.ID = oid
	}
	return nil
}

// FindByIDAndOwner finds a campaign by ID scoped to its owner. A campaign
// belonging to a different owner is indistinguishable from a missing one.
func (r *CampaignRepository) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "ownerId": ownerID}).Decode(&campaign)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// FindByOwner finds an owner's campaigns, newest-first by creation time.
// An empty status returns all statuses.
func (r *CampaignRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID, status models.CampaignStatus) ([]*models.Campaign, error) {
	filter := bson.M{"ownerId": ownerID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}

	// Ensure an empty slice is returned instead of nil if no campaigns found
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}

	return campaigns, nil
}

// Update replaces a campaign, scoped to its owner. A replace that matches
// no document reports mongo.ErrNoDocuments.
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	campaign.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": campaign.ID, "ownerId": campaign.OwnerID}, campaign)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByOwner counts an owner's campaigns
func (r *CampaignRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"ownerId": ownerID})
}
