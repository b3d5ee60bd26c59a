package mongodb

import (
	"context"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PartnerRepository implements the repositories.PartnerRepository interface
type PartnerRepository struct {
	collection *mongo.Collection
}

// NewPartnerRepository creates a new PartnerRepository
func NewPartnerRepository(db *mongo.Database) repositories.PartnerRepository {
	return &PartnerRepository{
		collection: db.Collection("partners"),
	}
}

// Create creates a new partner account
func (r *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, partner)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		partner.ID = oid
	}
	return nil
}

// FindByID finds a partner by ID
func (r *PartnerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	var partner models.Partner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&partner)
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// FindByEmail finds a partner by email
func (r *PartnerRepository) FindByEmail(ctx context.Context, email string) (*models.Partner, error) {
	var partner models.Partner
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&partner)
	if err != nil {
		return nil, err
	}
	return &partner, nil
}
