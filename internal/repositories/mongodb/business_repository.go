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

// BusinessRepository implements the repositories.BusinessRepository interface
type BusinessRepository struct {
	collection *mongo.Collection
}

// NewBusinessRepository creates a new BusinessRepository
func NewBusinessRepository(db *mongo.Database) repositories.BusinessRepository {
	return &BusinessRepository{
		collection: db.Collection("businesses"),
	}
}

// FindByOwner finds the profile document for an owner
func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error) {
	var business models.Business
	err := r.collection.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&business)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Upsert writes the profile document for an owner, creating it on first
// write. The owner is taken from the document itself.
func (r *BusinessRepository) Upsert(ctx context.Context, business *models.Business) (*models.Business, error) {
	now := time.Now()
	business.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"ownerId":     business.OwnerID,
			"name":        business.Name,
			"description": business.Description,
			"email":       business.Email,
			"phone":       business.Phone,
			"website":     business.Website,
			"logoUrl":     business.LogoURL,
			"updatedAt":   business.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.Business
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"ownerId": business.OwnerID}, update, opts).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
