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

// LocationRepository implements the repositories.LocationRepository interface
type LocationRepository struct {
	collection *mongo.Collection
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *mongo.Database) repositories.LocationRepository {
	return &LocationRepository{
		collection: db.Collection("locations"),
	}
}

// Create creates a new location
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	location.CreatedAt = time.Now()
	location.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, location)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		location.ID = oid
	}
	return nil
}

// FindByIDAndOwner finds a location by ID scoped to its owner
func (r *LocationRepository) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "ownerId": ownerID}).Decode(&location)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// FindByOwner finds an owner's locations, newest-first
func (r *LocationRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Location, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []*models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []*models.Location{}
	}
	return locations, nil
}

// Update replaces a location, scoped to its owner
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	location.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": location.ID, "ownerId": location.OwnerID}, location)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a location, scoped to its owner
func (r *LocationRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByOwner counts an owner's locations
func (r *LocationRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"ownerId": ownerID})
}
