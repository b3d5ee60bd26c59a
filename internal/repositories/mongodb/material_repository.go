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

// MaterialRepository implements the repositories.MaterialRepository interface
type MaterialRepository struct {
	collection *mongo.Collection
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *mongo.Database) repositories.MaterialRepository {
	return &MaterialRepository{
		collection: db.Collection("materials"),
	}
}

// Create creates a new material
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	material.CreatedAt = time.Now()
	material.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, material)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		material.ID = oid
	}
	return nil
}

// FindByIDAndOwner finds a material by ID scoped to its owner
func (r *MaterialRepository) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Material, error) {
	var material models.Material
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "ownerId": ownerID}).Decode(&material)
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// FindByOwner finds an owner's materials, sorted by name. An empty
// category returns all categories.
func (r *MaterialRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID, category models.MaterialCategory) ([]*models.Material, error) {
	filter := bson.M{"ownerId": ownerID}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.M{"name": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var materials []*models.Material
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, err
	}
	if materials == nil {
		materials = []*models.Material{}
	}
	return materials, nil
}

// Update replaces a material, scoped to its owner
func (r *MaterialRepository) Update(ctx context.Context, material *models.Material) error {
	material.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": material.ID, "ownerId": material.OwnerID}, material)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a material, scoped to its owner
func (r *MaterialRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByOwner counts an owner's materials
func (r *MaterialRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"ownerId": ownerID})
}
