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

// SubscriptionRepository implements the repositories.SubscriptionRepository interface
type SubscriptionRepository struct {
	collection *mongo.Collection
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *mongo.Database) repositories.SubscriptionRepository {
	return &SubscriptionRepository{
		collection: db.Collection("subscriptions"),
	}
}

// Create creates a new subscription record
func (r *SubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	subscription.CreatedAt = time.Now()
	subscription.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, subscription)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		subscription.ID = oid
	}
	return nil
}

// FindByOwner finds an owner's subscriptions, newest-first by start date
func (r *SubscriptionRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Subscription, error) {
	opts := options.Find().SetSort(bson.M{"startDate": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscriptions []*models.Subscription
	if err := cursor.All(ctx, &subscriptions); err != nil {
		return nil, err
	}
	if subscriptions == nil {
		subscriptions = []*models.Subscription{}
	}
	return subscriptions, nil
}
