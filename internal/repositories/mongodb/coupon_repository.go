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

// CouponRepository implements the repositories.CouponRepository interface
type CouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new CouponRepository
func NewCouponRepository(db *mongo.Database) repositories.CouponRepository {
	return &CouponRepository{
		collection: db.Collection("coupons"),
	}
}

// Create creates a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		coupon.ID = oid
	}
	return nil
}

// FindByIDAndOwner finds a coupon by ID scoped to its owner
func (r *CouponRepository) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "ownerId": ownerID}).Decode(&coupon)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// FindByOwner finds an owner's coupons, newest-first
func (r *CouponRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Coupon, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	if coupons == nil {
		coupons = []*models.Coupon{}
	}
	return coupons, nil
}

// Update replaces a coupon, scoped to its owner
func (r *CouponRepository) Update(ctx context.Context, coupon *models.Coupon) error {
	coupon.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": coupon.ID, "ownerId": coupon.OwnerID}, coupon)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a coupon, scoped to its owner
func (r *CouponRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByOwner counts an owner's coupons
func (r *CouponRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"ownerId": ownerID})
}
