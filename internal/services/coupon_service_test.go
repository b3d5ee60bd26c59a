package services

import (
	"context"
	"testing"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeCouponRepo struct {
	coupons map[primitive.ObjectID]models.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[primitive.ObjectID]models.Coupon)}
}

func (r *fakeCouponRepo) Create(ctx context.Context, c *models.Coupon) error {
	c.ID = primitive.NewObjectID()
	r.coupons[c.ID] = *c
	return nil
}

func (r *fakeCouponRepo) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Coupon, error) {
	c, ok := r.coupons[id]
	if !ok || c.OwnerID != ownerID {
		return nil, mongo.ErrNoDocuments
	}
	copied := c
	return &copied, nil
}

func (r *fakeCouponRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Coupon, error) {
	result := []*models.Coupon{}
	for _, c := range r.coupons {
		if c.OwnerID == ownerID {
			copied := c
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeCouponRepo) Update(ctx context.Context, c *models.Coupon) error {
	stored, ok := r.coupons[c.ID]
	if !ok || stored.OwnerID != c.OwnerID {
		return mongo.ErrNoDocuments
	}
	r.coupons[c.ID] = *c
	return nil
}

func (r *fakeCouponRepo) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	c, ok := r.coupons[id]
	if !ok || c.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	delete(r.coupons, id)
	return nil
}

func (r *fakeCouponRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	var n int64
	for _, c := range r.coupons {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

var couponNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func newCouponService(repo *fakeCouponRepo) *CouponService {
	svc := NewCouponService(repo)
	svc.now = func() time.Time { return couponNow }
	return svc
}

func redeemableCoupon() *models.CouponRequest {
	return &models.CouponRequest{
		Title:          "10% off aluminum drop-offs",
		DiscountType:   models.DiscountPercent,
		DiscountValue:  10,
		ValidFrom:      couponNow.AddDate(0, 0, -1),
		ValidUntil:     couponNow.AddDate(0, 0, 30),
		MaxRedemptions: 2,
		Active:         true,
	}
}

func TestRedeemCouponIncrementsCount(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := newCouponService(repo)
	owner := primitive.NewObjectID()

	coupon, err := svc.CreateCoupon(context.Background(), owner, redeemableCoupon())
	require.NoError(t, err)
	assert.Zero(t, coupon.Redemptions)

	redeemed, err := svc.RedeemCoupon(context.Background(), owner, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, redeemed.Redemptions)

	redeemed, err = svc.RedeemCoupon(context.Background(), owner, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, redeemed.Redemptions)

	// MaxRedemptions is 2, so the third attempt is rejected.
	_, err = svc.RedeemCoupon(context.Background(), owner, coupon.ID)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	stored, err := svc.GetCoupon(context.Background(), owner, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Redemptions, "rejected redemption must not change the count")
}

func TestRedeemCouponRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CouponRequest)
	}{
		{"inactive", func(r *models.CouponRequest) { r.Active = false }},
		{"not yet valid", func(r *models.CouponRequest) {
			r.ValidFrom = couponNow.AddDate(0, 0, 1)
			r.ValidUntil = couponNow.AddDate(0, 0, 30)
		}},
		{"expired", func(r *models.CouponRequest) {
			r.ValidFrom = couponNow.AddDate(0, -2, 0)
			r.ValidUntil = couponNow.AddDate(0, -1, 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCouponRepo()
			svc := newCouponService(repo)
			owner := primitive.NewObjectID()

			req := redeemableCoupon()
			tt.mutate(req)
			coupon, err := svc.CreateCoupon(context.Background(), owner, req)
			require.NoError(t, err)

			_, err = svc.RedeemCoupon(context.Background(), owner, coupon.ID)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestRedeemCouponUnlimitedWhenMaxIsZero(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := newCouponService(repo)
	owner := primitive.NewObjectID()

	req := redeemableCoupon()
	req.MaxRedemptions = 0
	coupon, err := svc.CreateCoupon(context.Background(), owner, req)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		redeemed, err := svc.RedeemCoupon(context.Background(), owner, coupon.ID)
		require.NoError(t, err)
		assert.Equal(t, i, redeemed.Redemptions)
	}
}

func TestUpdateCouponKeepsRedemptionCount(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := newCouponService(repo)
	owner := primitive.NewObjectID()

	coupon, err := svc.CreateCoupon(context.Background(), owner, redeemableCoupon())
	require.NoError(t, err)
	_, err = svc.RedeemCoupon(context.Background(), owner, coupon.ID)
	require.NoError(t, err)

	update := redeemableCoupon()
	update.Title = "15% off aluminum drop-offs"
	update.DiscountValue = 15

	updated, err := svc.UpdateCoupon(context.Background(), owner, coupon.ID, update)
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.DiscountValue)
	assert.Equal(t, 1, updated.Redemptions)
}

func TestCouponValidation(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := newCouponService(repo)
	owner := primitive.NewObjectID()

	tests := []struct {
		name   string
		mutate func(*models.CouponRequest)
		field  string
	}{
		{"empty title", func(r *models.CouponRequest) { r.Title = "" }, "title"},
		{"unknown discount type", func(r *models.CouponRequest) { r.DiscountType = "bogo" }, "discountType"},
		{"zero discount", func(r *models.CouponRequest) { r.DiscountValue = 0 }, "discountValue"},
		{"percent over 100", func(r *models.CouponRequest) { r.DiscountValue = 120 }, "discountValue"},
		{"window inverted", func(r *models.CouponRequest) {
			r.ValidUntil = r.ValidFrom.AddDate(0, 0, -1)
		}, "validUntil"},
		{"negative max redemptions", func(r *models.CouponRequest) { r.MaxRedemptions = -1 }, "maxRedemptions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := redeemableCoupon()
			tt.mutate(req)

			_, err := svc.CreateCoupon(context.Background(), owner, req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestCouponOwnershipIsolation(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := newCouponService(repo)
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	coupon, err := svc.CreateCoupon(context.Background(), owner, redeemableCoupon())
	require.NoError(t, err)

	_, err = svc.RedeemCoupon(context.Background(), stranger, coupon.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteCoupon(context.Background(), stranger, coupon.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetCoupon(context.Background(), owner, coupon.ID)
	assert.NoError(t, err, "the owner's coupon must survive a stranger's delete")
}
