package services

import (
	"context"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// CouponService handles coupon and promotion logic.
type CouponService struct {
	couponRepo repositories.CouponRepository
	now        func() time.Time
}

// NewCouponService creates a new CouponService
func NewCouponService(couponRepo repositories.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		now:        time.Now,
	}
}

// GetCoupons retrieves the owner's coupons.
func (s *CouponService) GetCoupons(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Coupon, error) {
	return s.couponRepo.FindByOwner(ctx, ownerID)
}

// GetCoupon retrieves one of the owner's coupons by ID.
func (s *CouponService) GetCoupon(ctx context.Context, ownerID, id primitive.ObjectID) (*models.Coupon, error) {
	coupon, err := s.couponRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return coupon, nil
}

// CreateCoupon validates and persists a new coupon.
func (s *CouponService) CreateCoupon(ctx context.Context, ownerID primitive.ObjectID, req *models.CouponRequest) (*models.Coupon, error) {
	if err := validateCouponRequest(req); err != nil {
		return nil, err
	}

	coupon := &models.Coupon{
		OwnerID:        ownerID,
		Title:          req.Title,
		Description:    req.Description,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		MaxRedemptions: req.MaxRedemptions,
		Active:         req.Active,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// UpdateCoupon replaces one of the owner's coupons. The redemption count
// is kept as stored.
func (s *CouponService) UpdateCoupon(ctx context.Context, ownerID, id primitive.ObjectID, req *models.CouponRequest) (*models.Coupon, error) {
	if err := validateCouponRequest(req); err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	coupon.Title = req.Title
	coupon.Description = req.Description
	coupon.DiscountType = req.DiscountType
	coupon.DiscountValue = req.DiscountValue
	coupon.ValidFrom = req.ValidFrom
	coupon.ValidUntil = req.ValidUntil
	coupon.MaxRedemptions = req.MaxRedemptions
	coupon.Active = req.Active

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, asNotFound(err)
	}
	return coupon, nil
}

// DeleteCoupon deletes one of the owner's coupons.
func (s *CouponService) DeleteCoupon(ctx context.Context, ownerID, id primitive.ObjectID) error {
	if err := s.couponRepo.Delete(ctx, id, ownerID); err != nil {
		return asNotFound(err)
	}
	return nil
}

// RedeemCoupon records one redemption. It is rejected when the coupon is
// inactive, outside its validity window, or out of redemptions.
func (s *CouponService) RedeemCoupon(ctx context.Context, ownerID, id primitive.ObjectID) (*models.Coupon, error) {
	coupon, err := s.couponRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	now := s.now()
	switch {
	case !coupon.Active:
		return nil, validationf("coupon", "coupon is not active")
	case now.Before(coupon.ValidFrom):
		return nil, validationf("coupon", "coupon is not valid yet")
	case now.After(coupon.ValidUntil):
		return nil, validationf("coupon", "coupon has expired")
	case coupon.MaxRedemptions > 0 && coupon.Redemptions >= coupon.MaxRedemptions:
		return nil, validationf("coupon", "coupon has no redemptions left")
	}

	coupon.Redemptions++
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, asNotFound(err)
	}

	slog.Info("Coupon redeemed", "couponId", coupon.ID.Hex(), "redemptions", coupon.Redemptions)
	return coupon, nil
}

// CountCoupons counts the owner's coupons.
func (s *CouponService) CountCoupons(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return s.couponRepo.CountByOwner(ctx, ownerID)
}

func validateCouponRequest(req *models.CouponRequest) error {
	if req.Title == "" {
		return validationf("title", "title is required")
	}
	if !models.ValidDiscountType(req.DiscountType) {
		return validationf("discountType", "unknown discount type %q", req.DiscountType)
	}
	if req.DiscountValue <= 0 {
		return validationf("discountValue", "discount value must be positive")
	}
	if req.DiscountType == models.DiscountPercent && req.DiscountValue > 100 {
		return validationf("discountValue", "percent discount cannot exceed 100")
	}
	if !req.ValidUntil.IsZero() && req.ValidUntil.Before(req.ValidFrom) {
		return validationf("validUntil", "valid-until cannot be before valid-from")
	}
	if req.MaxRedemptions < 0 {
		return validationf("maxRedemptions", "max redemptions cannot be negative")
	}
	return nil
}
