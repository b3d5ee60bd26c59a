package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountType is how a coupon's discount value is interpreted.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// ValidDiscountType reports whether t is a known discount type.
func ValidDiscountType(t DiscountType) bool {
	return t == DiscountPercent || t == DiscountFixed
}

// Coupon is a promotion a partner offers to customers. Redemptions is
// only ever changed through the redeem operation.
type Coupon struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID        primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	DiscountType   DiscountType       `bson:"discountType" json:"discountType"`
	DiscountValue  float64            `bson:"discountValue" json:"discountValue"`
	ValidFrom      time.Time          `bson:"validFrom" json:"validFrom"`
	ValidUntil     time.Time          `bson:"validUntil" json:"validUntil"`
	MaxRedemptions int                `bson:"maxRedemptions" json:"maxRedemptions"`
	Redemptions    int                `bson:"redemptions" json:"redemptions"`
	Active         bool               `bson:"active" json:"active"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CouponRequest is the payload for creating or replacing a coupon.
type CouponRequest struct {
	Title          string       `json:"title" binding:"required"`
	Description    string       `json:"description"`
	DiscountType   DiscountType `json:"discountType" binding:"required"`
	DiscountValue  float64      `json:"discountValue"`
	ValidFrom      time.Time    `json:"validFrom"`
	ValidUntil     time.Time    `json:"validUntil"`
	MaxRedemptions int          `json:"maxRedemptions"`
	Active         bool         `json:"active"`
}
