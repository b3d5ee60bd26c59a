package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionPlan is a billing tier.
type SubscriptionPlan string

const (
	PlanStarter SubscriptionPlan = "starter"
	PlanGrowth  SubscriptionPlan = "growth"
	PlanPremium SubscriptionPlan = "premium"
)

// PlanPrices maps each plan to its monthly price. Prices live server-side
// and are never taken from the request.
var PlanPrices = map[SubscriptionPlan]float64{
	PlanStarter: 19,
	PlanGrowth:  49,
	PlanPremium: 99,
}

// Subscription is a paid billing period purchased by a partner.
type Subscription struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID        primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Plan           SubscriptionPlan   `bson:"plan" json:"plan"`
	PriceMonthly   float64            `bson:"priceMonthly" json:"priceMonthly"`
	StartDate      time.Time          `bson:"startDate" json:"startDate"`
	ExpiryDate     time.Time          `bson:"expiryDate" json:"expiryDate"`
	TransactionRef string             `bson:"transactionRef" json:"transactionRef"`
	ProcessorRef   string             `bson:"processorRef" json:"processorRef"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SubscriptionRequest is the payload for purchasing a subscription.
type SubscriptionRequest struct {
	Plan SubscriptionPlan `json:"plan" binding:"required"`
}

// CurrentSubscription is the derived view of a partner's latest
// subscription with its activity computed against the supplied clock.
type CurrentSubscription struct {
	Subscription *Subscription `json:"subscription"`
	Active       bool          `json:"active"`
}
