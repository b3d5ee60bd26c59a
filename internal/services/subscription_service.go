package services

import (
	"context"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"github.com/dloopapp/dloop-partner-backend/pkg/paymentapi"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// SubscriptionService handles subscription billing. Charges go through
// the payment processor client; a subscription record is persisted only
// after a successful charge.
type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	payments         *paymentapi.Client
	now              func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository, payments *paymentapi.Client) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		payments:         payments,
		now:              time.Now,
	}
}

// Purchase charges one month of the requested plan and records the
// subscription. The price is looked up server-side, never taken from
// the request.
func (s *SubscriptionService) Purchase(ctx context.Context, ownerID primitive.ObjectID, plan models.SubscriptionPlan) (*models.Subscription, error) {
	price, ok := models.PlanPrices[plan]
	if !ok {
		return nil, validationf("plan", "unknown plan %q", plan)
	}

	transactionRef := uuid.NewString()
	charge, err := s.payments.Charge(ctx, &paymentapi.ChargeRequest{
		Amount:      price,
		Currency:    "EUR",
		Reference:   transactionRef,
		Description: "dLoop partner subscription: " + string(plan),
	})
	if err != nil {
		slog.Error("Subscription charge failed", "error", err, "ownerId", ownerID.Hex(), "plan", plan)
		return nil, err
	}
	if charge.Status != paymentapi.StatusSucceeded {
		slog.Warn("Subscription charge declined", "ownerId", ownerID.Hex(), "plan", plan, "status", charge.Status)
		return nil, ErrPaymentDeclined
	}

	start := s.now()
	subscription := &models.Subscription{
		OwnerID:        ownerID,
		Plan:           plan,
		PriceMonthly:   price,
		StartDate:      start,
		ExpiryDate:     start.AddDate(0, 1, 0),
		TransactionRef: transactionRef,
		ProcessorRef:   charge.ProcessorRef,
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, err
	}

	slog.Info("Subscription purchased", "subscriptionId", subscription.ID.Hex(), "ownerId", ownerID.Hex(), "plan", plan)
	return subscription, nil
}

// GetSubscriptions retrieves the owner's billing history, newest-first.
func (s *SubscriptionService) GetSubscriptions(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Subscription, error) {
	return s.subscriptionRepo.FindByOwner(ctx, ownerID)
}

// GetCurrent derives the owner's current subscription from the history.
func (s *SubscriptionService) GetCurrent(ctx context.Context, ownerID primitive.ObjectID) (*models.CurrentSubscription, error) {
	subscriptions, err := s.subscriptionRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	current := DeriveCurrent(subscriptions, s.now())
	if current == nil {
		return nil, ErrNotFound
	}
	return current, nil
}

// DeriveCurrent picks the latest subscription by start date and computes
// whether it is active against the supplied clock. It returns nil for an
// empty history. Pure: no hidden clock dependency.
func DeriveCurrent(subscriptions []*models.Subscription, now time.Time) *models.CurrentSubscription {
	var latest *models.Subscription
	for _, sub := range subscriptions {
		if latest == nil || sub.StartDate.After(latest.StartDate) {
			latest = sub
		}
	}
	if latest == nil {
		return nil
	}
	return &models.CurrentSubscription{
		Subscription: latest,
		Active:       now.Before(latest.ExpiryDate),
	}
}
