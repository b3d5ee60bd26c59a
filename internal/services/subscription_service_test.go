package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/pkg/paymentapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSubscriptionRepo struct {
	subscriptions []*models.Subscription
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, s *models.Subscription) error {
	s.ID = primitive.NewObjectID()
	copied := *s
	r.subscriptions = append(r.subscriptions, &copied)
	return nil
}

func (r *fakeSubscriptionRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Subscription, error) {
	result := []*models.Subscription{}
	for _, s := range r.subscriptions {
		if s.OwnerID == ownerID {
			copied := *s
			result = append(result, &copied)
		}
	}
	return result, nil
}

func subscriptionAt(owner primitive.ObjectID, start time.Time) *models.Subscription {
	return &models.Subscription{
		ID:         primitive.NewObjectID(),
		OwnerID:    owner,
		Plan:       models.PlanGrowth,
		StartDate:  start,
		ExpiryDate: start.AddDate(0, 1, 0),
	}
}

func TestDeriveCurrent(t *testing.T) {
	owner := primitive.NewObjectID()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty history", func(t *testing.T) {
		assert.Nil(t, DeriveCurrent(nil, now))
		assert.Nil(t, DeriveCurrent([]*models.Subscription{}, now))
	})

	t.Run("picks latest by start date", func(t *testing.T) {
		older := subscriptionAt(owner, now.AddDate(0, -3, 0))
		newer := subscriptionAt(owner, now.AddDate(0, 0, -10))

		current := DeriveCurrent([]*models.Subscription{older, newer}, now)
		require.NotNil(t, current)
		assert.Equal(t, newer.ID, current.Subscription.ID)
		assert.True(t, current.Active)
	})

	t.Run("expired subscription is inactive but still returned", func(t *testing.T) {
		expired := subscriptionAt(owner, now.AddDate(0, -2, 0))

		current := DeriveCurrent([]*models.Subscription{expired}, now)
		require.NotNil(t, current)
		assert.False(t, current.Active)
	})

	t.Run("expiry instant itself is inactive", func(t *testing.T) {
		sub := subscriptionAt(owner, now.AddDate(0, -1, 0))

		current := DeriveCurrent([]*models.Subscription{sub}, sub.ExpiryDate)
		require.NotNil(t, current)
		assert.False(t, current.Active)
	})
}

func TestPurchaseRecordsMonthOfService(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	svc := NewSubscriptionService(repo, paymentapi.NewClient("", "", true))
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }
	owner := primitive.NewObjectID()

	sub, err := svc.Purchase(context.Background(), owner, models.PlanGrowth)
	require.NoError(t, err)

	assert.Equal(t, 49.0, sub.PriceMonthly, "price is looked up server-side")
	assert.Equal(t, start, sub.StartDate)
	assert.Equal(t, start.AddDate(0, 1, 0), sub.ExpiryDate)
	assert.NotEmpty(t, sub.TransactionRef)
	assert.NotEmpty(t, sub.ProcessorRef)

	history, err := svc.GetSubscriptions(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, history, 1)

	current, err := svc.GetCurrent(context.Background(), owner)
	require.NoError(t, err)
	assert.True(t, current.Active)
	assert.Equal(t, models.PlanGrowth, current.Subscription.Plan)
}

func TestPurchaseUnknownPlan(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	svc := NewSubscriptionService(repo, paymentapi.NewClient("", "", true))

	_, err := svc.Purchase(context.Background(), primitive.NewObjectID(), "enterprise")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "plan", validationErr.Field)
	assert.Empty(t, repo.subscriptions, "no charge, no record")
}

func TestPurchaseDeclinedCharge(t *testing.T) {
	processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(paymentapi.ChargeResponse{
			ProcessorRef: "ch_test_declined",
			Status:       paymentapi.StatusDeclined,
		})
	}))
	defer processor.Close()

	repo := &fakeSubscriptionRepo{}
	svc := NewSubscriptionService(repo, paymentapi.NewClient(processor.URL, "sk_test", false))

	_, err := svc.Purchase(context.Background(), primitive.NewObjectID(), models.PlanStarter)
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Empty(t, repo.subscriptions, "declined charges must not persist a subscription")
}

func TestGetCurrentWithoutHistory(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{}, paymentapi.NewClient("", "", true))

	_, err := svc.GetCurrent(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
