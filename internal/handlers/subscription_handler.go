package handlers

import (
	"net/http"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles subscription billing HTTP requests
type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// GetSubscriptions handles GET /subscriptions
func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	subscriptions, err := h.subscriptionService.GetSubscriptions(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// GetCurrentSubscription handles GET /subscriptions/current
func (h *SubscriptionHandler) GetCurrentSubscription(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	current, err := h.subscriptionService.GetCurrent(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// PurchaseSubscription handles POST /subscriptions
func (h *SubscriptionHandler) PurchaseSubscription(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscription, err := h.subscriptionService.Purchase(c.Request.Context(), owner, req.Plan)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}
