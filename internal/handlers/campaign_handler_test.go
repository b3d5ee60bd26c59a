package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/dloopapp/dloop-partner-backend/internal/middleware"
	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/dloopapp/dloop-partner-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memCampaignRepo struct {
	campaigns map[primitive.ObjectID]models.Campaign
}

func (r *memCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	c.ID = primitive.NewObjectID()
	r.campaigns[c.ID] = *c
	return nil
}

func (r *memCampaignRepo) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok || c.OwnerID != ownerID {
		return nil, mongo.ErrNoDocuments
	}
	copied := c
	return &copied, nil
}

func (r *memCampaignRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID, status models.CampaignStatus) ([]*models.Campaign, error) {
	result := []*models.Campaign{}
	for _, c := range r.campaigns {
		if c.OwnerID != ownerID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		copied := c
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memCampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	stored, ok := r.campaigns[c.ID]
	if !ok || stored.OwnerID != c.OwnerID {
		return mongo.ErrNoDocuments
	}
	r.campaigns[c.ID] = *c
	return nil
}

func (r *memCampaignRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	var n int64
	for _, c := range r.campaigns {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func newCampaignTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "handler-test-secret", ExpiresIn: 3600}}
	repo := &memCampaignRepo{campaigns: make(map[primitive.ObjectID]models.Campaign)}
	handler := NewCampaignHandler(services.NewCampaignService(repo))

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	protected.POST("/boost/estimate", handler.GetEstimate)
	protected.GET("/campaigns", handler.GetCampaigns)
	protected.GET("/campaigns/count", handler.GetCampaignCount)
	protected.GET("/campaigns/:id", handler.GetCampaignByID)
	protected.POST("/campaigns", handler.CreateCampaign)
	protected.PUT("/campaigns/:id", handler.UpdateCampaign)
	protected.PATCH("/campaigns/:id/status", handler.SetCampaignStatus)

	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), "partner@example.com", cfg)
	require.NoError(t, err)
	return router, token
}

func doJSON(t *testing.T, router *gin.Engine, token, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCampaignRoutesRequireAuth(t *testing.T) {
	router, _ := newCampaignTestRouter(t)

	rec := doJSON(t, router, "", http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, "bogus.token.here", http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEstimateEndpoint(t *testing.T) {
	router, token := newCampaignTestRouter(t)

	rec := doJSON(t, router, token, http.MethodPost, "/api/v1/boost/estimate",
		`{"boostType":"promotion","dailyBudget":20,"durationDays":7,"audienceType":"local","radiusKm":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var est models.Estimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &est))
	assert.Equal(t, 5495, est.DailyImpressions)
	assert.Equal(t, 38465, est.TotalImpressions)
	assert.Equal(t, 6.01, est.EstimatedCtr)
	assert.Equal(t, 140.0, est.TotalBudget)
}

func TestEstimateEndpointRejectsUnknownBoostType(t *testing.T) {
	router, token := newCampaignTestRouter(t)

	rec := doJSON(t, router, token, http.MethodPost, "/api/v1/boost/estimate",
		`{"boostType":"billboard","dailyBudget":20,"durationDays":7,"audienceType":"local","radiusKm":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	router, token := newCampaignTestRouter(t)

	rec := doJSON(t, router, token, http.MethodPost, "/api/v1/campaigns",
		`{"boostType":"map-pin","title":"Weekend glass drive","dailyBudget":12,"durationDays":5,"audienceType":"targeted","radiusKm":15}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.CampaignActive, created.Status)
	assert.Equal(t, 60.0, created.TotalBudget)

	rec = doJSON(t, router, token, http.MethodPatch, "/api/v1/campaigns/"+created.ID.Hex()+"/status",
		`{"status":"paused"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, token, http.MethodGet, "/api/v1/campaigns/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, models.CampaignPaused, fetched.Status)

	rec = doJSON(t, router, token, http.MethodGet, "/api/v1/campaigns/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":1}`, rec.Body.String())
}

func TestCampaignErrorMapping(t *testing.T) {
	router, token := newCampaignTestRouter(t)

	// Validation failures answer 400 with the offending field.
	rec := doJSON(t, router, token, http.MethodPost, "/api/v1/campaigns",
		`{"boostType":"promotion","title":"Low spend","dailyBudget":4,"durationDays":7,"audienceType":"local","radiusKm":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dailyBudget", body["field"])

	// Unknown IDs answer 404, malformed IDs 400.
	rec = doJSON(t, router, token, http.MethodGet, "/api/v1/campaigns/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, token, http.MethodGet, "/api/v1/campaigns/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unsupported statuses answer 400.
	created := doJSON(t, router, token, http.MethodPost, "/api/v1/campaigns",
		`{"boostType":"promotion","title":"Valid","dailyBudget":10,"durationDays":7,"audienceType":"local","radiusKm":5}`)
	require.Equal(t, http.StatusCreated, created.Code)
	var campaign models.Campaign
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &campaign))

	rec = doJSON(t, router, token, http.MethodPatch, "/api/v1/campaigns/"+campaign.ID.Hex()+"/status",
		`{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
