package services

import (
	"context"
	"testing"

	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePartnerRepo struct {
	partners map[primitive.ObjectID]models.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: make(map[primitive.ObjectID]models.Partner)}
}

func (r *fakePartnerRepo) Create(ctx context.Context, p *models.Partner) error {
	p.ID = primitive.NewObjectID()
	r.partners[p.ID] = *p
	return nil
}

func (r *fakePartnerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	p, ok := r.partners[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := p
	return &copied, nil
}

func (r *fakePartnerRepo) FindByEmail(ctx context.Context, email string) (*models.Partner, error) {
	for _, p := range r.partners {
		if p.Email == email {
			copied := p
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := NewAuthService(repo, authTestConfig())

	registered, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:        "  Owner@Recycling.Example  ",
		Password:     "s3cret-pass",
		BusinessName: "GreenCycle GmbH",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@recycling.example", registered.Partner.Email, "email is normalized")
	assert.Empty(t, registered.Partner.Password, "hash must not leave the service")
	assert.NotEmpty(t, registered.Token)

	claims, err := utils.ValidateJWT(registered.Token, authTestConfig())
	require.NoError(t, err)
	assert.Equal(t, registered.Partner.ID.Hex(), claims["sub"])

	loggedIn, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@recycling.example",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Partner.ID, loggedIn.Partner.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := NewAuthService(repo, authTestConfig())

	req := &models.RegisterRequest{Email: "dup@example.com", Password: "pass-one", BusinessName: "A"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	// Case and whitespace variants collide with the stored account.
	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Email: " DUP@example.com ", Password: "pass-two", BusinessName: "B",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUniformFailure(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := NewAuthService(repo, authTestConfig())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email: "known@example.com", Password: "right-password", BusinessName: "X",
	})
	require.NoError(t, err)

	// Wrong password and unknown account are indistinguishable.
	_, wrongPassErr := svc.Login(context.Background(), &models.LoginRequest{
		Email: "known@example.com", Password: "wrong-password",
	})
	_, unknownErr := svc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownErr)
}
