package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"github.com/dloopapp/dloop-partner-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// AuthService handles partner registration and login.
type AuthService struct {
	partnerRepo repositories.PartnerRepository
	cfg         *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(partnerRepo repositories.PartnerRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		partnerRepo: partnerRepo,
		cfg:         cfg,
	}
}

// Register creates a partner account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.partnerRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	partner := &models.Partner{
		Email:        email,
		Password:     string(hashed),
		BusinessName: req.BusinessName,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		slog.Error("Failed to create partner", "error", err, "email", email)
		return nil, err
	}

	token, err := utils.GenerateJWT(partner.ID.Hex(), partner.Email, s.cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("Partner registered", "partnerId", partner.ID.Hex(), "email", email)
	partner.Password = ""
	return &models.AuthResponse{Token: token, Partner: partner}, nil
}

// Login verifies the credentials and issues a token. A missing account
// and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	partner, err := s.partnerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(partner.ID.Hex(), partner.Email, s.cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("Partner logged in", "partnerId", partner.ID.Hex())
	partner.Password = ""
	return &models.AuthResponse{Token: token, Partner: partner}, nil
}
