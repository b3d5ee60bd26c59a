package services

import (
	"context"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// BusinessService handles business profile logic.
type BusinessService struct {
	businessRepo repositories.BusinessRepository
}

// NewBusinessService creates a new BusinessService
func NewBusinessService(businessRepo repositories.BusinessRepository) *BusinessService {
	return &BusinessService{
		businessRepo: businessRepo,
	}
}

// GetBusiness retrieves the owner's profile.
func (s *BusinessService) GetBusiness(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error) {
	business, err := s.businessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return business, nil
}

// UpdateBusiness writes the owner's profile, creating it on first write.
func (s *BusinessService) UpdateBusiness(ctx context.Context, ownerID primitive.ObjectID, req *models.BusinessRequest) (*models.Business, error) {
	if req.Name == "" {
		return nil, validationf("name", "name is required")
	}

	business := &models.Business{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	}

	saved, err := s.businessRepo.Upsert(ctx, business)
	if err != nil {
		slog.Error("Failed to save business profile", "error", err, "ownerId", ownerID.Hex())
		return nil, err
	}
	return saved, nil
}
