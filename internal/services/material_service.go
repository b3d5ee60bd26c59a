package services

import (
	"context"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaterialService handles the accepted-materials price list.
type MaterialService struct {
	materialRepo repositories.MaterialRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo repositories.MaterialRepository) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
	}
}

// GetMaterials retrieves the owner's materials, optionally filtered by
// category. An empty filter returns all categories.
func (s *MaterialService) GetMaterials(ctx context.Context, ownerID primitive.ObjectID, categoryFilter string) ([]*models.Material, error) {
	var category models.MaterialCategory
	if categoryFilter != "" && categoryFilter != "all" {
		category = models.MaterialCategory(categoryFilter)
		if !models.ValidMaterialCategory(category) {
			return nil, validationf("category", "unknown category %q", categoryFilter)
		}
	}
	return s.materialRepo.FindByOwner(ctx, ownerID, category)
}

// GetMaterial retrieves one of the owner's materials by ID.
func (s *MaterialService) GetMaterial(ctx context.Context, ownerID, id primitive.ObjectID) (*models.Material, error) {
	material, err := s.materialRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return material, nil
}

// CreateMaterial validates and persists a new material.
func (s *MaterialService) CreateMaterial(ctx context.Context, ownerID primitive.ObjectID, req *models.MaterialRequest) (*models.Material, error) {
	if err := validateMaterialRequest(req); err != nil {
		return nil, err
	}

	material := &models.Material{
		OwnerID:    ownerID,
		Name:       req.Name,
		Category:   req.Category,
		PricePerKg: req.PricePerKg,
		Accepted:   req.Accepted,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// UpdateMaterial replaces one of the owner's materials.
func (s *MaterialService) UpdateMaterial(ctx context.Context, ownerID, id primitive.ObjectID, req *models.MaterialRequest) (*models.Material, error) {
	if err := validateMaterialRequest(req); err != nil {
		return nil, err
	}

	material, err := s.materialRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	material.Name = req.Name
	material.Category = req.Category
	material.PricePerKg = req.PricePerKg
	material.Accepted = req.Accepted

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, asNotFound(err)
	}
	return material, nil
}

// DeleteMaterial deletes one of the owner's materials.
func (s *MaterialService) DeleteMaterial(ctx context.Context, ownerID, id primitive.ObjectID) error {
	if err := s.materialRepo.Delete(ctx, id, ownerID); err != nil {
		return asNotFound(err)
	}
	return nil
}

// CountMaterials counts the owner's materials.
func (s *MaterialService) CountMaterials(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return s.materialRepo.CountByOwner(ctx, ownerID)
}

func validateMaterialRequest(req *models.MaterialRequest) error {
	if req.Name == "" {
		return validationf("name", "name is required")
	}
	if !models.ValidMaterialCategory(req.Category) {
		return validationf("category", "unknown category %q", req.Category)
	}
	if req.PricePerKg < 0 {
		return validationf("pricePerKg", "price per kg cannot be negative")
	}
	return nil
}
