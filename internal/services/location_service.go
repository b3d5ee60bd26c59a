package services

import (
	"context"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocationService handles drop-off location logic.
type LocationService struct {
	locationRepo repositories.LocationRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo repositories.LocationRepository) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
	}
}

// GetLocations retrieves the owner's locations.
func (s *LocationService) GetLocations(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Location, error) {
	return s.locationRepo.FindByOwner(ctx, ownerID)
}

// GetLocation retrieves one of the owner's locations by ID.
func (s *LocationService) GetLocation(ctx context.Context, ownerID, id primitive.ObjectID) (*models.Location, error) {
	location, err := s.locationRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return location, nil
}

// CreateLocation validates and persists a new location.
func (s *LocationService) CreateLocation(ctx context.Context, ownerID primitive.ObjectID, req *models.LocationRequest) (*models.Location, error) {
	if err := validateLocationRequest(req); err != nil {
		return nil, err
	}

	location := &models.Location{
		OwnerID:      ownerID,
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// UpdateLocation replaces one of the owner's locations.
func (s *LocationService) UpdateLocation(ctx context.Context, ownerID, id primitive.ObjectID, req *models.LocationRequest) (*models.Location, error) {
	if err := validateLocationRequest(req); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	location.Name = req.Name
	location.Address = req.Address
	location.City = req.City
	location.PostalCode = req.PostalCode
	location.Latitude = req.Latitude
	location.Longitude = req.Longitude
	location.Phone = req.Phone
	location.OpeningHours = req.OpeningHours

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, asNotFound(err)
	}
	return location, nil
}

// DeleteLocation deletes one of the owner's locations.
func (s *LocationService) DeleteLocation(ctx context.Context, ownerID, id primitive.ObjectID) error {
	if err := s.locationRepo.Delete(ctx, id, ownerID); err != nil {
		return asNotFound(err)
	}
	return nil
}

// CountLocations counts the owner's locations.
func (s *LocationService) CountLocations(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return s.locationRepo.CountByOwner(ctx, ownerID)
}

func validateLocationRequest(req *models.LocationRequest) error {
	if req.Name == "" {
		return validationf("name", "name is required")
	}
	if req.Address == "" {
		return validationf("address", "address is required")
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return validationf("latitude", "latitude must be between -90 and 90")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return validationf("longitude", "longitude must be between -180 and 180")
	}
	return nil
}
