package handlers

import (
	"net/http"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// LocationHandler handles location HTTP requests
type LocationHandler struct {
	locationService *services.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// GetLocations handles GET /locations
func (h *LocationHandler) GetLocations(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	locations, err := h.locationService.GetLocations(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// GetLocationByID handles GET /locations/:id
func (h *LocationHandler) GetLocationByID(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	location, err := h.locationService.GetLocation(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// CreateLocation handles POST /locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// UpdateLocation handles PUT /locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), owner, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), owner, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

// GetLocationCount handles GET /locations/count
func (h *LocationHandler) GetLocationCount(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	count, err := h.locationService.CountLocations(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
