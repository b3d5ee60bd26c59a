package handlers

import (
	"net/http"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BusinessHandler handles business profile HTTP requests
type BusinessHandler struct {
	businessService *services.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

// GetBusiness handles GET /business
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// UpdateBusiness handles PUT /business
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}
