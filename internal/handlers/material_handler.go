package handlers

import (
	"net/http"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// MaterialHandler handles material price-list HTTP requests
type MaterialHandler struct {
	materialService *services.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(materialService *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
	}
}

// GetMaterials handles GET /materials?category=
func (h *MaterialHandler) GetMaterials(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	materials, err := h.materialService.GetMaterials(c.Request.Context(), owner, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, materials)
}

// GetMaterialByID handles GET /materials/:id
func (h *MaterialHandler) GetMaterialByID(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	material, err := h.materialService.GetMaterial(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, material)
}

// CreateMaterial handles POST /materials
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material, err := h.materialService.CreateMaterial(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, material)
}

// UpdateMaterial handles PUT /materials/:id
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material, err := h.materialService.UpdateMaterial(c.Request.Context(), owner, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, material)
}

// DeleteMaterial handles DELETE /materials/:id
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.materialService.DeleteMaterial(c.Request.Context(), owner, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted"})
}

// GetMaterialCount handles GET /materials/count
func (h *MaterialHandler) GetMaterialCount(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	count, err := h.materialService.CountMaterials(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
