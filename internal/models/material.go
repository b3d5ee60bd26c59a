package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaterialCategory groups materials for filtering.
type MaterialCategory string

const (
	MaterialPlastic     MaterialCategory = "plastic"
	MaterialGlass       MaterialCategory = "glass"
	MaterialMetal       MaterialCategory = "metal"
	MaterialPaper       MaterialCategory = "paper"
	MaterialElectronics MaterialCategory = "electronics"
	MaterialOther       MaterialCategory = "other"
)

// ValidMaterialCategory reports whether c is a known category.
func ValidMaterialCategory(c MaterialCategory) bool {
	switch c {
	case MaterialPlastic, MaterialGlass, MaterialMetal, MaterialPaper, MaterialElectronics, MaterialOther:
		return true
	}
	return false
}

// Material is an entry in a partner's accepted-materials price list.
type Material struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID    primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name       string             `bson:"name" json:"name"`
	Category   MaterialCategory   `bson:"category" json:"category"`
	PricePerKg float64            `bson:"pricePerKg" json:"pricePerKg"`
	Accepted   bool               `bson:"accepted" json:"accepted"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MaterialRequest is the payload for creating or replacing a material.
type MaterialRequest struct {
	Name       string           `json:"name" binding:"required"`
	Category   MaterialCategory `json:"category" binding:"required"`
	PricePerKg float64          `json:"pricePerKg"`
	Accepted   bool             `json:"accepted"`
}
