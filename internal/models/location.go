package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a physical drop-off site operated by a partner.
type Location struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID      primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	City         string             `bson:"city" json:"city"`
	PostalCode   string             `bson:"postalCode" json:"postalCode"`
	Latitude     float64            `bson:"latitude" json:"latitude"`
	Longitude    float64            `bson:"longitude" json:"longitude"`
	Phone        string             `bson:"phone" json:"phone"`
	OpeningHours string             `bson:"openingHours" json:"openingHours"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LocationRequest is the payload for creating or replacing a location.
type LocationRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city"`
	PostalCode   string  `json:"postalCode"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Phone        string  `json:"phone"`
	OpeningHours string  `json:"openingHours"`
}
