package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business is the public-facing profile of a partner. One document per
// owner, written with upsert semantics.
type Business struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Website     string             `bson:"website" json:"website"`
	LogoURL     string             `bson:"logoUrl" json:"logoUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BusinessRequest is the payload for updating the business profile.
type BusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	LogoURL     string `json:"logoUrl"`
}
