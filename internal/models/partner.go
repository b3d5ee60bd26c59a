package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner represents a business account (tenant). Every owner-scoped
// document in the system references a partner ID.
type Partner struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	BusinessName string             `bson:"businessName" json:"businessName"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
