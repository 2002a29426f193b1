package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill is a manually curated skill name, unique across the collection.
type Skill struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
