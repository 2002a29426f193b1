package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is a work-history entry. Dates are opaque display strings
// ("Jan 2023", "Present"), not validated calendar dates.
type Experience struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Position    string             `json:"position" bson:"position"`
	Company     string             `json:"company" bson:"company"`
	StartDate   string             `json:"startDate" bson:"startDate"`
	EndDate     string             `json:"endDate" bson:"endDate"`
	Skills      string             `json:"skills,omitempty" bson:"skills,omitempty"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
