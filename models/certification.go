package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Certification is an earned certificate, optionally with an uploaded badge image.
type Certification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Issuer    string             `json:"issuer" bson:"issuer"`
	IssueDate time.Time          `json:"issueDate" bson:"issueDate"`
	URL       string             `json:"url,omitempty" bson:"url,omitempty"`
	Image     *Blob              `json:"-" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
