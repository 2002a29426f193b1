package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Technologies []string           `json:"technologies" bson:"technologies"`
	GithubURL    string             `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`
	LiveURL      string             `json:"liveUrl,omitempty" bson:"liveUrl,omitempty"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Image        *Blob              `json:"-" bson:"image,omitempty"`
	Featured     bool               `json:"featured" bson:"featured"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
