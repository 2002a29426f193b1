package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resume is the uploaded resume file. The collection holds at most one
// document; an upload replaces whatever was stored before.
type Resume struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Filename     string             `json:"filename" bson:"filename"`
	OriginalName string             `json:"originalName" bson:"originalName"`
	ContentType  string             `json:"mimeType" bson:"contentType"`
	Data         []byte             `json:"-" bson:"data"`
	UploadedAt   time.Time          `json:"uploadedAt" bson:"uploadedAt"`
}
