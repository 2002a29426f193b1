package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pranishr/portfolio-api/models"
)

type ResumeRepo struct {
	collection *mongo.Collection
}

func NewResumeRepo(collection *mongo.Collection) *ResumeRepo {
	return &ResumeRepo{collection}
}

// Find returns the stored resume, newest upload first, or nil when the
// collection is empty.
func (r *ResumeRepo) Find(ctx context.Context) (*models.Resume, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	var resume models.Resume
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&resume)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Replace purges every stored resume and inserts the new one. The two
// steps are not wrapped in a transaction; concurrent uploads race and
// last write wins.
func (r *ResumeRepo) Replace(ctx context.Context, resume *models.Resume) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	if resume.ID.IsZero() {
		resume.ID = primitive.NewObjectID()
	}
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, resume)
	return err
}

// DeleteAll removes every stored resume. Deleting when none is stored
// is not an error.
func (r *ResumeRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
