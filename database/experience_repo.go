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

type ExperienceRepo struct {
	collection *mongo.Collection
}

func NewExperienceRepo(collection *mongo.Collection) *ExperienceRepo {
	return &ExperienceRepo{collection}
}

// FindAll returns all experience entries, newest first
func (r *ExperienceRepo) FindAll(ctx context.Context) ([]*models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var experiences []*models.Experience
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

// Add inserts a new experience entry
func (r *ExperienceRepo) Add(ctx context.Context, experience *models.Experience) error {
	if experience.ID.IsZero() {
		experience.ID = primitive.NewObjectID()
	}
	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, experience)
	return err
}

// FindByID returns an experience entry by its ID, or nil when no document matches
func (r *ExperienceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	var experience models.Experience
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&experience)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Update replaces an existing experience document. Returns false when
// the id does not resolve.
func (r *ExperienceRepo) Update(ctx context.Context, experience *models.Experience) (bool, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": experience.ID}, experience)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete removes an experience entry by id. Returns false when nothing
// was removed.
func (r *ExperienceRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
