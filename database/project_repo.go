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

type ProjectRepo struct {
	collection *mongo.Collection
}

func NewProjectRepo(collection *mongo.Collection) *ProjectRepo {
	return &ProjectRepo{collection}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	return r.find(ctx, bson.M{})
}

// FindFeatured returns the featured projects, newest first
func (r *ProjectRepo) FindFeatured(ctx context.Context) ([]*models.Project, error) {
	return r.find(ctx, bson.M{"featured": true})
}

func (r *ProjectRepo) find(ctx context.Context, filter bson.M) ([]*models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var projects []*models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil when no document matches
func (r *ProjectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, project)
	return err
}

// Update replaces an existing project document. Returns false when the
// id does not resolve.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) (bool, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete removes a project by id. Returns false when nothing was removed.
func (r *ProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
