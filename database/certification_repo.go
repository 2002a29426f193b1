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

type CertificationRepo struct {
	collection *mongo.Collection
}

func NewCertificationRepo(collection *mongo.Collection) *CertificationRepo {
	return &CertificationRepo{collection}
}

// FindAll returns all certifications ordered by descending issue date
func (r *CertificationRepo) FindAll(ctx context.Context) ([]*models.Certification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "issueDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var certifications []*models.Certification
	if err := cursor.All(ctx, &certifications); err != nil {
		return nil, err
	}
	return certifications, nil
}

// FindByID returns a certification by its ID, or nil when no document matches
func (r *CertificationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Certification, error) {
	var certification models.Certification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&certification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

// Add inserts a new certification
func (r *CertificationRepo) Add(ctx context.Context, certification *models.Certification) error {
	if certification.ID.IsZero() {
		certification.ID = primitive.NewObjectID()
	}
	if certification.CreatedAt.IsZero() {
		certification.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, certification)
	return err
}

// Delete removes a certification by id. Removing an unknown id is not
// an error.
func (r *CertificationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
