package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pranishr/portfolio-api/models"
)

type SkillRepo struct {
	collection *mongo.Collection
}

func NewSkillRepo(collection *mongo.Collection) *SkillRepo {
	return &SkillRepo{collection}
}

// FindAll returns all curated skills sorted by name
func (r *SkillRepo) FindAll(ctx context.Context) ([]*models.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var skills []*models.Skill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// Add inserts a new skill. A duplicate name surfaces as the driver's
// duplicate-key error thanks to the unique index on name.
func (r *SkillRepo) Add(ctx context.Context, skill *models.Skill) error {
	if skill.ID.IsZero() {
		skill.ID = primitive.NewObjectID()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, skill)
	return err
}

// DeleteByName removes a skill by its name. Deleting a name that does
// not exist is not an error.
func (r *SkillRepo) DeleteByName(ctx context.Context, name string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"name": name})
	return err
}
