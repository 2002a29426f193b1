package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	projectsCollection       = "projects"
	skillsCollection         = "skills"
	experiencesCollection    = "experiences"
	certificationsCollection = "certifications"
	resumesCollection        = "resumes"
	messagesCollection       = "messages"
)

// Connect opens a client, verifies the deployment is reachable and
// returns a handle on the named database. The client is shared by all
// repositories for the life of the process.
func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(name), nil
}

type Database struct {
	projectRepo       *ProjectRepo
	skillRepo         *SkillRepo
	experienceRepo    *ExperienceRepo
	certificationRepo *CertificationRepo
	resumeRepo        *ResumeRepo
	messageRepo       *MessageRepo
}

// New initializes a new Database struct with each repository using a shared Mongo database handle
func New(db *mongo.Database) Database {
	return Database{
		projectRepo:       NewProjectRepo(db.Collection(projectsCollection)),
		skillRepo:         NewSkillRepo(db.Collection(skillsCollection)),
		experienceRepo:    NewExperienceRepo(db.Collection(experiencesCollection)),
		certificationRepo: NewCertificationRepo(db.Collection(certificationsCollection)),
		resumeRepo:        NewResumeRepo(db.Collection(resumesCollection)),
		messageRepo:       NewMessageRepo(db.Collection(messagesCollection)),
	}
}

// EnsureIndexes creates the indexes the invariants rely on, most
// importantly the unique index backing skill-name conflicts.
func (d Database) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := d.skillRepo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	return err
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}
