package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

const (
	testSecret   = "test-secret"
	testBaseURL  = "http://api.test"
	testUsername = "admin"
	testPassword = "hunter2"
)

// In-memory fakes standing in for the database repos. Each implements
// the store interface its handler consumes.

type fakeProjectStore struct {
	projects []*models.Project
}

func (s *fakeProjectStore) FindAll(context.Context) ([]*models.Project, error) {
	return s.projects, nil
}

func (s *fakeProjectStore) FindFeatured(context.Context) ([]*models.Project, error) {
	var featured []*models.Project
	for _, p := range s.projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (s *fakeProjectStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeProjectStore) Add(_ context.Context, project *models.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	s.projects = append(s.projects, project)
	return nil
}

func (s *fakeProjectStore) Update(_ context.Context, project *models.Project) (bool, error) {
	for i, p := range s.projects {
		if p.ID == project.ID {
			s.projects[i] = project
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProjectStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeSkillStore struct {
	skills []*models.Skill
}

func (s *fakeSkillStore) FindAll(context.Context) ([]*models.Skill, error) {
	return s.skills, nil
}

func (s *fakeSkillStore) Add(_ context.Context, skill *models.Skill) error {
	for _, existing := range s.skills {
		if existing.Name == skill.Name {
			return fmt.Errorf("skill %w", errs.ErrAlreadyExists)
		}
	}
	if skill.ID.IsZero() {
		skill.ID = primitive.NewObjectID()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}
	s.skills = append(s.skills, skill)
	return nil
}

func (s *fakeSkillStore) DeleteByName(_ context.Context, name string) error {
	for i, skill := range s.skills {
		if skill.Name == name {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeExperienceStore struct {
	experiences []*models.Experience
}

func (s *fakeExperienceStore) FindAll(context.Context) ([]*models.Experience, error) {
	return s.experiences, nil
}

func (s *fakeExperienceStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Experience, error) {
	for _, e := range s.experiences {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (s *fakeExperienceStore) Add(_ context.Context, experience *models.Experience) error {
	if experience.ID.IsZero() {
		experience.ID = primitive.NewObjectID()
	}
	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = time.Now().UTC()
	}
	s.experiences = append(s.experiences, experience)
	return nil
}

func (s *fakeExperienceStore) Update(_ context.Context, experience *models.Experience) (bool, error) {
	for i, e := range s.experiences {
		if e.ID == experience.ID {
			s.experiences[i] = experience
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeExperienceStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, e := range s.experiences {
		if e.ID == id {
			s.experiences = append(s.experiences[:i], s.experiences[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCertificationStore struct {
	certifications []*models.Certification
}

func (s *fakeCertificationStore) FindAll(context.Context) ([]*models.Certification, error) {
	return s.certifications, nil
}

func (s *fakeCertificationStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Certification, error) {
	for _, c := range s.certifications {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeCertificationStore) Add(_ context.Context, certification *models.Certification) error {
	if certification.ID.IsZero() {
		certification.ID = primitive.NewObjectID()
	}
	if certification.CreatedAt.IsZero() {
		certification.CreatedAt = time.Now().UTC()
	}
	s.certifications = append(s.certifications, certification)
	return nil
}

func (s *fakeCertificationStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range s.certifications {
		if c.ID == id {
			s.certifications = append(s.certifications[:i], s.certifications[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeResumeStore struct {
	resumes []*models.Resume
}

func (s *fakeResumeStore) Find(context.Context) (*models.Resume, error) {
	if len(s.resumes) == 0 {
		return nil, nil
	}
	return s.resumes[len(s.resumes)-1], nil
}

func (s *fakeResumeStore) Replace(_ context.Context, resume *models.Resume) error {
	if resume.ID.IsZero() {
		resume.ID = primitive.NewObjectID()
	}
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = time.Now().UTC()
	}
	s.resumes = []*models.Resume{resume}
	return nil
}

func (s *fakeResumeStore) DeleteAll(context.Context) error {
	s.resumes = nil
	return nil
}

type fakeMessageStore struct {
	messages []*models.Message
}

func (s *fakeMessageStore) FindAll(context.Context) ([]*models.Message, error) {
	return s.messages, nil
}

func (s *fakeMessageStore) Add(_ context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	s.messages = append(s.messages, message)
	return nil
}

func (s *fakeMessageStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, m := range s.messages {
		if m.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// testEnv wires the full route table over the fakes.
type testEnv struct {
	router         *chi.Mux
	authority      tokenAuthority
	projects       *fakeProjectStore
	skills         *fakeSkillStore
	experiences    *fakeExperienceStore
	certifications *fakeCertificationStore
	resumes        *fakeResumeStore
	messages       *fakeMessageStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		authority:      newTokenAuthority([]byte(testSecret), tokenValidity),
		projects:       &fakeProjectStore{},
		skills:         &fakeSkillStore{},
		experiences:    &fakeExperienceStore{},
		certifications: &fakeCertificationStore{},
		resumes:        &fakeResumeStore{},
		messages:       &fakeMessageStore{},
	}

	handlers := &routeHandlers{
		authHandler:          newAuthHandler(env.authority, adminCredentials{username: testUsername, password: testPassword}),
		projectHandler:       newProjectHandler(env.projects, testBaseURL),
		skillHandler:         newSkillHandler(env.skills, env.projects),
		experienceHandler:    newExperienceHandler(env.experiences),
		certificationHandler: newCertificationHandler(env.certifications, testBaseURL),
		resumeHandler:        newResumeHandler(env.resumes),
		messageHandler:       newMessageHandler(env.messages),
	}

	env.router = chi.NewRouter()
	setupRoutes(env.router, handlers, newAuthMiddleware(env.authority))
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := e.authority.Issue(testUsername)
	require.NoError(t, err)
	return token
}

func (e *testEnv) expiredToken(t *testing.T) string {
	t.Helper()
	expired := newTokenAuthority([]byte(testSecret), -time.Hour)
	token, err := expired.Issue(testUsername)
	require.NoError(t, err)
	return token
}

// multipartBody builds a multipart form from fields plus an optional
// single file part with an explicit content type.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
