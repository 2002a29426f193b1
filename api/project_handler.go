package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

// projectStore is the slice of the database layer the project handler
// needs; *database.ProjectRepo satisfies it.
type projectStore interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindFeatured(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     projectStore
	baseURL   string
}

func newProjectHandler(store projectStore, baseURL string) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		baseURL:   baseURL,
	}
}

// projectResponse is the shaped form of a project: raw image bytes are
// replaced by a presence flag and a read-endpoint URL.
type projectResponse struct {
	models.Project
	HasImage bool    `json:"hasImage"`
	ImageURL *string `json:"imageUrl"`
}

func (h projectHandler) shape(project *models.Project) projectResponse {
	hasImage, imageURL := blobRef(h.baseURL, "projects", project.ID, project.Image, project.ImageURL)
	return projectResponse{Project: *project, HasImage: hasImage, ImageURL: imageURL}
}

func (h projectHandler) shapeAll(projects []*models.Project) []projectResponse {
	responses := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, h.shape(project))
	}
	return responses
}

// getAllProjects returns every project, newest first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, h.shapeAll(projects))
	}
}

// getFeaturedProjects returns only the projects flagged as featured
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.store.FindFeatured(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "featured projects", err))
			return
		}

		h.responder.WriteJSON(w, h.shapeAll(projects))
	}
}

// getProject returns one project by id
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, h.shape(project))
	}
}

// projectFromForm builds a project from a multipart form, enforcing
// required fields and splitting the technologies csv.
func (h projectHandler) projectFromForm(r *http.Request) (*models.Project, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, errs.NewMalformedPayloadError("multipart", err)
	}

	title := r.FormValue("title")
	if title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	description := r.FormValue("description")
	if description == "" {
		return nil, errs.NewMissingRequiredFieldError("description")
	}

	project := &models.Project{
		Title:        title,
		Description:  description,
		Technologies: splitCSV(r.FormValue("technologies")),
		GithubURL:    r.FormValue("githubUrl"),
		LiveURL:      r.FormValue("liveUrl"),
		ImageURL:     r.FormValue("imageUrl"),
		Featured:     r.FormValue("featured") == "true",
	}

	image, err := formImage(r, "image")
	if err != nil {
		return nil, err
	}
	project.Image = image

	return project, nil
}

// createProject creates a new project from a multipart form
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.projectFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Add(r.Context(), project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteCreated(w, h.shape(project))
	}
}

// updateProject replaces an existing project. A new upload replaces the
// stored image entirely; without one the previous image is kept.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		existing, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		project, err := h.projectFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.ID = id
		project.CreatedAt = existing.CreatedAt
		if project.Image == nil {
			project.Image = existing.Image
		}

		if _, err := h.store.Update(r.Context(), project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, h.shape(project))
	}
}

// deleteProject removes a project by id
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		deleted, err := h.store.Delete(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Project deleted successfully",
		})
	}
}

// getProjectImage streams the stored image bytes
func (h projectHandler) getProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil || project.Image == nil || len(project.Image.Data) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("No image found"))
			return
		}

		writeBlob(w, project.Image)
	}
}
