package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

// experienceStore is the slice of the database layer the experience
// handler needs; *database.ExperienceRepo satisfies it.
type experienceStore interface {
	FindAll(ctx context.Context) ([]*models.Experience, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
	Add(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, experience *models.Experience) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type experienceHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     experienceStore
}

func newExperienceHandler(store experienceStore) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type experienceRequest struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
}

func (req experienceRequest) validate() error {
	switch {
	case req.Position == "":
		return errs.NewMissingRequiredFieldError("position")
	case req.Company == "":
		return errs.NewMissingRequiredFieldError("company")
	case req.StartDate == "":
		return errs.NewMissingRequiredFieldError("startDate")
	case req.EndDate == "":
		return errs.NewMissingRequiredFieldError("endDate")
	case req.Description == "":
		return errs.NewMissingRequiredFieldError("description")
	}
	return nil
}

// getAllExperiences returns every experience entry, newest first
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "experiences", err))
			return
		}

		if experiences == nil {
			experiences = []*models.Experience{}
		}
		h.responder.WriteJSON(w, experiences)
	}
}

// createExperience adds a new experience entry
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req experienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("experience", err))
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience := &models.Experience{
			Position:    req.Position,
			Company:     req.Company,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Skills:      req.Skills,
			Description: req.Description,
		}

		if err := h.store.Add(r.Context(), experience); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "experience", err))
			return
		}

		h.responder.WriteCreated(w, experience)
	}
}

// updateExperience replaces an existing experience entry
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experience id"))
			return
		}

		existing, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "experience", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Experience not found"))
			return
		}

		var req experienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("experience", err))
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience := &models.Experience{
			ID:          id,
			CreatedAt:   existing.CreatedAt,
			Position:    req.Position,
			Company:     req.Company,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Skills:      req.Skills,
			Description: req.Description,
		}

		updated, err := h.store.Update(r.Context(), experience)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "experience", err))
			return
		}
		if !updated {
			h.responder.WriteError(w, errs.NewNotFoundError("Experience not found"))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// deleteExperience removes an experience entry by id
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experience id"))
			return
		}

		deleted, err := h.store.Delete(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "experience", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Experience not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Experience deleted successfully",
		})
	}
}
