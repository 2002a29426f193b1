package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

// skillStore is the slice of the database layer the skill handler
// needs; *database.SkillRepo satisfies it.
type skillStore interface {
	FindAll(ctx context.Context) ([]*models.Skill, error)
	Add(ctx context.Context, skill *models.Skill) error
	DeleteByName(ctx context.Context, name string) error
}

// technologySource supplies the project technology tags folded into the
// skill list; *database.ProjectRepo satisfies it.
type technologySource interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
}

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     skillStore
	projects  technologySource
}

func newSkillHandler(store skillStore, projects technologySource) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		projects:  projects,
	}
}

// getAllSkills returns the union of curated skill names and every
// technology tag referenced by a project, deduplicated case-sensitively
// and sorted. Recomputed on every request.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		projects, err := h.projects.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		seen := make(map[string]struct{})
		union := make([]string, 0, len(skills))
		for _, skill := range skills {
			if _, ok := seen[skill.Name]; !ok {
				seen[skill.Name] = struct{}{}
				union = append(union, skill.Name)
			}
		}
		for _, project := range projects {
			for _, tech := range project.Technologies {
				if _, ok := seen[tech]; !ok {
					seen[tech] = struct{}{}
					union = append(union, tech)
				}
			}
		}
		sort.Strings(union)

		h.responder.WriteJSON(w, union)
	}
}

type createSkillRequest struct {
	Name string `json:"name"`
}

// createSkill adds a curated skill. A duplicate name is a 400 with a
// distinct message, matching the unique-name invariant.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("skill", err))
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Skill name is required"))
			return
		}

		skill := &models.Skill{Name: name}
		if err := h.store.Add(r.Context(), skill); err != nil {
			if errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, errs.NewBadRequestError("Skill already exists"))
				return
			}
			h.responder.WriteError(w, errs.NewDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteCreated(w, skill)
	}
}

// deleteSkill removes a curated skill by name, idempotently
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing skill name"))
			return
		}

		if err := h.store.DeleteByName(r.Context(), name); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Skill deleted successfully",
		})
	}
}
