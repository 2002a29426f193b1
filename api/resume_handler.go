package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

// resumeStore is the slice of the database layer the resume handler
// needs; *database.ResumeRepo satisfies it.
type resumeStore interface {
	Find(ctx context.Context) (*models.Resume, error)
	Replace(ctx context.Context, resume *models.Resume) error
	DeleteAll(ctx context.Context) error
}

type resumeHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     resumeStore
}

func newResumeHandler(store resumeStore) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadResume stores a new resume, replacing any previous one
func (h resumeHandler) uploadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		blob, err := formFile(r, "resume")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if blob == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file uploaded"))
			return
		}

		resume := &models.Resume{
			Filename:     uuid.NewString() + filepath.Ext(blob.Filename),
			OriginalName: blob.Filename,
			ContentType:  blob.ContentType,
			Data:         blob.Data,
		}

		if err := h.store.Replace(r.Context(), resume); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("replace", "resume", err))
			return
		}

		h.responder.WriteCreated(w, map[string]string{
			"message": "Resume uploaded successfully",
		})
	}
}

// getResumeInfo returns the stored resume's metadata without the bytes
func (h resumeHandler) getResumeInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.store.Find(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "resume", err))
			return
		}
		if resume == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Resume not found"))
			return
		}

		h.responder.WriteJSON(w, resume)
	}
}

// downloadResume streams the stored resume as an attachment
func (h resumeHandler) downloadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.store.Find(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "resume", err))
			return
		}
		if resume == nil || len(resume.Data) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Resume not found"))
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", resume.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.OriginalName))
		w.Write(resume.Data)
	}
}

// deleteResume removes the stored resume, idempotently
func (h resumeHandler) deleteResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.DeleteAll(r.Context()); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "resume", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Resume deleted successfully",
		})
	}
}
