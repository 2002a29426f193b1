package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

// certificationStore is the slice of the database layer the
// certification handler needs; *database.CertificationRepo satisfies it.
type certificationStore interface {
	FindAll(ctx context.Context) ([]*models.Certification, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Certification, error)
	Add(ctx context.Context, certification *models.Certification) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type certificationHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     certificationStore
	baseURL   string
}

func newCertificationHandler(store certificationStore, baseURL string) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		baseURL:   baseURL,
	}
}

type certificationResponse struct {
	models.Certification
	HasImage bool    `json:"hasImage"`
	ImageURL *string `json:"imageUrl"`
}

func (h certificationHandler) shape(certification *models.Certification) certificationResponse {
	hasImage, imageURL := blobRef(h.baseURL, "certifications", certification.ID, certification.Image, "")
	return certificationResponse{Certification: *certification, HasImage: hasImage, ImageURL: imageURL}
}

// getAllCertifications returns every certification ordered by
// descending issue date
func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certifications, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certifications", err))
			return
		}

		responses := make([]certificationResponse, 0, len(certifications))
		for _, certification := range certifications {
			responses = append(responses, h.shape(certification))
		}
		h.responder.WriteJSON(w, responses)
	}
}

// createCertification adds a certification from a multipart form
func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		title := r.FormValue("title")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		issuer := r.FormValue("issuer")
		if issuer == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("issuer"))
			return
		}
		issueDateRaw := r.FormValue("issueDate")
		if issueDateRaw == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("issueDate"))
			return
		}
		issueDate, err := parseIssueDate(issueDateRaw)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid issueDate"))
			return
		}

		image, err := formImage(r, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certification := &models.Certification{
			Title:     title,
			Issuer:    issuer,
			IssueDate: issueDate,
			URL:       r.FormValue("url"),
			Image:     image,
		}

		if err := h.store.Add(r.Context(), certification); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "certification", err))
			return
		}

		h.responder.WriteCreated(w, h.shape(certification))
	}
}

// deleteCertification removes a certification by id, idempotently
func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certification id"))
			return
		}

		if err := h.store.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "certification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Certification deleted successfully",
		})
	}
}

// getCertificationImage streams the stored badge image bytes
func (h certificationHandler) getCertificationImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certification id"))
			return
		}

		certification, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certification", err))
			return
		}
		if certification == nil || certification.Image == nil || len(certification.Image.Data) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("No image found"))
			return
		}

		writeBlob(w, certification.Image)
	}
}

// parseIssueDate accepts the date formats the admin form submits.
func parseIssueDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errs.NewBadRequestError("invalid issueDate")
}
