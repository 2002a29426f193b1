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

// messageStore is the slice of the database layer the contact handler
// needs; *database.MessageRepo satisfies it.
type messageStore interface {
	FindAll(ctx context.Context) ([]*models.Message, error)
	Add(ctx context.Context, message *models.Message) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type messageHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     messageStore
}

func newMessageHandler(store messageStore) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// createMessage accepts a public contact-form submission. All four
// fields are required; the stored id is not echoed back.
func (h messageHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("All fields are required"))
			return
		}

		message := &models.Message{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}

		if err := h.store.Add(r.Context(), message); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "message", err))
			return
		}

		h.responder.WriteCreated(w, map[string]string{
			"message": "Message sent successfully",
		})
	}
}

// getAllMessages returns every contact message, newest first (admin only)
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "messages", err))
			return
		}

		if messages == nil {
			messages = []*models.Message{}
		}
		h.responder.WriteJSON(w, messages)
	}
}

// deleteMessage removes a contact message by id. An unknown id still
// reports success.
func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid message id"))
			return
		}

		if _, err := h.store.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Message deleted successfully",
		})
	}
}
