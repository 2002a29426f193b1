package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pranishr/portfolio-api/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	authority tokenAuthority
	creds     adminCredentials
}

func newAuthHandler(authority tokenAuthority, creds adminCredentials) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		authority: authority,
		creds:     creds,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the admin credentials and issues a bearer token valid
// for the configured window. Bad username and bad password are not
// distinguished in the response.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if !h.creds.Check(req.Username, req.Password) {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := h.authority.Issue(req.Username)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}
