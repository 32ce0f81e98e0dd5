package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newContactHandler(messageRepo *database.MessageRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// createMessage stores an inbound contact-form message. Public; required
// field checks come from the persistence layer.
func (h contactHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message := models.Message{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}
		if err := h.messageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]any{
			"message": "Message sent successfully",
			"data":    message,
		})
	}
}

// getMessages lists all contact messages, newest first. Requires
// authentication; any authenticated user qualifies.
func (h contactHandler) getMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}
