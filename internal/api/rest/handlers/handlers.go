// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	serviceErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/service/errors"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/relay"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/transport/telegram"
)

// UpdateHandler dispatches inbound webhook updates to the relay service.
type UpdateHandler struct {
	processor relay.Processor
	botToken  string
	log       *zap.SugaredLogger
}

// InitUpdateHandler initializes an UpdateHandler object and sets its attributes.
func InitUpdateHandler(processor relay.Processor, botToken string, log *zap.SugaredLogger) (*UpdateHandler, error) {
	if processor == nil {
		return nil, &serviceErrors.ServiceFoundNilDependency{Msg: "nil relay processor was passed to update handler initializer"}
	}
	return &UpdateHandler{processor: processor, botToken: botToken, log: log}, nil
}

// HandleUpdate accepts one Telegram update and runs it to a terminal state.
// The webhook path must carry the bot token; anything else gets 404 so the
// endpoint is not discoverable.
func (h *UpdateHandler) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "token") != h.botToken {
			http.NotFound(w, r)
			return
		}
		var update telegram.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.log.Warnw("undecodable update", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.dispatch(r, update)
		w.WriteHeader(http.StatusOK)
	}
}

func (h *UpdateHandler) dispatch(r *http.Request, update telegram.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	command, args := msg.Command()
	switch command {
	case "/start":
		h.processor.Start(r.Context(), msg)
	case "/set_api":
		h.processor.SetAPIKey(r.Context(), msg, args)
	default:
		if msg.HasMedia() {
			h.processor.Upload(r.Context(), msg)
		}
	}
}

// HandleHealthCheck reports process liveness to the hosting platform.
func (h *UpdateHandler) HandleHealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
