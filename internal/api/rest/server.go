// Package rest provides functionality for initializing the webhook server of the relay.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/api/rest/handlers"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/config"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/relay"
)

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, processor relay.Processor, log *zap.SugaredLogger) (*http.Server, error) {
	updateHandler, err := handlers.InitUpdateHandler(processor, cfg.BotConfig.BotToken, log)
	if err != nil {
		return nil, err
	}
	r := chi.NewRouter()
	r.Get("/healthz", updateHandler.HandleHealthCheck())
	r.Post("/webhook/{token}", updateHandler.HandleUpdate())

	srv := &http.Server{
		Addr:         cfg.ServerConfig.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
