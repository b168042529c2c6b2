package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/api/rest"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/config"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/logger"
	mapping "github.com/nathdadu26/viralbox-uploader-bot/internal/service/mapping/v1"
	relay "github.com/nathdadu26/viralbox-uploader-bot/internal/service/relay/v1"
	secretary "github.com/nathdadu26/viralbox-uploader-bot/internal/service/secretary/v1"
	shortener "github.com/nathdadu26/viralbox-uploader-bot/internal/service/shortener/v1"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/storage/inpsql"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/transport/telegram"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// add a waiting group
	wg := &sync.WaitGroup{}
	// set number of wg members to 1 (this will be the storage closure goroutine)
	wg.Add(1)
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	cfg.ParseFlags()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(cfg.ServerConfig.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()
	// initialize storage with an explicit lifecycle bound to ctx
	storageInit, err := inpsql.InitStorage(ctx, wg, cfg.StorageConfig)
	if err != nil {
		log.Fatal(err)
	}
	// initialize services
	generator, err := mapping.InitGenerator(cfg.ShortenerConfig.MappingIDLength)
	if err != nil {
		log.Fatal(err)
	}
	secretaryService, err := secretary.NewSecretaryService(cfg.SecretConfig)
	if err != nil {
		log.Fatal(err)
	}
	shortenerClient, err := shortener.InitClient(cfg.ShortenerConfig)
	if err != nil {
		log.Fatal(err)
	}
	botClient := telegram.NewClient(cfg.BotConfig.BotToken)
	relayService, err := relay.InitRelay(cfg, storageInit, generator, secretaryService, shortenerClient, botClient, zlog)
	if err != nil {
		log.Fatal(err)
	}
	// initialize server
	server, err := rest.InitServer(cfg, relayService, zlog)
	if err != nil {
		log.Fatal(err)
	}
	// register the webhook so the platform wakes the process per update
	webhookURL := cfg.ServerConfig.WebhookURL + "/webhook/" + cfg.BotConfig.BotToken
	if err := botClient.SetWebhook(ctx, webhookURL); err != nil {
		log.Fatal(err)
	}
	zlog.Infow("uploader bot is running",
		"address", cfg.ServerConfig.ServerAddress,
		"storage_channel", cfg.BotConfig.StorageChannelID,
		"worker_domain", cfg.ShortenerConfig.WorkerDomain,
		"shortener", cfg.ShortenerConfig.ShortenerDomain,
	)
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		log.Print("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			log.Fatal("Server shutdown failed:", err)
		}
		cancel()
	}()
	// start up the server
	log.Print("Server start attempted")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	// wait for goroutine in InitStorage to finish before exiting
	wg.Wait()
	log.Print("Server shutdown succeeded")
}
