package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-catalog-go/internal/api"
	"voice-catalog-go/internal/config"
	"voice-catalog-go/internal/core"
	"voice-catalog-go/internal/llm"
	"voice-catalog-go/internal/logger"
	"voice-catalog-go/internal/store"
	"voice-catalog-go/internal/transcribe"
)

func main() {
	config.LoadConfig()

	log := logger.New().WithField("service", "voice-catalog")
	log.Info("starting service")

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		log.WithField("error", err.Error()).Fatal("failed to create upload directory")
	}

	// Session store
	var sessionStore store.Store
	switch config.AppConfig.StoreBackend {
	case "sqlite":
		sqliteStore, err := store.NewSQLiteStore(config.AppConfig.DatabaseURL)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to initialize database")
		}
		defer sqliteStore.Close()
		sessionStore = sqliteStore
	case "file":
		fileStore, err := store.NewFileStore(config.AppConfig.DataDir)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to initialize data directory")
		}
		sessionStore = fileStore
	default:
		log.WithField("backend", config.AppConfig.StoreBackend).Fatal("unknown STORE_BACKEND")
	}

	// LLM completer
	var completer llm.Completer
	switch config.AppConfig.LLMProvider {
	case "gemini":
		gemini, err := llm.NewGemini(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to initialize Gemini client")
		}
		defer gemini.Close()
		completer = gemini
	case "groq":
		completer = llm.NewGroq(config.AppConfig.GroqAPIKey, config.AppConfig.GroqModel)
	}

	// Pipeline services
	sessionService := core.NewSessionService(
		sessionStore,
		core.NewBusinessExtractor(completer),
		core.NewProductExtractor(completer),
	)
	transcriber := transcribe.NewClient(config.AppConfig.WhisperURL)

	apiHandler := api.NewAPIHandler(sessionService, transcriber, config.AppConfig.UploadDir)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // transcription + LLM both sit inside one request
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", serverAddr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithField("error", err.Error()).Fatal("server terminated")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithField("error", err.Error()).Fatal("server forced to shutdown")
	}
	log.Info("server exited gracefully")
}
