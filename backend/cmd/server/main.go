package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"pulse/backend/internal/adapter"
	"pulse/backend/internal/assistant"
	"pulse/backend/internal/content"
	"pulse/backend/internal/feed"
	"pulse/backend/internal/httpapi"
	"pulse/backend/internal/messaging"
	"pulse/backend/internal/seed"
	"pulse/backend/internal/session"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/config"
	"pulse/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Pulse API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize stores and services
	socialStore := social.NewStore()
	contentStore := content.NewStore()

	socialSvc := social.NewService(socialStore)
	contentSvc := content.NewService(contentStore, socialStore)
	feedComposer := feed.NewComposer(contentStore, socialStore)
	messagingSvc := messaging.NewService(socialStore)

	llmAdapter := adapter.NewLLMAdapter(cfg.AssistantURL, cfg.AssistantAPIKey, cfg.AssistantModel)
	assistantSvc := assistant.NewService(llmAdapter)

	sessionStore := session.NewStore(cfg.DataDir)
	if restored, err := sessionStore.Load(); err != nil {
		log.Warn("Failed to load stored session", zap.Error(err))
	} else if restored != nil {
		log.Info("Restored session", zap.String("user_id", restored.ID))
	}

	if cfg.SeedDemoData {
		if err := seed.Apply(socialSvc, contentSvc, messagingSvc); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	server := httpapi.New(httpapi.Deps{
		Config:    cfg,
		Social:    socialSvc,
		Content:   contentSvc,
		Feed:      feedComposer,
		Messaging: messagingSvc,
		Assistant: assistantSvc,
		Session:   sessionStore,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}

	log.Info("Server exited")
}
