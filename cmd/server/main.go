package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cattery/internal/aifill"
	"cattery/internal/config"
	"cattery/internal/handler"
	"cattery/internal/repository/postgres"
	"cattery/internal/router"
	"cattery/internal/service"
	s3storage "cattery/internal/storage/s3"
)

// @title Cattery Admin API
// @version 1.0
// @description Cat cafe administration backend with AI-assisted form filling.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	catRepo := postgres.NewCatRepo(db)
	breedRepo := postgres.NewCatBreedRepo(db)
	statusRepo := postgres.NewCatStatusRepo(db)
	storeRepo := postgres.NewStoreRepo(db)
	configRepo := postgres.NewConfigRepo(db)

	// Initialize storage
	imageStore, err := s3storage.NewImageStore(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// AI form fill pipeline. The default provider is read once here.
	vocab := service.NewVocabularyService(breedRepo, statusRepo, storeRepo)
	resolver := aifill.NewResolver(&cfg.AI)
	loc := cfg.AI.Location()
	extractor := aifill.NewExtractor(
		resolver,
		aifill.NewClient(cfg.AI.Timeout()),
		vocab,
		aifill.WithClock(func() time.Time { return time.Now().In(loc) }),
		aifill.WithVocabularyValidation(cfg.AI.ValidateVocabulary),
	)
	if !resolver.Configured(resolver.Default()) {
		log.Printf("warning: default AI provider %s has no API key; set %s",
			resolver.Default(), resolver.Default().EnvKey())
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	catSvc := service.NewCatService(catRepo, vocab)
	breedSvc := service.NewCatBreedService(breedRepo)
	statusSvc := service.NewCatStatusService(statusRepo)
	storeSvc := service.NewStoreService(storeRepo)
	configSvc, err := service.NewConfigService(configRepo)
	if err != nil {
		return fmt.Errorf("failed to initialize config service: %w", err)
	}
	uploadSvc := service.NewUploadService(imageStore, &cfg.S3)
	formFillSvc := service.NewFormFillService(extractor, resolver)
	draftSvc, err := service.NewDraftService(cfg.Drafts.MaxOpen, catSvc, configSvc, extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize draft service: %w", err)
	}
	defer draftSvc.CloseAll()

	// Setup router
	r := router.Setup(authSvc, router.Handlers{
		Health:    handler.NewHealthHandler(db),
		Auth:      handler.NewAuthHandler(authSvc, userSvc),
		Cat:       handler.NewCatHandler(catSvc),
		CatBreed:  handler.NewCatBreedHandler(breedSvc),
		CatStatus: handler.NewCatStatusHandler(statusSvc),
		Store:     handler.NewStoreHandler(storeSvc),
		Config:    handler.NewConfigHandler(configSvc),
		Upload:    handler.NewUploadHandler(uploadSvc),
		AI:        handler.NewAIHandler(formFillSvc),
		Draft:     handler.NewDraftHandler(draftSvc),
	}, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	// In-flight AI fills are cancelled before the listener drains.
	draftSvc.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
