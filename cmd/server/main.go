package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bconolly/MiniatureProjectTracker/internal/config"
	"github.com/bconolly/MiniatureProjectTracker/internal/handlers"
	"github.com/bconolly/MiniatureProjectTracker/internal/routes"
	"github.com/bconolly/MiniatureProjectTracker/internal/storage"
	"github.com/bconolly/MiniatureProjectTracker/internal/store"
	"github.com/bconolly/MiniatureProjectTracker/internal/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	st, err := store.Open(cfg.DatabaseURL, store.DefaultConfig())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	backend, err := storage.New(storage.Config{
		Type:          cfg.Storage.Type,
		BasePath:      cfg.Storage.LocalPath,
		BaseURL:       cfg.Storage.LocalBaseURL,
		Endpoint:      cfg.Storage.S3Endpoint,
		Bucket:        cfg.Storage.S3Bucket,
		Region:        cfg.Storage.S3Region,
		AccessKey:     cfg.Storage.S3AccessKey,
		SecretKey:     cfg.Storage.S3SecretKey,
		UseSSL:        cfg.Storage.S3UseSSL,
		PublicBaseURL: cfg.Storage.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(util.RequestID())
	router.Use(util.RequestLog("miniature-painting-tracker"))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		MaxAge:          12 * time.Hour,
	}))

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	routes.Register(router, handlers.New(st, storage.NewService(backend)))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr(), "storage", cfg.Storage.Type)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
