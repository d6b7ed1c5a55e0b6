package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"cinehub/database"
	"cinehub/internal/config"
	"cinehub/internal/httpapi/handler"
	"cinehub/internal/httpapi/middleware"
	"cinehub/internal/httpapi/repository"
	"cinehub/internal/httpapi/service"
	"cinehub/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	assets, err := storage.NewDiskStore(cfg.AssetDataPath)
	if err != nil {
		log.Fatalf("could not init asset storage: %v", err)
	}

	// repositories
	genreRepo := repository.NewGenreRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// services
	genreSvc := service.NewGenreService(genreRepo)
	movieSvc := service.NewMovieService(movieRepo, genreRepo, assets)
	characterSvc := service.NewCharacterService(characterRepo, movieRepo, assets)
	linkSvc := service.NewLinkService(linkRepo, characterRepo, movieRepo)
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, cfg)

	// handlers
	genreHandler := handler.NewGenreHandler(genreSvc, movieSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)
	characterHandler := handler.NewCharacterHandler(characterSvc, linkSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(limiter.Middleware())

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api/v1")

	authHandler.RegisterRoutes(api.Group("/users"))

	guard := middleware.AuthMiddleware(authSvc)
	genreHandler.RegisterRoutes(api.Group("/genres", guard))
	movieHandler.RegisterRoutes(api.Group("/movies", guard))
	characterHandler.RegisterRoutes(api.Group("/characters", guard))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
