package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Github22799/Recipe-App-API/config"
	"github.com/Github22799/Recipe-App-API/internal/api"
	"github.com/Github22799/Recipe-App-API/internal/database"
	"github.com/Github22799/Recipe-App-API/internal/middleware"
	"github.com/Github22799/Recipe-App-API/internal/router"
	"github.com/Github22799/Recipe-App-API/internal/server"
	"github.com/Github22799/Recipe-App-API/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.WaitFor(cfg, 30, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := config.NewMediaStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:token",
		})
	}

	users := service.NewUserService(db)
	tokens := service.NewTokenService(cfg.JWTSecret)

	engine := router.Setup(router.Handlers{
		Users:          api.NewUserHandler(users, tokens),
		Attributes:     api.NewAttributeHandler(service.NewTagService(db), service.NewIngredientService(db)),
		Images:         api.NewImageHandler(service.NewImageService(db, store)),
		Recipes:        api.NewRecipeHandler(service.NewRecipeService(db)),
		Tokens:         tokens,
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
