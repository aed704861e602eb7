package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"tuition-negotiation/config"
	httpLayer "tuition-negotiation/http"
	"tuition-negotiation/repository"
	"tuition-negotiation/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	sessionRepo, closeRepo := newSessionRepository(cfg)
	defer closeRepo()

	engine := service.NewDiscountEngine(
		service.PercentagePointReduction{Points: cfg.NegotiationReductionPoints},
		service.RelativeFactorReduction{Retained: cfg.SimulationRetainedFactor},
	)
	sessionService := service.NewSessionService(sessionRepo, engine)
	sessionHandler := httpLayer.NewSessionHandler(sessionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(sessionHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API running on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newSessionRepository uses Redis when REDIS_ADDR is set and reachable, and
// falls back to process memory otherwise.
func newSessionRepository(cfg *config.Config) (repository.SessionRepository, func()) {
	memory := func() (repository.SessionRepository, func()) {
		return repository.NewSessionRepositoryMemory(cfg.SessionTTL), func() {}
	}

	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, keeping sessions in memory")
		return memory()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis at %s unreachable, keeping sessions in memory: %v", cfg.RedisAddr, err)
		client.Close()
		return memory()
	}

	log.Printf("Sessions stored in redis at %s", cfg.RedisAddr)
	return repository.NewRedisSessionRepository(client, cfg.SessionTTL), func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}
}
