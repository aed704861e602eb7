package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort   string
	RedisAddr  string
	SessionTTL time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	NegotiationReductionPoints float64
	SimulationRetainedFactor   float64
}

func Load() (*Config, error) {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	// empty means sessions stay in process memory
	redisAddr := os.Getenv("REDIS_ADDR")

	sessionTTL, err := durationEnv("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	rateLimitWindow, err := durationEnv("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	rateLimitRequests, err := intEnv("RATE_LIMIT_REQUESTS", 60)
	if err != nil {
		return nil, err
	}
	reductionPoints, err := floatEnv("NEGOTIATION_REDUCTION_POINTS", 20)
	if err != nil {
		return nil, err
	}
	retainedFactor, err := floatEnv("SIMULATION_RETAINED_FACTOR", 0.8)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:                   port,
		RedisAddr:                  redisAddr,
		SessionTTL:                 sessionTTL,
		RateLimitRequests:          rateLimitRequests,
		RateLimitWindow:            rateLimitWindow,
		NegotiationReductionPoints: reductionPoints,
		SimulationRetainedFactor:   retainedFactor,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0, got %s", c.SessionTTL)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be > 0, got %d", c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be > 0, got %s", c.RateLimitWindow)
	}
	if c.NegotiationReductionPoints < 0 || c.NegotiationReductionPoints > 100 {
		return fmt.Errorf("NEGOTIATION_REDUCTION_POINTS must be within [0, 100], got %v", c.NegotiationReductionPoints)
	}
	if c.SimulationRetainedFactor < 0 || c.SimulationRetainedFactor > 1 {
		return fmt.Errorf("SIMULATION_RETAINED_FACTOR must be within [0, 1], got %v", c.SimulationRetainedFactor)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
