package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "REDIS_ADDR", "SESSION_TTL", "RATE_LIMIT_REQUESTS",
		"RATE_LIMIT_WINDOW", "NEGOTIATION_REDUCTION_POINTS", "SIMULATION_RETAINED_FACTOR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 20.0, cfg.NegotiationReductionPoints)
	assert.Equal(t, 0.8, cfg.SimulationRetainedFactor)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("NEGOTIATION_REDUCTION_POINTS", "15")
	t.Setenv("SIMULATION_RETAINED_FACTOR", "0.75")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15.0, cfg.NegotiationReductionPoints)
	assert.Equal(t, 0.75, cfg.SimulationRetainedFactor)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"SESSION_TTL":                  "soon",
		"RATE_LIMIT_REQUESTS":          "0",
		"RATE_LIMIT_WINDOW":            "-1s",
		"NEGOTIATION_REDUCTION_POINTS": "120",
		"SIMULATION_RETAINED_FACTOR":   "abc",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
