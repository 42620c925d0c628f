package engine

import (
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Config holds the ambient runtime settings; none of them change simulation rules
type Config struct {
	// Debug enables file logging
	Debug bool

	// Seed fixes the drop RNG; zero with SeedSet false means time-based
	Seed    int64
	SeedSet bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() Config {
	var cfg Config

	if debug := os.Getenv("UMBRELLA_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	if seed := os.Getenv("UMBRELLA_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
			cfg.SeedSet = true
		}
	}

	return cfg
}

// NewRand returns the RNG for drop spawning
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if !c.SeedSet {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
