package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds settings read from the environment.
type Config struct {
	DatabaseURL    string // GEODDL_DATABASE_URL
	SchemaFile     string // GEODDL_SCHEMA
	PushgatewayURL string // GEODDL_PUSHGATEWAY_URL
	DogStatsDAddr  string // GEODDL_DOGSTATSD_ADDR
	Job            string // GEODDL_JOB, defaults to "geoddl"
}

// Load reads envFile into the environment when it exists, then builds a
// Config from environment variables. Variables already set take precedence
// over the file. An empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("GEODDL_DATABASE_URL"),
		SchemaFile:     os.Getenv("GEODDL_SCHEMA"),
		PushgatewayURL: os.Getenv("GEODDL_PUSHGATEWAY_URL"),
		DogStatsDAddr:  os.Getenv("GEODDL_DOGSTATSD_ADDR"),
		Job:            os.Getenv("GEODDL_JOB"),
	}
	if cfg.Job == "" {
		cfg.Job = "geoddl"
	}
	return cfg, nil
}
