package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Init loads a .env file into the process environment when one exists.
// A missing file is not an error; deployments set real env vars.
func Init() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
		return
	}
	slog.Info("loaded environment from .env")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// Get returns the env variable or the fallback when unset.
func Get(v, fallback string) string {
	if b := os.Getenv(v); b != "" {
		return b
	}
	return fallback
}
