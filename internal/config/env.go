package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables consulted for CLI defaults.
const (
	EnvDBPath = "SNAKE_DB"
	EnvSeed   = "SNAKE_SEED"
	EnvConfig = "SNAKE_CONFIG"
)

// Env holds defaults taken from the process environment and an optional .env file.
type Env struct {
	DBPath     string
	ConfigPath string
	Seed       int64
}

// LoadEnv loads the given dotenv files (default ".env") without overriding variables
// that are already set, then reads the SNAKE_* variables. Missing files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var loadErr error
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			loadErr = errors.Join(loadErr, err)
		}
	}

	env := Env{
		DBPath:     os.Getenv(EnvDBPath),
		ConfigPath: os.Getenv(EnvConfig),
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			loadErr = errors.Join(loadErr, errors.New("invalid "+EnvSeed+": "+raw))
		} else {
			env.Seed = seed
		}
	}
	return env, loadErr
}

// Or returns v when non-empty, otherwise fallback.
func Or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
