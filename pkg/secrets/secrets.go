// Package secrets resolves named API keys from the process environment.
//
// In non-production mode a local .env file is loaded first so developers do
// not have to export keys by hand. Values are captured once at construction;
// the resulting Store is immutable and safe for concurrent readers.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/docportal/docchat/pkg/config"
)

// DefaultKeys is the set of secret names loaded when Options.Keys is empty.
var DefaultKeys = []string{"GROQ_API_KEY", "GOOGLE_API_KEY"}

// Options controls how a Store is populated.
type Options struct {
	// Env is the execution mode. Falls back to the ENV environment variable,
	// then to "local". Any value other than "production" triggers the dotenv
	// load.
	Env string

	// Keys is the list of secret names to read. Defaults to DefaultKeys.
	Keys []string

	// DotenvFiles are the files passed to godotenv in non-production mode.
	// Empty means the default ".env" lookup.
	DotenvFiles []string

	Logger *slog.Logger
}

// Store is an immutable mapping from secret name to value. Names whose
// environment value was absent or empty are not stored; the failure surfaces
// on Get rather than at load time.
type Store struct {
	values map[string]string
	logger *slog.Logger
}

// New populates a Store from the environment.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	env := opts.Env
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	if !strings.EqualFold(env, "production") {
		// A missing .env file is fine; exported variables still apply.
		_ = godotenv.Load(opts.DotenvFiles...)
		logger.Info("running in local mode, .env loaded", "env", env)
	}

	keys := opts.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			values[key] = val
			logger.Info("loaded secret", "name", key)
		}
	}

	return &Store{values: values, logger: logger}
}

// Get returns the value for name. Names that were absent or empty at
// construction fail with a ConfigurationError.
func (s *Store) Get(name string) (string, error) {
	val, ok := s.values[name]
	if !ok || val == "" {
		s.logger.Error("missing API key", "name", name)
		return "", config.NewConfigurationError(fmt.Sprintf("missing API key: %s", name))
	}
	return val, nil
}

// Names returns the secret names currently held, sorted, for diagnostics.
// Values are never exposed here.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
