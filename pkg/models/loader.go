// Package models bridges configuration and secrets into ready provider
// client handles.
package models

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/docportal/docchat/pkg/config"
	"github.com/docportal/docchat/pkg/embedder"
	"github.com/docportal/docchat/pkg/llm"
	"github.com/docportal/docchat/pkg/secrets"
)

const (
	// EmbeddingProviderGoogle is the only embedding provider accepted.
	EmbeddingProviderGoogle = "google"

	// DefaultLLMProvider is used when LLM_PROVIDER is unset.
	DefaultLLMProvider = "groq"

	// LLMProviderEnv selects the LLM provider entry from the config.
	LLMProviderEnv = "LLM_PROVIDER"

	googleKeyName = "GOOGLE_API_KEY"
	groqKeyName   = "GROQ_API_KEY"
)

// Loader constructs provider client handles from configuration and secrets.
// Configuration and secret store are read-only after construction, so a
// Loader is safe for concurrent use. Every Load call returns a fresh handle;
// nothing is cached.
type Loader struct {
	cfg    *config.Config
	keys   *secrets.Store
	logger *slog.Logger
}

// New creates a Loader from an already-loaded configuration and secret store.
func New(cfg *config.Config, keys *secrets.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cfg: cfg, keys: keys, logger: logger}
}

// NewLoader builds the secret store from the environment and loads the
// configuration via viper.
func NewLoader(logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}

	keys := secrets.New(secrets.Options{Logger: logger})

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("configuration loaded")

	return New(cfg, keys, logger), nil
}

// LoadEmbeddings constructs a fresh embedding client for the configured
// provider. Only the "google" provider is supported.
func (l *Loader) LoadEmbeddings() (embedder.Client, error) {
	cfg := l.cfg.EmbeddingModel
	if cfg == (config.EmbeddingConfig{}) {
		return nil, config.NewConfigurationError("missing embedding_model section in config")
	}

	l.logger.Info("loading embedding model", "provider", cfg.Provider, "model", cfg.ModelName)

	if cfg.Provider != EmbeddingProviderGoogle {
		return nil, config.NewConfigurationError(
			fmt.Sprintf("unsupported embedding provider %q, only %q is supported", cfg.Provider, EmbeddingProviderGoogle))
	}
	if cfg.ModelName == "" {
		return nil, config.NewConfigurationError("missing model_name for embedding_model")
	}

	apiKey, err := l.keys.Get(googleKeyName)
	if err != nil {
		return nil, err
	}

	return embedder.NewGoogleEmbedder(apiKey, embedder.Config{Model: cfg.ModelName}), nil
}

// LoadLLM constructs a fresh chat client for the provider selected by the
// LLM_PROVIDER environment variable.
func (l *Loader) LoadLLM() (llm.Client, error) {
	provider := os.Getenv(LLMProviderEnv)
	if provider == "" {
		provider = DefaultLLMProvider
	}

	mc, ok := l.cfg.LLM[provider]
	if !ok {
		return nil, config.NewConfigurationError(fmt.Sprintf("llm provider %q not found in config", provider))
	}
	if mc.ModelName == "" {
		return nil, config.NewConfigurationError(fmt.Sprintf("missing model_name for llm provider %q", provider))
	}

	l.logger.Info("loading llm", "provider", provider, "model", mc.ModelName)

	apiKey, err := l.keys.Get(groqKeyName)
	if err != nil {
		return nil, err
	}

	return llm.NewGroqClient(apiKey, llm.Config{
		Model:       mc.ModelName,
		Temperature: mc.Temperature,
	})
}
