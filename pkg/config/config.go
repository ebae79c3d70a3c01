package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Embedding model configuration
	EmbeddingModel EmbeddingConfig `mapstructure:"embedding_model" yaml:"embedding_model"`

	// LLM configurations keyed by provider name (e.g. "groq")
	LLM map[string]LLMModelConfig `mapstructure:"llm" yaml:"llm"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// EmbeddingConfig holds the embedding provider selection
type EmbeddingConfig struct {
	Provider  string `mapstructure:"provider" yaml:"provider"`
	ModelName string `mapstructure:"model_name" yaml:"model_name"`
}

// LLMModelConfig holds configuration for a single LLM provider entry
type LLMModelConfig struct {
	ModelName   string  `mapstructure:"model_name" yaml:"model_name"`
	Temperature float32 `mapstructure:"temperature" yaml:"temperature"`
}

// Load loads configuration from file and environment variables.
// The result is read-only after load.
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, NewConfigurationError(fmt.Sprintf("unable to decode config: %v", err))
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}
