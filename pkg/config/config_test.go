package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docportal/docchat/pkg/config"
)

func loadYAML(t *testing.T, doc string) *config.Config {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(doc)))

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := loadYAML(t, `
embedding_model:
  provider: google
  model_name: text-embedding-004
llm:
  groq:
    model_name: llama-3.1-8b-instant
    temperature: 0.2
  openai:
    model_name: gpt-4o-mini
`)

	assert.Equal(t, "google", cfg.EmbeddingModel.Provider)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel.ModelName)

	require.Contains(t, cfg.LLM, "groq")
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM["groq"].ModelName)
	assert.InDelta(t, 0.2, cfg.LLM["groq"].Temperature, 1e-6)

	// Temperature omitted defaults to zero.
	require.Contains(t, cfg.LLM, "openai")
	assert.Equal(t, float32(0), cfg.LLM["openai"].Temperature)
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadYAML(t, "")

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.EmbeddingModel.Provider)
	assert.Empty(t, cfg.LLM)
}

func TestConfigurationError(t *testing.T) {
	err := config.NewConfigurationError("missing API key: GROQ_API_KEY")

	assert.EqualError(t, err, "missing API key: GROQ_API_KEY")
	assert.True(t, errors.Is(err, &config.ConfigurationError{}))

	wrapped := errors.Join(errors.New("outer"), err)
	assert.True(t, errors.Is(wrapped, &config.ConfigurationError{}))
}
