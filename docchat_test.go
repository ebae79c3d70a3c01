package docchat_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docportal/docchat"
	"github.com/docportal/docchat/pkg/config"
	"github.com/docportal/docchat/pkg/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setConfig(t *testing.T, doc string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(doc)))
}

func TestGetLLM(t *testing.T) {
	setConfig(t, `
llm:
  groq:
    model_name: llama-3
`)
	t.Setenv("ENV", "production")
	t.Setenv("GROQ_API_KEY", "x")
	t.Setenv("LLM_PROVIDER", "")

	client, err := docchat.GetLLM(discardLogger())
	require.NoError(t, err)
	defer client.Close()

	groq, ok := client.(*llm.GroqClient)
	require.True(t, ok)
	assert.Equal(t, "llama-3", groq.Model())
	assert.Equal(t, float32(0), groq.Temperature())
}

func TestGetLLMMissingConfig(t *testing.T) {
	setConfig(t, "")
	t.Setenv("ENV", "production")
	t.Setenv("GROQ_API_KEY", "x")
	t.Setenv("LLM_PROVIDER", "")

	_, err := docchat.GetLLM(discardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, &config.ConfigurationError{}))
}

func TestGetEmbeddingsUnsupportedProvider(t *testing.T) {
	setConfig(t, `
embedding_model:
  provider: openai
  model_name: m
`)
	t.Setenv("ENV", "production")
	t.Setenv("GOOGLE_API_KEY", "g")

	_, err := docchat.GetEmbeddings(discardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, &config.ConfigurationError{}))
}
