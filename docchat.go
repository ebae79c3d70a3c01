package docchat

import (
	"log/slog"

	"github.com/docportal/docchat/pkg/embedder"
	"github.com/docportal/docchat/pkg/llm"
	"github.com/docportal/docchat/pkg/models"
)

// GetEmbeddings builds a model loader from the environment and configuration
// and returns the configured embedding client.
func GetEmbeddings(logger *slog.Logger) (embedder.Client, error) {
	loader, err := models.NewLoader(logger)
	if err != nil {
		return nil, err
	}
	return loader.LoadEmbeddings()
}

// GetLLM builds a model loader from the environment and configuration and
// returns the configured chat client.
func GetLLM(logger *slog.Logger) (llm.Client, error) {
	loader, err := models.NewLoader(logger)
	if err != nil {
		return nil, err
	}
	return loader.LoadLLM()
}
