package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultGoogleModel is used when no model is configured.
	DefaultGoogleModel = "text-embedding-004"
	// DefaultGoogleDimensions matches the text-embedding-004 output width.
	DefaultGoogleDimensions = 768
)

// GoogleEmbedder implements the Client interface against the Google
// Generative Language API.
type GoogleEmbedder struct {
	apiKey     string
	config     Config
	httpClient *http.Client
}

// NewGoogleEmbedder creates a new Google embedding client.
func NewGoogleEmbedder(apiKey string, config Config) *GoogleEmbedder {
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if config.Model == "" {
		config.Model = DefaultGoogleModel
	}
	if config.Dimensions == 0 {
		config.Dimensions = DefaultGoogleDimensions
	}

	return &GoogleEmbedder{
		apiKey: apiKey,
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// googleEmbedRequest represents a batchEmbedContents request.
type googleEmbedRequest struct {
	Requests []googleEmbedContent `json:"requests"`
}

// googleEmbedContent represents a single embedding request.
type googleEmbedContent struct {
	Model   string        `json:"model"`
	Content googleContent `json:"content"`
}

// googleContent represents content in Gemini format.
type googleContent struct {
	Parts []googlePart `json:"parts"`
}

// googlePart represents a part of content.
type googlePart struct {
	Text string `json:"text"`
}

// googleEmbedResponse represents the response from the API.
type googleEmbedResponse struct {
	Embeddings []googleEmbedding `json:"embeddings"`
	Error      *googleError      `json:"error,omitempty"`
}

// googleEmbedding holds a single embedding vector.
type googleEmbedding struct {
	Values []float32 `json:"values"`
}

// googleError represents an error response.
type googleError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Embed generates embeddings for the given texts in a single batch request.
func (g *GoogleEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	model := g.modelID()
	req := googleEmbedRequest{
		Requests: make([]googleEmbedContent, 0, len(texts)),
	}
	for _, text := range texts {
		req.Requests = append(req.Requests, googleEmbedContent{
			Model: model,
			Content: googleContent{
				Parts: []googlePart{{Text: text}},
			},
		})
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/%s:batchEmbedContents?key=%s",
		g.config.BaseURL, model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var embedResp googleEmbedResponse
	if err := json.Unmarshal(body, &embedResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if embedResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", embedResp.Error.Message)
	}

	if len(embedResp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embedResp.Embeddings))
	}

	embeddings := make([][]float32, len(embedResp.Embeddings))
	for i, e := range embedResp.Embeddings {
		embeddings[i] = e.Values
	}
	return embeddings, nil
}

// EmbedSingle generates an embedding for a single text.
func (g *GoogleEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := g.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return embeddings[0], nil
}

// Dimensions returns the number of dimensions in the embeddings.
func (g *GoogleEmbedder) Dimensions() int {
	return g.config.Dimensions
}

// Model returns the configured model name.
func (g *GoogleEmbedder) Model() string {
	return g.config.Model
}

// Close cleans up any resources.
func (g *GoogleEmbedder) Close() error {
	return nil
}

// modelID returns the API resource name for the configured model.
func (g *GoogleEmbedder) modelID() string {
	if strings.HasPrefix(g.config.Model, "models/") {
		return g.config.Model
	}
	return "models/" + g.config.Model
}
