package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sashabaranov/go-openai"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Config holds configuration for chat clients.
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int

	// BaseURL overrides the provider endpoint, for OpenAI-compatible services.
	BaseURL string
}

// GroqClient implements the Client interface against Groq's OpenAI-compatible
// chat completion API.
type GroqClient struct {
	client *openai.Client
	config Config
}

// NewGroqClient creates a new Groq chat client.
func NewGroqClient(apiKey string, config Config) (*GroqClient, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	if err := validateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL

	return &GroqClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Model returns the configured model name.
func (c *GroqClient) Model() string {
	return c.config.Model
}

// Temperature returns the configured sampling temperature.
func (c *GroqClient) Temperature() float32 {
	return c.config.Temperature
}

// Chat sends a chat completion request to Groq.
func (c *GroqClient) Chat(ctx context.Context, messages []Message) (*Response, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    convertMessages(messages),
		Temperature: c.config.Temperature,
	}
	if c.config.MaxTokens > 0 {
		req.MaxTokens = c.config.MaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("groq chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from groq")
	}

	choice := resp.Choices[0]
	response := &Response{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
	}

	if resp.Usage.TotalTokens > 0 {
		response.TokensUsed = &TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return response, nil
}

// ChatWithStructuredOutput appends a JSON format instruction, sends the chat
// request, and decodes the reply into target.
func (c *GroqClient) ChatWithStructuredOutput(ctx context.Context, messages []Message, target any) (*Response, error) {
	schemaBytes, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	modified := append(append([]Message{}, messages...), NewUserMessage(
		fmt.Sprintf("Respond with a JSON object in the following format:\n\n%s", string(schemaBytes)),
	))

	resp, err := c.Chat(ctx, modified)
	if err != nil {
		return nil, err
	}

	if err := DecodeJSONResponse(resp.Content, target); err != nil {
		return nil, err
	}
	return resp, nil
}

// Close cleans up any resources.
func (c *GroqClient) Close() error {
	return nil
}

// convertMessages converts internal messages to OpenAI format.
func convertMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// validateBaseURL rejects endpoints that are not absolute http(s) URLs.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
