package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var ErrNotConfigured = errors.New("AI suggestions are not configured")

// Completer はシステム指示付きのプロンプトを1回送り、返答テキストを返す
type Completer interface {
	Complete(ctx context.Context, systemInstruction, prompt string) (string, error)
}

const (
	defaultModel    = "gemini-2.0-flash"
	temperature     = 0.6
	maxOutputTokens = 500
)

// GeminiClient は Gemini API で Completer を実装する
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, systemInstruction, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](temperature),
			MaxOutputTokens:   maxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return result.Text(), nil
}

func (c *GeminiClient) Name() string {
	return fmt.Sprintf("genai:%s", c.model)
}

// Unconfigured は APIキー未設定時の代替。常に ErrNotConfigured を返す
type Unconfigured struct{}

func (Unconfigured) Complete(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}
