package assistant

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultModel модель Gemini для рекомендаций
const defaultModel = "gemini-2.5-flash"

// Client клиент сервиса подсказок на базе Gemini
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient создает клиент Gemini
// Возвращает ошибку при пустом ключе или сбое инициализации
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	return &Client{
		client: client,
		model:  client.GenerativeModel(defaultModel),
	}, nil
}

// Generate выполняет запрос к модели с системной инструкцией
func (c *Client) Generate(ctx context.Context, systemInstruction, input string) (string, error) {
	model := c.model
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(input))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close освобождает ресурсы клиента
func (c *Client) Close() error {
	return c.client.Close()
}
