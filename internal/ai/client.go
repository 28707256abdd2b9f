package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Compile-time check
var _ interfaces.AIClient = (*Client)(nil)

// Config содержит конфигурацию для клиента нейросети.
type Config struct {
	APIKey     string
	BaseURL    string
	ModelName  string
	Timeout    int // Секунды
	MaxRetries int
	RetryDelay time.Duration
}

// Client предоставляет доступ к API генерации текста через OpenRouter.
type Client struct {
	client     *openai.Client
	modelName  string
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// New создает новый экземпляр клиента нейросети.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("AI API key is not set")
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "deepseek/deepseek-chat-v3-0324:free"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	config.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}

	return &Client{
		client:     openai.NewClientWithConfig(config),
		modelName:  cfg.ModelName,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger.Named("AIClient"),
	}, nil
}

// GenerateText отправляет запрос на завершение чата и возвращает текст ответа.
// Выполняет до maxRetries попыток с фиксированной задержкой между ними;
// контекст прерывает ожидание между попытками.
func (c *Client) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if userPrompt == "" {
		return "", errors.New("user prompt cannot be empty")
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.modelName,
			Messages: messages,
		})
		if err == nil {
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				// Пустой ответ считаем неудачей наравне с сетевой ошибкой.
				lastErr = errors.New("received empty response from API")
				c.logger.Warn("AI returned empty response", zap.Int("attempt", attempt))
			} else {
				return resp.Choices[0].Message.Content, nil
			}
		} else {
			lastErr = err
			c.logger.Warn("AI request failed",
				zap.Int("attempt", attempt),
				zap.Int("maxRetries", c.maxRetries),
				zap.Error(err),
			)
		}

		if attempt < c.maxRetries {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return "", fmt.Errorf("ai request cancelled: %w", ctx.Err())
			}
		}
	}

	return "", fmt.Errorf("ai request failed after %d attempts: %w", c.maxRetries, lastErr)
}
