package ai

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
)

// ErrRemoteGenerationDisabled возвращается, когда API ключ не настроен.
var ErrRemoteGenerationDisabled = errors.New("remote generation is disabled: no API key configured")

var _ interfaces.AIClient = (*DisabledClient)(nil)

// DisabledClient - заглушка на случай отсутствующего API ключа.
// Каждый вызов завершается ошибкой, что переводит генерацию
// на локальную сборку черновика.
type DisabledClient struct {
	logger *zap.Logger
}

// NewDisabled создает клиента с выключенной удаленной генерацией.
func NewDisabled(logger *zap.Logger) *DisabledClient {
	return &DisabledClient{logger: logger.Named("AIClientDisabled")}
}

func (c *DisabledClient) GenerateText(_ context.Context, _, _ string) (string, error) {
	c.logger.Debug("Remote generation requested while disabled")
	return "", ErrRemoteGenerationDisabled
}
