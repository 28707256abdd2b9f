package service

import (
	"context"

	"github.com/google/uuid"

	"speechcraft-server/internal/models"
)

// SpeechService управляет сохраненными речами пользователя.
// Все операции с конкретной речью проверяют принадлежность:
// чужая речь неотличима от несуществующей (models.ErrSpeechNotFound).
type SpeechService interface {
	// Save валидирует и сохраняет речь. Пустой заголовок или текст
	// отклоняются до любых побочных эффектов. Успешное сохранение
	// стирает данные восстановления мастера.
	Save(ctx context.Context, userID uuid.UUID, title, content, category string) (*models.Speech, error)

	Get(ctx context.Context, userID, speechID uuid.UUID) (*models.Speech, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Speech, error)
	Update(ctx context.Context, userID, speechID uuid.UUID, title, content string) (*models.Speech, error)
	Delete(ctx context.Context, userID, speechID uuid.UUID) error

	// ExportHTML возвращает речь, отрендеренную из разметки в HTML.
	ExportHTML(ctx context.Context, userID, speechID uuid.UUID) (string, error)
}
