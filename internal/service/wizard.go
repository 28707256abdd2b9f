package service

import (
	"context"

	"github.com/google/uuid"

	"speechcraft-server/internal/generation"
	"speechcraft-server/internal/models"
	"speechcraft-server/internal/questionnaire"
)

// WizardService управляет мастером создания речи: категориями, видимым
// списком вопросов, долговременным кэшем состояния и генерацией черновика.
type WizardService interface {
	// Categories возвращает список доступных категорий речей.
	Categories() []string

	// VisibleQuestions возвращает вопросы категории, видимые при данных
	// ответах. Неизвестная категория - models.ErrUnknownCategory.
	VisibleQuestions(category string, answers map[string]string) ([]questionnaire.Question, error)

	// SaveState сохраняет снимок состояния мастера в долговременный кэш.
	SaveState(ctx context.Context, userID uuid.UUID, state *models.WizardState) error

	// RecoverState возвращает восстановимый снимок или models.ErrNothingToRecover.
	RecoverState(ctx context.Context, userID uuid.UUID) (*models.WizardState, error)

	// RecoverDraft возвращает резервную копию черновика или models.ErrNothingToRecover.
	RecoverDraft(ctx context.Context, userID uuid.UUID) (string, error)

	// Reset стирает состояние мастера и все данные восстановления.
	Reset(ctx context.Context, userID uuid.UUID) error

	// Generate генерирует черновик речи: проверка квоты, удаленная попытка
	// с локальным запасным вариантом, резервные копии результата.
	Generate(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) (string, error)

	// GenerationState возвращает состояние последней генерации пользователя.
	GenerationState(userID uuid.UUID) generation.State
}
