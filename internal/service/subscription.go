package service

import (
	"context"

	"github.com/google/uuid"

	"speechcraft-server/internal/models"
)

// SubscriptionService управляет подписками и месячными квотами генераций.
type SubscriptionService interface {
	// GetForUser возвращает подписку пользователя, создавая бесплатную,
	// если ее еще нет (для пользователей, созданных до введения подписок).
	GetForUser(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)

	// ChangePlan переводит пользователя на другой план. Неизвестный план -
	// models.ErrUnknownPlan. Смена плана сбрасывает счетчик использования.
	ChangePlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error

	// CheckQuota возвращает models.ErrQuotaExceeded, если месячная квота
	// генераций плана исчерпана.
	CheckQuota(ctx context.Context, userID uuid.UUID) error

	// ConsumeGeneration списывает одну генерацию из квоты.
	ConsumeGeneration(ctx context.Context, userID uuid.UUID) error
}
