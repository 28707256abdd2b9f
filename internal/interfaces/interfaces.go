// Package interfaces содержит контракты между слоями приложения.
// Репозитории и клиенты объявлены здесь, чтобы сервисы зависели от
// интерфейсов, а не от конкретных реализаций (и чтобы их было легко мокать).
package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"speechcraft-server/internal/models"
)

// DBTX - минимальный контракт исполнителя запросов pgx.
// Ему удовлетворяют и *pgxpool.Pool, и pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository - хранилище пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) error
}

// SpeechRepository - хранилище сохраненных речей.
type SpeechRepository interface {
	Create(ctx context.Context, speech *models.Speech) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Speech, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Speech, error)
	Update(ctx context.Context, speech *models.Speech) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubscriptionRepository - хранилище подписок.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
	UpdatePlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error
	IncrementUsage(ctx context.Context, userID uuid.UUID) error
	ResetPeriod(ctx context.Context, userID uuid.UUID) error
}

// TokenRepository - хранилище выданных токенов (Redis).
type TokenRepository interface {
	SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error
	GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error)
	GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error)
	DeleteTokens(ctx context.Context, accessUUID, refreshUUID string) (int64, error)
}

// WizardStateRepository - долговременный кэш состояния мастера (Redis).
// Все методы чтения обязаны переживать отсутствие ключей и битый JSON,
// сообщая об этом как models.ErrNothingToRecover, а не падая.
type WizardStateRepository interface {
	SaveState(ctx context.Context, userID uuid.UUID, state *models.WizardState) error
	LoadState(ctx context.Context, userID uuid.UUID) (*models.WizardState, error)
	DeleteState(ctx context.Context, userID uuid.UUID) error

	// Резервные копии черновика под тремя избыточными ключами.
	SaveDraftBackups(ctx context.Context, userID uuid.UUID, draft string) error
	LoadDraftBackup(ctx context.Context, userID uuid.UUID) (string, error)

	// Снимок последнего запроса генерации для восстановления после сбоя.
	SaveLastRequest(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) error
	ClearRecovery(ctx context.Context, userID uuid.UUID) error
}

// AIClient - клиент удаленного генератора текста.
type AIClient interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// EventPublisher публикует события жизненного цикла в брокер сообщений.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}
