package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Ключи кэша состояния мастера. Черновик дублируется под тремя
// избыточными ключами на случай частичной потери данных.
const (
	wizardStateKeyFmt  = "wizard_state:%s"
	draftBackupKeyFmt  = "wizard_draft_backup:%s"
	draftBackup2KeyFmt = "wizard_draft_backup2:%s"
	draftBackup3KeyFmt = "wizard_draft_backup3:%s"
	lastRequestKeyFmt  = "wizard_last_request:%s"
)

// draftBackupTTL - срок жизни резервных копий черновика и снимка
// последнего запроса. Они нужны только для восстановления после сбоя,
// поэтому живут столько же, сколько само состояние мастера.
const draftBackupTTL = models.WizardStateTTL

// Compile-time check
var _ interfaces.WizardStateRepository = (*redisWizardRepository)(nil)

type redisWizardRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisWizardRepository creates a new Redis-backed WizardStateRepository.
func NewRedisWizardRepository(client *redis.Client, logger *zap.Logger) interfaces.WizardStateRepository {
	return &redisWizardRepository{
		client: client,
		logger: logger.Named("RedisWizardRepo"),
	}
}

// SaveState сохраняет полный снимок состояния мастера с отметкой времени.
// TTL ключа совпадает со сроком годности снимка, но срок дополнительно
// проверяется и при чтении: истечение - правило приложения, а не хранилища.
func (r *redisWizardRepository) SaveState(ctx context.Context, userID uuid.UUID, state *models.WizardState) error {
	state.SavedAt = time.Now()
	payload, err := json.Marshal(state)
	if err != nil {
		r.logger.Error("Failed to marshal wizard state", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to marshal wizard state: %w", err)
	}

	key := fmt.Sprintf(wizardStateKeyFmt, userID)
	if err := r.client.Set(ctx, key, payload, models.WizardStateTTL).Err(); err != nil {
		r.logger.Error("Failed to save wizard state in redis", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to save wizard state in redis: %w", err)
	}
	r.logger.Debug("Wizard state saved", zap.String("userID", userID.String()), zap.Int("step", state.Step))
	return nil
}

// LoadState читает снимок состояния мастера. Отсутствующий ключ, битый
// JSON и просроченная отметка времени равнозначны: восстанавливать нечего.
func (r *redisWizardRepository) LoadState(ctx context.Context, userID uuid.UUID) (*models.WizardState, error) {
	key := fmt.Sprintf(wizardStateKeyFmt, userID)
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNothingToRecover
		}
		r.logger.Error("Failed to load wizard state from redis", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to load wizard state from redis: %w", err)
	}

	var state models.WizardState
	if err := json.Unmarshal(payload, &state); err != nil {
		// Битый снимок молча выбрасываем - мастер не должен падать
		// из-за поврежденных данных восстановления.
		r.logger.Warn("Discarding malformed wizard state", zap.Error(err), zap.String("userID", userID.String()))
		_ = r.client.Del(ctx, key).Err()
		return nil, models.ErrNothingToRecover
	}
	if !state.IsRecoverable(time.Now()) {
		r.logger.Debug("Discarding stale wizard state",
			zap.String("userID", userID.String()),
			zap.Time("savedAt", state.SavedAt),
			zap.Int("step", state.Step),
		)
		_ = r.client.Del(ctx, key).Err()
		return nil, models.ErrNothingToRecover
	}
	return &state, nil
}

// DeleteState удаляет снимок состояния мастера.
func (r *redisWizardRepository) DeleteState(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf(wizardStateKeyFmt, userID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete wizard state from redis", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to delete wizard state from redis: %w", err)
	}
	return nil
}

// SaveDraftBackups пишет черновик под тремя избыточными ключами одной поездкой.
func (r *redisWizardRepository) SaveDraftBackups(ctx context.Context, userID uuid.UUID, draft string) error {
	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(draftBackupKeyFmt, userID), draft, draftBackupTTL)
	pipe.Set(ctx, fmt.Sprintf(draftBackup2KeyFmt, userID), draft, draftBackupTTL)
	pipe.Set(ctx, fmt.Sprintf(draftBackup3KeyFmt, userID), draft, draftBackupTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to save draft backups in redis", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to save draft backups in redis: %w", err)
	}
	r.logger.Debug("Draft backups saved", zap.String("userID", userID.String()), zap.Int("chars", len(draft)))
	return nil
}

// LoadDraftBackup возвращает первый доступный резервный черновик.
func (r *redisWizardRepository) LoadDraftBackup(ctx context.Context, userID uuid.UUID) (string, error) {
	keys := []string{
		fmt.Sprintf(draftBackupKeyFmt, userID),
		fmt.Sprintf(draftBackup2KeyFmt, userID),
		fmt.Sprintf(draftBackup3KeyFmt, userID),
	}
	for _, key := range keys {
		draft, err := r.client.Get(ctx, key).Result()
		if err == nil && draft != "" {
			return draft, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			r.logger.Warn("Failed to read draft backup key, trying next", zap.Error(err), zap.String("key", key))
		}
	}
	return "", models.ErrNothingToRecover
}

// SaveLastRequest сохраняет снимок запроса генерации для восстановления после сбоя.
func (r *redisWizardRepository) SaveLastRequest(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal generation request: %w", err)
	}
	key := fmt.Sprintf(lastRequestKeyFmt, userID)
	if err := r.client.Set(ctx, key, payload, draftBackupTTL).Err(); err != nil {
		r.logger.Error("Failed to save last generation request", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to save last generation request: %w", err)
	}
	return nil
}

// ClearRecovery удаляет все данные восстановления пользователя:
// снимок состояния, резервные черновики и последний запрос.
func (r *redisWizardRepository) ClearRecovery(ctx context.Context, userID uuid.UUID) error {
	keys := []string{
		fmt.Sprintf(wizardStateKeyFmt, userID),
		fmt.Sprintf(draftBackupKeyFmt, userID),
		fmt.Sprintf(draftBackup2KeyFmt, userID),
		fmt.Sprintf(draftBackup3KeyFmt, userID),
		fmt.Sprintf(lastRequestKeyFmt, userID),
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to clear wizard recovery data", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to clear wizard recovery data: %w", err)
	}
	r.logger.Debug("Wizard recovery data cleared", zap.String("userID", userID.String()))
	return nil
}
