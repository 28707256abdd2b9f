package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Compile-time check
var _ interfaces.TokenRepository = (*redisTokenRepository)(nil)

type redisTokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisTokenRepository creates a new Redis-backed TokenRepository.
func NewRedisTokenRepository(client *redis.Client, logger *zap.Logger) interfaces.TokenRepository {
	return &redisTokenRepository{
		client: client,
		logger: logger.Named("RedisTokenRepo"),
	}
}

func accessKey(accessUUID string) string   { return fmt.Sprintf("access_uuid:%s", accessUUID) }
func refreshKey(refreshUUID string) string { return fmt.Sprintf("refresh_uuid:%s", refreshUUID) }

// SetToken stores both token identifiers in Redis with their TTLs.
// Для каждой пары токенов хранится две записи:
// AccessUUID -> UserID и RefreshUUID -> UserID.
func (r *redisTokenRepository) SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error {
	now := time.Now()
	accessTTL := time.Unix(td.AtExpires, 0).Sub(now)
	refreshTTL := time.Unix(td.RtExpires, 0).Sub(now)
	userIDStr := userID.String()

	// Используем pipeline, чтобы обе записи ушли одной поездкой
	pipe := r.client.Pipeline()
	pipe.Set(ctx, accessKey(td.AccessUUID), userIDStr, accessTTL)
	pipe.Set(ctx, refreshKey(td.RefreshUUID), userIDStr, refreshTTL)

	r.logger.Debug("Setting tokens in Redis",
		zap.String("userID", userIDStr),
		zap.Duration("accessTTL", accessTTL),
		zap.Duration("refreshTTL", refreshTTL),
	)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to set token details in redis", zap.Error(err), zap.String("userID", userIDStr))
		return fmt.Errorf("failed to set token details in redis: %w", err)
	}
	return nil
}

// GetUserIDByAccessUUID resolves the owner of an access token.
func (r *redisTokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	return r.getUserID(ctx, accessKey(accessUUID))
}

// GetUserIDByRefreshUUID resolves the owner of a refresh token.
func (r *redisTokenRepository) GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error) {
	return r.getUserID(ctx, refreshKey(refreshUUID))
}

func (r *redisTokenRepository) getUserID(ctx context.Context, key string) (uuid.UUID, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, models.ErrTokenNotFound
		}
		r.logger.Error("Failed to get token from redis", zap.Error(err), zap.String("key", key))
		return uuid.Nil, fmt.Errorf("failed to get token from redis: %w", err)
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		// Значение под ключом не UUID - считаем токен невалидным
		r.logger.Warn("Malformed user ID under token key", zap.String("key", key))
		return uuid.Nil, models.ErrTokenNotFound
	}
	return userID, nil
}

// DeleteTokens removes tokens from Redis by their UUIDs.
// Возвращает количество фактически удаленных ключей.
func (r *redisTokenRepository) DeleteTokens(ctx context.Context, accessUUID, refreshUUID string) (int64, error) {
	keys := make([]string, 0, 2)
	if accessUUID != "" {
		keys = append(keys, accessKey(accessUUID))
	}
	if refreshUUID != "" {
		keys = append(keys, refreshKey(refreshUUID))
	}
	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		r.logger.Error("Failed to delete tokens from redis", zap.Error(err))
		return 0, fmt.Errorf("failed to delete tokens from redis: %w", err)
	}
	r.logger.Debug("Tokens deleted from redis", zap.Int64("deleted", deleted))
	return deleted, nil
}
