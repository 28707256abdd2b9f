package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Compile-time check
var _ interfaces.SubscriptionRepository = (*pgSubscriptionRepository)(nil)

type pgSubscriptionRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgSubscriptionRepository creates a new PostgreSQL-backed SubscriptionRepository.
func NewPgSubscriptionRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.SubscriptionRepository {
	return &pgSubscriptionRepository{
		db:     db,
		logger: logger.Named("PgSubscriptionRepo"),
	}
}

// Create inserts a subscription row for a user.
func (r *pgSubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	query := `INSERT INTO subscriptions (user_id, plan, generations_used, period_start)
	          VALUES ($1, $2, $3, NOW())
	          RETURNING id, period_start, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, sub.UserID, sub.Plan, sub.GenerationsUsed).
		Scan(&sub.ID, &sub.PeriodStart, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create subscription in postgres", zap.Error(err), zap.String("userID", sub.UserID.String()))
		return fmt.Errorf("failed to create subscription in postgres: %w", err)
	}
	r.logger.Info("Subscription created", zap.String("userID", sub.UserID.String()), zap.String("plan", string(sub.Plan)))
	return nil
}

// GetByUserID retrieves the subscription of a user.
func (r *pgSubscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	query := `SELECT id, user_id, plan, generations_used, period_start, created_at, updated_at
	          FROM subscriptions WHERE user_id = $1`
	sub := &models.Subscription{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.GenerationsUsed,
		&sub.PeriodStart, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSubscriptionNotFound
		}
		r.logger.Error("Failed to get subscription from postgres", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to get subscription from postgres: %w", err)
	}
	return sub, nil
}

// UpdatePlan changes the plan of a user's subscription.
// Смена плана начинает новый расчетный период.
func (r *pgSubscriptionRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error {
	query := `UPDATE subscriptions
	          SET plan = $2, generations_used = 0, period_start = NOW(), updated_at = NOW()
	          WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID, plan)
	if err != nil {
		r.logger.Error("Failed to update subscription plan", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to update subscription plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSubscriptionNotFound
	}
	r.logger.Info("Subscription plan updated", zap.String("userID", userID.String()), zap.String("plan", string(plan)))
	return nil
}

// IncrementUsage counts one more generation against the current period.
func (r *pgSubscriptionRepository) IncrementUsage(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE subscriptions SET generations_used = generations_used + 1, updated_at = NOW() WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to increment generation usage", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to increment generation usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSubscriptionNotFound
	}
	return nil
}

// ResetPeriod starts a new billing period with zero usage.
func (r *pgSubscriptionRepository) ResetPeriod(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE subscriptions SET generations_used = 0, period_start = NOW(), updated_at = NOW() WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to reset subscription period", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to reset subscription period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSubscriptionNotFound
	}
	return nil
}
