package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Compile-time check
var _ SubscriptionService = (*subscriptionServiceImpl)(nil)

type subscriptionServiceImpl struct {
	subRepo interfaces.SubscriptionRepository
	logger  *zap.Logger
}

// NewSubscriptionService creates a new instance of subscriptionServiceImpl.
func NewSubscriptionService(subRepo interfaces.SubscriptionRepository, logger *zap.Logger) SubscriptionService {
	return &subscriptionServiceImpl{
		subRepo: subRepo,
		logger:  logger.Named("SubscriptionService"),
	}
}

// GetForUser возвращает подписку, лениво создавая бесплатную при отсутствии.
func (s *subscriptionServiceImpl) GetForUser(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	sub, err := s.subRepo.GetByUserID(ctx, userID)
	if err == nil {
		return s.withFreshPeriod(ctx, sub)
	}
	if !errors.Is(err, models.ErrSubscriptionNotFound) {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	s.logger.Info("No subscription found, creating free plan", zap.String("userID", userID.String()))
	sub = &models.Subscription{
		UserID:      userID,
		Plan:        models.PlanFree,
		PeriodStart: time.Now(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create free subscription: %w", err)
	}
	return sub, nil
}

// ChangePlan переводит пользователя на другой план.
func (s *subscriptionServiceImpl) ChangePlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error {
	log := s.logger.With(zap.String("userID", userID.String()), zap.String("plan", string(plan)))
	if !plan.IsValid() {
		log.Warn("Attempt to change to unknown plan")
		return models.ErrUnknownPlan
	}

	// Убеждаемся, что подписка существует (лениво создаем бесплатную).
	if _, err := s.GetForUser(ctx, userID); err != nil {
		return err
	}

	if err := s.subRepo.UpdatePlan(ctx, userID, plan); err != nil {
		log.Error("Failed to update plan", zap.Error(err))
		return err
	}
	log.Info("Subscription plan changed")
	return nil
}

// CheckQuota проверяет, что месячная квота генераций не исчерпана.
func (s *subscriptionServiceImpl) CheckQuota(ctx context.Context, userID uuid.UUID) error {
	sub, err := s.GetForUser(ctx, userID)
	if err != nil {
		return err
	}

	quota := sub.Plan.GenerationQuota()
	if quota == models.UnlimitedGenerations {
		return nil
	}
	if sub.GenerationsUsed >= quota {
		s.logger.Warn("Generation quota exceeded",
			zap.String("userID", userID.String()),
			zap.String("plan", string(sub.Plan)),
			zap.Int("used", sub.GenerationsUsed),
			zap.Int("quota", quota),
		)
		return models.ErrQuotaExceeded
	}
	return nil
}

// ConsumeGeneration списывает одну генерацию.
func (s *subscriptionServiceImpl) ConsumeGeneration(ctx context.Context, userID uuid.UUID) error {
	if err := s.subRepo.IncrementUsage(ctx, userID); err != nil {
		s.logger.Error("Failed to increment generation usage", zap.Error(err), zap.String("userID", userID.String()))
		return err
	}
	return nil
}

// withFreshPeriod сбрасывает счетчик использования, если расчетный
// месяц подписки истек. Период скользящий: 30 дней от начала периода.
func (s *subscriptionServiceImpl) withFreshPeriod(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	const periodLength = 30 * 24 * time.Hour
	if time.Since(sub.PeriodStart) < periodLength {
		return sub, nil
	}

	s.logger.Info("Subscription period expired, resetting usage",
		zap.String("userID", sub.UserID.String()),
		zap.Time("periodStart", sub.PeriodStart),
	)
	if err := s.subRepo.ResetPeriod(ctx, sub.UserID); err != nil {
		return nil, fmt.Errorf("failed to reset subscription period: %w", err)
	}
	sub.GenerationsUsed = 0
	sub.PeriodStart = time.Now()
	return sub, nil
}
