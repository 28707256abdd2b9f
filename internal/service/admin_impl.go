package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Compile-time check
var _ AdminService = (*adminServiceImpl)(nil)

type adminServiceImpl struct {
	userRepo      interfaces.UserRepository
	subscriptions SubscriptionService
	logger        *zap.Logger
}

// NewAdminService creates a new instance of adminServiceImpl.
func NewAdminService(userRepo interfaces.UserRepository, subscriptions SubscriptionService, logger *zap.Logger) AdminService {
	return &adminServiceImpl{
		userRepo:      userRepo,
		subscriptions: subscriptions,
		logger:        logger.Named("AdminService"),
	}
}

// ListUsers возвращает страницу пользователей и их общее количество.
func (s *adminServiceImpl) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	return users, total, nil
}

func (s *adminServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// SetUserBan меняет статус бана пользователя. Администратора нельзя
// забанить через это API.
func (s *adminServiceImpl) SetUserBan(ctx context.Context, userID uuid.UUID, banned bool) error {
	log := s.logger.With(zap.String("userID", userID.String()), zap.Bool("banned", banned))

	if banned {
		user, err := s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return err
			}
			log.Error("Failed to get user before ban", zap.Error(err))
			return fmt.Errorf("failed to get user before ban: %w", err)
		}
		if models.HasRole(user.Roles, models.RoleAdmin) {
			log.Warn("Attempt to ban an administrator rejected")
			return models.ErrForbidden
		}
	}

	if err := s.userRepo.SetBanned(ctx, userID, banned); err != nil {
		log.Error("Failed to set user ban status", zap.Error(err))
		return err
	}
	log.Info("User ban status changed")
	return nil
}

func (s *adminServiceImpl) UserSubscription(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	// Проверяем, что пользователь существует, чтобы не создать подписку-сироту.
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.subscriptions.GetForUser(ctx, userID)
}

func (s *adminServiceImpl) ChangeUserPlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.subscriptions.ChangePlan(ctx, userID, plan)
}
