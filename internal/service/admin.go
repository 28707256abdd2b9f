package service

import (
	"context"

	"github.com/google/uuid"

	"speechcraft-server/internal/models"
)

// AdminService - операции консоли администратора.
type AdminService interface {
	// ListUsers возвращает страницу пользователей и общее количество.
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	SetUserBan(ctx context.Context, userID uuid.UUID, banned bool) error

	UserSubscription(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
	ChangeUserPlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error
}
