package service

import (
	"context"

	"github.com/google/uuid"

	"speechcraft-server/internal/models"
)

// AuthService defines the interface for authentication and authorization logic.
type AuthService interface {
	Register(ctx context.Context, username, displayName, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenDetails, error)
	Logout(ctx context.Context, accessUUID, refreshUUID string) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error)
	VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error)
	// ValidateAndGetClaims проверяет токен и статус пользователя (бан).
	ValidateAndGetClaims(ctx context.Context, tokenString string) (*models.Claims, error)
	BanUser(ctx context.Context, userID uuid.UUID) error
	UnbanUser(ctx context.Context, userID uuid.UUID) error
}
