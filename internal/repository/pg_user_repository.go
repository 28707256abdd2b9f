package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Compile-time check
var _ interfaces.UserRepository = (*pgUserRepository)(nil)

type pgUserRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgUserRepository creates a new PostgreSQL-backed UserRepository.
func NewPgUserRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.UserRepository {
	return &pgUserRepository{
		db:     db,
		logger: logger.Named("PgUserRepo"),
	}
}

// CreateUser inserts a new user into the database.
func (r *pgUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, display_name, roles) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("username", user.Username), zap.String("email", user.Email))
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.DisplayName, user.Roles).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		// Нарушение уникальности: дубликат username или email
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // 23505 is unique_violation
			logFields := []zap.Field{zap.String("username", user.Username), zap.String("email", user.Email)}
			if pgErr.ConstraintName == "users_email_key" {
				r.logger.Warn("Attempted to create duplicate user by email", logFields...)
				return models.ErrEmailAlreadyExists
			}
			r.logger.Warn("Attempted to create duplicate user by username", logFields...)
			return models.ErrUserAlreadyExists
		}
		r.logger.Error("Failed to create user in postgres", zap.Error(err), zap.String("username", user.Username))
		return fmt.Errorf("failed to create user in postgres: %w", err)
	}
	r.logger.Info("User created successfully", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *pgUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT id, username, display_name, email, password_hash, roles, is_banned, created_at, updated_at FROM users WHERE id = $1`
	return r.getOne(ctx, query, id.String(), id)
}

// GetUserByUsername retrieves a user by their username.
func (r *pgUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, display_name, email, password_hash, roles, is_banned, created_at, updated_at FROM users WHERE username = $1`
	return r.getOne(ctx, query, username, username)
}

// GetUserByEmail retrieves a user by their email.
func (r *pgUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, username, display_name, email, password_hash, roles, is_banned, created_at, updated_at FROM users WHERE email = $1`
	return r.getOne(ctx, query, email, email)
}

func (r *pgUserRepository) getOne(ctx context.Context, query, logKey string, arg any) (*models.User, error) {
	user := &models.User{}
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("key", logKey))
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.Email, &user.PasswordHash,
		&user.Roles, &user.IsBanned, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("User not found", zap.String("key", logKey))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user from postgres", zap.Error(err), zap.String("key", logKey))
		return nil, fmt.Errorf("failed to get user from postgres: %w", err)
	}
	return user, nil
}

// ListUsers returns a page of users ordered by creation time.
func (r *pgUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `SELECT id, username, display_name, email, password_hash, roles, is_banned, created_at, updated_at
	          FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int("limit", limit), zap.Int("offset", offset))

	var users []models.User
	if err := pgxscan.Select(ctx, r.db, &users, query, limit, offset); err != nil {
		r.logger.Error("Failed to list users from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to list users from postgres: %w", err)
	}
	return users, nil
}

// CountUsers returns the total number of registered users.
func (r *pgUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// SetBanned updates the banned flag of a user.
func (r *pgUserRepository) SetBanned(ctx context.Context, id uuid.UUID, banned bool) error {
	query := `UPDATE users SET is_banned = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, banned)
	if err != nil {
		r.logger.Error("Failed to update banned flag", zap.Error(err), zap.String("userID", id.String()))
		return fmt.Errorf("failed to update banned flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	r.logger.Info("User ban status updated", zap.String("userID", id.String()), zap.Bool("banned", banned))
	return nil
}
