package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// Compile-time check
var _ interfaces.SpeechRepository = (*pgSpeechRepository)(nil)

type pgSpeechRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgSpeechRepository creates a new PostgreSQL-backed SpeechRepository.
func NewPgSpeechRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.SpeechRepository {
	return &pgSpeechRepository{
		db:     db,
		logger: logger.Named("PgSpeechRepo"),
	}
}

// Create inserts a new speech.
func (r *pgSpeechRepository) Create(ctx context.Context, speech *models.Speech) error {
	query := `INSERT INTO speeches (user_id, title, content, category)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", speech.UserID.String()))
	err := r.db.QueryRow(ctx, query, speech.UserID, speech.Title, speech.Content, speech.Category).
		Scan(&speech.ID, &speech.CreatedAt, &speech.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create speech in postgres", zap.Error(err), zap.String("userID", speech.UserID.String()))
		return fmt.Errorf("failed to create speech in postgres: %w", err)
	}
	r.logger.Info("Speech created", zap.String("speechID", speech.ID.String()), zap.String("userID", speech.UserID.String()))
	return nil
}

// GetByID retrieves a speech by its ID.
func (r *pgSpeechRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Speech, error) {
	query := `SELECT id, user_id, title, content, category, created_at, updated_at FROM speeches WHERE id = $1`
	speech := &models.Speech{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&speech.ID, &speech.UserID, &speech.Title, &speech.Content,
		&speech.Category, &speech.CreatedAt, &speech.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Speech not found", zap.String("speechID", id.String()))
			return nil, models.ErrSpeechNotFound
		}
		r.logger.Error("Failed to get speech from postgres", zap.Error(err), zap.String("speechID", id.String()))
		return nil, fmt.Errorf("failed to get speech from postgres: %w", err)
	}
	return speech, nil
}

// ListByUser returns a page of the user's speeches, newest first.
func (r *pgSpeechRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Speech, error) {
	query := `SELECT id, user_id, title, content, category, created_at, updated_at
	          FROM speeches WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", userID.String()))

	var speeches []models.Speech
	if err := pgxscan.Select(ctx, r.db, &speeches, query, userID, limit, offset); err != nil {
		r.logger.Error("Failed to list speeches from postgres", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list speeches from postgres: %w", err)
	}
	return speeches, nil
}

// Update saves the title, content and category of an existing speech.
func (r *pgSpeechRepository) Update(ctx context.Context, speech *models.Speech) error {
	query := `UPDATE speeches SET title = $2, content = $3, category = $4, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, speech.ID, speech.Title, speech.Content, speech.Category)
	if err != nil {
		r.logger.Error("Failed to update speech in postgres", zap.Error(err), zap.String("speechID", speech.ID.String()))
		return fmt.Errorf("failed to update speech in postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSpeechNotFound
	}
	return nil
}

// Delete removes a speech.
func (r *pgSpeechRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM speeches WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete speech from postgres", zap.Error(err), zap.String("speechID", id.String()))
		return fmt.Errorf("failed to delete speech from postgres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSpeechNotFound
	}
	r.logger.Info("Speech deleted", zap.String("speechID", id.String()))
	return nil
}
