package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/markup"
	"speechcraft-server/internal/messaging"
	"speechcraft-server/internal/models"
	"speechcraft-server/internal/questionnaire"
)

// Compile-time check
var _ SpeechService = (*speechServiceImpl)(nil)

type speechServiceImpl struct {
	speechRepo interfaces.SpeechRepository
	wizardRepo interfaces.WizardStateRepository
	publisher  interfaces.EventPublisher
	logger     *zap.Logger
}

// NewSpeechService creates a new instance of speechServiceImpl.
func NewSpeechService(
	speechRepo interfaces.SpeechRepository,
	wizardRepo interfaces.WizardStateRepository,
	publisher interfaces.EventPublisher,
	logger *zap.Logger,
) SpeechService {
	return &speechServiceImpl{
		speechRepo: speechRepo,
		wizardRepo: wizardRepo,
		publisher:  publisher,
		logger:     logger.Named("SpeechService"),
	}
}

// Save валидирует и сохраняет речь.
// Валидация выполняется синхронно, до обращения к хранилищу.
func (s *speechServiceImpl) Save(ctx context.Context, userID uuid.UUID, title, content, category string) (*models.Speech, error) {
	log := s.logger.With(zap.String("userID", userID.String()))

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, models.ErrEmptyContent
	}
	if category != "" && !questionnaire.KnownCategory(category) {
		return nil, models.ErrUnknownCategory
	}

	speech := &models.Speech{
		UserID:   userID,
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := s.speechRepo.Create(ctx, speech); err != nil {
		log.Error("Failed to save speech", zap.Error(err))
		return nil, fmt.Errorf("failed to save speech: %w", err)
	}

	// Речь сохранена - мастеру больше нечего восстанавливать.
	if err := s.wizardRepo.ClearRecovery(ctx, userID); err != nil {
		log.Error("Failed to clear wizard recovery data after save", zap.Error(err))
	}

	if s.publisher != nil {
		event := messaging.SpeechSavedPayload{
			SpeechID: speech.ID,
			UserID:   userID,
			Category: category,
			SavedAt:  time.Now(),
		}
		if pubErr := s.publisher.Publish(ctx, messaging.RoutingKeySpeechSaved, event); pubErr != nil {
			log.Error("Failed to publish speech.saved event", zap.Error(pubErr))
		}
	}

	log.Info("Speech saved", zap.String("speechID", speech.ID.String()), zap.String("category", category))
	return speech, nil
}

// Get возвращает речь пользователя.
func (s *speechServiceImpl) Get(ctx context.Context, userID, speechID uuid.UUID) (*models.Speech, error) {
	return s.getOwned(ctx, userID, speechID)
}

// List возвращает страницу речей пользователя, свежие первыми.
func (s *speechServiceImpl) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Speech, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.speechRepo.ListByUser(ctx, userID, limit, offset)
}

// Update изменяет заголовок и текст речи.
func (s *speechServiceImpl) Update(ctx context.Context, userID, speechID uuid.UUID, title, content string) (*models.Speech, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, models.ErrEmptyContent
	}

	speech, err := s.getOwned(ctx, userID, speechID)
	if err != nil {
		return nil, err
	}

	speech.Title = title
	speech.Content = content
	if err := s.speechRepo.Update(ctx, speech); err != nil {
		s.logger.Error("Failed to update speech", zap.Error(err), zap.String("speechID", speechID.String()))
		return nil, fmt.Errorf("failed to update speech: %w", err)
	}
	return speech, nil
}

// Delete удаляет речь пользователя.
func (s *speechServiceImpl) Delete(ctx context.Context, userID, speechID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, speechID); err != nil {
		return err
	}
	if err := s.speechRepo.Delete(ctx, speechID); err != nil {
		s.logger.Error("Failed to delete speech", zap.Error(err), zap.String("speechID", speechID.String()))
		return err
	}
	s.logger.Info("Speech deleted", zap.String("userID", userID.String()), zap.String("speechID", speechID.String()))
	return nil
}

// ExportHTML рендерит разметку речи в HTML.
func (s *speechServiceImpl) ExportHTML(ctx context.Context, userID, speechID uuid.UUID) (string, error) {
	speech, err := s.getOwned(ctx, userID, speechID)
	if err != nil {
		return "", err
	}
	return markup.RenderHTML(speech.Content), nil
}

// getOwned возвращает речь, если она принадлежит пользователю.
// Чужая речь маскируется под несуществующую.
func (s *speechServiceImpl) getOwned(ctx context.Context, userID, speechID uuid.UUID) (*models.Speech, error) {
	speech, err := s.speechRepo.GetByID(ctx, speechID)
	if err != nil {
		return nil, err
	}
	if speech.UserID != userID {
		s.logger.Warn("Attempt to access foreign speech",
			zap.String("userID", userID.String()),
			zap.String("speechID", speechID.String()),
			zap.String("ownerID", speech.UserID.String()),
		)
		return nil, models.ErrSpeechNotFound
	}
	return speech, nil
}
