package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"speechcraft-server/internal/generation"
	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/messaging"
	"speechcraft-server/internal/models"
	"speechcraft-server/internal/questionnaire"
)

// Compile-time check
var _ WizardService = (*wizardServiceImpl)(nil)

type wizardServiceImpl struct {
	wizardRepo    interfaces.WizardStateRepository
	subscriptions SubscriptionService
	coordinator   *generation.Coordinator
	publisher     interfaces.EventPublisher
	logger        *zap.Logger
}

// NewWizardService creates a new instance of wizardServiceImpl.
func NewWizardService(
	wizardRepo interfaces.WizardStateRepository,
	subscriptions SubscriptionService,
	coordinator *generation.Coordinator,
	publisher interfaces.EventPublisher,
	logger *zap.Logger,
) WizardService {
	return &wizardServiceImpl{
		wizardRepo:    wizardRepo,
		subscriptions: subscriptions,
		coordinator:   coordinator,
		publisher:     publisher,
		logger:        logger.Named("WizardService"),
	}
}

func (s *wizardServiceImpl) Categories() []string {
	return questionnaire.Categories()
}

func (s *wizardServiceImpl) VisibleQuestions(category string, answers map[string]string) ([]questionnaire.Question, error) {
	if !questionnaire.KnownCategory(category) {
		return nil, models.ErrUnknownCategory
	}
	session := questionnaire.RestoreSession(category, answers, 0)
	return session.Visible(), nil
}

// SaveState пишет снимок после каждого изменения ответа. Ошибка кэша
// не должна ломать работу мастера, но наружу мы ее все же отдаем,
// чтобы клиент знал, что восстановление не гарантировано.
func (s *wizardServiceImpl) SaveState(ctx context.Context, userID uuid.UUID, state *models.WizardState) error {
	if !questionnaire.KnownCategory(state.Category) && state.Category != "" {
		return models.ErrUnknownCategory
	}
	return s.wizardRepo.SaveState(ctx, userID, state)
}

func (s *wizardServiceImpl) RecoverState(ctx context.Context, userID uuid.UUID) (*models.WizardState, error) {
	state, err := s.wizardRepo.LoadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Wizard state recovered",
		zap.String("userID", userID.String()),
		zap.Int("step", state.Step),
		zap.String("category", state.Category),
	)
	return state, nil
}

func (s *wizardServiceImpl) RecoverDraft(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.wizardRepo.LoadDraftBackup(ctx, userID)
}

func (s *wizardServiceImpl) Reset(ctx context.Context, userID uuid.UUID) error {
	s.logger.Info("Resetting wizard", zap.String("userID", userID.String()))
	return s.wizardRepo.ClearRecovery(ctx, userID)
}

// Generate выполняет полный цикл генерации черновика.
//
// Порядок важен: квота проверяется до любых побочных эффектов, снимок
// запроса сохраняется до обращения к генератору (чтобы пережить сбой
// процесса), резервные копии черновика пишутся сразу после получения
// результата.
func (s *wizardServiceImpl) Generate(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", models.ErrEmptyTitle
	}

	// Незнакомая категория не ошибка: анкета для нее строится по
	// универсальному каталогу.
	category := req.Category
	if !questionnaire.KnownCategory(category) {
		category = questionnaire.CategoryOther
	}

	log := s.logger.With(zap.String("userID", userID.String()), zap.String("category", category))

	if err := s.subscriptions.CheckQuota(ctx, userID); err != nil {
		log.Warn("Generation rejected", zap.Error(err))
		return "", err
	}

	// Снимок запроса пишется до генерации: если процесс упадет посреди
	// запроса, пользователь сможет повторить его после перезапуска.
	if err := s.wizardRepo.SaveLastRequest(ctx, userID, req); err != nil {
		log.Error("Failed to save generation request snapshot, continuing", zap.Error(err))
	}

	session := questionnaire.RestoreSession(category, req.Answers, 0)
	answers := session.VisibleAnswers()

	draft, err := s.coordinator.Generate(ctx, userID, title, category, answers)
	if err != nil {
		// Единственная причина - уже идущая генерация.
		return "", err
	}

	remote := s.coordinator.StateFor(userID) == generation.StateSucceeded

	if err := s.wizardRepo.SaveDraftBackups(ctx, userID, draft); err != nil {
		log.Error("Failed to save draft backups, continuing", zap.Error(err))
	}

	if err := s.subscriptions.ConsumeGeneration(ctx, userID); err != nil {
		// Квота уже проверена выше; сбой инкремента не должен отнимать
		// у пользователя готовый черновик.
		log.Error("Failed to consume generation quota", zap.Error(err))
	}

	if s.publisher != nil {
		event := messaging.SpeechGeneratedPayload{
			UserID:      userID,
			Category:    category,
			Remote:      remote,
			WordCount:   len(strings.Fields(draft)),
			GeneratedAt: time.Now(),
		}
		if pubErr := s.publisher.Publish(ctx, messaging.RoutingKeySpeechGenerated, event); pubErr != nil {
			log.Error("Failed to publish speech.generated event", zap.Error(pubErr))
		}
	}

	log.Info("Draft generated", zap.Bool("remote", remote), zap.Int("chars", len(draft)))
	return draft, nil
}

func (s *wizardServiceImpl) GenerationState(userID uuid.UUID) generation.State {
	return s.coordinator.StateFor(userID)
}
