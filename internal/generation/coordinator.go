package generation

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"speechcraft-server/internal/assembly"
	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
	"speechcraft-server/internal/questionnaire"
)

// State - состояние одной попытки генерации.
// Явный конечный автомат вместо булевого флага: второй запрос во время
// выполняющегося невозможно выразить как валидный переход.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Placeholder - абсолютный запасной вариант: удаленный генератор недоступен
// и ответов для локальной сборки нет. Никогда не возвращаем пустую строку.
const Placeholder = "Your speech draft starts here. The automatic generator was unavailable, so please edit this text by hand to craft your speech."

// systemPrompt задает "личность" модели и требуемый формат разметки.
const systemPrompt = `You are a professional speechwriter. Write a complete, ready-to-deliver speech based on the occasion and the answers provided by the speaker.

Format the speech with lightweight markup: "# " for the title line, "## " for section headings (use Introduction, Main Content, Conclusion), "**text**" for bold, "*text*" for italics and a line of "---" before the final section. Do not use any other markup.

Write in the first person. Keep the speaker's facts exactly as given, never invent names or events.`

// Coordinator выполняет попытку удаленной генерации и гарантированно
// возвращает пригодный черновик: при любой ошибке удаленного вызова
// срабатывает локальная сборка с расширением до целевой длительности.
//
// На пользователя допускается один запрос одновременно; повторный
// вызов до завершения первого получает ErrGenerationInProgress.
// Сам координатор удаленный вызов не повторяет - ретраи живут в AI клиенте.
type Coordinator struct {
	ai     interfaces.AIClient
	logger *zap.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]State
}

// NewCoordinator создает координатор генерации.
func NewCoordinator(aiClient interfaces.AIClient, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		ai:       aiClient,
		logger:   logger.Named("GenerationCoordinator"),
		inFlight: make(map[uuid.UUID]State),
	}
}

// StateFor возвращает текущее состояние генерации пользователя.
func (c *Coordinator) StateFor(userID uuid.UUID) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.inFlight[userID]; ok {
		return s
	}
	return StateIdle
}

// Generate выполняет генерацию речи для пользователя.
//
// Единственная ошибка, которую может вернуть метод, -
// models.ErrGenerationInProgress. Сбой удаленного генератора поглощается:
// он логируется, после чего черновик собирается локально. Результат
// никогда не бывает пустой строкой.
func (c *Coordinator) Generate(ctx context.Context, userID uuid.UUID, title, category string, answers []questionnaire.Answer) (string, error) {
	if err := c.begin(userID); err != nil {
		return "", err
	}

	log := c.logger.With(
		zap.String("userID", userID.String()),
		zap.String("category", category),
	)

	targetMinutes := assembly.DefaultTargetMinutes
	durationValue, hasDuration := assembly.DurationAnswer(answers)
	if hasDuration {
		targetMinutes = assembly.ParseMinutes(durationValue)
	}

	remote, err := c.ai.GenerateText(ctx, systemPrompt, buildUserPrompt(title, category, answers))
	if err == nil && strings.TrimSpace(remote) != "" {
		c.finish(userID, StateSucceeded)
		log.Info("Remote generation succeeded", zap.Int("targetMinutes", targetMinutes))
		if hasDuration {
			remote = assembly.Expand(remote, targetMinutes)
		}
		return remote, nil
	}

	// Сбой удаленной генерации не доходит до пользователя как ошибка:
	// переключаемся на локальную сборку и отдаем пригодный черновик.
	c.finish(userID, StateFailed)
	log.Warn("Remote generation failed, falling back to local assembly", zap.Error(err))

	if len(answers) == 0 {
		return Placeholder, nil
	}

	draft := assembly.AssembleDraft(title, answers)
	return assembly.Expand(draft, targetMinutes), nil
}

// begin переводит пользователя в StateRequesting, если он не там.
func (c *Coordinator) begin(userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[userID] == StateRequesting {
		return models.ErrGenerationInProgress
	}
	c.inFlight[userID] = StateRequesting
	return nil
}

func (c *Coordinator) finish(userID uuid.UUID, final State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight[userID] = final
}

// buildUserPrompt собирает пользовательскую часть запроса к модели
// из заголовка, категории и пар вопрос/ответ.
func buildUserPrompt(title, category string, answers []questionnaire.Answer) string {
	var b strings.Builder
	b.WriteString("Speech title: " + title + "\n")
	b.WriteString("Occasion: " + category + "\n\n")
	b.WriteString("The speaker answered the following questions:\n")
	for _, a := range answers {
		b.WriteString("- " + a.Question.Text + " " + a.Value + "\n")
	}
	if value, ok := assembly.DurationAnswer(answers); ok {
		b.WriteString("\nTarget speech length: " + value + "\n")
	}
	return b.String()
}
