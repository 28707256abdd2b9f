package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speechcraft-server/internal/mocks"
	"speechcraft-server/internal/models"
	"speechcraft-server/internal/questionnaire"
)

func weddingAnswers() []questionnaire.Answer {
	catalog := questionnaire.CatalogFor(questionnaire.CategoryWedding)
	byText := make(map[string]questionnaire.Question, len(catalog.Questions))
	for _, q := range catalog.Questions {
		byText[q.Text] = q
	}

	pairs := []struct{ question, value string }{
		{"Will you be introduced before you speak?", "No"},
		{"What is your name?", "Alex"},
		{"What is your role in the ceremony?", "Best Man"},
		{"Share a favorite story or memory about the couple.", "The time they got lost hiking and came back engaged"},
		{"What tone should the speech have?", "Warm and heartfelt"},
		{"Desired length of the speech (in minutes)?", "3 minutes"},
		{"How would you like to close the toast?", "Please raise your glasses to Sam and Jamie!"},
	}

	answers := make([]questionnaire.Answer, 0, len(pairs))
	for _, p := range pairs {
		answers = append(answers, questionnaire.Answer{Question: byText[p.question], Value: p.value})
	}
	return answers
}

func TestGenerate_RemoteSuccess(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("# Toast\n\n## Introduction\n\nRemote draft body.", nil).Once()

	c := NewCoordinator(aiClient, zap.NewNop())
	userID := uuid.New()

	draft, err := c.Generate(context.Background(), userID, "Toast", questionnaire.CategoryWedding, nil)
	require.NoError(t, err)
	assert.Contains(t, draft, "Remote draft body.")
	assert.Equal(t, StateSucceeded, c.StateFor(userID))
	aiClient.AssertExpectations(t)
}

func TestGenerate_RemoteFailureFallsBackToLocal(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("upstream timeout")).Once()

	c := NewCoordinator(aiClient, zap.NewNop())
	userID := uuid.New()
	answers := weddingAnswers()

	draft, err := c.Generate(context.Background(), userID, "Wedding Toast", questionnaire.CategoryWedding, answers)

	// Сбой удаленного генератора никогда не доходит до пользователя.
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(draft))
	assert.Equal(t, StateFailed, c.StateFor(userID))

	// Черновик собран локально из ответов.
	assert.Contains(t, draft, "my name is **Alex**")
	assert.Contains(t, draft, "Please raise your glasses to Sam and Jamie!")
	aiClient.AssertExpectations(t)
}

func TestGenerate_EmptyRemoteResponseTreatedAsFailure(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("   \n", nil).Once()

	c := NewCoordinator(aiClient, zap.NewNop())
	userID := uuid.New()

	draft, err := c.Generate(context.Background(), userID, "Toast", questionnaire.CategoryWedding, weddingAnswers())
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(draft))
	assert.Equal(t, StateFailed, c.StateFor(userID))
}

func TestGenerate_NoAnswersYieldsPlaceholder(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("unavailable")).Once()

	c := NewCoordinator(aiClient, zap.NewNop())

	draft, err := c.Generate(context.Background(), uuid.New(), "Toast", questionnaire.CategoryOther, nil)
	require.NoError(t, err)
	assert.Equal(t, Placeholder, draft)
}

func TestGenerate_SecondRequestRejectedWhileFirstInFlight(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	started := make(chan struct{})
	release := make(chan struct{})
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return("", errors.New("slow")).Once()

	c := NewCoordinator(aiClient, zap.NewNop())
	userID := uuid.New()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Generate(context.Background(), userID, "Toast", questionnaire.CategoryWedding, weddingAnswers())
		assert.NoError(t, err)
	}()

	<-started
	assert.Equal(t, StateRequesting, c.StateFor(userID))

	_, err := c.Generate(context.Background(), userID, "Toast", questionnaire.CategoryWedding, weddingAnswers())
	assert.ErrorIs(t, err, models.ErrGenerationInProgress)

	close(release)
	wg.Wait()
	assert.Equal(t, StateFailed, c.StateFor(userID))
}

func TestGenerate_OtherUserNotBlocked(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("down")).Twice()

	c := NewCoordinator(aiClient, zap.NewNop())

	_, err := c.Generate(context.Background(), uuid.New(), "A", questionnaire.CategoryOther, weddingAnswers())
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), uuid.New(), "B", questionnaire.CategoryOther, weddingAnswers())
	require.NoError(t, err)
}

func TestGenerate_PromptCarriesAnswersAndDuration(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	var capturedUser string
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedUser = args.String(2)
		}).
		Return("# Toast\n\ndraft", nil).Once()

	c := NewCoordinator(aiClient, zap.NewNop())

	_, err := c.Generate(context.Background(), uuid.New(), "Wedding Toast", questionnaire.CategoryWedding, weddingAnswers())
	require.NoError(t, err)

	assert.Contains(t, capturedUser, "Speech title: Wedding Toast")
	assert.Contains(t, capturedUser, "Occasion: wedding")
	assert.Contains(t, capturedUser, "What is your role in the ceremony? Best Man")
	assert.Contains(t, capturedUser, "Target speech length: 3 minutes")
}

// Полный проход: свадебный каталог от ответов до готового черновика
// при недоступном удаленном генераторе.
func TestGenerate_WeddingEndToEndFallback(t *testing.T) {
	aiClient := mocks.NewMockAIClient(t)
	aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("service unavailable")).Once()

	c := NewCoordinator(aiClient, zap.NewNop())

	session := questionnaire.NewSession(questionnaire.CategoryWedding)
	for _, a := range weddingAnswers() {
		session.SetAnswer(a.Question.Text, a.Value)
	}

	draft, err := c.Generate(context.Background(), uuid.New(), "Wedding Toast", session.Category(), session.VisibleAnswers())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(draft, "# Wedding Toast"))
	assert.Contains(t, draft, "## Introduction")
	assert.Contains(t, draft, "## Main Content")
	assert.Contains(t, draft, "## Conclusion")
	assert.Contains(t, draft, "I have the honor of being the Best Man today.")
	assert.Contains(t, draft, "The time they got lost hiking and came back engaged")
	// Теплый тон дает курсивное вступление.
	assert.Contains(t, draft, "*My heart is full as I stand here")
	// Длительность не попадает в текст, а управляет расширением.
	assert.NotContains(t, draft, "3 minutes")
}
