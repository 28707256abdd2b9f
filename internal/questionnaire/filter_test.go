package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleQuestions_UnconditionalAlwaysVisible(t *testing.T) {
	questions := []Question{
		{Text: "A", Kind: KindText},
		{Text: "B", Kind: KindText},
	}

	visible := VisibleQuestions(questions, map[string]string{})
	require.Len(t, visible, 2)
	assert.Equal(t, "A", visible[0].Text)
	assert.Equal(t, "B", visible[1].Text)
}

func TestVisibleQuestions_ConditionExactMatch(t *testing.T) {
	questions := []Question{
		{Text: "Will you be introduced before you speak?", Kind: KindRadio, Options: []string{"Yes", "No"}},
		{
			Text:      "What is your name?",
			Kind:      KindText,
			Condition: &Condition{Question: "Will you be introduced before you speak?", Answer: "No"},
		},
	}

	// Без ответа условный вопрос скрыт.
	visible := VisibleQuestions(questions, map[string]string{})
	require.Len(t, visible, 1)

	// Ответ "Yes" условие не выполняет.
	visible = VisibleQuestions(questions, map[string]string{
		"Will you be introduced before you speak?": "Yes",
	})
	require.Len(t, visible, 1)

	// Точное совпадение показывает вопрос.
	visible = VisibleQuestions(questions, map[string]string{
		"Will you be introduced before you speak?": "No",
	})
	require.Len(t, visible, 2)
	assert.Equal(t, "What is your name?", visible[1].Text)

	// Сравнение чувствительно к регистру.
	visible = VisibleQuestions(questions, map[string]string{
		"Will you be introduced before you speak?": "no",
	})
	assert.Len(t, visible, 1)
}

func TestVisibleQuestions_Deterministic(t *testing.T) {
	catalog := CatalogFor(CategoryWedding)
	answers := map[string]string{
		"Will you be introduced before you speak?": "No",
		"What is your name?":                       "Alex",
	}

	first := VisibleQuestions(catalog.Questions, answers)
	for i := 0; i < 10; i++ {
		again := VisibleQuestions(catalog.Questions, answers)
		require.Equal(t, first, again, "visible set must be stable across recomputations")
	}

	// Порядок результата совпадает с порядком каталога.
	lastIdx := -1
	for _, q := range first {
		found := -1
		for i, cq := range catalog.Questions {
			if cq.Text == q.Text {
				found = i
				break
			}
		}
		require.Greater(t, found, lastIdx, "visible questions must preserve catalog order")
		lastIdx = found
	}
}

func TestCatalogFor_UnknownFallsBackToOther(t *testing.T) {
	catalog := CatalogFor("no-such-category")
	assert.Equal(t, CategoryOther, catalog.Name)
	assert.NotEmpty(t, catalog.Questions)
}

func TestCategories_ContainsAllKnown(t *testing.T) {
	categories := Categories()
	assert.Contains(t, categories, CategoryWedding)
	assert.Contains(t, categories, CategoryFuneral)
	assert.Contains(t, categories, CategoryOther)

	for _, c := range categories {
		assert.True(t, KnownCategory(c))
	}
	assert.False(t, KnownCategory("picnic"))
}
