package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speechcraft-server/internal/questionnaire"
)

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"5 minutes", 5},
		{"5 min", 5},
		{"1 hour", 60},
		{"2 hours", 120},
		{"1 hr", 60},
		{"90", 90},          // голое большое число - минуты
		{"2", 120},          // голое маленькое число без "min" - часы
		{"3", 180},
		{"10", 10},          // между 3 и 60 - минуты
		{"about 7 minutes", 7},
		{"", DefaultTargetMinutes},
		{"dunno", DefaultTargetMinutes},
		{"0 minutes", DefaultTargetMinutes},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseMinutes(tc.input), "input %q", tc.input)
	}
}

func TestEstimateMinutes(t *testing.T) {
	assert.InDelta(t, 0, EstimateMinutes(""), 0.001)
	assert.InDelta(t, 1.0, EstimateMinutes(strings.Repeat("word ", 130)), 0.001)
}

func TestDurationAnswer(t *testing.T) {
	answers := []questionnaire.Answer{
		answer("What is your name?", questionnaire.RoleName, "Alex"),
		answer("Desired length of the speech (in minutes)?", questionnaire.RoleDuration, "3 minutes"),
	}
	value, ok := DurationAnswer(answers)
	require.True(t, ok)
	assert.Equal(t, "3 minutes", value)

	// Запасной путь по ключевым словам для вопросов без ролей.
	noRoles := []questionnaire.Answer{
		{Question: questionnaire.Question{Text: "How long should the speech be?"}, Value: "10"},
	}
	value, ok = DurationAnswer(noRoles)
	require.True(t, ok)
	assert.Equal(t, "10", value)

	_, ok = DurationAnswer(nil)
	assert.False(t, ok)
}

func TestExpand_InsertionOnly(t *testing.T) {
	draft := AssembleDraft("Toast", []questionnaire.Answer{
		answer("Share a favorite story or memory about the couple.", questionnaire.RoleGeneric, "the kayak trip"),
		answer("How would you like to close the toast?", questionnaire.RoleClosing, "Cheers!"),
	})

	expanded := Expand(draft, 10)

	// Каждая строка исходника сохраняется в том же порядке.
	remaining := strings.Split(expanded, "\n")
	for _, line := range strings.Split(draft, "\n") {
		idx := -1
		for i, el := range remaining {
			if el == line {
				idx = i
				break
			}
		}
		require.NotEqual(t, -1, idx, "original line %q must survive expansion", line)
		remaining = remaining[idx+1:]
	}

	assert.Greater(t, len(strings.Fields(expanded)), len(strings.Fields(draft)))
}

func TestExpand_Deterministic(t *testing.T) {
	draft := AssembleDraft("Toast", nil)
	first := Expand(draft, 15)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Expand(draft, 15))
	}
}

func TestExpand_ShortFormInsertions(t *testing.T) {
	draft := AssembleDraft("Toast", []questionnaire.Answer{
		answer("Share a favorite story or memory about the couple.", questionnaire.RoleGeneric, "the kayak trip"),
	})
	expanded := Expand(draft, 5)

	assert.Contains(t, expanded, shortIntroElaboration)
	assert.Contains(t, expanded, shortContentElaboration)
	assert.Contains(t, expanded, shortTransition)
	// Короткий черновик при цели в 5 минут выбирает весь запас добивочных.
	for _, paragraph := range shortExtraParagraphs {
		assert.Contains(t, expanded, paragraph)
	}

	// Вставки не ломают порядок секций.
	assert.Less(t, strings.Index(expanded, shortIntroElaboration), strings.Index(expanded, headingMainContent))
	assert.Less(t, strings.Index(expanded, shortTransition), strings.Index(expanded, headingConclusion))
}

func TestExpand_ReachesTargetDuration(t *testing.T) {
	// Свадебный сценарий целиком: короткая анкета, цель 3 минуты.
	// После расширения оценка длительности должна попасть в цель
	// с точностью до минуты.
	values := map[string]string{
		"Will you be introduced before you speak?":          "No",
		"What is your name?":                                "Alex",
		"What is your role in the ceremony?":                "Best Man",
		"What are the names of the couple getting married?": "Sam and Jamie",
		"Desired length of the speech (in minutes)?":        "3 minutes",
	}
	catalog := questionnaire.CatalogFor(questionnaire.CategoryWedding)
	answers := make([]questionnaire.Answer, 0, len(values))
	for _, q := range catalog.Questions {
		if v, ok := values[q.Text]; ok {
			answers = append(answers, questionnaire.Answer{Question: q, Value: v})
		}
	}
	require.Len(t, answers, len(values))

	draft := AssembleDraft("Wedding Toast", answers)
	value, ok := DurationAnswer(answers)
	require.True(t, ok)
	target := ParseMinutes(value)
	require.Equal(t, 3, target)

	expanded := Expand(draft, target)
	assert.InDelta(t, float64(target), EstimateMinutes(expanded), 1.0)
	assert.Contains(t, expanded, "Alex")
	assert.Contains(t, expanded, "Best Man")
}

func TestExpand_LongFormUsesNarrativeBlocks(t *testing.T) {
	draft := AssembleDraft("Keynote", nil)
	expanded := Expand(draft, 30)

	for _, block := range longFormBlocks {
		assert.Contains(t, expanded, block)
	}
	// Сводка добавляется только от 45 минут.
	assert.NotContains(t, expanded, longFormWrapUp)

	longest := Expand(draft, 45)
	assert.Contains(t, longest, longFormWrapUp)
}

func TestExpand_RemoteDraftWithoutMarkers(t *testing.T) {
	// Черновик от удаленного генератора без известных заголовков
	// проходит через расширение без изменений и без паники.
	remote := "Dear friends, thank you for coming tonight. This speech has no markup at all."
	assert.Equal(t, remote, Expand(remote, 10))
	assert.Equal(t, remote, Expand(remote, 60))
}

func TestExpand_NonPositiveTargetUsesDefault(t *testing.T) {
	draft := AssembleDraft("Toast", nil)
	assert.Equal(t, Expand(draft, DefaultTargetMinutes), Expand(draft, 0))
	assert.Equal(t, Expand(draft, DefaultTargetMinutes), Expand(draft, -3))
}
