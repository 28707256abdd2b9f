package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_HiddenAnswerRetained(t *testing.T) {
	s := NewSession(CategoryWedding)

	// Сначала имя видно и получает ответ.
	s.SetAnswer("Will you be introduced before you speak?", "No")
	s.SetAnswer("What is your name?", "Alex")

	// Изменение условия скрывает вопрос, но ответ остается в хранилище.
	s.SetAnswer("Will you be introduced before you speak?", "Yes")

	assert.Equal(t, "Alex", s.AnswerFor("What is your name?"))
	assert.Equal(t, "Alex", s.Answers()["What is your name?"])

	for _, a := range s.VisibleAnswers() {
		assert.NotEqual(t, "What is your name?", a.Question.Text,
			"hidden answer must not leak into the visible snapshot")
	}

	// Возврат условия делает ответ снова видимым без повторного ввода.
	s.SetAnswer("Will you be introduced before you speak?", "No")
	found := false
	for _, a := range s.VisibleAnswers() {
		if a.Question.Text == "What is your name?" {
			found = true
			assert.Equal(t, "Alex", a.Value)
		}
	}
	assert.True(t, found)
}

func TestSession_IndexClampedWhenVisibleSetShrinks(t *testing.T) {
	s := NewSession(CategoryWedding)
	s.SetAnswer("Will you be introduced before you speak?", "No")

	// Уходим на последний видимый вопрос.
	for !s.Advance() {
	}
	lastWithName := s.Index()

	// Скрываем вопрос про имя: набор сокращается, индекс прижимается.
	s.SetAnswer("Will you be introduced before you speak?", "Yes")
	assert.Equal(t, lastWithName-1, s.Index())

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, s.Visible()[s.Index()], current)
}

func TestSession_AdvanceRetreatBoundaries(t *testing.T) {
	s := NewSession(CategoryOther)

	// На первом вопросе Retreat сообщает о выходе и не двигает индекс.
	assert.True(t, s.Retreat())
	assert.Equal(t, 0, s.Index())

	total := len(s.Visible())
	for i := 0; i < total-1; i++ {
		assert.False(t, s.Advance())
	}
	assert.Equal(t, total-1, s.Index())

	// На последнем вопросе Advance сообщает о завершении и не двигает индекс.
	assert.True(t, s.Advance())
	assert.Equal(t, total-1, s.Index())

	assert.False(t, s.Retreat())
	assert.Equal(t, total-2, s.Index())
}

func TestRestoreSession_ClampsIndex(t *testing.T) {
	answers := map[string]string{"What is your name?": "Sam"}

	s := RestoreSession(CategoryOther, answers, 999)
	assert.Equal(t, len(s.Visible())-1, s.Index())

	s = RestoreSession(CategoryOther, answers, -5)
	assert.Equal(t, 0, s.Index())

	// Ответы копируются, а не разделяются с вызывающим.
	answers["What is your name?"] = "changed"
	assert.Equal(t, "Sam", s.AnswerFor("What is your name?"))
}

func TestSession_VisibleAnswersSkipsEmpty(t *testing.T) {
	s := NewSession(CategoryFuneral)
	s.SetAnswer("What is your name?", "Dana")
	s.SetAnswer("Share a cherished memory of them.", "")

	snapshot := s.VisibleAnswers()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "What is your name?", snapshot[0].Question.Text)
	assert.Equal(t, "Dana", snapshot[0].Value)
}
