package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speechcraft-server/internal/questionnaire"
)

func answer(text string, role questionnaire.SemanticRole, value string) questionnaire.Answer {
	return questionnaire.Answer{
		Question: questionnaire.Question{Text: text, Kind: questionnaire.KindText, Role: role},
		Value:    value,
	}
}

func TestAssembleDraft_EveryAnswerAppearsOnce(t *testing.T) {
	answers := []questionnaire.Answer{
		answer("What is your name?", questionnaire.RoleName, "Alex"),
		answer("What is your role in the ceremony?", questionnaire.RoleSpeaker, "Best Man"),
		answer("Share a favorite story or memory about the couple.", questionnaire.RoleGeneric, "We met in a kayak accident"),
		answer("What qualities do you admire most about them?", questionnaire.RoleGeneric, "Their patience with each other"),
		answer("Who will be in the audience?", questionnaire.RoleAudience, "family and friends"),
		answer("How would you like to close the toast?", questionnaire.RoleClosing, "Raise your glasses to Sam and Jamie!"),
	}

	draft := AssembleDraft("Wedding Toast", answers)

	for _, a := range answers {
		assert.Equal(t, 1, strings.Count(draft, a.Value),
			"answer %q must appear exactly once", a.Value)
	}
}

func TestAssembleDraft_SectionOrder(t *testing.T) {
	draft := AssembleDraft("My Speech", nil)

	title := strings.Index(draft, "# My Speech")
	intro := strings.Index(draft, "## Introduction")
	main := strings.Index(draft, "## Main Content")
	rule := strings.Index(draft, "---")
	concl := strings.Index(draft, "## Conclusion")

	require.NotEqual(t, -1, title)
	require.NotEqual(t, -1, intro)
	require.NotEqual(t, -1, main)
	require.NotEqual(t, -1, rule)
	require.NotEqual(t, -1, concl)
	assert.True(t, title < intro && intro < main && main < rule && rule < concl)
}

func TestAssembleDraft_NameIsBold(t *testing.T) {
	draft := AssembleDraft("Toast", []questionnaire.Answer{
		answer("What is your name?", questionnaire.RoleName, "Alex"),
	})
	assert.Contains(t, draft, "my name is **Alex**.")
}

func TestAssembleDraft_ToneVariants(t *testing.T) {
	tone := func(value string) string {
		return AssembleDraft("T", []questionnaire.Answer{
			answer("What tone should the speech have?", questionnaire.RoleTone, value),
		})
	}

	assert.Contains(t, tone("Humorous"), "the bar closes eventually")
	assert.Contains(t, tone("Formal and respectful"), "deeply grateful for the opportunity")
	// Теплый тон подается курсивом.
	assert.Contains(t, tone("Warm and heartfelt"), "*My heart is full as I stand here")

	// Неизвестный тон не добавляет вступительной фразы.
	plain := tone("sarcastic")
	assert.NotContains(t, plain, "the bar closes")
	assert.NotContains(t, plain, "deeply grateful")
	assert.NotContains(t, plain, "My heart is full")
}

func TestAssembleDraft_ClosingVerbatimOrGeneric(t *testing.T) {
	withClosing := AssembleDraft("T", []questionnaire.Answer{
		answer("How would you like to close the toast?", questionnaire.RoleClosing, "To love, laughter and happily ever after!"),
	})
	assert.Contains(t, withClosing, "To love, laughter and happily ever after!")
	assert.NotContains(t, withClosing, "Thank you all for being here today.")

	withoutClosing := AssembleDraft("T", nil)
	assert.Contains(t, withoutClosing, "Thank you all for being here today. It means the world to me.")
}

func TestAssembleDraft_DurationNotInText(t *testing.T) {
	draft := AssembleDraft("T", []questionnaire.Answer{
		answer("Desired length of the speech (in minutes)?", questionnaire.RoleDuration, "3 minutes"),
	})
	assert.NotContains(t, draft, "3 minutes")
}

func TestAssembleDraft_MainContentSentencePrefixes(t *testing.T) {
	draft := AssembleDraft("T", []questionnaire.Answer{
		answer("Share a favorite story or memory about the couple.", questionnaire.RoleGeneric, "the kayak trip"),
		answer("What qualities do you admire most about them?", questionnaire.RoleGeneric, "generosity"),
		answer("What is the main message you want to convey?", questionnaire.RoleGeneric, "never stop dancing"),
		answer("What is the occasion?", questionnaire.RoleGeneric, "an anniversary"),
	})

	assert.Contains(t, draft, "I'd like to share a special memory: the kayak trip")
	assert.Contains(t, draft, "What stands out most is: generosity")
	assert.Contains(t, draft, "The main message I want to convey today is: never stop dancing")
	assert.Contains(t, draft, "Regarding occasion: an anniversary")
}

func TestAssembleDraft_EmptyAnswersGetPlaceholderBody(t *testing.T) {
	draft := AssembleDraft("Untitled", nil)
	assert.Contains(t, draft, "There is so much that could be said about this occasion.")
}

func TestResolveRole_KeywordFallback(t *testing.T) {
	// Вопрос без роли распознается по ключевым словам.
	q := func(text string) questionnaire.Question {
		return questionnaire.Question{Text: text, Kind: questionnaire.KindText}
	}

	assert.Equal(t, questionnaire.RoleName, resolveRole(q("What is your name?")))
	assert.Equal(t, questionnaire.RoleSpeaker, resolveRole(q("What was your relationship to the deceased?")))
	assert.Equal(t, questionnaire.RoleAudience, resolveRole(q("Who will be attending?")))
	assert.Equal(t, questionnaire.RoleTone, resolveRole(q("What tone should it have?")))
	assert.Equal(t, questionnaire.RoleClosing, resolveRole(q("How should the conclusion sound?")))
	assert.Equal(t, questionnaire.RoleDuration, resolveRole(q("How long should it be?")))
	assert.Equal(t, questionnaire.RoleGeneric, resolveRole(q("Share something about them.")))

	// Явная роль RoleGeneric отключает распознавание по ключевым словам.
	generic := questionnaire.Question{Text: "What tone should it have?", Role: questionnaire.RoleGeneric}
	assert.Equal(t, questionnaire.RoleGeneric, resolveRole(generic))
}

func TestDeriveTheme(t *testing.T) {
	assert.Equal(t, "occasion", deriveTheme("What is the occasion?"))
	assert.Equal(t, "names of the couple getting married", deriveTheme("What are the names of the couple getting married?"))
	assert.Equal(t, "what is", deriveTheme("What is?"))
}
