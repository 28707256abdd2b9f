package assembly

import (
	"fmt"
	"strings"

	"speechcraft-server/internal/questionnaire"
)

// Маркеры разметки черновика. Ровно эти пять конструкций понимает
// рендерер предпросмотра (пакет markup): "# ", "## ", "**", "*", "---".
const (
	headingIntroduction = "## Introduction"
	headingMainContent  = "## Main Content"
	headingConclusion   = "## Conclusion"
	horizontalRule      = "---"
)

// genericThankYou используется в заключении, когда пользователь
// не ответил на вопрос о завершении речи.
const genericThankYou = "Thank you all for being here today. It means the world to me."

// speakerFields - извлеченные из ответов данные о выступающем.
// Любое поле может остаться пустым - сборка подставит нейтральные формулировки.
type speakerFields struct {
	name     string
	role     string
	audience string
	tone     string
	closing  string
}

// AssembleDraft собирает черновик речи из заголовка и упорядоченного
// снимка видимых ответов. Черновик состоит из трех секций в фиксированном
// порядке: Introduction, Main Content, Conclusion.
//
// Ответы с ролями name/role/audience/tone/duration/closing расходуются
// на вводную и заключительную части и не попадают в основную, чтобы
// не дублироваться. Для каталогов без семантических ролей назначение
// ответа определяется по ключевым словам в тексте вопроса.
func AssembleDraft(title string, answers []questionnaire.Answer) string {
	fields, remaining := extractFields(answers)

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")

	writeIntroduction(&b, fields)
	writeMainContent(&b, remaining)
	writeConclusion(&b, fields)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// extractFields разбирает ответы на служебные поля и оставшиеся пары
// для основной части. Порядок оставшихся пар сохраняется.
func extractFields(answers []questionnaire.Answer) (speakerFields, []questionnaire.Answer) {
	var fields speakerFields
	remaining := make([]questionnaire.Answer, 0, len(answers))

	for _, a := range answers {
		switch resolveRole(a.Question) {
		case questionnaire.RoleName:
			fields.name = a.Value
		case questionnaire.RoleSpeaker:
			fields.role = a.Value
		case questionnaire.RoleAudience:
			fields.audience = a.Value
		case questionnaire.RoleTone:
			fields.tone = a.Value
		case questionnaire.RoleClosing:
			fields.closing = a.Value
		case questionnaire.RoleDuration:
			// Длительность расходуется этапом расширения, в текст не попадает.
		default:
			remaining = append(remaining, a)
		}
	}
	return fields, remaining
}

// resolveRole возвращает семантическую роль вопроса. Для вопросов без
// роли (каталоги, импортированные без разметки) роль восстанавливается
// по подстрокам в тексте вопроса, без учета регистра.
func resolveRole(q questionnaire.Question) questionnaire.SemanticRole {
	if q.Role != "" && q.Role != questionnaire.RoleGeneric {
		return q.Role
	}
	if q.Role == questionnaire.RoleGeneric {
		return questionnaire.RoleGeneric
	}

	text := strings.ToLower(q.Text)
	switch {
	case strings.Contains(text, "your name"):
		return questionnaire.RoleName
	case strings.Contains(text, "your role"), strings.Contains(text, "relationship"):
		return questionnaire.RoleSpeaker
	case strings.Contains(text, "audience"), strings.Contains(text, "who will be"):
		return questionnaire.RoleAudience
	case strings.Contains(text, "tone"):
		return questionnaire.RoleTone
	case strings.Contains(text, "closing"), strings.Contains(text, "toast"), strings.Contains(text, "conclusion"):
		return questionnaire.RoleClosing
	case strings.Contains(text, "length"), strings.Contains(text, "duration"),
		strings.Contains(text, "how long"), strings.Contains(text, "time"):
		return questionnaire.RoleDuration
	}
	return questionnaire.RoleGeneric
}

func writeIntroduction(b *strings.Builder, f speakerFields) {
	b.WriteString(headingIntroduction + "\n\n")

	b.WriteString("Good evening, everyone.")
	if f.name != "" {
		b.WriteString(" For those who don't know me, my name is **" + f.name + "**.")
	}
	if f.role != "" {
		b.WriteString(" I have the honor of being the " + f.role + " today.")
	}
	if f.audience != "" {
		b.WriteString(" It means so much to see " + f.audience + " gathered here.")
	}

	if opening := toneOpening(f.tone); opening != "" {
		b.WriteString(" " + opening)
	}
	b.WriteString("\n\n")
}

// toneOpening выбирает вступительную фразу по ключевым словам в ответе
// о тоне. Неизвестный тон не добавляет ничего.
func toneOpening(tone string) string {
	t := strings.ToLower(tone)
	switch {
	case strings.Contains(t, "humor"):
		return "I promise to keep this short - mostly because I was told the bar closes eventually, and partly because public speaking and I have a complicated relationship."
	case strings.Contains(t, "formal"), strings.Contains(t, "respect"):
		return "I am deeply grateful for the opportunity to speak on this occasion."
	case strings.Contains(t, "warm"), strings.Contains(t, "heartfelt"):
		return "*My heart is full as I stand here, and I hope my words can carry even a fraction of what I feel.*"
	}
	return ""
}

func writeMainContent(b *strings.Builder, remaining []questionnaire.Answer) {
	b.WriteString(headingMainContent + "\n\n")

	if len(remaining) == 0 {
		b.WriteString("There is so much that could be said about this occasion.\n\n")
	}

	for _, a := range remaining {
		b.WriteString(mainContentSentence(a) + "\n\n")
	}
}

// mainContentSentence строит одно предложение основной части. Формулировка
// выбирается по ключевым словам в тексте вопроса; ответ включается дословно.
func mainContentSentence(a questionnaire.Answer) string {
	text := strings.ToLower(a.Question.Text)
	switch {
	case strings.Contains(text, "story"), strings.Contains(text, "memory"), strings.Contains(text, "experience"):
		return "I'd like to share a special memory: " + a.Value
	case strings.Contains(text, "qualities"), strings.Contains(text, "admire"), strings.Contains(text, "achievement"):
		return "What stands out most is: " + a.Value
	case strings.Contains(text, "message"), strings.Contains(text, "theme"), strings.Contains(text, "takeaway"):
		return "The main message I want to convey today is: " + a.Value
	}
	return fmt.Sprintf("Regarding %s: %s", deriveTheme(a.Question.Text), a.Value)
}

// fillerWords - служебные слова, отбрасываемые с начала текста вопроса
// при построении темы для формулировки "Regarding ...".
var fillerWords = map[string]struct{}{
	"what": {}, "is": {}, "are": {}, "the": {}, "your": {},
	"who": {}, "how": {}, "do": {}, "did": {}, "will": {},
	"was": {}, "please": {}, "there": {}, "a": {}, "an": {},
}

// deriveTheme превращает текст вопроса в короткую тему: убирает
// вопросительные знаки и ведущие служебные слова.
func deriveTheme(questionText string) string {
	text := strings.ReplaceAll(questionText, "?", "")
	text = strings.TrimSpace(text)

	words := strings.Fields(text)
	start := 0
	for start < len(words) {
		if _, filler := fillerWords[strings.ToLower(words[start])]; !filler {
			break
		}
		start++
	}
	if start >= len(words) {
		// Вопрос целиком из служебных слов - оставляем как есть.
		return strings.ToLower(text)
	}
	return strings.ToLower(strings.Join(words[start:], " "))
}

func writeConclusion(b *strings.Builder, f speakerFields) {
	b.WriteString(horizontalRule + "\n\n")
	b.WriteString(headingConclusion + "\n\n")
	if f.closing != "" {
		b.WriteString(f.closing + "\n")
	} else {
		b.WriteString(genericThankYou + "\n")
	}
}
