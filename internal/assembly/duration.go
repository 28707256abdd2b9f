package assembly

import (
	"regexp"
	"strconv"
	"strings"

	"speechcraft-server/internal/questionnaire"
)

// wordsPerMinute - фиксированный темп речи для оценки длительности.
const wordsPerMinute = 130.0

// DefaultTargetMinutes - целевая длительность, когда пользователь
// не указал ничего разборчивого.
const DefaultTargetMinutes = 5

// longFormThresholdMinutes - граница, после которой применяется
// длинная стратегия расширения с повествовательными блоками.
const longFormThresholdMinutes = 30

// EstimateMinutes оценивает длительность произнесения текста в минутах.
func EstimateMinutes(text string) float64 {
	words := len(strings.Fields(text))
	return float64(words) / wordsPerMinute
}

var numberPattern = regexp.MustCompile(`\d+`)

// DurationAnswer находит среди ответов ответ о желаемой длительности.
// Сначала по семантической роли, затем по подстрокам в тексте вопроса
// для каталогов без разметки ролей.
func DurationAnswer(answers []questionnaire.Answer) (string, bool) {
	for _, a := range answers {
		if a.Question.Role == questionnaire.RoleDuration {
			return a.Value, true
		}
	}
	for _, a := range answers {
		text := strings.ToLower(a.Question.Text)
		if strings.Contains(text, "length") || strings.Contains(text, "duration") ||
			strings.Contains(text, "time") || strings.Contains(text, "how long") {
			return a.Value, true
		}
	}
	return "", false
}

// ParseMinutes разбирает свободный текст о желаемой длительности
// и возвращает целевое количество минут.
//
// Явные единицы: "X hour"/"X hr" умножается на 60, "X minute"/"X min"
// берется как есть. Голое число: >= 60 трактуется как минуты; <= 3 без
// подстроки "min" - как часы (умножается на 60); остальное - минуты.
// Если ничего не распознано, возвращается DefaultTargetMinutes.
func ParseMinutes(input string) int {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return DefaultTargetMinutes
	}

	match := numberPattern.FindString(text)
	if match == "" {
		return DefaultTargetMinutes
	}
	n, err := strconv.Atoi(match)
	if err != nil || n <= 0 {
		return DefaultTargetMinutes
	}

	switch {
	case strings.Contains(text, "hour"), strings.Contains(text, "hr"):
		return n * 60
	case strings.Contains(text, "min"):
		return n
	case n >= 60:
		return n
	case n <= 3:
		// Голое маленькое число без "min" почти наверняка означает часы.
		return n * 60
	default:
		return n
	}
}

// Повествовательные блоки длинной стратегии. Порядок фиксирован,
// содержимое не зависит от входа - расширение детерминировано.
var longFormBlocks = []string{
	"Let me take a moment to set the scene. Picture where we all were not so long ago, and how far the road has carried us since then. Every step of that journey, the planned ones and the surprises alike, brought us to this room and to this moment. When I look around today, I see the faces of people who were part of that journey, and I am reminded that occasions like this one do not simply happen - they are built, day by day, by the people in this room.",
	"To give you a better sense of what I mean, consider the small moments - the ones that never make it into photo albums. An early morning conversation over coffee. A favor done without being asked. A laugh shared at exactly the right time. Those small moments, taken together, say more than any grand gesture ever could, and they are the true measure of what we are celebrating today.",
	"There is a thought I keep returning to: the things that matter most in life are rarely the things we planned. We set out with maps and schedules, and life quietly redraws the route. And yet, looking back, it is hard to imagine wishing for any other path. Perhaps that is the real lesson of days like today - not that everything went according to plan, but that what actually happened turned out to be better than the plan.",
	"I would invite each of you to take a moment and think of your own connection to this occasion. Everyone here carries their own version of this story - a first meeting, a shared chapter, a memory that surfaces every time this day comes to mind. Hold onto that memory for a moment. It is the reason we are all here together.",
}

// longFormWrapUp добавляется только для очень длинных выступлений (от 45 минут).
const longFormWrapUp = "Before I move to my closing words, let me draw the threads together. We have remembered where this story began, we have honored the moments that shaped it, and we have looked ahead to what comes next. If there is one thing I hope you carry out of this room, it is the feeling in it right now."

// Вставки короткой стратегии. Анкеты из нескольких ответов дают черновик
// меньше минуты, поэтому вставки должны нести заметный объем сами по себе.
const (
	shortIntroElaboration   = "Standing here, I am reminded of just how much this day means to everyone present, and of how rarely we pause in the rush of ordinary weeks to tell the people around us what they actually mean to us - so let me take that pause now."
	shortContentElaboration = "I could talk about this for hours and still not do it justice, because some things are better felt than explained - and if you have ever tried to put a moment like this into words, you know exactly how quickly the words run out."
	shortTransition         = "Before I finish, there is one more thing that needs to be said, and I want to say it plainly, without ceremony, while everyone I mean it for is still in the room."
)

// Добивочные абзацы короткой стратегии. Вставляются перед заключением
// по одному, в фиксированном порядке, пока речь заметно короче цели.
var shortExtraParagraphs = []string{
	"Moments like this one have a way of passing too quickly. We plan them for months, and then they are over in what feels like a heartbeat, surviving only in photographs and in the stories we retell. So let us not rush - let us hold onto this one a little longer, and remember the people who made it possible.",
	"There is something else worth saying out loud. Days like today do not happen on their own - they are carried by quiet effort, by people who gave their time and asked for nothing in return. To everyone who had a hand in bringing us together here, thank you. You know who you are, even if you would never say so yourselves.",
	"And when this day is over, when the chairs are stacked and the last goodbyes are said, I hope a piece of it stays with each of us. Not the schedule or the speeches, but the feeling - the simple, rare feeling of being exactly where we are supposed to be, with exactly the right people.",
	"One more thought before I step aside. Gratitude is easy to feel and surprisingly hard to express, so consider this my attempt: to all of you, for being here, for everything you have done, and for everything you are - thank you, from the bottom of my heart.",
}

// Expand расширяет черновик до целевой длительности, только вставляя
// текст - существующее содержимое никогда не удаляется и не меняется.
// Для одинаковых входов результат одинаков.
//
// Точки вставки привязаны к маркерам заголовков из сборки. Если черновик
// пришел из удаленного генератора и нужного маркера в нем нет,
// соответствующая вставка просто пропускается.
func Expand(draft string, targetMinutes int) string {
	if targetMinutes <= 0 {
		targetMinutes = DefaultTargetMinutes
	}
	if targetMinutes >= longFormThresholdMinutes {
		return expandLongForm(draft, targetMinutes)
	}
	return expandShortForm(draft, targetMinutes)
}

// expandShortForm вставляет по одному предложению после введения и первого
// блока основной части, переход перед заключением и, пока речь все еще
// короче цели более чем на полминуты, добивочные абзацы перед заголовком
// заключения, по одному из фиксированного списка.
func expandShortForm(draft string, targetMinutes int) string {
	lines := strings.Split(draft, "\n")

	// После секции Introduction
	if idx := sectionEnd(lines, headingIntroduction); idx >= 0 {
		lines = insertParagraph(lines, idx, shortIntroElaboration)
	}

	// После первого абзаца Main Content
	if idx := firstParagraphEnd(lines, headingMainContent); idx >= 0 {
		lines = insertParagraph(lines, idx, shortContentElaboration)
	}

	// Переход перед заключением
	if idx := lineIndex(lines, headingConclusion); idx >= 0 {
		lines = insertParagraph(lines, idx, shortTransition)
	}

	result := strings.Join(lines, "\n")

	// Каждый абзац вставляется перед заголовком заключения, то есть
	// после предыдущего добивочного - порядок списка сохраняется.
	for _, paragraph := range shortExtraParagraphs {
		if float64(targetMinutes)-EstimateMinutes(result) <= 0.5 {
			break
		}
		idx := lineIndex(lines, headingConclusion)
		if idx < 0 {
			break
		}
		lines = insertParagraph(lines, idx, paragraph)
		result = strings.Join(lines, "\n")
	}
	return result
}

// expandLongForm расставляет фиксированные повествовательные блоки по
// пропорциональным позициям списка секций, останавливаясь, как только
// текущий объем достигает 80% целевого количества слов.
func expandLongForm(draft string, targetMinutes int) string {
	blocks := longFormBlocks
	if targetMinutes >= 45 {
		blocks = append(append([]string{}, longFormBlocks...), longFormWrapUp)
	}
	targetWords := float64(targetMinutes) * wordsPerMinute

	result := draft
	for i, block := range blocks {
		if float64(len(strings.Fields(result)))/targetWords >= 0.8 {
			break
		}
		lines := strings.Split(result, "\n")
		anchors := sectionEnds(lines)
		if len(anchors) == 0 {
			// Черновик без известных заголовков - вставлять некуда.
			break
		}
		// Пропорциональная позиция блока в списке секций.
		anchor := anchors[i*len(anchors)/len(blocks)]
		lines = insertParagraph(lines, anchor, block)
		result = strings.Join(lines, "\n")
	}
	return result
}

// lineIndex возвращает индекс первой строки, равной marker, или -1.
func lineIndex(lines []string, marker string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			return i
		}
	}
	return -1
}

// sectionEnd возвращает индекс строки, на которой заканчивается секция
// с указанным заголовком (строка следующего заголовка или разделителя,
// либо конец текста), или -1, если заголовка нет.
func sectionEnd(lines []string, heading string) int {
	start := lineIndex(lines, heading)
	if start < 0 {
		return -1
	}
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "## ") || trimmed == horizontalRule {
			return i
		}
	}
	return len(lines)
}

// firstParagraphEnd возвращает индекс строки после первого непустого
// абзаца секции с указанным заголовком, или -1.
func firstParagraphEnd(lines []string, heading string) int {
	start := lineIndex(lines, heading)
	if start < 0 {
		return -1
	}
	seenContent := false
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "## ") || trimmed == horizontalRule {
			return i
		}
		if trimmed != "" {
			seenContent = true
			continue
		}
		if seenContent {
			return i
		}
	}
	if seenContent {
		return len(lines)
	}
	return -1
}

// sectionEnds возвращает точки вставки после каждой секции "## ...".
func sectionEnds(lines []string) []int {
	ends := make([]int, 0, 4)
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "## ") {
			if end := sectionEndFrom(lines, i); end >= 0 {
				ends = append(ends, end)
			}
		}
	}
	return ends
}

func sectionEndFrom(lines []string, start int) int {
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "## ") || trimmed == horizontalRule {
			return i
		}
	}
	return len(lines)
}

// insertParagraph вставляет абзац (с пустой строкой до и после) перед
// строкой с индексом idx. Возвращает новый слайс строк.
func insertParagraph(lines []string, idx int, paragraph string) []string {
	if idx < 0 || idx > len(lines) {
		return lines
	}
	inserted := []string{"", paragraph, ""}
	out := make([]string, 0, len(lines)+len(inserted))
	out = append(out, lines[:idx]...)
	out = append(out, inserted...)
	out = append(out, lines[idx:]...)
	return out
}
