// Package markup отвечает за легковесную разметку черновиков речей.
//
// Контракт разметки фиксирован и состоит ровно из пяти конструкций:
// строка "# " - заголовок верхнего уровня, "## " - заголовок секции,
// "**текст**" - жирный, "*текст*" - курсив, строка "---" -
// горизонтальный разделитель. Ничего другого рендерер не интерпретирует.
package markup

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
)

// RenderHTML преобразует разметку черновика в HTML для предпросмотра
// и экспорта. Текст экранируется до подстановки тегов, поэтому
// пользовательское содержимое не может внедрить собственную разметку.
func RenderHTML(text string) string {
	var b strings.Builder
	lines := strings.Split(text, "\n")

	paragraphOpen := false
	closeParagraph := func() {
		if paragraphOpen {
			b.WriteString("</p>\n")
			paragraphOpen = false
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			closeParagraph()
		case trimmed == "---":
			closeParagraph()
			b.WriteString("<hr>\n")
		case strings.HasPrefix(trimmed, "## "):
			closeParagraph()
			b.WriteString("<h2>" + renderInline(strings.TrimPrefix(trimmed, "## ")) + "</h2>\n")
		case strings.HasPrefix(trimmed, "# "):
			closeParagraph()
			b.WriteString("<h1>" + renderInline(strings.TrimPrefix(trimmed, "# ")) + "</h1>\n")
		default:
			if !paragraphOpen {
				b.WriteString("<p>")
				paragraphOpen = true
			} else {
				b.WriteString(" ")
			}
			b.WriteString(renderInline(trimmed))
		}
	}
	closeParagraph()

	return b.String()
}

// renderInline обрабатывает строчные конструкции: сначала жирный,
// затем курсив, чтобы "**текст**" не распался на два курсива.
func renderInline(text string) string {
	escaped := html.EscapeString(text)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = italicPattern.ReplaceAllString(escaped, "<em>$1</em>")
	return escaped
}
