package questionnaire

import "fmt"

// InputKind определяет тип поля ввода для вопроса.
type InputKind string

const (
	KindText     InputKind = "text"     // Однострочный текст
	KindTextarea InputKind = "textarea" // Многострочный текст
	KindRadio    InputKind = "radio"    // Выбор одного варианта
)

// SemanticRole - семантическая роль ответа в итоговой речи.
// Роль назначается при составлении каталога, чтобы сборка речи
// не угадывала назначение ответа по подстрокам в тексте вопроса.
type SemanticRole string

const (
	RoleName     SemanticRole = "name"     // Имя выступающего
	RoleSpeaker  SemanticRole = "role"     // Роль выступающего (например, "Best Man")
	RoleAudience SemanticRole = "audience" // Описание аудитории
	RoleTone     SemanticRole = "tone"     // Желаемый тон речи
	RoleDuration SemanticRole = "duration" // Желаемая длительность
	RoleClosing  SemanticRole = "closing"  // Завершение / тост
	RoleGeneric  SemanticRole = "generic"  // Обычный ответ для основной части
)

// Condition - условие видимости вопроса: вопрос показывается только если
// на вопрос Question ранее дан ответ, в точности равный Answer
// (сравнение строк с учетом регистра).
type Condition struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Question описывает один вопрос каталога. Text уникален в пределах
// каталога и служит ключом ответа.
type Question struct {
	Text        string       `json:"text"`
	Kind        InputKind    `json:"kind"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Condition   *Condition   `json:"condition,omitempty"`
	Role        SemanticRole `json:"role"`
}

// Answer - пара вопрос/ответ. Используется как упорядоченный снимок
// видимых ответов при сборке речи.
type Answer struct {
	Question Question
	Value    string
}

// Catalog - именованная неизменяемая последовательность вопросов
// для одной категории речи.
type Catalog struct {
	Name      string
	Questions []Question
}

// newCatalog создает каталог и проверяет его инварианты:
// тексты вопросов уникальны, условия ссылаются только на более ранние
// вопросы того же каталога. Каталоги объявляются на этапе компиляции,
// поэтому нарушение инварианта - ошибка программиста и приводит к панике.
func newCatalog(name string, questions []Question) Catalog {
	seen := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.Text == "" {
			panic(fmt.Sprintf("catalog %q: question %d has empty text", name, i))
		}
		if _, dup := seen[q.Text]; dup {
			panic(fmt.Sprintf("catalog %q: duplicate question text %q", name, q.Text))
		}
		if q.Kind == KindRadio && len(q.Options) == 0 {
			panic(fmt.Sprintf("catalog %q: radio question %q has no options", name, q.Text))
		}
		if q.Condition != nil {
			refIdx, ok := seen[q.Condition.Question]
			if !ok || refIdx >= i {
				panic(fmt.Sprintf("catalog %q: question %q references unknown or later question %q",
					name, q.Text, q.Condition.Question))
			}
		}
		seen[q.Text] = i
	}
	return Catalog{Name: name, Questions: questions}
}
