package questionnaire

// Session - состояние прохождения опросника одним пользователем.
// Сессия живет в памяти на время обработки запроса; долговременное
// хранение обеспечивает снимок WizardState в Redis.
//
// Видимый набор вопросов пересчитывается после каждого изменения
// ответа, поэтому индекс текущего вопроса может оказаться за границей
// сократившегося набора - он всегда приводится обратно в диапазон.
type Session struct {
	catalog Catalog
	answers map[string]string
	index   int
}

// NewSession создает пустую сессию для категории речи.
func NewSession(category string) *Session {
	return &Session{
		catalog: CatalogFor(category),
		answers: make(map[string]string),
	}
}

// RestoreSession восстанавливает сессию из сохраненных ответов и позиции.
func RestoreSession(category string, answers map[string]string, index int) *Session {
	s := NewSession(category)
	for k, v := range answers {
		s.answers[k] = v
	}
	s.index = index
	s.clamp()
	return s
}

// Category возвращает имя каталога сессии.
func (s *Session) Category() string {
	return s.catalog.Name
}

// Visible возвращает текущий видимый набор вопросов в порядке каталога.
func (s *Session) Visible() []Question {
	return VisibleQuestions(s.catalog.Questions, s.answers)
}

// Index возвращает индекс текущего вопроса в видимом наборе.
func (s *Session) Index() int {
	s.clamp()
	return s.index
}

// Current возвращает текущий видимый вопрос.
// ok=false только для пустого видимого набора.
func (s *Session) Current() (Question, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return Question{}, false
	}
	s.clamp()
	return visible[s.index], true
}

// SetAnswer сохраняет ответ на вопрос. Ключом служит текст вопроса.
func (s *Session) SetAnswer(questionText, value string) {
	s.answers[questionText] = value
	s.clamp()
}

// AnswerFor возвращает сохраненный ответ на вопрос (пустая строка, если ответа нет).
func (s *Session) AnswerFor(questionText string) string {
	return s.answers[questionText]
}

// Answers возвращает копию всех сохраненных ответов,
// включая ответы на скрытые в данный момент вопросы.
func (s *Session) Answers() map[string]string {
	out := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Advance переходит к следующему видимому вопросу.
// На последнем вопросе возвращает completed=true вместо выхода за границу.
func (s *Session) Advance() (completed bool) {
	visible := s.Visible()
	s.clamp()
	if s.index >= len(visible)-1 {
		return true
	}
	s.index++
	return false
}

// Retreat переходит к предыдущему видимому вопросу.
// На первом вопросе возвращает exited=true: управление возвращается
// вызывающему (например, для перехода к предыдущему шагу мастера).
func (s *Session) Retreat() (exited bool) {
	s.clamp()
	if s.index <= 0 {
		return true
	}
	s.index--
	return false
}

// VisibleAnswers возвращает упорядоченный снимок пар вопрос/ответ
// для всех видимых вопросов с непустыми ответами. Ответы скрытых
// вопросов остаются в хранилище, но в снимок не попадают - именно
// этот снимок идет на сборку речи.
func (s *Session) VisibleAnswers() []Answer {
	visible := s.Visible()
	out := make([]Answer, 0, len(visible))
	for _, q := range visible {
		value, ok := s.answers[q.Text]
		if !ok || value == "" {
			continue
		}
		out = append(out, Answer{Question: q, Value: value})
	}
	return out
}

// clamp приводит индекс в диапазон видимого набора: при сокращении
// набора индекс прижимается к последнему валидному, не к ошибке.
func (s *Session) clamp() {
	visible := VisibleQuestions(s.catalog.Questions, s.answers)
	if len(visible) == 0 {
		s.index = 0
		return
	}
	if s.index < 0 {
		s.index = 0
	}
	if s.index > len(visible)-1 {
		s.index = len(visible) - 1
	}
}
