package questionnaire

// VisibleQuestions вычисляет упорядоченное подмножество вопросов,
// видимых при текущих ответах. Порядок результата всегда совпадает
// с порядком вопросов в каталоге. Функция детерминирована и
// идемпотентна: одинаковые входы дают одинаковый результат.
//
// Вопрос без условия видим всегда. Вопрос с условием видим только если
// сохраненный ответ на указанный вопрос в точности равен требуемому
// значению. Ответ на скрывшийся вопрос при этом не удаляется —
// он просто перестает участвовать в видимом наборе.
func VisibleQuestions(questions []Question, answers map[string]string) []Question {
	visible := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil {
			visible = append(visible, q)
			continue
		}
		if answers[q.Condition.Question] == q.Condition.Answer {
			visible = append(visible, q)
		}
	}
	return visible
}
