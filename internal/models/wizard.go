package models

import "time"

// WizardStateTTL - срок жизни сохраненного состояния мастера.
// По истечении состояние не восстанавливается, даже если ключ еще жив в Redis.
const WizardStateTTL = 24 * time.Hour

// WizardState - полный снимок состояния мастера создания речи.
// Сохраняется после каждого изменения ответа и восстанавливается
// при повторном входе в мастер (если снимок не старше WizardStateTTL
// и пользователь продвинулся дальше первого шага).
type WizardState struct {
	Step     int               `json:"step"`
	Category string            `json:"category"`
	Answers  map[string]string `json:"answers"`
	Title    string            `json:"title"`
	Draft    string            `json:"draft"`
	SavedAt  time.Time         `json:"savedAt"`
}

// IsRecoverable сообщает, подлежит ли снимок восстановлению на момент now.
func (s *WizardState) IsRecoverable(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Step <= 1 {
		return false
	}
	return now.Sub(s.SavedAt) <= WizardStateTTL
}

// GenerationRequest - запрос на генерацию речи. Живет только на время
// генерации; сериализованная копия хранится в Redis для восстановления
// после сбоя и удаляется при успешном сохранении речи или сбросе мастера.
type GenerationRequest struct {
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Answers  map[string]string `json:"answers"`
}
