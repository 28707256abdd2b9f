package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys событий жизненного цикла.
const (
	RoutingKeyUserRegistered  = "user.registered"
	RoutingKeySpeechGenerated = "speech.generated"
	RoutingKeySpeechSaved     = "speech.saved"
)

// UserRegisteredPayload - событие регистрации нового пользователя.
type UserRegisteredPayload struct {
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// SpeechGeneratedPayload - событие завершения генерации черновика.
// Remote=false означает, что сработал локальный сборщик.
type SpeechGeneratedPayload struct {
	UserID      uuid.UUID `json:"userId"`
	Category    string    `json:"category"`
	Remote      bool      `json:"remote"`
	WordCount   int       `json:"wordCount"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SpeechSavedPayload - событие сохранения готовой речи.
type SpeechSavedPayload struct {
	SpeechID uuid.UUID `json:"speechId"`
	UserID   uuid.UUID `json:"userId"`
	Category string    `json:"category"`
	SavedAt  time.Time `json:"savedAt"`
}
