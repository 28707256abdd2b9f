package models

import (
	"time"

	"github.com/google/uuid"
)

// Speech представляет сохраненную речь пользователя.
// Content хранится в легковесной разметке (см. пакет markup):
// строки "# " и "## " — заголовки, "**жирный**", "*курсив*", "---" — разделитель.
type Speech struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
