package handler

import "regexp"

// --- Константы для валидации ---
const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 8
	maxPasswordLength = 100
)

// Регулярное выражение для проверки допустимых символов в имени пользователя
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// --- Auth ---

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type meResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles,omitempty"`
	IsBanned    bool     `json:"isBanned"`
}

// --- Wizard ---

type visibleQuestionsRequest struct {
	Category string            `json:"category" binding:"required"`
	Answers  map[string]string `json:"answers"`
}

type questionResponse struct {
	Text        string   `json:"text"`
	Kind        string   `json:"kind"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type wizardStateRequest struct {
	Step     int               `json:"step" binding:"required,min=1"`
	Category string            `json:"category" binding:"required"`
	Answers  map[string]string `json:"answers"`
	Title    string            `json:"title"`
	Draft    string            `json:"draft"`
}

type generateRequest struct {
	Title    string            `json:"title" binding:"required"`
	Category string            `json:"category" binding:"required"`
	Answers  map[string]string `json:"answers"`
}

type draftResponse struct {
	Draft string `json:"draft"`
}

// --- Speeches ---

type saveSpeechRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type updateSpeechRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// --- Admin ---

type changePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}
