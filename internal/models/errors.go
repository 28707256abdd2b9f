package models

import "errors"

// Стандартные ошибки приложения
var (
	// Общие ошибки ресурсов/БД
	ErrNotFound       = errors.New("resource not found") // Общая "не найдено"
	ErrSpeechNotFound = errors.New("speech not found")

	// Пользователи и аутентификация
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized") // Аутентификация требуется или не прошла
	ErrForbidden          = errors.New("forbidden")    // Аутентифицирован, но прав недостаточно
	ErrUserBanned         = errors.New("user is banned")

	// Токены
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenNotFound  = errors.New("token not found in storage")

	// Мастер создания речи и генерация
	ErrGenerationInProgress = errors.New("generation is already in progress for this session")
	ErrQuotaExceeded        = errors.New("generation quota for the current plan is exceeded")
	ErrNothingToRecover     = errors.New("no recoverable wizard state")
	ErrUnknownCategory      = errors.New("unknown speech category")

	// Подписки
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUnknownPlan          = errors.New("unknown subscription plan")

	// Общие ошибки запросов/сервера
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")

	// Валидация речи (проверяется синхронно, до любых побочных эффектов)
	ErrEmptyTitle   = errors.New("speech title cannot be empty")
	ErrEmptyContent = errors.New("speech content cannot be empty")
)
