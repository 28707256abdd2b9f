package models

// Коды ошибок для клиента. Код стабилен, сообщение может меняться.
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeWrongCredentials     = "WRONG_CREDENTIALS"
	ErrCodeDuplicateUser        = "DUPLICATE_USER"
	ErrCodeDuplicateEmail       = "DUPLICATE_EMAIL"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeSpeechNotFound       = "SPEECH_NOT_FOUND"
	ErrCodeTokenInvalid         = "TOKEN_INVALID"
	ErrCodeTokenExpired         = "TOKEN_EXPIRED"
	ErrCodeUserBanned           = "USER_BANNED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeQuotaExceeded        = "QUOTA_EXCEEDED"
	ErrCodeGenerationInProgress = "GENERATION_IN_PROGRESS"
	ErrCodeUnknownCategory      = "UNKNOWN_CATEGORY"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
