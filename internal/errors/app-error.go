package app_errors

import "github.com/gofiber/fiber/v2"

// AppError is the error currency of the whole core: recoverable domain errors
// are returned as values, never panicked, and the failing operation leaves
// state untouched.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // MEMBER_NOT_FOUND, TASK_NOT_FOUND, ...
	MessageKey string       // i18n key
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
}

const (
	ErrValidation      = "VALIDATION_ERROR"
	ErrInvalidBody     = "INVALID_BODY"
	ErrInvalidParam    = "INVALID_PARAM"
	ErrInvalidQuery    = "INVALID_QUERY"
	ErrMemberNotFound  = "MEMBER_NOT_FOUND"
	ErrTaskNotFound    = "TASK_NOT_FOUND"
	ErrNotifNotFound   = "NOTIFICATION_NOT_FOUND"
	ErrInvalidEnum     = "INVALID_ENUM_VALUE"
	ErrAlreadyTracking = "ALREADY_TRACKING"
	ErrNotTracking     = "NOT_TRACKING"
	ErrInvalidEstimate = "INVALID_ESTIMATE"
	ErrInternal        = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       fiber.StatusBadRequest,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

func MemberNotFound() *AppError {
	return NewAppError(fiber.StatusNotFound, ErrMemberNotFound, "errors.member_not_found", nil)
}

func TaskNotFound() *AppError {
	return NewAppError(fiber.StatusNotFound, ErrTaskNotFound, "errors.task_not_found", nil)
}

func InvalidEnumValue(field, value string) *AppError {
	return &AppError{
		Code:       fiber.StatusBadRequest,
		Type:       ErrInvalidEnum,
		MessageKey: "errors.invalid_enum_value",
		Details: []FieldError{{
			Field:      field,
			Reason:     "enum",
			MessageKey: "validation.invalid",
			Params:     map[string]any{"value": value},
		}},
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}
