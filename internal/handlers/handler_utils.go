package handlers

import (
	"strings"
	"unicode"

	"github.com/Lovkumawat/Versal-Pulse/internal/dtos"
	notification_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/notification-dto"
	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse builds the standardized WebResponse envelope.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetParamMemberID(c *fiber.Ctx, v *validator.Validate) (int, *app_errors.AppError) {
	var param team_dto.ParamMemberID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamTaskID(c *fiber.Ctx, v *validator.Validate) (int, *app_errors.AppError) {
	var param team_dto.ParamTaskID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamNotificationID(c *fiber.Ctx, v *validator.Validate) (int, *app_errors.AppError) {
	var param notification_dto.ParamNotificationID
	if err := c.ParamsParser(&param); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return 0, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

// NormalizeStatusCase folds user input like "working" or "WORKING" into the
// canonical Title_Case form of the status enum.
func NormalizeStatusCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")

	words := strings.Split(s, "_")
	for i, word := range words {
		if len(word) > 0 {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}

	return strings.Join(words, "_")
}

func GetParamToastID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param notification_dto.ParamToastID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}
