package notification_handlers

import (
	"strings"

	notification_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/notification-dto"
	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/Lovkumawat/Versal-Pulse/internal/handlers"
	internal_i18n "github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	notification_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/notification-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	validator *validator.Validate
	service   notification_case.NotificationServiceContract
	i18n      *internal_i18n.I18nService
}

func NewNotificationHandler(service notification_case.NotificationServiceContract, i18n *internal_i18n.I18nService) *NotificationHandler {
	validate := validator.New()
	validate.RegisterValidation("notificationType", notification_dto.IsValidNotificationType)
	validate.RegisterValidation("taskPriority", team_dto.IsValidTaskPriority)
	return &NotificationHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	unreadOnly := c.QueryBool("unread_only")

	resp := h.service.List(unreadOnly)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_notifications", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) Add(c *fiber.Ctx) error {
	var req *notification_dto.AddNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.Add(req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_add_notification", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) Toasts(c *fiber.Ctx) error {
	resp := h.service.Toasts()

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_toasts", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	notificationID, err := handlers.GetParamNotificationID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.MarkRead(notificationID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_mark_read", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	resp := h.service.MarkAllRead()

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_mark_all_read", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) Remove(c *fiber.Ctx) error {
	notificationID, err := handlers.GetParamNotificationID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.Remove(notificationID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_remove_notification", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) RemoveToast(c *fiber.Ctx) error {
	toastID, err := handlers.GetParamToastID(c, h.validator)
	if err != nil {
		return err
	}

	resp := h.service.RemoveToast(toastID)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_remove_toast", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	resp := h.service.ClearAll()

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_clear_all", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) ClearOld(c *fiber.Ctx) error {
	resp := h.service.ClearOld()

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_clear_old", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) BulkMarkRead(c *fiber.Ctx) error {
	var req *notification_dto.BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp := h.service.BulkMarkRead(req)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_mark_read", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) BulkRemove(c *fiber.Ctx) error {
	var req *notification_dto.BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp := h.service.BulkRemove(req)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_remove_notification", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) GetSettings(c *fiber.Ctx) error {
	resp := h.service.Settings()

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_settings", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) UpdateSettings(c *fiber.Ctx) error {
	var req *notification_dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp := h.service.UpdateSettings(req)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_settings", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
