package analytics_handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	analytics_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/analytics-dto"
	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/Lovkumawat/Versal-Pulse/internal/handlers"
	internal_i18n "github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	validator *validator.Validate
	engine    *analytics.Engine
	dashboard dashboard_case.DashboardServiceContract
	i18n      *internal_i18n.I18nService
}

func NewAnalyticsHandler(engine *analytics.Engine, dashboard dashboard_case.DashboardServiceContract, i18n *internal_i18n.I18nService) *AnalyticsHandler {
	validate := validator.New()
	validate.RegisterValidation("taskPriority", team_dto.IsValidTaskPriority)
	validate.RegisterValidation("taskCategory", team_dto.IsValidTaskCategory)
	return &AnalyticsHandler{
		validator: validate,
		engine:    engine,
		dashboard: dashboard,
		i18n:      i18n,
	}
}

func (h *AnalyticsHandler) GetSnapshot(c *fiber.Ctx) error {
	snapshot, lastCalculated := h.engine.Snapshot()

	resp := &analytics_dto.SnapshotResponse{
		Snapshot:       snapshot,
		DateRange:      h.engine.DateRange(),
		Filters:        h.engine.Filters(),
		LastCalculated: lastCalculated,
	}

	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_analytics", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AnalyticsHandler) Refresh(c *fiber.Ctx) error {
	snapshot := h.engine.Recompute()

	resp := &analytics_dto.SnapshotResponse{
		Snapshot:  snapshot,
		DateRange: h.engine.DateRange(),
		Filters:   h.engine.Filters(),
	}
	_, resp.LastCalculated = h.engine.Snapshot()

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_refresh_analytics", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AnalyticsHandler) SetDateRange(c *fiber.Ctx) error {
	var req *analytics_dto.SetDateRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	rng := h.engine.SetDateRange(req.Start, req.End)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_set_date_range", nil), rng, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AnalyticsHandler) SetPreset(c *fiber.Ctx) error {
	var req *analytics_dto.SetPresetRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	rng, ok := h.engine.SetPreset(req.Preset)
	if !ok {
		return app_errors.InvalidEnumValue("preset", req.Preset)
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_set_preset", nil), rng, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AnalyticsHandler) UpdateFilters(c *fiber.Ctx) error {
	var req *analytics_dto.UpdateFiltersRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.SelectedCategories != nil {
		for i, cat := range *req.SelectedCategories {
			(*req.SelectedCategories)[i] = strings.ToLower(strings.TrimSpace(cat))
		}
	}
	if req.SelectedPriorities != nil {
		for i, p := range *req.SelectedPriorities {
			(*req.SelectedPriorities)[i] = strings.ToLower(strings.TrimSpace(p))
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	filters := h.engine.Filters()
	if req.SelectedMembers != nil {
		filters.SelectedMembers = *req.SelectedMembers
	}
	if req.SelectedCategories != nil {
		filters.SelectedCategories = make([]entity.TaskCategory, 0, len(*req.SelectedCategories))
		for _, cat := range *req.SelectedCategories {
			filters.SelectedCategories = append(filters.SelectedCategories, entity.TaskCategory(cat))
		}
	}
	if req.SelectedPriorities != nil {
		filters.SelectedPriorities = make([]entity.TaskPriority, 0, len(*req.SelectedPriorities))
		for _, p := range *req.SelectedPriorities {
			filters.SelectedPriorities = append(filters.SelectedPriorities, entity.TaskPriority(p))
		}
	}
	if req.IncludeCompleted != nil {
		filters.IncludeCompleted = *req.IncludeCompleted
	}
	if req.IncludeInProgress != nil {
		filters.IncludeInProgress = *req.IncludeInProgress
	}
	if req.IncludeNotStarted != nil {
		filters.IncludeNotStarted = *req.IncludeNotStarted
	}
	h.engine.SetFilters(filters)

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_filters", nil), filters, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AnalyticsHandler) UpdateViewSettings(c *fiber.Ctx) error {
	var req *analytics_dto.UpdateViewSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	view := h.engine.UpdateViewSettings(func(view *entity.ViewSettings) {
		if req.ChartType != nil {
			view.ChartType = *req.ChartType
		}
		if req.ShowComparisons != nil {
			view.ShowComparisons = *req.ShowComparisons
		}
		if req.ShowTrends != nil {
			view.ShowTrends = *req.ShowTrends
		}
		if req.RefreshIntervalMs != nil {
			view.RefreshInterval = time.Duration(*req.RefreshIntervalMs) * time.Millisecond
		}
		if req.ExportFormat != nil {
			view.ExportFormat = *req.ExportFormat
		}
	})

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_view", nil), view, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AnalyticsHandler) GetCharts(c *fiber.Ctx) error {
	resp := &analytics_dto.ChartsResponse{Charts: h.engine.Charts()}

	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_charts", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

// Export streams the generated report as a file attachment rather than the
// usual JSON envelope.
func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	var req *analytics_dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Format = strings.ToLower(strings.TrimSpace(req.Format))

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	filename, data, err := h.dashboard.ExportAnalytics(req)
	if err != nil {
		return err
	}

	contentType := fiber.MIMEApplicationJSONCharsetUTF8
	if req.Format == "csv" {
		contentType = "text/csv; charset=utf-8"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(fiber.StatusOK).Send(data)
}
