package team_handlers

import (
	"sort"
	"strings"

	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/Lovkumawat/Versal-Pulse/internal/handlers"
	internal_i18n "github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TeamHandler struct {
	validator *validator.Validate
	service   dashboard_case.DashboardServiceContract
	team      *store.TeamStore
	i18n      *internal_i18n.I18nService
}

func NewTeamHandler(service dashboard_case.DashboardServiceContract, team *store.TeamStore, i18n *internal_i18n.I18nService) *TeamHandler {
	validate := validator.New()
	validate.RegisterValidation("memberStatus", team_dto.IsValidMemberStatus)
	validate.RegisterValidation("taskPriority", team_dto.IsValidTaskPriority)
	validate.RegisterValidation("taskCategory", team_dto.IsValidTaskCategory)
	return &TeamHandler{
		validator: validate,
		service:   service,
		team:      team,
		i18n:      i18n,
	}
}

func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	members := h.team.Members()
	filter := h.team.StatusFilter()
	sortBy := h.team.SortBy()

	members = filterMembers(members, filter)
	sortMembers(members, sortBy)

	resp := &team_dto.MemberListResponse{
		Members:      members,
		StatusFilter: filter,
		SortBy:       sortBy,
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_members", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) GetMember(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	member, err := h.team.Member(memberID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_member", nil), &team_dto.MemberResponse{Member: member}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) UpdateMemberStatus(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	var req *team_dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Status = handlers.NormalizeStatusCase(req.Status)

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateMemberStatus(memberID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_status", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) AssignTask(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	var req *team_dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.AssignTask(memberID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_assign_task", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) UpdateProgress(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req *team_dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	resp, err := h.service.UpdateTaskProgress(memberID, taskID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_progress", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) StartTimeTracking(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.StartTimeTracking(memberID, taskID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_start_tracking", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) StopTimeTracking(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.StopTimeTracking(memberID, taskID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_stop_tracking", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) AddComment(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req *team_dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.AddTaskComment(memberID, taskID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_add_comment", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) UpdatePriority(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req *team_dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateTaskPriority(memberID, taskID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_priority", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) UpdateCategory(c *fiber.Ctx) error {
	memberID, err := handlers.GetParamMemberID(c, h.validator)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req *team_dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Category = strings.ToLower(strings.TrimSpace(req.Category))

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateTaskCategory(memberID, taskID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_category", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TeamHandler) UpdateView(c *fiber.Ctx) error {
	var req *team_dto.UpdateTeamViewRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if req.StatusFilter != nil {
		h.team.SetStatusFilter(*req.StatusFilter)
	}
	if req.SortBy != nil {
		h.team.SetSortBy(*req.SortBy)
	}

	resp := &team_dto.TeamViewResponse{
		StatusFilter: h.team.StatusFilter(),
		SortBy:       h.team.SortBy(),
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_view", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func filterMembers(members []*entity.MemberEntity, filter string) []*entity.MemberEntity {
	if filter == "" || strings.EqualFold(filter, "all") {
		return members
	}

	out := make([]*entity.MemberEntity, 0, len(members))
	for _, m := range members {
		if strings.EqualFold(string(m.Status), filter) {
			out = append(out, m)
		}
	}
	return out
}

func sortMembers(members []*entity.MemberEntity, sortBy string) {
	switch sortBy {
	case "status":
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Status < members[j].Status
		})
	case "tasks":
		sort.SliceStable(members, func(i, j int) bool {
			return len(members[i].Tasks) > len(members[j].Tasks)
		})
	case "progress":
		sort.SliceStable(members, func(i, j int) bool {
			return averageProgress(members[i]) > averageProgress(members[j])
		})
	default:
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Name < members[j].Name
		})
	}
}

func averageProgress(m *entity.MemberEntity) float64 {
	if len(m.Tasks) == 0 {
		return 0
	}
	total := 0
	for _, t := range m.Tasks {
		total += t.Progress
	}
	return float64(total) / float64(len(m.Tasks))
}
