package handlers

import (
	"net/http"
	"strings"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/models"
	"rental-ops/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TaskHandler handles cleaning task endpoints
type TaskHandler struct {
	taskService services.TaskServiceInterface
}

func NewTaskHandler(taskService services.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns tasks visible to the caller
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param task_type query string false "Task type"
// @Param property_id query string false "Property ID"
// @Param assigned_to query string false "Cleaner ID"
// @Param from query string false "Scheduled on or after (YYYY-MM-DD)"
// @Param to query string false "Scheduled before (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=dto.TaskListResponse}
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters := models.TaskFilters{TaskType: strings.TrimSpace(c.QueryParam("task_type"))}
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				filters.Statuses = append(filters.Statuses, status)
			}
		}
	}
	if filters.PropertyID, err = parseUUIDQuery(c, "property_id"); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	if filters.AssignedTo, err = parseUUIDQuery(c, "assigned_to"); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	if filters.From, err = parseDateQuery(c, "from"); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if filters.To, err = parseDateQuery(c, "to"); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	filters.Offset, filters.Limit = pageParams(c)

	tasks, total, err := h.taskService.List(c.Request().Context(), caller, filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewTaskListResponse(tasks, filters.Offset, filters.Limit, total))
}

// CreateTask schedules a task on a property
// @Summary Create a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} SuccessResponse{data=dto.TaskResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	task, err := h.taskService.Create(c.Request().Context(), caller, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.NewTaskResponse(task))
}

// MySchedule returns the calling cleaner's tasks
// @Summary Cleaner schedule
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param window query string false "today (default), upcoming or all"
// @Success 200 {object} SuccessResponse{data=[]dto.TaskResponse}
// @Router /cleaner/tasks [get]
func (h *TaskHandler) MySchedule(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	tasks, err := h.taskService.Schedule(c.Request().Context(), caller, strings.TrimSpace(c.QueryParam("window")))
	if err != nil {
		return handleServiceError(c, err)
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.NewTaskResponse(&tasks[i]))
	}
	return SendSuccess(c, http.StatusOK, out)
}

// GetTask returns a single task
// @Summary Get a task
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} SuccessResponse{data=dto.TaskResponse}
// @Failure 404 {object} errors.ErrorResponse "TASK_001"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TaskInvalidID)
	}

	task, err := h.taskService.Get(c.Request().Context(), caller, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewTaskResponse(task))
}

// UpdateTask records progress on a task
// @Summary Update task progress
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Progress"
// @Success 200 {object} SuccessResponse{data=dto.TaskResponse}
// @Failure 400 {object} errors.ErrorResponse "TASK_003"
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TaskInvalidID)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	task, err := h.taskService.UpdateProgress(c.Request().Context(), caller, id, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewTaskResponse(task))
}
