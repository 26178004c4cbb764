package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
)

const (
	ScheduleToday    = "today"
	ScheduleUpcoming = "upcoming"
	ScheduleAll      = "all"

	upcomingDays      = 7
	scheduleListLimit = 200
)

// TaskService schedules cleaning and upkeep work. Cleaners only reach tasks assigned to them.
type TaskService struct {
	taskRepo        repositories.TaskRepositoryInterface
	propertyRepo    repositories.PropertyRepositoryInterface
	reservationRepo repositories.ReservationRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	auditService    AuditServiceInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewTaskService(
	taskRepo repositories.TaskRepositoryInterface,
	propertyRepo repositories.PropertyRepositoryInterface,
	reservationRepo repositories.ReservationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) TaskServiceInterface {
	return &TaskService{
		taskRepo:        taskRepo,
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		auditService:    auditService,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Create schedules a task. Without an explicit checklist the task type's default checklist is used.
func (s *TaskService) Create(ctx context.Context, caller models.Caller, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("property_id must be a valid UUID"))
	}

	scheduled, err := models.ParseDate(req.ScheduledDate)
	if err != nil {
		return nil, validationError(ErrValidation, err)
	}

	task := &models.Task{
		PropertyID:    propertyID,
		TaskType:      strings.TrimSpace(req.TaskType),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		ScheduledDate: scheduled,
		Priority:      req.Priority,
		Status:        models.TaskStatusTodo,
	}
	if task.Priority == 0 {
		task.Priority = models.TaskPriorityNormal
	}
	if req.Checklist != nil {
		task.Checklist = dto.ToChecklist(req.Checklist)
	} else {
		task.Checklist = models.DefaultChecklist(task.TaskType)
	}
	if caller.UserID != uuid.Nil {
		createdBy := caller.UserID
		task.CreatedBy = &createdBy
	}

	if err := task.Validate(); err != nil {
		return nil, validationError(ErrValidation, err)
	}

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	if task.UnitID, err = s.resolveUnit(ctx, propertyID, req.UnitID); err != nil {
		return nil, err
	}
	if task.ReservationID, err = s.resolveReservation(ctx, propertyID, req.ReservationID); err != nil {
		return nil, err
	}
	if task.AssignedTo, err = s.resolveCleaner(ctx, req.AssignedTo); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, storageError("create task", err)
	}

	snapshot := models.JSONBMap{
		"property_id":    propertyID.String(),
		"task_type":      task.TaskType,
		"title":          task.Title,
		"scheduled_date": task.ScheduledDate.Format(time.DateOnly),
	}
	if task.AssignedTo != nil {
		snapshot["assigned_to"] = task.AssignedTo.String()
	}
	if err := s.auditService.Record(ctx, caller, models.AuditActionCreate, models.AuditEntityTask, task.ID.String(), nil, snapshot); err != nil {
		s.logger.WarnContext(ctx, "failed to write task audit log", "task_id", task.ID, "error", err)
	}

	return task, nil
}

// List narrows filters to what caller may see.
func (s *TaskService) List(ctx context.Context, caller models.Caller, filters models.TaskFilters) ([]models.Task, int64, error) {
	switch {
	case caller.IsAdmin():
	case caller.IsOwner():
		ownerID := caller.UserID
		filters.OwnerID = &ownerID
	case caller.IsCleaner():
		cleanerID := caller.UserID
		filters.AssignedTo = &cleanerID
	default:
		return nil, 0, ErrForbidden
	}

	for _, status := range filters.Statuses {
		if !models.IsValidTaskStatus(status) {
			return nil, 0, validationError(ErrValidation, fmt.Errorf("invalid task status: %s", status))
		}
	}
	if filters.TaskType != "" && !models.IsValidTaskType(filters.TaskType) {
		return nil, 0, validationError(ErrValidation, fmt.Errorf("invalid task type: %s", filters.TaskType))
	}
	if filters.From != nil && filters.To != nil && !filters.From.Before(*filters.To) {
		return nil, 0, validationError(ErrValidation, errors.New("from must be before to"))
	}

	tasks, total, err := s.taskRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, storageError("list tasks", err)
	}
	return tasks, total, nil
}

// Schedule returns the calling cleaner's tasks for one of the ScheduleToday, ScheduleUpcoming or ScheduleAll windows.
func (s *TaskService) Schedule(ctx context.Context, caller models.Caller, window string) ([]models.Task, error) {
	if !caller.IsCleaner() {
		return nil, ErrForbidden
	}

	cleanerID := caller.UserID
	filters := models.TaskFilters{AssignedTo: &cleanerID, Limit: scheduleListLimit}

	today := models.DateOnly(s.now())
	switch window {
	case "", ScheduleToday:
		to := today.AddDate(0, 0, 1)
		filters.From, filters.To = &today, &to
	case ScheduleUpcoming:
		to := today.AddDate(0, 0, upcomingDays)
		filters.From, filters.To = &today, &to
	case ScheduleAll:
	default:
		return nil, validationError(ErrValidation, fmt.Errorf("window must be one of %s, %s or %s", ScheduleToday, ScheduleUpcoming, ScheduleAll))
	}

	tasks, _, err := s.taskRepo.List(ctx, filters)
	if err != nil {
		return nil, storageError("list cleaner schedule", err)
	}
	return tasks, nil
}

// Get returns a task. Tasks the caller may not see look missing.
func (s *TaskService) Get(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Task, error) {
	task, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeTaskRead(caller, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateProgress applies a status, checklist or notes change. Finishing a task stamps completed_at.
// Only admins may reopen a finished task.
func (s *TaskService) UpdateProgress(ctx context.Context, caller models.Caller, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if !caller.IsAdmin() && !caller.IsCleaner() {
		return nil, ErrForbidden
	}

	task, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.IsCleaner() && !task.IsAssignedTo(caller.UserID) {
		return nil, ErrTaskNotFound
	}

	before := models.JSONBMap{"status": task.Status, "checklist_done": task.Checklist.Completed()}
	now := s.now()

	if req.Status != nil && *req.Status != task.Status {
		next := *req.Status
		if !models.IsValidTaskStatus(next) {
			return nil, validationError(ErrValidation, fmt.Errorf("invalid task status: %s", next))
		}
		if task.Status == models.TaskStatusDone && !caller.IsAdmin() {
			return nil, fmt.Errorf("%w: a finished task can only be reopened by an admin", ErrTaskTransition)
		}

		task.Status = next
		if next == models.TaskStatusDone {
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}
	if req.Checklist != nil {
		task.Checklist = dto.ToChecklist(req.Checklist)
	}
	if req.Notes != nil {
		task.Notes = strings.TrimSpace(*req.Notes)
	}
	task.UpdatedAt = now

	if err := s.taskRepo.UpdateProgress(ctx, task); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageError("update task", err)
	}

	after := models.JSONBMap{"status": task.Status, "checklist_done": task.Checklist.Completed()}
	if err := s.auditService.Record(ctx, caller, models.AuditActionUpdate, models.AuditEntityTask, task.ID.String(), before, after); err != nil {
		s.logger.WarnContext(ctx, "failed to write task audit log", "task_id", task.ID, "error", err)
	}

	return task, nil
}

func (s *TaskService) load(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageError("load task", err)
	}
	return task, nil
}

func authorizeTaskRead(caller models.Caller, task *models.Task) error {
	switch {
	case caller.IsAdmin():
		return nil
	case caller.IsCleaner():
		if !task.IsAssignedTo(caller.UserID) {
			return ErrTaskNotFound
		}
		return nil
	case caller.IsOwner():
		if task.Property == nil || !task.Property.IsOwnedBy(caller.UserID) {
			return ErrTaskNotFound
		}
		return nil
	default:
		return ErrForbidden
	}
}

func (s *TaskService) resolveUnit(ctx context.Context, propertyID uuid.UUID, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	unitID, err := uuid.Parse(raw)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("unit_id must be a valid UUID"))
	}

	units, err := s.propertyRepo.ListUnits(ctx, propertyID)
	if err != nil {
		return nil, storageError("list property units", err)
	}
	for _, unit := range units {
		if unit.ID == unitID {
			return &unitID, nil
		}
	}
	return nil, ErrUnitNotFound
}

func (s *TaskService) resolveReservation(ctx context.Context, propertyID uuid.UUID, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	reservationID, err := uuid.Parse(raw)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("reservation_id must be a valid UUID"))
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repositories.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, storageError("load reservation", err)
	}
	if reservation.PropertyID != propertyID {
		return nil, validationError(ErrValidation, errors.New("reservation belongs to a different property"))
	}
	return &reservationID, nil
}

// resolveCleaner checks that raw names an existing user with the cleaner role.
func (s *TaskService) resolveCleaner(ctx context.Context, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	cleanerID, err := uuid.Parse(raw)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("assigned_to must be a valid UUID"))
	}

	user, err := s.userRepo.GetByID(ctx, cleanerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, validationError(ErrValidation, errors.New("assignee does not exist"))
		}
		return nil, storageError("load assignee", err)
	}
	if user.Role != models.RoleCleaner {
		return nil, validationError(ErrValidation, errors.New("assigned_to must reference a user with the cleaner role"))
	}
	return &cleanerID, nil
}
