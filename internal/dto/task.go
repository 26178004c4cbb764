package dto

import (
	"strconv"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
)

// Task Request DTOs

type ChecklistItemRequest struct {
	ID      string `json:"id" validate:"max=20"`
	Text    string `json:"text" validate:"required,max=255"`
	Checked bool   `json:"checked"`
}

type CreateTaskRequest struct {
	PropertyID    string                 `json:"property_id" validate:"required,uuid"`
	UnitID        string                 `json:"unit_id" validate:"omitempty,uuid"`
	ReservationID string                 `json:"reservation_id" validate:"omitempty,uuid"`
	AssignedTo    string                 `json:"assigned_to" validate:"omitempty,uuid"`
	TaskType      string                 `json:"task_type" validate:"required,oneof=turnover_clean deep_clean inspection maintenance"`
	Title         string                 `json:"title" validate:"required,max=255"`
	Description   string                 `json:"description" validate:"max=2000"`
	ScheduledDate string                 `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Priority      int                    `json:"priority" validate:"omitempty,min=1,max=3"`
	Checklist     []ChecklistItemRequest `json:"checklist" validate:"omitempty,max=50,dive"`
}

// UpdateTaskRequest changes a task's progress. Omitted fields are left as they are.
type UpdateTaskRequest struct {
	Status    *string                `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Checklist []ChecklistItemRequest `json:"checklist" validate:"omitempty,max=50,dive"`
	Notes     *string                `json:"notes" validate:"omitempty,max=2000"`
}

// Task Response DTOs

type TaskResponse struct {
	ID              string                 `json:"id"`
	PropertyID      string                 `json:"property_id"`
	PropertyName    string                 `json:"property_name,omitempty"`
	PropertyAddress string                 `json:"property_address,omitempty"`
	UnitID          *string                `json:"unit_id,omitempty"`
	ReservationID   *string                `json:"reservation_id,omitempty"`
	AssignedTo      *string                `json:"assigned_to,omitempty"`
	TaskType        string                 `json:"task_type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	ScheduledDate   string                 `json:"scheduled_date"`
	Priority        int                    `json:"priority"`
	Status          string                 `json:"status"`
	Checklist       []models.ChecklistItem `json:"checklist"`
	ChecklistDone   int                    `json:"checklist_done"`
	Notes           string                 `json:"notes,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination PaginationMeta `json:"pagination"`
}

func NewTaskResponse(t *models.Task) TaskResponse {
	checklist := []models.ChecklistItem(t.Checklist)
	if checklist == nil {
		checklist = []models.ChecklistItem{}
	}

	resp := TaskResponse{
		ID:            t.ID.String(),
		PropertyID:    t.PropertyID.String(),
		UnitID:        optionalID(t.UnitID),
		ReservationID: optionalID(t.ReservationID),
		AssignedTo:    optionalID(t.AssignedTo),
		TaskType:      t.TaskType,
		Title:         t.Title,
		Description:   t.Description,
		ScheduledDate: t.ScheduledDate.Format(time.DateOnly),
		Priority:      t.Priority,
		Status:        t.Status,
		Checklist:     checklist,
		ChecklistDone: t.Checklist.Completed(),
		Notes:         t.Notes,
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
	}
	if t.Property != nil {
		resp.PropertyName = t.Property.Name
		resp.PropertyAddress = t.Property.AddressLine()
	}
	return resp
}

func NewTaskListResponse(tasks []models.Task, offset, limit int, total int64) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return TaskListResponse{
		Tasks:      out,
		Pagination: PaginationMeta{Offset: offset, Limit: limit, Total: total},
	}
}

// ToChecklist converts request items, numbering items that arrive without an id.
func ToChecklist(items []ChecklistItemRequest) models.Checklist {
	out := make(models.Checklist, 0, len(items))
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		out = append(out, models.ChecklistItem{ID: id, Text: item.Text, Checked: item.Checked})
	}
	return out
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
