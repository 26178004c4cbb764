package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskTypeTurnoverClean = "turnover_clean"
	TaskTypeDeepClean     = "deep_clean"
	TaskTypeInspection    = "inspection"
	TaskTypeMaintenance   = "maintenance"

	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"

	TaskPriorityHigh   = 1
	TaskPriorityNormal = 2
	TaskPriorityLow    = 3
)

// Task is a unit of cleaning or upkeep work on a property, optionally assigned to a cleaner.
type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"property_id"`
	UnitID        *uuid.UUID `gorm:"type:uuid" json:"unit_id,omitempty"`
	ReservationID *uuid.UUID `gorm:"type:uuid" json:"reservation_id,omitempty"`
	AssignedTo    *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	TaskType      string     `gorm:"type:varchar(30);not null" json:"task_type"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	ScheduledDate time.Time  `gorm:"type:date;not null;index" json:"scheduled_date"`
	Priority      int        `gorm:"not null;default:2" json:"priority"`
	Status        string     `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Checklist     Checklist  `gorm:"type:text" json:"checklist"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee *User     `gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TaskStatusTodo
	}
	if t.Priority == 0 {
		t.Priority = TaskPriorityNormal
	}

	t.ScheduledDate = DateOnly(t.ScheduledDate)

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Task) Validate() error {
	if t.PropertyID == uuid.Nil {
		return errors.New("property is required")
	}
	if !IsValidTaskType(t.TaskType) {
		return fmt.Errorf("invalid task type: %s", t.TaskType)
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is required")
	}
	if t.ScheduledDate.IsZero() {
		return errors.New("scheduled date is required")
	}
	if t.Priority < TaskPriorityHigh || t.Priority > TaskPriorityLow {
		return fmt.Errorf("priority must be between %d and %d", TaskPriorityHigh, TaskPriorityLow)
	}
	if !IsValidTaskStatus(t.Status) {
		return fmt.Errorf("invalid task status: %s", t.Status)
	}
	return nil
}

func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

func (t *Task) IsOpen() bool {
	return t.Status != TaskStatusDone
}

func (t *Task) TableName() string {
	return "tasks"
}

func IsValidTaskType(taskType string) bool {
	switch taskType {
	case TaskTypeTurnoverClean, TaskTypeDeepClean, TaskTypeInspection, TaskTypeMaintenance:
		return true
	}
	return false
}

func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ChecklistItem is one step of a task checklist.
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Checklist is stored as a JSON array in a text column.
type Checklist []ChecklistItem

func (c Checklist) Value() (driver.Value, error) {
	if c == nil {
		c = Checklist{}
	}
	bytes, err := json.Marshal([]ChecklistItem(c))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (c *Checklist) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*c = Checklist{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Checklist", value)
	}

	if len(bytes) == 0 {
		*c = Checklist{}
		return nil
	}
	return json.Unmarshal(bytes, (*[]ChecklistItem)(c))
}

// Completed counts checked items.
func (c Checklist) Completed() int {
	n := 0
	for _, item := range c {
		if item.Checked {
			n++
		}
	}
	return n
}

var defaultChecklists = map[string][]string{
	TaskTypeTurnoverClean: {
		"Strip beds and start laundry",
		"Clean bathroom thoroughly",
		"Vacuum and mop all floors",
		"Wipe down kitchen surfaces",
		"Clean appliances (microwave, fridge)",
		"Empty all trash bins",
		"Restock amenities",
		"Make beds with fresh linens",
		"Final walkthrough and photos",
	},
	TaskTypeDeepClean: {
		"Move furniture and clean underneath",
		"Deep clean oven and stovetop",
		"Clean inside refrigerator",
		"Wash windows inside and out",
		"Clean air vents and filters",
		"Shampoo carpets or deep clean floors",
		"Descale bathroom fixtures",
		"Clean light fixtures and fans",
		"Wipe down walls and baseboards",
		"Clean behind appliances",
	},
	TaskTypeInspection: {
		"Check all appliances working",
		"Test smoke and CO detectors",
		"Inspect for any damage",
		"Check water pressure and drainage",
		"Test all lights and outlets",
		"Check locks and security",
		"Inventory amenities and supplies",
		"Document any issues with photos",
	},
	TaskTypeMaintenance: {
		"Assess the issue",
		"Document before photos",
		"Complete repair or maintenance",
		"Test that issue is resolved",
		"Document after photos",
		"Clean up work area",
	},
}

// DefaultChecklist returns a fresh unchecked checklist for taskType, empty for unknown types.
func DefaultChecklist(taskType string) Checklist {
	steps := defaultChecklists[taskType]
	out := make(Checklist, 0, len(steps))
	for i, text := range steps {
		out = append(out, ChecklistItem{ID: strconv.Itoa(i + 1), Text: text})
	}
	return out
}

// TaskFilters narrows task listings. From is inclusive and To exclusive on scheduled_date.
// OwnerID matches the property's current owner.
type TaskFilters struct {
	PropertyID *uuid.UUID
	AssignedTo *uuid.UUID
	OwnerID    *uuid.UUID
	Statuses   []string
	TaskType   string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
