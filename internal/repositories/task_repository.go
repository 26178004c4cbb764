package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// taskStatusOrder puts work in progress first, then open work, then finished tasks.
const taskStatusOrder = "CASE status WHEN 'in_progress' THEN 0 WHEN 'todo' THEN 1 ELSE 2 END"

// TaskRepository handles database operations for cleaning and upkeep tasks
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepositoryInterface {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Property", "Assignee").Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Preload("Property").Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filters models.TaskFilters) ([]models.Task, int64, error) {
	offset, limit := normalizePagination(filters.Offset, filters.Limit)

	var tasks []models.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Task{})
	if filters.PropertyID != nil {
		query = query.Where("property_id = ?", *filters.PropertyID)
	}
	if filters.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filters.AssignedTo)
	}
	if filters.OwnerID != nil {
		query = query.Where("property_id IN (SELECT id FROM properties WHERE owner_id = ?)", *filters.OwnerID)
	}
	if len(filters.Statuses) > 0 {
		query = query.Where("status IN ?", filters.Statuses)
	}
	if filters.TaskType != "" {
		query = query.Where("task_type = ?", filters.TaskType)
	}
	if filters.From != nil {
		query = query.Where("scheduled_date >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("scheduled_date < ?", *filters.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	err := query.Preload("Property").
		Order(taskStatusOrder).
		Order("scheduled_date ASC, priority ASC, created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// UpdateProgress writes the fields a cleaner may change: status, checklist, notes and completion time.
func (r *TaskRepository) UpdateProgress(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"status":       task.Status,
			"checklist":    task.Checklist,
			"notes":        task.Notes,
			"completed_at": task.CompletedAt,
			"updated_at":   task.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CountOpen counts tasks that are not done across propertyIDs. An empty slice counts nothing.
func (r *TaskRepository) CountOpen(ctx context.Context, propertyIDs []uuid.UUID) (int64, error) {
	if len(propertyIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("property_id IN ? AND status <> ?", propertyIDs, models.TaskStatusDone).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open tasks: %w", err)
	}
	return count, nil
}

// CountScheduled counts tasks scheduled in [from, to) across propertyIDs.
func (r *TaskRepository) CountScheduled(ctx context.Context, propertyIDs []uuid.UUID, from, to time.Time) (int64, error) {
	if len(propertyIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("property_id IN ? AND scheduled_date >= ? AND scheduled_date < ?", propertyIDs, from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count scheduled tasks: %w", err)
	}
	return count, nil
}
