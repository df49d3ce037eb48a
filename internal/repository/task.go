// internal/repository/task.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"gorm.io/gorm"
)

type TaskRepositoryIface interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextPosition(ctx context.Context, columnID uuid.UUID) (int, error)
	ShiftRight(ctx context.Context, columnID uuid.UUID, fromPosition int, excludeTaskID uuid.UUID) error
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error) {
	var tasks []*model.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("project_id = ?", projectID).
		Order("position ASC, created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// Updates writes only the supplied columns. Callers build the map so a
// partial update never clobbers fields the request did not mention.
func (r *TaskRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("updating task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// NextPosition returns the append position at the bottom of a column.
func (r *TaskRepository) NextPosition(ctx context.Context, columnID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("column_id = ?", columnID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting column tasks: %w", err)
	}
	return int(count), nil
}

// ShiftRight opens a slot at fromPosition by pushing every task at or
// after it one position down, skipping the task being moved.
func (r *TaskRepository) ShiftRight(ctx context.Context, columnID uuid.UUID, fromPosition int, excludeTaskID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("column_id = ? AND position >= ? AND id <> ?", columnID, fromPosition, excludeTaskID).
		UpdateColumn("position", gorm.Expr("position + 1")).Error; err != nil {
		return fmt.Errorf("shifting task positions: %w", err)
	}
	return nil
}
