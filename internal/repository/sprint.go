// internal/repository/sprint.go
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

type SprintRepositoryIface interface {
	Create(ctx context.Context, sprint *model.Sprint) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sprint, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Sprint, error)
	CountByStatus(ctx context.Context, projectID uuid.UUID, status model.SprintStatus) (int64, error)
	Transition(ctx context.Context, id uuid.UUID, from, to model.SprintStatus, fields map[string]any) (int64, error)
}

type SprintRepository struct {
	db *gorm.DB
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

func (r *SprintRepository) Create(ctx context.Context, sprint *model.Sprint) error {
	if err := r.db.WithContext(ctx).Create(sprint).Error; err != nil {
		return fmt.Errorf("creating sprint: %w", err)
	}
	return nil
}

func (r *SprintRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Sprint, error) {
	var sprint model.Sprint
	if err := r.db.WithContext(ctx).First(&sprint, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSprintNotFound
		}
		return nil, fmt.Errorf("finding sprint: %w", err)
	}
	return &sprint, nil
}

func (r *SprintRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Sprint, error) {
	var sprints []*model.Sprint
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&sprints).Error; err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	return sprints, nil
}

func (r *SprintRepository) CountByStatus(ctx context.Context, projectID uuid.UUID, status model.SprintStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Sprint{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting sprints: %w", err)
	}
	return count, nil
}

// Transition updates sprint fields and flips the status in a single
// statement guarded by the current status, so the field write and the
// state change land atomically or not at all. Returns rows affected;
// zero means the sprint was not in the expected state.
func (r *SprintRepository) Transition(ctx context.Context, id uuid.UUID, from, to model.SprintStatus, fields map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range fields {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&model.Sprint{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("transitioning sprint: %w", result.Error)
	}
	return result.RowsAffected, nil
}
