// internal/repository/project.go
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

type ProjectRepositoryIface interface {
	CreateWithColumns(ctx context.Context, project *model.Project, columns []*model.KanbanColumn) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	FindByKey(ctx context.Context, orgID uuid.UUID, key string) (*model.Project, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Project, error)
	Columns(ctx context.Context, projectID uuid.UUID) ([]*model.KanbanColumn, error)
	FindColumn(ctx context.Context, columnID uuid.UUID) (*model.KanbanColumn, error)
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateWithColumns inserts the project and its starting columns in
// one transaction so a project can never exist without a board.
func (r *ProjectRepository) CreateWithColumns(ctx context.Context, project *model.Project, columns []*model.KanbanColumn) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		for _, column := range columns {
			column.ProjectID = project.ID
			if err := tx.Create(column).Error; err != nil {
				return fmt.Errorf("creating column %q: %w", column.Name, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("finding project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) FindByKey(ctx context.Context, orgID uuid.UUID, key string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		First(&project, "organization_id = ? AND key = ?", orgID, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("finding project by key: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Columns(ctx context.Context, projectID uuid.UUID) ([]*model.KanbanColumn, error) {
	var columns []*model.KanbanColumn
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&columns).Error; err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	return columns, nil
}

func (r *ProjectRepository) FindColumn(ctx context.Context, columnID uuid.UUID) (*model.KanbanColumn, error) {
	var column model.KanbanColumn
	if err := r.db.WithContext(ctx).First(&column, "id = ?", columnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrColumnNotFound
		}
		return nil, fmt.Errorf("finding column: %w", err)
	}
	return &column, nil
}
