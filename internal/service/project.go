// internal/service/project.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/repository"
)

// ProjectService creates and reads projects within the caller's
// organization. Every read applies the organization filter as defense
// in depth on top of the store's own row policies.
type ProjectService struct {
	projectRepo repository.ProjectRepositoryIface
	taskRepo    repository.TaskRepositoryIface
	memberRepo  repository.MembershipRepositoryIface
	validate    *validator.Validate
}

func NewProjectService(
	projectRepo repository.ProjectRepositoryIface,
	taskRepo repository.TaskRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		memberRepo:  memberRepo,
		validate:    validator.New(),
	}
}

type CreateProjectInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Key         string `json:"key"`
}

// CreateProject creates a project with the three default board
// columns in one transaction.
func (s *ProjectService) CreateProject(ctx context.Context, caller auth.Context, input CreateProjectInput) (*model.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}

	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		OrganizationID: membership.OrganizationID,
		Name:           input.Name,
		Description:    input.Description,
		Key:            strings.ToUpper(input.Key),
		CreatedBy:      caller.UserID,
	}

	if err := s.projectRepo.CreateWithColumns(ctx, project, model.DefaultColumns(uuid.Nil)); err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects returns the caller's organization projects. Read
// failures degrade to an empty list so a flaky store never blanks the
// dashboard with an error page.
func (s *ProjectService) ListProjects(ctx context.Context, caller auth.Context) ([]*model.Project, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByOrganization(ctx, membership.OrganizationID)
	if err != nil {
		slog.WarnContext(ctx, "project listing degraded to empty", "error", err)
		return []*model.Project{}, nil
	}
	return projects, nil
}

// BoardColumn is one rendered column with its tasks in position order.
type BoardColumn struct {
	Column *model.KanbanColumn `json:"column"`
	Tasks  []*model.Task       `json:"tasks"`
}

// Board is the kanban view of one project.
type Board struct {
	Project *model.Project `json:"project"`
	Columns []BoardColumn  `json:"columns"`
}

// GetBoard returns the project's columns and tasks grouped for board
// rendering.
func (s *ProjectService) GetBoard(ctx context.Context, caller auth.Context, projectID uuid.UUID) (*Board, error) {
	project, err := s.authorizeProject(ctx, caller, projectID)
	if err != nil {
		return nil, err
	}

	columns, err := s.projectRepo.Columns(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byColumn := make(map[uuid.UUID][]*model.Task, len(columns))
	for _, task := range tasks {
		byColumn[task.ColumnID] = append(byColumn[task.ColumnID], task)
	}

	board := &Board{Project: project}
	for _, column := range columns {
		board.Columns = append(board.Columns, BoardColumn{
			Column: column,
			Tasks:  byColumn[column.ID],
		})
	}

	return board, nil
}

// authorizeProject resolves the caller's membership and confirms the
// project belongs to their organization. A project outside the
// caller's tenant reads as not found rather than forbidden.
func (s *ProjectService) authorizeProject(ctx context.Context, caller auth.Context, projectID uuid.UUID) (*model.Project, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != membership.OrganizationID {
		return nil, domain.ErrProjectNotFound
	}

	return project, nil
}
