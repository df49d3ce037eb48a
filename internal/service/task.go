// internal/service/task.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/repository"
)

// TaskService is the task/board mutation surface: create, move,
// patch and delete tasks while preserving the column and position
// invariants of the board.
type TaskService struct {
	taskRepo    repository.TaskRepositoryIface
	projectRepo repository.ProjectRepositoryIface
	sprintRepo  repository.SprintRepositoryIface
	memberRepo  repository.MembershipRepositoryIface
	validate    *validator.Validate
}

func NewTaskService(
	taskRepo repository.TaskRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
	sprintRepo repository.SprintRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		sprintRepo:  sprintRepo,
		memberRepo:  memberRepo,
		validate:    validator.New(),
	}
}

type CreateTaskInput struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	ColumnID    uuid.UUID          `json:"column_id" validate:"required"`
	Priority    model.TaskPriority `json:"priority"`
	TaskType    model.TaskType     `json:"task_type"`
	AssigneeID  *uuid.UUID         `json:"assignee_id"`
	DueDate     *time.Time         `json:"due_date"`
	SprintID    *uuid.UUID         `json:"sprint_id"`
	StoryPoints *int               `json:"story_points"`
}

// CreateTask creates a task at the bottom of the target column.
// Priority defaults to Medium and task type to task when omitted. The
// column must belong to the project.
func (s *TaskService) CreateTask(ctx context.Context, caller auth.Context, projectID uuid.UUID, input CreateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: title and column are required", domain.ErrInvalidInput)
	}

	if _, err := s.authorizeProject(ctx, caller, projectID); err != nil {
		return nil, err
	}

	column, err := s.projectRepo.FindColumn(ctx, input.ColumnID)
	if err != nil {
		return nil, err
	}
	if column.ProjectID != projectID {
		return nil, domain.ErrColumnMismatch
	}

	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(input.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, input.Priority)
	}

	if input.TaskType == "" {
		input.TaskType = model.TypeTask
	}
	if !model.ValidTaskType(input.TaskType) {
		return nil, fmt.Errorf("%w: unknown task type %q", domain.ErrInvalidInput, input.TaskType)
	}

	if input.SprintID != nil {
		if err := s.checkSprint(ctx, *input.SprintID, projectID); err != nil {
			return nil, err
		}
	}

	position, err := s.taskRepo.NextPosition(ctx, input.ColumnID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ProjectID:   projectID,
		ColumnID:    input.ColumnID,
		SprintID:    input.SprintID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		TaskType:    input.TaskType,
		StoryPoints: input.StoryPoints,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
		Position:    position,
		CreatedBy:   caller.UserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTaskColumn moves a task to another column, the durable side of
// a drag-and-drop. A nil position appends at the bottom; otherwise the
// task is inserted at position and trailing tasks shift down.
func (s *TaskService) UpdateTaskColumn(ctx context.Context, caller auth.Context, taskID, columnID uuid.UUID, position *int) error {
	task, err := s.authorizeTask(ctx, caller, taskID)
	if err != nil {
		return err
	}

	column, err := s.projectRepo.FindColumn(ctx, columnID)
	if err != nil {
		return err
	}
	if column.ProjectID != task.ProjectID {
		return domain.ErrColumnMismatch
	}

	var target int
	if position == nil {
		target, err = s.taskRepo.NextPosition(ctx, columnID)
		if err != nil {
			return err
		}
	} else {
		target = *position
		if target < 0 {
			return fmt.Errorf("%w: negative position", domain.ErrInvalidInput)
		}
		if err := s.taskRepo.ShiftRight(ctx, columnID, target, taskID); err != nil {
			return err
		}
	}

	return s.taskRepo.Updates(ctx, taskID, map[string]any{
		"column_id": columnID,
		"position":  target,
	})
}

// UpdateTaskSprint assigns a task to a sprint, or back to the backlog
// when sprintID is nil.
func (s *TaskService) UpdateTaskSprint(ctx context.Context, caller auth.Context, taskID uuid.UUID, sprintID *uuid.UUID) error {
	task, err := s.authorizeTask(ctx, caller, taskID)
	if err != nil {
		return err
	}

	if sprintID != nil {
		if err := s.checkSprint(ctx, *sprintID, task.ProjectID); err != nil {
			return err
		}
	}

	return s.taskRepo.Updates(ctx, taskID, map[string]any{"sprint_id": sprintID})
}

// UpdateTaskInput is a partial patch; only non-nil fields are written.
type UpdateTaskInput struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Priority    *model.TaskPriority `json:"priority"`
	TaskType    *model.TaskType     `json:"task_type"`
	StoryPoints *int                `json:"story_points"`
	AssigneeID  *uuid.UUID          `json:"assignee_id"`
	DueDate     *time.Time          `json:"due_date"`
	ColumnID    *uuid.UUID          `json:"column_id"`
	SprintID    *uuid.UUID          `json:"sprint_id"`
}

// UpdateTask applies a partial update. Column and sprint changes go
// through the same ownership checks as the dedicated move operations.
func (s *TaskService) UpdateTask(ctx context.Context, caller auth.Context, taskID uuid.UUID, input UpdateTaskInput) error {
	task, err := s.authorizeTask(ctx, caller, taskID)
	if err != nil {
		return err
	}

	fields := make(map[string]any)

	if input.Title != nil {
		if *input.Title == "" {
			return fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Priority != nil {
		if !model.ValidPriority(*input.Priority) {
			return fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *input.Priority)
		}
		fields["priority"] = *input.Priority
	}
	if input.TaskType != nil {
		if !model.ValidTaskType(*input.TaskType) {
			return fmt.Errorf("%w: unknown task type %q", domain.ErrInvalidInput, *input.TaskType)
		}
		fields["task_type"] = *input.TaskType
	}
	if input.StoryPoints != nil {
		fields["story_points"] = *input.StoryPoints
	}
	if input.AssigneeID != nil {
		fields["assignee_id"] = *input.AssigneeID
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}
	if input.ColumnID != nil {
		column, err := s.projectRepo.FindColumn(ctx, *input.ColumnID)
		if err != nil {
			return err
		}
		if column.ProjectID != task.ProjectID {
			return domain.ErrColumnMismatch
		}
		fields["column_id"] = *input.ColumnID
	}
	if input.SprintID != nil {
		if err := s.checkSprint(ctx, *input.SprintID, task.ProjectID); err != nil {
			return err
		}
		fields["sprint_id"] = *input.SprintID
	}

	if len(fields) == 0 {
		return nil
	}

	return s.taskRepo.Updates(ctx, taskID, fields)
}

// DeleteTask removes a task permanently. Tasks own no children, so no
// cascade is needed.
func (s *TaskService) DeleteTask(ctx context.Context, caller auth.Context, taskID uuid.UUID) error {
	if _, err := s.authorizeTask(ctx, caller, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// GetTask returns a task after the tenant check.
func (s *TaskService) GetTask(ctx context.Context, caller auth.Context, taskID uuid.UUID) (*model.Task, error) {
	return s.authorizeTask(ctx, caller, taskID)
}

// authorizeTask loads the task and confirms its project belongs to the
// caller's organization. Cross-tenant tasks read as not found.
func (s *TaskService) authorizeTask(ctx context.Context, caller auth.Context, taskID uuid.UUID) (*model.Task, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != membership.OrganizationID {
		return nil, domain.ErrTaskNotFound
	}

	return task, nil
}

// authorizeProject mirrors ProjectService.authorizeProject for task
// creation, which is addressed by project rather than by task.
func (s *TaskService) authorizeProject(ctx context.Context, caller auth.Context, projectID uuid.UUID) (*model.Project, error) {
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

// checkSprint confirms a sprint belongs to the given project.
func (s *TaskService) checkSprint(ctx context.Context, sprintID, projectID uuid.UUID) error {
	sprint, err := s.sprintRepo.FindByID(ctx, sprintID)
	if err != nil {
		return err
	}
	if sprint.ProjectID != projectID {
		return domain.ErrSprintMismatch
	}
	return nil
}
