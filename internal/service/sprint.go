// internal/service/sprint.go
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

// SprintService enforces the future -> active -> closed lifecycle and
// the at-most-one-active-sprint-per-project policy.
type SprintService struct {
	sprintRepo  repository.SprintRepositoryIface
	projectRepo repository.ProjectRepositoryIface
	memberRepo  repository.MembershipRepositoryIface
	validate    *validator.Validate
}

func NewSprintService(
	sprintRepo repository.SprintRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
) *SprintService {
	return &SprintService{
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		validate:    validator.New(),
	}
}

type CreateSprintInput struct {
	Name      string     `json:"name" validate:"required"`
	Goal      string     `json:"goal"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// CreateSprint creates a sprint in the future state.
func (s *SprintService) CreateSprint(ctx context.Context, caller auth.Context, projectID uuid.UUID, input CreateSprintInput) (*model.Sprint, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: sprint name is required", domain.ErrInvalidInput)
	}

	if _, err := s.authorizeProject(ctx, caller, projectID); err != nil {
		return nil, err
	}

	sprint := &model.Sprint{
		ProjectID: projectID,
		Name:      input.Name,
		Goal:      input.Goal,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    model.SprintFuture,
	}

	if err := s.sprintRepo.Create(ctx, sprint); err != nil {
		return nil, err
	}

	return sprint, nil
}

// ListSprints returns all sprints in the project, newest first.
func (s *SprintService) ListSprints(ctx context.Context, caller auth.Context, projectID uuid.UUID) ([]*model.Sprint, error) {
	if _, err := s.authorizeProject(ctx, caller, projectID); err != nil {
		return nil, err
	}
	return s.sprintRepo.ListByProject(ctx, projectID)
}

type StartSprintInput struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	Goal      string    `json:"goal"`
}

// StartSprint writes the sprint dates and goal and flips the status to
// active in one guarded update. Only a future sprint can start, and a
// project can hold one active sprint at a time.
func (s *SprintService) StartSprint(ctx context.Context, caller auth.Context, sprintID uuid.UUID, input StartSprintInput) (*model.Sprint, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: start and end dates are required and must be ordered", domain.ErrInvalidInput)
	}

	sprint, err := s.authorizeSprint(ctx, caller, sprintID)
	if err != nil {
		return nil, err
	}
	if sprint.Status != model.SprintFuture {
		return nil, domain.ErrInvalidSprintState
	}

	active, err := s.sprintRepo.CountByStatus(ctx, sprint.ProjectID, model.SprintActive)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, domain.ErrActiveSprintExists
	}

	affected, err := s.sprintRepo.Transition(ctx, sprintID, model.SprintFuture, model.SprintActive, map[string]any{
		"start_date": input.StartDate,
		"end_date":   input.EndDate,
		"goal":       input.Goal,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Lost a race with another caller mutating the same sprint.
		return nil, domain.ErrInvalidSprintState
	}

	return s.sprintRepo.FindByID(ctx, sprintID)
}

// CompleteSprint closes an active sprint. Closing a future or already
// closed sprint is rejected. Tasks stay attached to the closed sprint;
// there is no rollover.
func (s *SprintService) CompleteSprint(ctx context.Context, caller auth.Context, sprintID uuid.UUID) (*model.Sprint, error) {
	sprint, err := s.authorizeSprint(ctx, caller, sprintID)
	if err != nil {
		return nil, err
	}
	if sprint.Status != model.SprintActive {
		return nil, domain.ErrInvalidSprintState
	}

	affected, err := s.sprintRepo.Transition(ctx, sprintID, model.SprintActive, model.SprintClosed, nil)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrInvalidSprintState
	}

	return s.sprintRepo.FindByID(ctx, sprintID)
}

// authorizeSprint loads a sprint and confirms its project belongs to
// the caller's organization.
func (s *SprintService) authorizeSprint(ctx context.Context, caller auth.Context, sprintID uuid.UUID) (*model.Sprint, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	sprint, err := s.sprintRepo.FindByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(ctx, sprint.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != membership.OrganizationID {
		return nil, domain.ErrSprintNotFound
	}

	return sprint, nil
}

func (s *SprintService) authorizeProject(ctx context.Context, caller auth.Context, projectID uuid.UUID) (*model.Project, error) {
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
