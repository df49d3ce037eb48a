package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/mocks"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
	"go.uber.org/mock/gomock"
)

type sprintFixture struct {
	svc         *service.SprintService
	sprintRepo  *mocks.MockSprintRepositoryIface
	projectRepo *mocks.MockProjectRepositoryIface
	memberRepo  *mocks.MockMembershipRepositoryIface
}

func newSprintFixture(ctrl *gomock.Controller) *sprintFixture {
	f := &sprintFixture{
		sprintRepo:  mocks.NewMockSprintRepositoryIface(ctrl),
		projectRepo: mocks.NewMockProjectRepositoryIface(ctrl),
		memberRepo:  mocks.NewMockMembershipRepositoryIface(ctrl),
	}
	f.svc = service.NewSprintService(f.sprintRepo, f.projectRepo, f.memberRepo)
	return f
}

func TestCreateSprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID}

	t.Run("name is required", func(t *testing.T) {
		f := newSprintFixture(ctrl)

		_, err := f.svc.CreateSprint(context.Background(), caller, projectID, service.CreateSprintInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("new sprint starts in the future state", func(t *testing.T) {
		f := newSprintFixture(ctrl)

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(project, nil),

			f.sprintRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, sprint *model.Sprint) error {
					assert.Equal(t, model.SprintFuture, sprint.Status)
					assert.Equal(t, projectID, sprint.ProjectID)
					return nil
				}),
		)

		sprint, err := f.svc.CreateSprint(context.Background(), caller, projectID, service.CreateSprintInput{
			Name: "Sprint 1",
			Goal: "Ship onboarding",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sprint 1", sprint.Name)
	})
}

func TestStartSprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()
	sprintID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID}

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	input := service.StartSprintInput{
		StartDate: start,
		EndDate:   end,
		Goal:      "Close the beta backlog",
	}

	authorize := func(f *sprintFixture, sprint *model.Sprint) {
		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(sprint, nil)
		f.projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(project, nil)
	}

	t.Run("end date must come after the start date", func(t *testing.T) {
		f := newSprintFixture(ctrl)

		_, err := f.svc.StartSprint(context.Background(), caller, sprintID, service.StartSprintInput{
			StartDate: end,
			EndDate:   start,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("future sprint becomes active", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintFuture})

		f.sprintRepo.EXPECT().
			CountByStatus(gomock.Any(), projectID, model.SprintActive).
			Return(int64(0), nil)
		f.sprintRepo.EXPECT().
			Transition(gomock.Any(), sprintID, model.SprintFuture, model.SprintActive, map[string]any{
				"start_date": start,
				"end_date":   end,
				"goal":       input.Goal,
			}).
			Return(int64(1), nil)
		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(&model.Sprint{
				ID:        sprintID,
				ProjectID: projectID,
				Status:    model.SprintActive,
				StartDate: &start,
				EndDate:   &end,
			}, nil)

		sprint, err := f.svc.StartSprint(context.Background(), caller, sprintID, input)

		assert.NoError(t, err)
		assert.Equal(t, model.SprintActive, sprint.Status)
	})

	t.Run("closed sprint cannot restart", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintClosed})

		_, err := f.svc.StartSprint(context.Background(), caller, sprintID, input)
		assert.ErrorIs(t, err, domain.ErrInvalidSprintState)
	})

	t.Run("second active sprint is rejected", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintFuture})

		f.sprintRepo.EXPECT().
			CountByStatus(gomock.Any(), projectID, model.SprintActive).
			Return(int64(1), nil)

		_, err := f.svc.StartSprint(context.Background(), caller, sprintID, input)
		assert.ErrorIs(t, err, domain.ErrActiveSprintExists)
	})

	t.Run("losing the transition race reads as invalid state", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintFuture})

		f.sprintRepo.EXPECT().
			CountByStatus(gomock.Any(), projectID, model.SprintActive).
			Return(int64(0), nil)
		f.sprintRepo.EXPECT().
			Transition(gomock.Any(), sprintID, model.SprintFuture, model.SprintActive, gomock.Any()).
			Return(int64(0), nil)

		_, err := f.svc.StartSprint(context.Background(), caller, sprintID, input)
		assert.ErrorIs(t, err, domain.ErrInvalidSprintState)
	})

	t.Run("sprint in another organization reads as not found", func(t *testing.T) {
		f := newSprintFixture(ctrl)

		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(&model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintFuture}, nil)
		f.projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(&model.Project{ID: projectID, OrganizationID: uuid.New()}, nil)

		_, err := f.svc.StartSprint(context.Background(), caller, sprintID, input)
		assert.ErrorIs(t, err, domain.ErrSprintNotFound)
	})
}

func TestCompleteSprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()
	sprintID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID}

	authorize := func(f *sprintFixture, sprint *model.Sprint) {
		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(sprint, nil)
		f.projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(project, nil)
	}

	t.Run("active sprint closes", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintActive})

		f.sprintRepo.EXPECT().
			Transition(gomock.Any(), sprintID, model.SprintActive, model.SprintClosed, nil).
			Return(int64(1), nil)
		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(&model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintClosed}, nil)

		sprint, err := f.svc.CompleteSprint(context.Background(), caller, sprintID)

		assert.NoError(t, err)
		assert.Equal(t, model.SprintClosed, sprint.Status)
	})

	t.Run("future sprint cannot complete", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintFuture})

		_, err := f.svc.CompleteSprint(context.Background(), caller, sprintID)
		assert.ErrorIs(t, err, domain.ErrInvalidSprintState)
	})

	t.Run("closed sprint cannot complete again", func(t *testing.T) {
		f := newSprintFixture(ctrl)
		authorize(f, &model.Sprint{ID: sprintID, ProjectID: projectID, Status: model.SprintClosed})

		_, err := f.svc.CompleteSprint(context.Background(), caller, sprintID)
		assert.ErrorIs(t, err, domain.ErrInvalidSprintState)
	})
}
