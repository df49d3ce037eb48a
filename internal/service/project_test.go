package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/mocks"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
	"go.uber.org/mock/gomock"
)

type projectFixture struct {
	svc         *service.ProjectService
	projectRepo *mocks.MockProjectRepositoryIface
	taskRepo    *mocks.MockTaskRepositoryIface
	memberRepo  *mocks.MockMembershipRepositoryIface
}

func newProjectFixture(ctrl *gomock.Controller) *projectFixture {
	f := &projectFixture{
		projectRepo: mocks.NewMockProjectRepositoryIface(ctrl),
		taskRepo:    mocks.NewMockTaskRepositoryIface(ctrl),
		memberRepo:  mocks.NewMockMembershipRepositoryIface(ctrl),
	}
	f.svc = service.NewProjectService(f.projectRepo, f.taskRepo, f.memberRepo)
	return f
}

func TestCreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}

	t.Run("name is required", func(t *testing.T) {
		f := newProjectFixture(ctrl)

		_, err := f.svc.CreateProject(context.Background(), caller, service.CreateProjectInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("creates the project with the three default columns", func(t *testing.T) {
		f := newProjectFixture(ctrl)

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				CreateWithColumns(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, project *model.Project, columns []*model.KanbanColumn) error {
					assert.Equal(t, orgID, project.OrganizationID)
					assert.Equal(t, "HIRE", project.Key)
					assert.Equal(t, caller.UserID, project.CreatedBy)

					if assert.Len(t, columns, 3) {
						assert.Equal(t, "To Do", columns[0].Name)
						assert.Equal(t, 0, columns[0].Position)
						assert.Equal(t, "In Progress", columns[1].Name)
						assert.Equal(t, 1, columns[1].Position)
						assert.Equal(t, "Done", columns[2].Name)
						assert.Equal(t, 2, columns[2].Position)
					}
					return nil
				}),
		)

		project, err := f.svc.CreateProject(context.Background(), caller, service.CreateProjectInput{
			Name: "Hirely",
			Key:  "hire",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Hirely", project.Name)
	})
}

func TestListProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}

	t.Run("store failure degrades to an empty list", func(t *testing.T) {
		f := newProjectFixture(ctrl)

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				ListByOrganization(gomock.Any(), orgID).
				Return(nil, errors.New("connection refused")),
		)

		projects, err := f.svc.ListProjects(context.Background(), caller)

		assert.NoError(t, err)
		assert.Empty(t, projects)
		assert.NotNil(t, projects)
	})

	t.Run("missing membership propagates for onboarding", func(t *testing.T) {
		f := newProjectFixture(ctrl)

		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(nil, domain.ErrNoMembership)

		_, err := f.svc.ListProjects(context.Background(), caller)
		assert.ErrorIs(t, err, domain.ErrNoMembership)
	})
}

func TestGetBoard(t *testing.T) {
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
	project := &model.Project{ID: projectID, OrganizationID: orgID, Name: "Trace"}

	t.Run("groups tasks under their columns in order", func(t *testing.T) {
		f := newProjectFixture(ctrl)

		todoID := uuid.New()
		doneID := uuid.New()

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(project, nil),

			f.projectRepo.EXPECT().
				Columns(gomock.Any(), projectID).
				Return([]*model.KanbanColumn{
					{ID: todoID, ProjectID: projectID, Name: "To Do", Position: 0},
					{ID: doneID, ProjectID: projectID, Name: "Done", Position: 1},
				}, nil),

			f.taskRepo.EXPECT().
				ListByProject(gomock.Any(), projectID).
				Return([]*model.Task{
					{ID: uuid.New(), ProjectID: projectID, ColumnID: todoID, Title: "first", Position: 0},
					{ID: uuid.New(), ProjectID: projectID, ColumnID: todoID, Title: "second", Position: 1},
					{ID: uuid.New(), ProjectID: projectID, ColumnID: doneID, Title: "shipped", Position: 0},
				}, nil),
		)

		board, err := f.svc.GetBoard(context.Background(), caller, projectID)

		assert.NoError(t, err)
		assert.Equal(t, project, board.Project)
		if assert.Len(t, board.Columns, 2) {
			assert.Equal(t, "To Do", board.Columns[0].Column.Name)
			assert.Len(t, board.Columns[0].Tasks, 2)
			assert.Equal(t, "first", board.Columns[0].Tasks[0].Title)
			assert.Len(t, board.Columns[1].Tasks, 1)
		}
	})

	t.Run("cross-tenant project reads as not found", func(t *testing.T) {
		f := newProjectFixture(ctrl)

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(&model.Project{ID: projectID, OrganizationID: uuid.New()}, nil),
		)

		_, err := f.svc.GetBoard(context.Background(), caller, projectID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}
