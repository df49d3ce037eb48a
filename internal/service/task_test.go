package service_test

import (
	"context"
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

type taskFixture struct {
	svc         *service.TaskService
	taskRepo    *mocks.MockTaskRepositoryIface
	projectRepo *mocks.MockProjectRepositoryIface
	sprintRepo  *mocks.MockSprintRepositoryIface
	memberRepo  *mocks.MockMembershipRepositoryIface
}

func newTaskFixture(ctrl *gomock.Controller) *taskFixture {
	f := &taskFixture{
		taskRepo:    mocks.NewMockTaskRepositoryIface(ctrl),
		projectRepo: mocks.NewMockProjectRepositoryIface(ctrl),
		sprintRepo:  mocks.NewMockSprintRepositoryIface(ctrl),
		memberRepo:  mocks.NewMockMembershipRepositoryIface(ctrl),
	}
	f.svc = service.NewTaskService(f.taskRepo, f.projectRepo, f.sprintRepo, f.memberRepo)
	return f
}

func TestCreateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()
	columnID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID, Name: "Trace"}
	column := &model.KanbanColumn{ID: columnID, ProjectID: projectID, Name: "To Do"}

	t.Run("missing title fails validation", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		_, err := f.svc.CreateTask(context.Background(), caller, projectID, service.CreateTaskInput{
			ColumnID: columnID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("defaults priority and type, appends at bottom", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(project, nil),

			f.projectRepo.EXPECT().
				FindColumn(gomock.Any(), columnID).
				Return(column, nil),

			f.taskRepo.EXPECT().
				NextPosition(gomock.Any(), columnID).
				Return(3, nil),

			f.taskRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, task *model.Task) error {
					assert.Equal(t, model.PriorityMedium, task.Priority)
					assert.Equal(t, model.TypeTask, task.TaskType)
					assert.Equal(t, 3, task.Position)
					assert.Equal(t, caller.UserID, task.CreatedBy)
					assert.Nil(t, task.SprintID)
					return nil
				}),
		)

		task, err := f.svc.CreateTask(context.Background(), caller, projectID, service.CreateTaskInput{
			Title:    "Wire up login",
			ColumnID: columnID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Wire up login", task.Title)
	})

	t.Run("column from another project is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		foreignColumn := &model.KanbanColumn{ID: columnID, ProjectID: uuid.New(), Name: "Done"}

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(project, nil),

			f.projectRepo.EXPECT().
				FindColumn(gomock.Any(), columnID).
				Return(foreignColumn, nil),
		)

		_, err := f.svc.CreateTask(context.Background(), caller, projectID, service.CreateTaskInput{
			Title:    "Refactor parser",
			ColumnID: columnID,
		})
		assert.ErrorIs(t, err, domain.ErrColumnMismatch)
	})

	t.Run("unknown priority is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(project, nil),

			f.projectRepo.EXPECT().
				FindColumn(gomock.Any(), columnID).
				Return(column, nil),
		)

		_, err := f.svc.CreateTask(context.Background(), caller, projectID, service.CreateTaskInput{
			Title:    "Bad priority",
			ColumnID: columnID,
			Priority: "Blocker",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cross-tenant project reads as not found", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		foreignProject := &model.Project{ID: projectID, OrganizationID: uuid.New()}

		gomock.InOrder(
			f.memberRepo.EXPECT().
				FindByUser(gomock.Any(), caller.UserID).
				Return(membership, nil),

			f.projectRepo.EXPECT().
				FindByID(gomock.Any(), projectID).
				Return(foreignProject, nil),
		)

		_, err := f.svc.CreateTask(context.Background(), caller, projectID, service.CreateTaskInput{
			Title:    "Sneaky",
			ColumnID: columnID,
		})
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestUpdateTaskColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()
	columnID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID}
	task := &model.Task{ID: taskID, ProjectID: projectID, ColumnID: uuid.New(), Title: "Move me"}
	column := &model.KanbanColumn{ID: columnID, ProjectID: projectID, Name: "In Progress"}

	authorize := func(f *taskFixture) {
		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		f.taskRepo.EXPECT().
			FindByID(gomock.Any(), taskID).
			Return(task, nil)
		f.projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(project, nil)
	}

	t.Run("nil position appends to the target column", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		f.projectRepo.EXPECT().
			FindColumn(gomock.Any(), columnID).
			Return(column, nil)
		f.taskRepo.EXPECT().
			NextPosition(gomock.Any(), columnID).
			Return(2, nil)
		f.taskRepo.EXPECT().
			Updates(gomock.Any(), taskID, map[string]any{
				"column_id": columnID,
				"position":  2,
			}).
			Return(nil)

		err := f.svc.UpdateTaskColumn(context.Background(), caller, taskID, columnID, nil)
		assert.NoError(t, err)
	})

	t.Run("explicit position shifts trailing tasks", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		position := 1

		f.projectRepo.EXPECT().
			FindColumn(gomock.Any(), columnID).
			Return(column, nil)
		f.taskRepo.EXPECT().
			ShiftRight(gomock.Any(), columnID, position, taskID).
			Return(nil)
		f.taskRepo.EXPECT().
			Updates(gomock.Any(), taskID, map[string]any{
				"column_id": columnID,
				"position":  position,
			}).
			Return(nil)

		err := f.svc.UpdateTaskColumn(context.Background(), caller, taskID, columnID, &position)
		assert.NoError(t, err)
	})

	t.Run("negative position is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		f.projectRepo.EXPECT().
			FindColumn(gomock.Any(), columnID).
			Return(column, nil)

		position := -1
		err := f.svc.UpdateTaskColumn(context.Background(), caller, taskID, columnID, &position)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("column in another project is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		f.projectRepo.EXPECT().
			FindColumn(gomock.Any(), columnID).
			Return(&model.KanbanColumn{ID: columnID, ProjectID: uuid.New()}, nil)

		err := f.svc.UpdateTaskColumn(context.Background(), caller, taskID, columnID, nil)
		assert.ErrorIs(t, err, domain.ErrColumnMismatch)
	})
}

func TestUpdateTaskSprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()
	sprintID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID}
	task := &model.Task{ID: taskID, ProjectID: projectID, Title: "Plan me"}

	authorize := func(f *taskFixture) {
		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		f.taskRepo.EXPECT().
			FindByID(gomock.Any(), taskID).
			Return(task, nil)
		f.projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(project, nil)
	}

	t.Run("assigns the task to a sprint", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(&model.Sprint{ID: sprintID, ProjectID: projectID}, nil)
		f.taskRepo.EXPECT().
			Updates(gomock.Any(), taskID, map[string]any{"sprint_id": &sprintID}).
			Return(nil)

		err := f.svc.UpdateTaskSprint(context.Background(), caller, taskID, &sprintID)
		assert.NoError(t, err)
	})

	t.Run("nil sprint moves the task to the backlog", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		f.taskRepo.EXPECT().
			Updates(gomock.Any(), taskID, map[string]any{"sprint_id": (*uuid.UUID)(nil)}).
			Return(nil)

		err := f.svc.UpdateTaskSprint(context.Background(), caller, taskID, nil)
		assert.NoError(t, err)
	})

	t.Run("sprint from another project is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		f.sprintRepo.EXPECT().
			FindByID(gomock.Any(), sprintID).
			Return(&model.Sprint{ID: sprintID, ProjectID: uuid.New()}, nil)

		err := f.svc.UpdateTaskSprint(context.Background(), caller, taskID, &sprintID)
		assert.ErrorIs(t, err, domain.ErrSprintMismatch)
	})
}

func TestUpdateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	orgID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	membership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         caller.UserID,
		Role:           model.RoleMember,
	}
	project := &model.Project{ID: projectID, OrganizationID: orgID}
	task := &model.Task{ID: taskID, ProjectID: projectID, Title: "Patch me"}

	authorize := func(f *taskFixture) {
		f.memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		f.taskRepo.EXPECT().
			FindByID(gomock.Any(), taskID).
			Return(task, nil)
		f.projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(project, nil)
	}

	t.Run("writes only the provided fields", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		title := "Patched"
		priority := model.PriorityHigh

		f.taskRepo.EXPECT().
			Updates(gomock.Any(), taskID, map[string]any{
				"title":    "Patched",
				"priority": model.PriorityHigh,
			}).
			Return(nil)

		err := f.svc.UpdateTask(context.Background(), caller, taskID, service.UpdateTaskInput{
			Title:    &title,
			Priority: &priority,
		})
		assert.NoError(t, err)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		empty := ""
		err := f.svc.UpdateTask(context.Background(), caller, taskID, service.UpdateTaskInput{
			Title: &empty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		authorize(f)

		err := f.svc.UpdateTask(context.Background(), caller, taskID, service.UpdateTaskInput{})
		assert.NoError(t, err)
	})
}

func TestAuthorizeTaskCrossTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := auth.Context{UserID: uuid.New(), Email: "dev@example.com"}
	taskID := uuid.New()
	projectID := uuid.New()

	f := newTaskFixture(ctrl)

	f.memberRepo.EXPECT().
		FindByUser(gomock.Any(), caller.UserID).
		Return(&model.Membership{
			ID:             uuid.New(),
			OrganizationID: uuid.New(),
			UserID:         caller.UserID,
			Role:           model.RoleAdmin,
		}, nil)
	f.taskRepo.EXPECT().
		FindByID(gomock.Any(), taskID).
		Return(&model.Task{ID: taskID, ProjectID: projectID}, nil)
	f.projectRepo.EXPECT().
		FindByID(gomock.Any(), projectID).
		Return(&model.Project{ID: projectID, OrganizationID: uuid.New()}, nil)

	_, err := f.svc.GetTask(context.Background(), caller, taskID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
