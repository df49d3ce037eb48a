package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/mocks"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
	"go.uber.org/mock/gomock"
)

// stubCompleter replays a canned model reply.
type stubCompleter struct {
	content string
	err     error
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func newIntentService(client service.ChatCompleter) *service.IntentService {
	return service.NewIntentService(client, "gpt-4o-mini", nil, nil, nil, nil)
}

func TestParseIntent(t *testing.T) {
	t.Run("nil client disables parsing", func(t *testing.T) {
		svc := newIntentService(nil)

		intent := svc.ParseIntent(context.Background(), `create project "Hirely"`)
		assert.Nil(t, intent)
	})

	t.Run("model failure yields nil", func(t *testing.T) {
		svc := newIntentService(&stubCompleter{err: errors.New("rate limited")})

		intent := svc.ParseIntent(context.Background(), "make a task")
		assert.Nil(t, intent)
	})

	t.Run("parses a clean JSON reply", func(t *testing.T) {
		svc := newIntentService(&stubCompleter{content: `{
			"title": "Hirely",
			"priority": "Medium",
			"task_type": "task",
			"intent_type": "create_project",
			"project_key": "HIRE"
		}`})

		intent := svc.ParseIntent(context.Background(), `create project "Hirely"`)

		assert.NotNil(t, intent)
		assert.Equal(t, "Hirely", intent.Title)
		assert.Equal(t, service.IntentCreateProject, intent.IntentType)
		assert.Equal(t, "HIRE", intent.ProjectKey)
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		svc := newIntentService(&stubCompleter{content: "```json\n" +
			`{"title": "Fix login bug", "intent_type": "create_task", "task_type": "bug", "priority": "High"}` +
			"\n```"})

		intent := svc.ParseIntent(context.Background(), "there is a bug in login")

		assert.NotNil(t, intent)
		assert.Equal(t, "Fix login bug", intent.Title)
		assert.Equal(t, service.IntentCreateTask, intent.IntentType)
	})

	t.Run("unparseable reply yields nil", func(t *testing.T) {
		svc := newIntentService(&stubCompleter{content: "Sure! Here is what I would do:"})

		intent := svc.ParseIntent(context.Background(), "create something")
		assert.Nil(t, intent)
	})

	t.Run("missing title recovers from quotes in the input", func(t *testing.T) {
		svc := newIntentService(&stubCompleter{content: `{"intent_type": "create_project"}`})

		intent := svc.ParseIntent(context.Background(), `create project "Hirely"`)

		assert.NotNil(t, intent)
		assert.Equal(t, "Hirely", intent.Title)
	})
}

func TestFallbackTitle(t *testing.T) {
	assert.Equal(t, "Hirely", service.FallbackTitle(`create project "Hirely"`))
	assert.Equal(t, "build a mobile app", service.FallbackTitle("  build a mobile app  "))
	assert.Equal(t, "first", service.FallbackTitle(`"first" and "second"`))
}

func TestCreateFromIntent(t *testing.T) {
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

	newFixture := func() (*service.IntentService, *mocks.MockProjectRepositoryIface, *mocks.MockTaskRepositoryIface, *mocks.MockMembershipRepositoryIface) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		taskRepo := mocks.NewMockTaskRepositoryIface(ctrl)
		sprintRepo := mocks.NewMockSprintRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		projects := service.NewProjectService(projectRepo, taskRepo, memberRepo)
		tasks := service.NewTaskService(taskRepo, projectRepo, sprintRepo, memberRepo)
		svc := service.NewIntentService(nil, "", projects, tasks, projectRepo, memberRepo)
		return svc, projectRepo, taskRepo, memberRepo
	}

	t.Run("nil intent creates a project from the literal text", func(t *testing.T) {
		svc, projectRepo, _, memberRepo := newFixture()

		memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		projectRepo.EXPECT().
			CreateWithColumns(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, project *model.Project, columns []*model.KanbanColumn) error {
				assert.Equal(t, "Hirely", project.Name)
				assert.Equal(t, orgID, project.OrganizationID)
				assert.Len(t, columns, 3)
				project.ID = uuid.New()
				return nil
			})

		project, task, err := svc.CreateFromIntent(context.Background(), caller, `create project "Hirely"`, nil)

		assert.NoError(t, err)
		assert.NotNil(t, project)
		assert.Nil(t, task)
	})

	t.Run("task intent lands in the keyed project's first column", func(t *testing.T) {
		svc, projectRepo, taskRepo, memberRepo := newFixture()

		projectID := uuid.New()
		columnID := uuid.New()
		project := &model.Project{ID: projectID, OrganizationID: orgID, Key: "HIRE"}

		memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil).
			Times(2)
		projectRepo.EXPECT().
			FindByKey(gomock.Any(), orgID, "HIRE").
			Return(project, nil)
		projectRepo.EXPECT().
			Columns(gomock.Any(), projectID).
			Return([]*model.KanbanColumn{
				{ID: columnID, ProjectID: projectID, Name: "To Do", Position: 0},
				{ID: uuid.New(), ProjectID: projectID, Name: "Done", Position: 1},
			}, nil)
		projectRepo.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(project, nil)
		projectRepo.EXPECT().
			FindColumn(gomock.Any(), columnID).
			Return(&model.KanbanColumn{ID: columnID, ProjectID: projectID}, nil)
		taskRepo.EXPECT().
			NextPosition(gomock.Any(), columnID).
			Return(0, nil)
		taskRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *model.Task) error {
				assert.Equal(t, "Fix login bug", task.Title)
				assert.Equal(t, model.PriorityHigh, task.Priority)
				assert.Equal(t, model.TypeBug, task.TaskType)
				assert.Equal(t, columnID, task.ColumnID)
				return nil
			})

		project, task, err := svc.CreateFromIntent(context.Background(), caller, "fix the login bug", &service.Intent{
			Title:      "Fix login bug",
			Priority:   "High",
			TaskType:   "bug",
			IntentType: service.IntentCreateTask,
			ProjectKey: "HIRE",
		})

		assert.NoError(t, err)
		assert.NotNil(t, project)
		assert.NotNil(t, task)
	})

	t.Run("task intent without projects fails cleanly", func(t *testing.T) {
		svc, projectRepo, _, memberRepo := newFixture()

		memberRepo.EXPECT().
			FindByUser(gomock.Any(), caller.UserID).
			Return(membership, nil)
		projectRepo.EXPECT().
			ListByOrganization(gomock.Any(), orgID).
			Return([]*model.Project{}, nil)

		_, _, err := svc.CreateFromIntent(context.Background(), caller, "add a task", &service.Intent{
			Title:      "Orphan task",
			IntentType: service.IntentCreateTask,
		})
		assert.Error(t, err)
	})
}
