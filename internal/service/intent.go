// internal/service/intent.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/repository"
)

const (
	IntentCreateProject = "create_project"
	IntentCreateTask    = "create_task"
)

// Intent is the structured contract extracted from free text.
type Intent struct {
	Title       string `json:"title"`
	Priority    string `json:"priority"`
	TaskType    string `json:"task_type"`
	Description string `json:"description"`
	IntentType  string `json:"intent_type"`
	ProjectKey  string `json:"project_key"`
}

// ChatCompleter is the slice of the OpenAI client the parser needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// IntentService turns free text into project or task creations. The
// model call is strictly best effort: any failure yields a nil intent
// and the caller falls back to treating the input as a literal title.
type IntentService struct {
	client      ChatCompleter
	model       string
	projects    *ProjectService
	tasks       *TaskService
	projectRepo repository.ProjectRepositoryIface
	memberRepo  repository.MembershipRepositoryIface
}

// NewIntentService builds the service. A nil client (no API key
// configured) disables parsing; ParseIntent then always returns nil.
func NewIntentService(
	client ChatCompleter,
	modelName string,
	projects *ProjectService,
	tasks *TaskService,
	projectRepo repository.ProjectRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
) *IntentService {
	return &IntentService{
		client:      client,
		model:       modelName,
		projects:    projects,
		tasks:       tasks,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
	}
}

const intentPrompt = `You are an AI assistant for a project management tool.
Your goal is to extract structured data from a user's natural language input.

User Input: %q

Instructions:
1. Analyze the input to determine if the user wants to create a PROJECT or a TASK.
2. Extract the core name of the entity. Remove command verbs like "creating", "create a", "make new".
   If the user uses quotes (e.g. create project "Hirely"), the title MUST be exactly what is inside the quotes.
   If no quotes, infer the most logical concise name (e.g. "Build a mobile app" -> "Mobile App").
3. If "project" is mentioned or implied, intent_type is "create_project".
4. If "task", "bug" or "issue" is mentioned, intent_type is "create_task".
5. Suggest a short, uppercase 3-4 letter project_key (e.g. "HIRE") when creating a project.

Return ONLY a raw JSON object (no markdown, no backticks) with this structure:
{
  "title": "The extracted name",
  "priority": "Low" | "Medium" | "High",
  "task_type": "story" | "bug" | "task",
  "description": "Any extra details found in the input",
  "intent_type": "create_task" | "create_project",
  "project_key": "KEY"
}`

// ParseIntent sends the text to the language model and parses the JSON
// contract out of its reply. Returns nil on a missing credential, an
// API error, an empty reply or unparseable JSON; none of these block
// the caller.
func (s *IntentService) ParseIntent(ctx context.Context, text string) *Intent {
	if s.client == nil {
		slog.WarnContext(ctx, "intent parsing skipped: no model credential configured")
		return nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(intentPrompt, text),
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		slog.ErrorContext(ctx, "intent model call failed", "error", err)
		return nil
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "intent model returned no choices")
		return nil
	}

	raw := stripCodeFences(resp.Choices[0].Message.Content)

	var intent Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		slog.ErrorContext(ctx, "intent response was not valid JSON", "error", err, "raw", raw)
		return nil
	}

	// The model sometimes drops the title; recover it from quotes in
	// the user input before giving up on it.
	if intent.Title == "" {
		intent.Title = FallbackTitle(text)
	}

	return &intent
}

// quotedTitle extracts the first double-quoted substring.
var quotedTitle = regexp.MustCompile(`"([^"]+)"`)

// FallbackTitle derives a literal title from raw input when the model
// is unavailable or unusable: a quoted substring wins, otherwise the
// trimmed input itself.
func FallbackTitle(text string) string {
	if m := quotedTitle.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// stripCodeFences removes accidental markdown fence markers around the
// model's JSON reply.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// CreateFromIntent materializes a parsed intent: a project with its
// default board, or a task in the keyed project's first column. A nil
// intent creates a project from the literal text, preserving the UI's
// fallback behavior.
func (s *IntentService) CreateFromIntent(ctx context.Context, caller auth.Context, text string, intent *Intent) (*model.Project, *model.Task, error) {
	if intent == nil {
		intent = &Intent{
			Title:      FallbackTitle(text),
			IntentType: IntentCreateProject,
		}
	}

	switch intent.IntentType {
	case IntentCreateProject, "":
		project, err := s.projects.CreateProject(ctx, caller, CreateProjectInput{
			Name:        intent.Title,
			Description: intent.Description,
			Key:         intent.ProjectKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return project, nil, nil

	case IntentCreateTask:
		project, err := s.targetProject(ctx, caller, intent.ProjectKey)
		if err != nil {
			return nil, nil, err
		}

		columns, err := s.projectRepo.Columns(ctx, project.ID)
		if err != nil {
			return nil, nil, err
		}
		if len(columns) == 0 {
			return nil, nil, domain.ErrColumnNotFound
		}

		task, err := s.tasks.CreateTask(ctx, caller, project.ID, CreateTaskInput{
			Title:       intent.Title,
			Description: intent.Description,
			ColumnID:    columns[0].ID,
			Priority:    model.TaskPriority(intent.Priority),
			TaskType:    model.TaskType(intent.TaskType),
		})
		if err != nil {
			return nil, nil, err
		}
		return project, task, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown intent type %q", domain.ErrInvalidInput, intent.IntentType)
	}
}

// targetProject resolves the project a task intent lands in: by key
// when the model suggested one, otherwise the newest project.
func (s *IntentService) targetProject(ctx context.Context, caller auth.Context, key string) (*model.Project, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	if key != "" {
		project, err := s.projectRepo.FindByKey(ctx, membership.OrganizationID, strings.ToUpper(key))
		if err == nil {
			return project, nil
		}
	}

	projects, err := s.projectRepo.ListByOrganization(ctx, membership.OrganizationID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return projects[0], nil
}

var _ ChatCompleter = (*openai.Client)(nil)
