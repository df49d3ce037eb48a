// internal/handler/task.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type TaskResponse struct {
	BaseResponse
	Task *model.Task `json:"task"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	projectID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	task, err := h.taskService.CreateTask(r.Context(), c, projectID, input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, TaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), c, taskID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.taskService.UpdateTask(r.Context(), c, taskID, input); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type MoveColumnRequest struct {
	ColumnID uuid.UUID `json:"column_id"`
	Position *int      `json:"position"`
}

// MoveColumn is the drag-and-drop endpoint: only the column (and
// position) change is durable.
func (h *TaskHandler) MoveColumn(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input MoveColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if input.ColumnID == uuid.Nil {
		respondWithError(w, http.StatusBadRequest, "Column ID is required")
		return
	}

	if err := h.taskService.UpdateTaskColumn(r.Context(), c, taskID, input.ColumnID, input.Position); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type MoveSprintRequest struct {
	SprintID *uuid.UUID `json:"sprint_id"`
}

// MoveSprint assigns the task to a sprint; a null sprint_id sends it
// back to the backlog.
func (h *TaskHandler) MoveSprint(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input MoveSprintRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.taskService.UpdateTaskSprint(r.Context(), c, taskID, input.SprintID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), c, taskID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
