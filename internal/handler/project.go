// internal/handler/project.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type ProjectResponse struct {
	BaseResponse
	Project *model.Project `json:"project"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var input service.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	project, err := h.projectService.CreateProject(r.Context(), c, input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ProjectResponse{BaseResponse: BaseResponse{Ok: true}, Project: project})
}

type ProjectListResponse struct {
	BaseResponse
	Projects []*model.Project `json:"projects"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), c)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProjectListResponse{BaseResponse: BaseResponse{Ok: true}, Projects: projects})
}

type BoardResponse struct {
	BaseResponse
	Board *service.Board `json:"board"`
}

func (h *ProjectHandler) Board(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	projectID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	board, err := h.projectService.GetBoard(r.Context(), c, projectID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BoardResponse{BaseResponse: BaseResponse{Ok: true}, Board: board})
}
