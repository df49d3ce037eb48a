// internal/handler/sprint.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
)

type SprintHandler struct {
	sprintService *service.SprintService
}

func NewSprintHandler(sprintService *service.SprintService) *SprintHandler {
	return &SprintHandler{sprintService: sprintService}
}

type SprintResponse struct {
	BaseResponse
	Sprint *model.Sprint `json:"sprint"`
}

func (h *SprintHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	projectID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.CreateSprintInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	sprint, err := h.sprintService.CreateSprint(r.Context(), c, projectID, input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SprintResponse{BaseResponse: BaseResponse{Ok: true}, Sprint: sprint})
}

type SprintListResponse struct {
	BaseResponse
	Sprints []*model.Sprint `json:"sprints"`
}

func (h *SprintHandler) List(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	projectID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	sprints, err := h.sprintService.ListSprints(r.Context(), c, projectID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SprintListResponse{BaseResponse: BaseResponse{Ok: true}, Sprints: sprints})
}

func (h *SprintHandler) Start(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	sprintID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.StartSprintInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	sprint, err := h.sprintService.StartSprint(r.Context(), c, sprintID, input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SprintResponse{BaseResponse: BaseResponse{Ok: true}, Sprint: sprint})
}

func (h *SprintHandler) Complete(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	sprintID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	sprint, err := h.sprintService.CompleteSprint(r.Context(), c, sprintID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SprintResponse{BaseResponse: BaseResponse{Ok: true}, Sprint: sprint})
}
