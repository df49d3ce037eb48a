// internal/handler/intent.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
)

type IntentHandler struct {
	intentService *service.IntentService
}

func NewIntentHandler(intentService *service.IntentService) *IntentHandler {
	return &IntentHandler{intentService: intentService}
}

type IntentRequest struct {
	Text string `json:"text"`

	// Apply creates the project or task the intent describes instead
	// of only returning the parse.
	Apply bool `json:"apply"`
}

type IntentResponse struct {
	BaseResponse
	Intent   *service.Intent `json:"intent"`
	Fallback string          `json:"fallback_title,omitempty"`
	Project  *model.Project  `json:"project,omitempty"`
	Task     *model.Task     `json:"task,omitempty"`
}

// Parse runs the free text through the intent parser. A nil intent is
// not an error; the response carries the literal fallback title so
// the client can proceed either way.
func (h *IntentHandler) Parse(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var input IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if input.Text == "" {
		respondWithError(w, http.StatusBadRequest, "Text is required")
		return
	}

	intent := h.intentService.ParseIntent(r.Context(), input.Text)

	resp := IntentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Intent:       intent,
	}
	if intent == nil {
		resp.Fallback = service.FallbackTitle(input.Text)
	}

	if input.Apply {
		project, task, err := h.intentService.CreateFromIntent(r.Context(), c, input.Text, intent)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		resp.Project = project
		resp.Task = task
	}

	respondWithJSON(w, http.StatusOK, resp)
}
