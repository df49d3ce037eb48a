// internal/handler/invite.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/service"
)

type InviteHandler struct {
	inviteService *service.InviteService
}

func NewInviteHandler(inviteService *service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

type InviteResponse struct {
	BaseResponse
	Result *service.InviteResult `json:"result"`
}

func (h *InviteHandler) Invite(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var input service.InviteMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	result, err := h.inviteService.InviteMember(r.Context(), c, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "invite failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, InviteResponse{BaseResponse: BaseResponse{Ok: true}, Result: result})
}

type InvitationListResponse struct {
	BaseResponse
	Invitations []*model.Invitation `json:"invitations"`
}

func (h *InviteHandler) List(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	invitations, err := h.inviteService.ListInvitations(r.Context(), c)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InvitationListResponse{BaseResponse: BaseResponse{Ok: true}, Invitations: invitations})
}

func (h *InviteHandler) Resend(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	invitationID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	result, err := h.inviteService.ResendInvite(r.Context(), c, invitationID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InviteResponse{BaseResponse: BaseResponse{Ok: true}, Result: result})
}

func (h *InviteHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	invitationID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.inviteService.RevokeInvitation(r.Context(), c, invitationID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
