// internal/handler/membership.go
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

type MembershipHandler struct {
	membershipService *service.MembershipService
}

func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

type MeResponse struct {
	BaseResponse
	Membership *model.Membership `json:"membership"`
}

// Me returns the caller's membership, or 404 to route the client into
// onboarding.
func (h *MembershipHandler) Me(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	membership, err := h.membershipService.ResolveMembership(r.Context(), c.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MeResponse{BaseResponse: BaseResponse{Ok: true}, Membership: membership})
}

type OnboardingRequest struct {
	OrganizationName string `json:"organization_name"`
}

// Onboard accepts a pending invitation or provisions a default
// organization for a caller without membership.
func (h *MembershipHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var input OnboardingRequest
	if r.Body != nil {
		// The body is optional; an empty one provisions the default
		// organization name.
		_ = json.NewDecoder(r.Body).Decode(&input)
		defer r.Body.Close()
	}

	membership, err := h.membershipService.EnsureMembership(r.Context(), c, input.OrganizationName)
	if err != nil {
		slog.ErrorContext(r.Context(), "onboarding failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MeResponse{BaseResponse: BaseResponse{Ok: true}, Membership: membership})
}

type MemberListResponse struct {
	BaseResponse
	Members []*model.Membership `json:"members"`
}

func (h *MembershipHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	members, err := h.membershipService.ListMembers(r.Context(), c)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MemberListResponse{BaseResponse: BaseResponse{Ok: true}, Members: members})
}

type UpdateRoleRequest struct {
	Role model.MemberRole `json:"role"`
}

func (h *MembershipHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	membershipID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.membershipService.UpdateMemberRole(r.Context(), c, membershipID, input.Role); err != nil {
		slog.ErrorContext(r.Context(), "role update failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *MembershipHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	membershipID, ok := pathUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.membershipService.RemoveMember(r.Context(), c, membershipID); err != nil {
		slog.ErrorContext(r.Context(), "member removal failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
