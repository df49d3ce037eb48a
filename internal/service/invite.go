// internal/service/invite.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/repository"
)

// InvitationMailer delivers invitation emails. The email package
// provides the Sendgrid-backed implementation; tests substitute a
// stub.
type InvitationMailer interface {
	SendInvitation(to, organizationName, inviterName, acceptURL string) error
}

// InviteService creates invitations and triggers email delivery.
// Email failure never rolls back the invitation row; it is reported as
// a partial success so an admin can resend.
type InviteService struct {
	inviteRepo  repository.InvitationRepositoryIface
	memberRepo  repository.MembershipRepositoryIface
	orgRepo     repository.OrganizationRepositoryIface
	profileRepo repository.ProfileRepositoryIface
	mailer      InvitationMailer
	baseURL     string
	validate    *validator.Validate
}

func NewInviteService(
	inviteRepo repository.InvitationRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	profileRepo repository.ProfileRepositoryIface,
	mailer InvitationMailer,
	baseURL string,
) *InviteService {
	return &InviteService{
		inviteRepo:  inviteRepo,
		memberRepo:  memberRepo,
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
		mailer:      mailer,
		baseURL:     baseURL,
		validate:    validator.New(),
	}
}

type InviteMemberInput struct {
	Email string           `json:"email" validate:"required,email"`
	Role  model.MemberRole `json:"role"`
}

// InviteResult reports the outcome of an invitation. EmailSent false
// with a non-empty EmailError means the invitation row exists but the
// notification needs a manual resend.
type InviteResult struct {
	Invitation *model.Invitation `json:"invitation"`
	EmailSent  bool              `json:"email_sent"`
	EmailError string            `json:"email_error,omitempty"`
}

// InviteMember records an invitation for the caller's organization and
// sends the invitation email. A duplicate (organization, email) pair
// returns domain.ErrAlreadyInvited without sending anything.
func (s *InviteService) InviteMember(ctx context.Context, caller auth.Context, input InviteMemberInput) (*InviteResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}
	if input.Role == "" {
		input.Role = model.RoleMember
	}
	if !model.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, membership.OrganizationID)
	if err != nil {
		return nil, err
	}

	invitation := &model.Invitation{
		OrganizationID: membership.OrganizationID,
		Email:          input.Email,
		Role:           input.Role,
		InvitedBy:      caller.UserID,
	}
	if err := s.inviteRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	return s.deliver(ctx, caller, org, invitation), nil
}

// ResendInvite re-sends the email for an existing pending invitation.
// Admin only.
func (s *InviteService) ResendInvite(ctx context.Context, caller auth.Context, invitationID uuid.UUID) (*InviteResult, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if !membership.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	invitation, err := s.inviteRepo.FindByID(ctx, invitationID, membership.OrganizationID)
	if err != nil {
		return nil, err
	}
	if invitation.Status != model.InvitationPending {
		return nil, domain.ErrInvitationNotFound
	}

	org, err := s.orgRepo.FindByID(ctx, membership.OrganizationID)
	if err != nil {
		return nil, err
	}

	return s.deliver(ctx, caller, org, invitation), nil
}

// RevokeInvitation deletes a pending invitation. Admin only.
func (s *InviteService) RevokeInvitation(ctx context.Context, caller auth.Context, invitationID uuid.UUID) error {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if !membership.IsAdmin() {
		return domain.ErrForbidden
	}

	affected, err := s.inviteRepo.Delete(ctx, invitationID, membership.OrganizationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

// ListInvitations returns the pending invitations of the caller's
// organization.
func (s *InviteService) ListInvitations(ctx context.Context, caller auth.Context) ([]*model.Invitation, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return s.inviteRepo.ListPending(ctx, membership.OrganizationID)
}

// deliver sends the invitation email and folds the outcome into an
// InviteResult. The invitation row is already durable at this point.
func (s *InviteService) deliver(ctx context.Context, caller auth.Context, org *model.Organization, invitation *model.Invitation) *InviteResult {
	inviterName := caller.Email
	if profile, err := s.profileRepo.FindByID(ctx, caller.UserID); err == nil {
		inviterName = profile.DisplayName()
	}

	acceptURL := s.baseURL + "/login"
	if err := s.mailer.SendInvitation(invitation.Email, org.Name, inviterName, acceptURL); err != nil {
		slog.ErrorContext(ctx, "invitation email failed",
			"invitation_id", invitation.ID,
			"error", err,
		)
		return &InviteResult{
			Invitation: invitation,
			EmailSent:  false,
			EmailError: "invitation created, but the email could not be sent",
		}
	}

	return &InviteResult{Invitation: invitation, EmailSent: true}
}
