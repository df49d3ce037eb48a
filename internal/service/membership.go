// internal/service/membership.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"github.com/tracehq/trace/internal/repository"
)

// DefaultOrganizationName is used when a user reaches onboarding
// without naming a workspace.
const DefaultOrganizationName = "My Project"

// slugAttempts bounds the retry loop on slug collisions.
const slugAttempts = 5

// MembershipService resolves the caller's organization membership and
// performs the role-gated member mutations. It is the authorization
// anchor for every other service.
type MembershipService struct {
	memberRepo  repository.MembershipRepositoryIface
	orgRepo     repository.OrganizationRepositoryIface
	profileRepo repository.ProfileRepositoryIface
	inviteRepo  repository.InvitationRepositoryIface
	validate    *validator.Validate
}

func NewMembershipService(
	memberRepo repository.MembershipRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	profileRepo repository.ProfileRepositoryIface,
	inviteRepo repository.InvitationRepositoryIface,
) *MembershipService {
	return &MembershipService{
		memberRepo:  memberRepo,
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
		inviteRepo:  inviteRepo,
		validate:    validator.New(),
	}
}

// ResolveMembership returns the caller's membership or
// domain.ErrNoMembership, which routes the caller into onboarding.
func (s *MembershipService) ResolveMembership(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	return s.memberRepo.FindByUser(ctx, userID)
}

// EnsureMembership resolves the caller's membership, accepting a
// pending invitation or provisioning a default organization when none
// exists. This is the onboarding entry point.
func (s *MembershipService) EnsureMembership(ctx context.Context, caller auth.Context, orgName string) (*model.Membership, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err == nil {
		return membership, nil
	}
	if !errors.Is(err, domain.ErrNoMembership) {
		return nil, err
	}

	// A pending invitation for the caller's email wins over creating a
	// fresh organization.
	membership, err = s.acceptPendingInvitation(ctx, caller)
	if err == nil {
		return membership, nil
	}
	if !errors.Is(err, domain.ErrInvitationNotFound) {
		return nil, err
	}

	return s.provisionOrganization(ctx, caller, orgName)
}

// acceptPendingInvitation joins the caller to the organization of the
// oldest pending invitation addressed to their email. Only the first
// matching invitation is processed.
func (s *MembershipService) acceptPendingInvitation(ctx context.Context, caller auth.Context) (*model.Membership, error) {
	invitation, err := s.inviteRepo.FindPendingByEmail(ctx, caller.Email)
	if err != nil {
		return nil, err
	}

	if err := s.upsertProfile(ctx, caller); err != nil {
		return nil, err
	}

	membership := &model.Membership{
		OrganizationID: invitation.OrganizationID,
		UserID:         caller.UserID,
		Role:           invitation.Role,
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("joining organization: %w", err)
	}

	if err := s.inviteRepo.MarkAccepted(ctx, invitation.ID); err != nil {
		return nil, fmt.Errorf("marking invitation accepted: %w", err)
	}

	return membership, nil
}

// provisionOrganization creates a default organization with the caller
// as admin. Slug uniqueness is kept by suffixing a random numeric
// token and retrying on collision.
func (s *MembershipService) provisionOrganization(ctx context.Context, caller auth.Context, name string) (*model.Membership, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultOrganizationName
	}

	if err := s.upsertProfile(ctx, caller); err != nil {
		return nil, err
	}

	base := slug.Make(name)
	var org *model.Organization
	for attempt := 0; attempt < slugAttempts; attempt++ {
		org = &model.Organization{
			Name:    name,
			Slug:    fmt.Sprintf("%s-%d", base, rand.Intn(10000)),
			OwnerID: caller.UserID,
		}

		err := s.orgRepo.Create(ctx, org)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrSlugTaken) {
			org = nil
			continue
		}
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrSlugTaken
	}

	membership := &model.Membership{
		OrganizationID: org.ID,
		UserID:         caller.UserID,
		Role:           model.RoleAdmin,
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("joining new organization: %w", err)
	}

	return membership, nil
}

// upsertProfile heals the profile row before membership writes so
// foreign keys and member lists always have a display record.
func (s *MembershipService) upsertProfile(ctx context.Context, caller auth.Context) error {
	profile := &model.Profile{
		ID:    caller.UserID,
		Email: caller.Email,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// ListMembers returns the members of the caller's organization with
// profiles attached for display.
func (s *MembershipService) ListMembers(ctx context.Context, caller auth.Context) ([]*model.Membership, error) {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return s.memberRepo.ListByOrganization(ctx, membership.OrganizationID)
}

// UpdateMemberRole changes another member's role. Admin only. The
// update predicate is scoped to the caller's organization so an admin
// of one organization can never touch rows in another.
func (s *MembershipService) UpdateMemberRole(ctx context.Context, caller auth.Context, membershipID uuid.UUID, role model.MemberRole) error {
	if !model.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if !membership.IsAdmin() {
		return domain.ErrForbidden
	}

	// Demoting the final admin would orphan the organization.
	if membership.ID == membershipID && role != model.RoleAdmin {
		admins, err := s.memberRepo.CountAdmins(ctx, membership.OrganizationID)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	affected, err := s.memberRepo.UpdateRole(ctx, membershipID, membership.OrganizationID, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

// RemoveMember deletes a membership row. Admins can remove anyone in
// their organization; a non-admin may only remove themselves (leave).
func (s *MembershipService) RemoveMember(ctx context.Context, caller auth.Context, membershipID uuid.UUID) error {
	membership, err := s.memberRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return err
	}

	if !membership.IsAdmin() && membership.ID != membershipID {
		return domain.ErrForbidden
	}

	target, err := s.memberRepo.FindByID(ctx, membershipID)
	if err != nil {
		return err
	}
	if target.OrganizationID != membership.OrganizationID {
		return domain.ErrMembershipNotFound
	}

	if target.IsAdmin() {
		admins, err := s.memberRepo.CountAdmins(ctx, membership.OrganizationID)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	affected, err := s.memberRepo.Delete(ctx, membershipID, membership.OrganizationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}
