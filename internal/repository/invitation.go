// internal/repository/invitation.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/model"
	"gorm.io/gorm"
)

type InvitationRepositoryIface interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id, orgID uuid.UUID) (*model.Invitation, error)
	FindPendingByEmail(ctx context.Context, email string) (*model.Invitation, error)
	ListPending(ctx context.Context, orgID uuid.UUID) ([]*model.Invitation, error)
	MarkAccepted(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id, orgID uuid.UUID) (int64, error)
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create inserts an invitation. A duplicate (organization, email) pair
// maps to domain.ErrAlreadyInvited via the unique index.
func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInvited
		}
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id, orgID uuid.UUID) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).
		First(&invitation, "id = ? AND organization_id = ?", id, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &invitation, nil
}

// FindPendingByEmail returns the oldest pending invitation for the
// email. Only one is processed at onboarding even if several exist.
func (r *InvitationRepository) FindPendingByEmail(ctx context.Context, email string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).
		Where("email = ? AND status = ?", email, model.InvitationPending).
		Order("created_at ASC").
		First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding pending invitation: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) ListPending(ctx context.Context, orgID uuid.UUID) ([]*model.Invitation, error) {
	var invitations []*model.Invitation
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", orgID, model.InvitationPending).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invitations, nil
}

func (r *InvitationRepository) MarkAccepted(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Invitation{}).
		Where("id = ?", id).
		Update("status", model.InvitationAccepted).Error; err != nil {
		return fmt.Errorf("accepting invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) Delete(ctx context.Context, id, orgID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&model.Invitation{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting invitation: %w", result.Error)
	}
	return result.RowsAffected, nil
}
