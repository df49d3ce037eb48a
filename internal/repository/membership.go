// internal/repository/membership.go
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

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	UpdateRole(ctx context.Context, id, orgID uuid.UUID, role model.MemberRole) (int64, error)
	Delete(ctx context.Context, id, orgID uuid.UUID) (int64, error)
	CountAdmins(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

// FindByUser returns the first membership for the user. The data model
// allows more than one, but the application assumes a single tenancy
// per user and always works with the first row found.
func (r *MembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	if err := r.db.WithContext(ctx).
		Order("joined_at ASC").
		First(&membership, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoMembership
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &membership, nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	if err := r.db.WithContext(ctx).First(&membership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &membership, nil
}

func (r *MembershipRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("organization_id = ?", orgID).
		Order("joined_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return memberships, nil
}

// UpdateRole changes a member's role. The predicate includes both the
// row id and the organization id so an admin of one organization can
// never mutate membership rows in another. Returns rows affected.
func (r *MembershipRepository) UpdateRole(ctx context.Context, id, orgID uuid.UUID, role model.MemberRole) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("role", role)
	if result.Error != nil {
		return 0, fmt.Errorf("updating member role: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a membership row, scoped to the caller's organization.
func (r *MembershipRepository) Delete(ctx context.Context, id, orgID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&model.Membership{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting membership: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MembershipRepository) CountAdmins(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("organization_id = ? AND role = ?", orgID, model.RoleAdmin).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return count, nil
}
