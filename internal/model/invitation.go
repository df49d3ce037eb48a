// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// Invitation is a pending offer to join an organization. The unique
// index on (organization_id, email) makes duplicate invites surface
// as a conflict at insert time.
type Invitation struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_org_email" json:"organization_id"`
	Email          string           `gorm:"type:citext;not null;uniqueIndex:idx_org_email" json:"email"`
	Role           MemberRole       `gorm:"type:text;not null;default:'member'" json:"role"`
	InvitedBy      uuid.UUID        `gorm:"type:uuid;not null" json:"invited_by"`
	Status         InvitationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
