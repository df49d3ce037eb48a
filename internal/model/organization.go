// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// ValidRole reports whether r is a role the membership layer accepts.
func ValidRole(r MemberRole) bool {
	return r == RoleAdmin || r == RoleMember
}

// Organization is the tenancy root. Every project, sprint, task and
// invitation transitively scopes to exactly one organization.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Slug      string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Members []Membership `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
}

// Membership links a user to an organization with a role. It is the
// sole authorization anchor: every organization-scoped mutation first
// resolves the caller's membership row.
type Membership struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_org_user" json:"organization_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_org_user" json:"user_id"`
	Role           MemberRole `gorm:"type:text;not null;default:'member'" json:"role"`
	JoinedAt       time.Time  `gorm:"autoCreateTime" json:"joined_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Profile      Profile      `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

func (Membership) TableName() string { return "organization_members" }

// IsAdmin reports whether the membership grants privileged mutations.
func (m *Membership) IsAdmin() bool { return m.Role == RoleAdmin }
