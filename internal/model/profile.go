// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the identity provider's user record for display and
// foreign-key purposes. The ID is the identity provider's user id, so
// no default is generated here.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"type:text" json:"full_name"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the best available human-readable name.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
