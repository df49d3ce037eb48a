// internal/model/sprint.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SprintStatus string

const (
	SprintFuture SprintStatus = "future"
	SprintActive SprintStatus = "active"
	SprintClosed SprintStatus = "closed"
)

// Sprint is a time-boxed grouping of tasks. Lifecycle is
// future -> active -> closed; closed is terminal. The mutation layer
// keeps at most one active sprint per project.
type Sprint struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID    `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Goal      string       `gorm:"type:text" json:"goal"`
	StartDate *time.Time   `json:"start_date"`
	EndDate   *time.Time   `json:"end_date"`
	Status    SprintStatus `gorm:"type:text;not null;default:'future'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
