// internal/model/project.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Key            string    `gorm:"type:text" json:"key"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization   `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Columns      []KanbanColumn `gorm:"foreignKey:ProjectID" json:"columns,omitempty"`
}

// KanbanColumn orders a project's board. Position is the rendering
// key; new projects get "To Do", "In Progress", "Done" at 0, 1, 2.
type KanbanColumn struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`

	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (KanbanColumn) TableName() string { return "kanban_columns" }

// DefaultColumns returns the three columns every new project starts with.
func DefaultColumns(projectID uuid.UUID) []*KanbanColumn {
	names := []string{"To Do", "In Progress", "Done"}
	columns := make([]*KanbanColumn, 0, len(names))
	for i, name := range names {
		columns = append(columns, &KanbanColumn{
			ProjectID: projectID,
			Name:      name,
			Position:  i,
		})
	}
	return columns
}
