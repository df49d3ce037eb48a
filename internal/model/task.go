// internal/model/task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
	PriorityUrgent TaskPriority = "Urgent"
)

type TaskType string

const (
	TypeStory TaskType = "story"
	TypeTask  TaskType = "task"
	TypeBug   TaskType = "bug"
	TypeEpic  TaskType = "epic"
)

// Task always belongs to exactly one project and one column. Sprint
// assignment is independent and nullable; a nil SprintID means the
// task sits in the backlog. Position orders tasks within a column.
type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"project_id"`
	ColumnID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"column_id"`
	SprintID    *uuid.UUID   `gorm:"type:uuid;index" json:"sprint_id"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Priority    TaskPriority `gorm:"type:text;not null;default:'Medium'" json:"priority"`
	TaskType    TaskType     `gorm:"type:text;not null;default:'task'" json:"task_type"`
	StoryPoints *int         `json:"story_points"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid" json:"assignee_id"`
	DueDate     *time.Time   `json:"due_date"`
	Position    int          `gorm:"not null;default:0" json:"position"`
	CreatedBy   uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Project  Project      `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Column   KanbanColumn `gorm:"foreignKey:ColumnID" json:"column,omitempty"`
	Sprint   *Sprint      `gorm:"foreignKey:SprintID" json:"sprint,omitempty"`
	Assignee *Profile     `gorm:"foreignKey:AssigneeID;references:ID" json:"assignee,omitempty"`
}

// ValidPriority reports whether p is a known priority level.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidTaskType reports whether t is a known task type.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TypeStory, TypeTask, TypeBug, TypeEpic:
		return true
	}
	return false
}
