package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tracehq/trace/internal/model"
)

func TestDefaultColumns(t *testing.T) {
	projectID := uuid.New()
	columns := model.DefaultColumns(projectID)

	expected := []struct {
		name     string
		position int
	}{
		{"To Do", 0},
		{"In Progress", 1},
		{"Done", 2},
	}

	assert.Len(t, columns, len(expected))
	for i, want := range expected {
		assert.Equal(t, want.name, columns[i].Name)
		assert.Equal(t, want.position, columns[i].Position)
		assert.Equal(t, projectID, columns[i].ProjectID)
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, model.ValidRole(model.RoleAdmin))
	assert.True(t, model.ValidRole(model.RoleMember))
	assert.False(t, model.ValidRole("owner"))

	assert.True(t, model.ValidPriority(model.PriorityUrgent))
	assert.False(t, model.ValidPriority("Critical"))

	assert.True(t, model.ValidTaskType(model.TypeEpic))
	assert.False(t, model.ValidTaskType("chore"))
}

func TestProfileDisplayName(t *testing.T) {
	withName := model.Profile{Email: "a@example.com", FullName: "Ariel Smith"}
	assert.Equal(t, "Ariel Smith", withName.DisplayName())

	emailOnly := model.Profile{Email: "a@example.com"}
	assert.Equal(t, "a@example.com", emailOnly.DisplayName())
}
