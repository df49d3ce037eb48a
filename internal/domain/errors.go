// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("insufficient role")

	// Membership-related errors
	ErrNoMembership       = errors.New("user has no organization membership")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrLastAdmin          = errors.New("organization must keep at least one admin")
	ErrInvalidRole        = errors.New("invalid member role")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSlugTaken            = errors.New("organization slug already taken")

	// Project/board-related errors
	ErrProjectNotFound = errors.New("project not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrColumnMismatch  = errors.New("column belongs to a different project")
	ErrTaskNotFound    = errors.New("task not found")

	// Sprint-related errors
	ErrSprintNotFound     = errors.New("sprint not found")
	ErrSprintMismatch     = errors.New("sprint belongs to a different project")
	ErrInvalidSprintState = errors.New("invalid sprint state transition")
	ErrActiveSprintExists = errors.New("project already has an active sprint")

	// Invitation-related errors
	ErrAlreadyInvited     = errors.New("user already invited")
	ErrInvitationNotFound = errors.New("invitation not found")
)
