// internal/auth/context.go
package auth

import (
	"github.com/google/uuid"
)

// Context carries the authenticated caller's identity into every core
// operation. It is passed explicitly; no service reads identity from
// ambient request state.
type Context struct {
	UserID uuid.UUID
	Email  string
}

// ContextFromClaims builds the caller identity from validated token
// claims. The user id must be a UUID issued by the identity provider.
func ContextFromClaims(claims *Claims) (Context, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Context{}, err
	}
	return Context{UserID: userID, Email: claims.Email}, nil
}
