package services

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrAuthFailure       = errors.New("invalid credentials")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrRecipeUnavailable = errors.New("recipe not found upstream")

	// ErrAlreadySaved is informational: the user already has this recipe
	// bookmarked, nothing was changed.
	ErrAlreadySaved = errors.New("recipe already saved")
)

// WeakPasswordError reports which password rule was not met.
type WeakPasswordError struct {
	Rule string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("weak password: %s", e.Rule)
}
