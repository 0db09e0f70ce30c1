package domain

import "errors"

var (
	// ErrInvalidCredentials covers both a bad password and an unknown
	// identifier; callers must never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrForbidden = errors.New("access forbidden")

	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyExists    = errors.New("company already exists")
	ErrPlanningNotFound = errors.New("planning not found")
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyMember signals a duplicate membership mutation, e.g.
	// adding a user to a company it already belongs to.
	ErrAlreadyMember = errors.New("already a member")
	ErrNotMember     = errors.New("not a member")
)
