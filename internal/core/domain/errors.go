package domain

import (
	"errors"
	"fmt"
)

// Authentication and authorization. Lookup failure and secret mismatch
// deliberately collapse into ErrInvalidCredentials so callers cannot
// enumerate accounts.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrRoleNotPermitted     = errors.New("role not permitted")
	ErrRegistrationDisabled = errors.New("registration requires a persistent credential store")
)

// Mutation validation. Both sub-kinds wrap ErrValidation so callers can
// match either the family or the specific failure.
var (
	ErrValidation    = errors.New("invalid input")
	ErrMissingField  = fmt.Errorf("%w: missing required field", ErrValidation)
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a non-negative number", ErrValidation)
)

// Ledger and infrastructure.
var (
	// ErrIDGenerationExhausted is a hard failure: accepting a colliding id
	// would break the per-collection uniqueness invariant.
	ErrIDGenerationExhausted = errors.New("identifier generation attempts exhausted")

	// ErrDirectoryUnavailable marks credential directory infrastructure
	// failures. The auth service absorbs it into the built-in directory
	// fallback; it never reaches an authenticating caller.
	ErrDirectoryUnavailable = errors.New("credential directory unavailable")
)
