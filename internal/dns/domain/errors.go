package domain

import "nathanbeddoewebdev/dynucert/internal/domain"

// Re-export shared sentinel errors so DNS callers do not need to import
// the cross-domain package directly.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = domain.ErrNotFound

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = domain.ErrUnauthorized

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = domain.ErrRateLimited

	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = domain.ErrConflict

	// ErrUnavailable indicates the provider could not be reached or
	// answered with a server error. It is never a substitute for
	// ErrNotFound or ErrZoneNotFound.
	ErrUnavailable = domain.ErrUnavailable

	// ErrZoneNotFound indicates no zone in the account matches a name.
	ErrZoneNotFound = domain.ErrZoneNotFound
)
