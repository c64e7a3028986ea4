package domain

import "errors"

// Sentinel errors for cross-package error classification.
// Providers and the challenge solver wrap these so callers can handle
// error categories uniformly without inspecting provider payloads.
//
//	return fmt.Errorf("failed to delete record: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// a record that already exists.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable indicates the provider could not be reached at all:
	// DNS failure, connection refused, timeout. Distinct from ErrNotFound
	// so a network blip is never mistaken for a missing zone.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrZoneNotFound indicates that no domain registered in the provider
	// account is an ancestor of the requested name.
	ErrZoneNotFound = errors.New("no matching zone")
)
