// Package apperrors defines the sentinel errors shared across services,
// repositories, and handlers. Handlers map them onto HTTP status codes.
package apperrors

import "errors"

// Domain entity errors represent missing entities. These map to 404.
var (
	// ErrProfileNotFound indicates that a profile with the given ID does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrScenarioNotFound indicates that a saved scenario does not exist for the user.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrShareNotFound indicates that a scenario share record does not exist.
	ErrShareNotFound = errors.New("scenario share not found")
)

// Validation errors represent requests rejected before any storage or
// network effect. These map to 400 and are never retried.
var (
	// ErrEmptyScenarioDescription indicates a scenario submission with no text.
	ErrEmptyScenarioDescription = errors.New("scenario description cannot be empty")

	// ErrInvalidTimeframe indicates a timeframe outside the supported set.
	ErrInvalidTimeframe = errors.New("timeframe must be 3, 6, or 12 months")

	// ErrInvalidConsentStatus indicates a consent value other than accepted/rejected.
	ErrInvalidConsentStatus = errors.New("consent status must be accepted or rejected")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidRange indicates an unknown performance range preset.
	ErrInvalidRange = errors.New("unknown performance range")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Projection errors cover the reasoning-service round trip. Transport and
// decode failures map to 502; a superseded projection maps to 409. In both
// cases no partial projection state is retained and submission re-enables.
var (
	// ErrProjectionFailed indicates the reasoning service call failed or
	// returned an undecodable payload.
	ErrProjectionFailed = errors.New("scenario projection failed")

	// ErrProjectionSuperseded indicates a newer scenario was submitted for
	// the same user before this projection completed; the result is dropped.
	ErrProjectionSuperseded = errors.New("projection superseded by a newer request")
)

// Operation failure errors represent system-level storage failures.
var (
	ErrFailedToRetrieveProfiles  = errors.New("failed to retrieve profiles")
	ErrFailedToRetrieveScenarios = errors.New("failed to retrieve scenarios")
	ErrFailedToSaveScenario      = errors.New("failed to save scenario")
	ErrFailedToDeleteScenario    = errors.New("failed to delete scenario")
	ErrFailedToRecordConsent     = errors.New("failed to record consent")
	ErrFailedToRetrieveShares    = errors.New("failed to retrieve shared scenarios")
)
