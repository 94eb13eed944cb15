package domain

import "errors"

// Sentinel errors shared across layers. Transport maps these to HTTP codes.
var (
	// ErrIndexUnavailable means the document index failed to load at startup.
	// Search stays disabled for the lifetime of the process; this is
	// recoverable in the sense that the rest of the service keeps working.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrSessionNotFound means no session state is stored for the caller.
	ErrSessionNotFound = errors.New("session state not found")

	// ErrSessionExpired means the stored session state is older than the
	// validity window.
	ErrSessionExpired = errors.New("session state expired")

	// ErrPageMismatch means the stored session state belongs to a different
	// page than the one being restored.
	ErrPageMismatch = errors.New("session state saved for a different page")

	// ErrInvalidFilter means a facet filter value is outside the known
	// vocabulary or bounds.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrMissingURL means an index record has no navigation destination.
	ErrMissingURL = errors.New("document URL is required")
)
