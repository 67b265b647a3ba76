// file: internals/features/outpasses/outpass/service/errors.go
package service

import "errors"

// Business taxonomy, surfaced to callers as terminal per-call outcomes.
// Persistence failures are deliberately not wrapped into these.
var (
	// ErrActiveRequestExists: the single-active-request invariant would be
	// violated; the caller must resolve the conflicting request first.
	ErrActiveRequestExists = errors.New("student already has an active outpass")

	// ErrCodeNotFound: neither the exit nor the return lookup matched. Kept
	// generic on purpose so the response never leaks which branch failed.
	ErrCodeNotFound = errors.New("invalid code")
)
