package errs

import cr "github.com/cockroachdb/errors"

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these so callers can classify them with errors.Is.
var (
	// State machine precondition violated. Never retried.
	ErrInvalidTransition = cr.New("invalid transition")
	// Optimistic-concurrency conflict. The caller should refetch and decide.
	ErrStaleAssignment = cr.New("stale assignment")
	// Missing or malformed input. Never retried.
	ErrValidation = cr.New("validation error")
	// Unknown booking, request, specialist or commission id.
	ErrNotFound = cr.New("not found")
	// Actor is authenticated but not allowed to act on the target.
	ErrForbidden = cr.New("forbidden")
)

// Is reports whether err or any of its causes matches target, including marks
// applied with Mark. Use it instead of errors.Is for the taxonomy above.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
