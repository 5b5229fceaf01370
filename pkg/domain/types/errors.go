package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures across the lifecycle engine. Usecases
// attach the domain tags; repositories attach TagStorage to backend
// failures so the coordinator can tell retryable errors apart from
// final ones.
var (
	// TagValidation marks malformed input. Never retried.
	TagValidation = goerr.NewTag("validation")

	// TagNotFound marks a reference to an unknown entity
	TagNotFound = goerr.NewTag("not_found")

	// TagInvalidTransition marks a state change that violates the
	// entity's transition order
	TagInvalidTransition = goerr.NewTag("invalid_transition")

	// TagConflict marks a cross-entity invariant violation, such as a
	// second active intervention on one incident
	TagConflict = goerr.NewTag("conflict")

	// TagIdempotent marks an operation whose target state was already
	// reached. Treated as success by the coordinator's retry path.
	TagIdempotent = goerr.NewTag("idempotent")

	// TagStorage marks a transient backing-store failure. Only these
	// errors are retried, and only within a cascade.
	TagStorage = goerr.NewTag("storage")

	// TagCascadeFailed marks a cascade whose retries were exhausted.
	// The error carries the entity that failed to update so an
	// operator can reconcile manually.
	TagCascadeFailed = goerr.NewTag("cascade_failed")
)

// IsValidation reports whether err is tagged as a validation failure
func IsValidation(err error) bool {
	return goerr.HasTag(err, TagValidation)
}

// IsNotFound reports whether err is tagged as a missing entity
func IsNotFound(err error) bool {
	return goerr.HasTag(err, TagNotFound)
}

// IsInvalidTransition reports whether err is tagged as a transition violation
func IsInvalidTransition(err error) bool {
	return goerr.HasTag(err, TagInvalidTransition)
}

// IsConflict reports whether err is tagged as an invariant conflict
func IsConflict(err error) bool {
	return goerr.HasTag(err, TagConflict)
}

// IsIdempotent reports whether err means the operation was already applied
func IsIdempotent(err error) bool {
	return goerr.HasTag(err, TagIdempotent)
}

// IsStorage reports whether err is a transient storage failure
func IsStorage(err error) bool {
	return goerr.HasTag(err, TagStorage)
}

// IsCascadeFailed reports whether err is an exhausted cascade
func IsCascadeFailed(err error) bool {
	return goerr.HasTag(err, TagCascadeFailed)
}
