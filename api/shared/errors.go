/* errors.go
 * Sentinel errors for player action failures. Every rejected action wraps one of
 * these so handlers can classify failures with errors.Is without string matching
 * Authors: Zachary Bower
 */

package shared

import "errors"

var (
	// ErrInvalidAction covers wrong phase, wrong turn, or acting while not a participant
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidSelection covers names outside the fixed enumerations and
	// selections that are already banned or picked
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCapacityExceeded covers full parties and exhausted ban/pick quotas
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrConflictingClaim covers mismatched or non-summing result reports;
	// recoverable by both sides re-submitting
	ErrConflictingClaim = errors.New("conflicting claim")

	// ErrNotAuthorized covers non-host or non-admin attempts at privileged actions
	ErrNotAuthorized = errors.New("not authorized")
)
