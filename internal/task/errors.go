// Package task provides the concurrency-safe registry of asynchronous
// plan-generation tasks and the retention worker that evicts settled tasks.
package task

import "errors"

var (
	// ErrNotFound is returned for an unknown task ID.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidTransition is returned for a status edge outside the
	// legal lifecycle graph. This is a protocol violation and is always
	// surfaced, never silently corrected.
	ErrInvalidTransition = errors.New("invalid task transition")

	// ErrDuplicateActiveTask is returned when a session that already has
	// a non-terminal task asks for another one.
	ErrDuplicateActiveTask = errors.New("session already has an active task")
)
