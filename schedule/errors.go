package schedule

import "errors"

var (
	// ErrRunInProgress is returned when a run is requested while another is active.
	ErrRunInProgress = errors.New("ingestion run already in progress")

	// ErrInvalidInterval is returned for an interval of less than one minute.
	ErrInvalidInterval = errors.New("fetch interval must be at least one minute")

	// ErrAlreadyStarted is returned by Start on a running scheduler.
	ErrAlreadyStarted = errors.New("scheduler already started")

	// ErrRunnerRequired is returned when no runner is provided.
	ErrRunnerRequired = errors.New("runner required")
)
