package transfer

import (
	"fmt"

	"flourmill/internal/pkg/errs"
)

// Status is the lifecycle state shared by both transfer modes.
//
// State transitions:
//
//	READY ──> IN_PROGRESS ──> COMPLETED
//
// COMPLETED is final. Starting an already started or completed transfer is an
// invalid transition, never a silent no-op.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Ready means the transfer exists but has not started.
	Ready

	// InProgress means product is moving.
	InProgress

	// Completed means the transfer finished; no further transitions.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Ready:         "READY",
		InProgress:    "IN_PROGRESS",
		Completed:     "COMPLETED",
	}
}

// StatusFromString maps a persisted status name back to its Status value.
func StatusFromString(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if name == s && st != StatusUnknown {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transfer status",
		fmt.Errorf("%q is not a known transfer status", s),
	)
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"transfer status",
			fmt.Errorf("%d is not a valid transfer status", s),
		)
	}
	return nil
}

// Start transitions READY -> IN_PROGRESS.
func (s Status) Start() (Status, error) {
	if s != Ready {
		return StatusUnknown, errs.NewInvalidStateTransitionError("transfer", s.String(), InProgress.String())
	}
	return InProgress, nil
}

// Stop transitions IN_PROGRESS -> COMPLETED.
func (s Status) Stop() (Status, error) {
	if s != InProgress {
		return StatusUnknown, errs.NewInvalidStateTransitionError("transfer", s.String(), Completed.String())
	}
	return Completed, nil
}
