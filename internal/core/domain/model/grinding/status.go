package grinding

import (
	"fmt"

	"flourmill/internal/pkg/errs"
)

// DefaultMachineID identifies the mill's single grinding line. Jobs carry it
// so the record stays meaningful if a second line is ever commissioned.
const DefaultMachineID = "GRINDING-001"

// JobStatus is the grinding job lifecycle state.
//
// State transitions:
//
//	READY ──> STARTED ──> STOPPED
//
// Jobs are created directly in STARTED; READY only appears for restored
// legacy rows. STOPPED is final and closes the job to further reports.
type JobStatus int

const (
	// JobStatusUnknown represents an invalid or undefined status.
	JobStatusUnknown JobStatus = iota

	// JobReady means the job exists but milling has not begun.
	JobReady

	// JobStarted means the mill is running and accepts hourly reports.
	JobStarted

	// JobStopped means milling finished; no further reports are accepted.
	JobStopped
)

func getJobStatusStrings() map[JobStatus]string {
	return map[JobStatus]string{
		JobStatusUnknown: "UNKNOWN",
		JobReady:         "READY",
		JobStarted:       "STARTED",
		JobStopped:       "STOPPED",
	}
}

// JobStatusFromString maps a persisted status name back to its JobStatus.
func JobStatusFromString(s string) (JobStatus, error) {
	for st, name := range getJobStatusStrings() {
		if name == s && st != JobStatusUnknown {
			return st, nil
		}
	}
	return JobStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"grinding status",
		fmt.Errorf("%q is not a known grinding status", s),
	)
}

// String returns the persisted name of the status.
func (s JobStatus) String() string {
	if str, ok := getJobStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the JobStatus holds one of the defined values.
func (s JobStatus) Validate() error {
	if _, ok := getJobStatusStrings()[s]; !ok || s == JobStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"grinding status",
			fmt.Errorf("%d is not a valid grinding status", s),
		)
	}
	return nil
}

// Stop transitions STARTED -> STOPPED.
func (s JobStatus) Stop() (JobStatus, error) {
	if s != JobStarted {
		return JobStatusUnknown, errs.NewInvalidStateTransitionError(
			"grinding job", s.String(), JobStopped.String(),
		)
	}
	return JobStopped, nil
}

// SourceBinStatus tracks a 12HR bin's place in the grinding feed order.
type SourceBinStatus int

const (
	// SourceBinStatusUnknown represents an invalid or undefined status.
	SourceBinStatusUnknown SourceBinStatus = iota

	// SourceBinPending means the bin is queued behind the one in use.
	SourceBinPending

	// SourceBinInUse means the bin is currently feeding the mill.
	SourceBinInUse

	// SourceBinEmptied means the bin has been drained.
	SourceBinEmptied
)

func getSourceBinStatusStrings() map[SourceBinStatus]string {
	return map[SourceBinStatus]string{
		SourceBinStatusUnknown: "UNKNOWN",
		SourceBinPending:       "PENDING",
		SourceBinInUse:         "IN_USE",
		SourceBinEmptied:       "EMPTIED",
	}
}

// SourceBinStatusFromString maps a persisted name back to its SourceBinStatus.
func SourceBinStatusFromString(s string) (SourceBinStatus, error) {
	for st, name := range getSourceBinStatusStrings() {
		if name == s && st != SourceBinStatusUnknown {
			return st, nil
		}
	}
	return SourceBinStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"source bin status",
		fmt.Errorf("%q is not a known source bin status", s),
	)
}

// String returns the persisted name of the status.
func (s SourceBinStatus) String() string {
	if str, ok := getSourceBinStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
