package order

import (
	"fmt"

	"flourmill/internal/pkg/errs"
)

// Stage represents the production stage of an order. It implements a strictly
// linear state machine: every transition moves forward, none can be reversed,
// and out-of-order calls are rejected rather than silently accepted.
//
// Stage progression:
//
//	CREATED -> PLANNED -> TRANSFER_PRE_TO_24_IN_PROGRESS
//	        -> TRANSFER_PRE_TO_24_COMPLETED -> TRANSFER_24_TO_12_COMPLETED
//	        -> GRINDING_IN_PROGRESS -> GRINDING_COMPLETED -> PACKAGING_COMPLETED
//
// The only repeatable transition is PACKAGING_COMPLETED -> PACKAGING_COMPLETED,
// since packaging can be submitted more than once for the same order.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Created is the initial stage when an order is first submitted.
	Created

	// Planned indicates a production plan exists for the order.
	Planned

	// TransferPreTo24InProgress indicates at least one blended transfer from
	// the pre-clean bins into the 24HR bins has started.
	TransferPreTo24InProgress

	// TransferPreTo24Completed indicates every destination-bin transfer of the
	// order's plan has completed.
	TransferPreTo24Completed

	// Transfer24To12Completed indicates the sequential transfer from a 24HR bin
	// into the 12HR bins has stopped.
	Transfer24To12Completed

	// GrindingInProgress indicates a grinding job has started for the order.
	GrindingInProgress

	// GrindingCompleted indicates the grinding job has stopped.
	GrindingCompleted

	// PackagingCompleted indicates packaged output has been recorded.
	// Repeated packaging submissions re-set this stage.
	PackagingCompleted
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:                   "UNKNOWN",
		Created:                   "CREATED",
		Planned:                   "PLANNED",
		TransferPreTo24InProgress: "TRANSFER_PRE_TO_24_IN_PROGRESS",
		TransferPreTo24Completed:  "TRANSFER_PRE_TO_24_COMPLETED",
		Transfer24To12Completed:   "TRANSFER_24_TO_12_COMPLETED",
		GrindingInProgress:        "GRINDING_IN_PROGRESS",
		GrindingCompleted:         "GRINDING_COMPLETED",
		PackagingCompleted:        "PACKAGING_COMPLETED",
	}
}

// StageFromString maps a persisted stage name back to its Stage value.
// Returns an error for names outside the known set.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getStageStrings() {
		if name == s && stage != Unknown {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"production stage",
		fmt.Errorf("%q is not a known production stage", s),
	)
}

// String returns the persisted name of the stage, "UNKNOWN" for invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Stage holds one of the defined values.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"production stage",
			fmt.Errorf("%d is not a valid production stage", s),
		)
	}
	return nil
}

// Plan transitions CREATED -> PLANNED.
func (s Stage) Plan() (Stage, error) {
	return s.transition(Created, Planned)
}

// StartBlendedTransfer transitions PLANNED -> TRANSFER_PRE_TO_24_IN_PROGRESS.
// Starting further destination bins while the transfer is already in progress
// keeps the stage unchanged.
func (s Stage) StartBlendedTransfer() (Stage, error) {
	if s == TransferPreTo24InProgress {
		return TransferPreTo24InProgress, nil
	}
	return s.transition(Planned, TransferPreTo24InProgress)
}

// CompleteBlendedTransfer transitions TRANSFER_PRE_TO_24_IN_PROGRESS ->
// TRANSFER_PRE_TO_24_COMPLETED.
func (s Stage) CompleteBlendedTransfer() (Stage, error) {
	return s.transition(TransferPreTo24InProgress, TransferPreTo24Completed)
}

// CompleteSequentialTransfer transitions TRANSFER_PRE_TO_24_COMPLETED ->
// TRANSFER_24_TO_12_COMPLETED.
func (s Stage) CompleteSequentialTransfer() (Stage, error) {
	return s.transition(TransferPreTo24Completed, Transfer24To12Completed)
}

// StartGrinding transitions TRANSFER_24_TO_12_COMPLETED -> GRINDING_IN_PROGRESS.
func (s Stage) StartGrinding() (Stage, error) {
	return s.transition(Transfer24To12Completed, GrindingInProgress)
}

// CompleteGrinding transitions GRINDING_IN_PROGRESS -> GRINDING_COMPLETED.
func (s Stage) CompleteGrinding() (Stage, error) {
	return s.transition(GrindingInProgress, GrindingCompleted)
}

// CompletePackaging transitions GRINDING_COMPLETED -> PACKAGING_COMPLETED.
// Repeated packaging submissions are allowed once the order is already in
// PACKAGING_COMPLETED.
func (s Stage) CompletePackaging() (Stage, error) {
	if s == PackagingCompleted {
		return PackagingCompleted, nil
	}
	return s.transition(GrindingCompleted, PackagingCompleted)
}

func (s Stage) transition(from, to Stage) (Stage, error) {
	if s != from {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), to.String())
	}
	return to, nil
}
