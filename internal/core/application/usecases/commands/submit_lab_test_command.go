package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrSubmitLabTestCommandIsNotConstructed = errors.New(
	"SubmitLabTestCommand must be created via NewSubmitLabTestCommand constructor",
)

// SubmitLabTestCommand represents one lab moisture sample for a grinding
// run. Lab tests are additive and independent of the job's status.
type SubmitLabTestCommand struct { //nolint:recvcheck //using for validation
	testID      kernel.UUID
	jobID       kernel.UUID
	startTime   string
	endTime     string
	productType string
	moisture    float64

	guard guard.ConstructorGuard
}

// NewSubmitLabTestCommand creates a command to submit one lab test.
func NewSubmitLabTestCommand(
	testID, jobID kernel.UUID,
	startTime, endTime, productType string,
	moisture float64,
) (SubmitLabTestCommand, error) {
	cmd := SubmitLabTestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		testID.Validate(),
		jobID.Validate(),
	); err != nil {
		return SubmitLabTestCommand{}, err
	}
	if productType == "" {
		return SubmitLabTestCommand{}, errs.NewValueIsRequiredError("product type")
	}

	cmd.testID = testID
	cmd.jobID = jobID
	cmd.startTime = startTime
	cmd.endTime = endTime
	cmd.productType = productType
	cmd.moisture = moisture
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitLabTestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitLabTestCommandIsNotConstructed)
}

// TestID returns the unique identifier for the new lab test.
func (c SubmitLabTestCommand) TestID() kernel.UUID {
	return c.testID
}

// JobID returns the run the sample was taken from.
func (c SubmitLabTestCommand) JobID() kernel.UUID {
	return c.jobID
}

// StartTime returns the sampling window start.
func (c SubmitLabTestCommand) StartTime() string {
	return c.startTime
}

// EndTime returns the sampling window end.
func (c SubmitLabTestCommand) EndTime() string {
	return c.endTime
}

// ProductType returns the sampled product.
func (c SubmitLabTestCommand) ProductType() string {
	return c.productType
}

// Moisture returns the measured moisture percentage.
func (c SubmitLabTestCommand) Moisture() float64 {
	return c.moisture
}
