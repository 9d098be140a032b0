package grinding

import (
	"errors"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrLabTestIsNotConstructed is returned when a LabTest was not created
// through its constructors.
var ErrLabTestIsNotConstructed = errors.New(
	"LabTest must be created via NewLabTest or RestoreLabTest",
)

// LabTestStatusSubmitted is the only status a lab test ever carries.
const LabTestStatusSubmitted = "SUBMITTED"

// LabTest is a moisture sample taken during a grinding run. Tests are purely
// additive records: they may be submitted at any time, including after the
// run has stopped.
type LabTest struct {
	id          kernel.UUID
	jobID       kernel.UUID
	startTime   string
	endTime     string
	productType string
	moisture    float64
	status      string
	submittedAt *time.Time

	isConstructed bool
}

// NewLabTest records one moisture sample for a run.
func NewLabTest(
	id, jobID kernel.UUID,
	startTime, endTime, productType string,
	moisture float64,
	submittedAt time.Time,
) (*LabTest, error) {
	t := &LabTest{
		status:        LabTestStatusSubmitted,
		isConstructed: true,
	}

	if err := errors.Join(id.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}
	if startTime == "" {
		return nil, errs.NewValueIsRequiredError("start time")
	}
	if endTime == "" {
		return nil, errs.NewValueIsRequiredError("end time")
	}
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("product type")
	}
	if moisture < 0 {
		return nil, errs.NewValueIsInvalidError("moisture")
	}

	t.id = id
	t.jobID = jobID
	t.startTime = startTime
	t.endTime = endTime
	t.productType = productType
	t.moisture = moisture
	t.submittedAt = &submittedAt
	return t, nil
}

// RestoreLabTest reconstructs a lab test from persistence.
func RestoreLabTest(
	id, jobID kernel.UUID,
	startTime, endTime, productType string,
	moisture float64,
	status string,
	submittedAt *time.Time,
) (*LabTest, error) {
	if err := errors.Join(id.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}
	return &LabTest{
		id:            id,
		jobID:         jobID,
		startTime:     startTime,
		endTime:       endTime,
		productType:   productType,
		moisture:      moisture,
		status:        status,
		submittedAt:   submittedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the lab test was built via its constructors.
func (t *LabTest) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrLabTestIsNotConstructed
	}
	return nil
}

// ID returns the lab test's unique identifier.
func (t *LabTest) ID() kernel.UUID { return t.id }

// JobID returns the grinding run the sample was taken from.
func (t *LabTest) JobID() kernel.UUID { return t.jobID }

// StartTime returns the sampling window start as entered by the lab.
func (t *LabTest) StartTime() string { return t.startTime }

// EndTime returns the sampling window end as entered by the lab.
func (t *LabTest) EndTime() string { return t.endTime }

// ProductType returns the sampled product.
func (t *LabTest) ProductType() string { return t.productType }

// Moisture returns the measured moisture percentage.
func (t *LabTest) Moisture() float64 { return t.moisture }

// Status returns the lab test status.
func (t *LabTest) Status() string { return t.status }

// SubmittedAt returns when the sample was submitted.
func (t *LabTest) SubmittedAt() *time.Time { return t.submittedAt }
