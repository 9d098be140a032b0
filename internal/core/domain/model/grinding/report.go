package grinding

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrHourlyReportIsNotConstructed is returned when an HourlyReport was not
// created through its constructors.
var ErrHourlyReportIsNotConstructed = errors.New(
	"HourlyReport must be created via NewHourlyReport or RestoreHourlyReport",
)

// ReportStatusSubmitted marks a report that counts towards the run summary.
const ReportStatusSubmitted = "SUBMITTED"

// ProductTons is the per-product throughput of one report hour, in tons.
// Maida, suji, chakki ata and tandoori are the main products; bran is the
// by-product and only enters the grand total.
type ProductTons struct {
	Maida     float64
	Suji      float64
	ChakkiAta float64
	Tandoori  float64
	Bran      float64
}

// MainTotal returns the combined main-product tons.
func (p ProductTons) MainTotal() float64 {
	return p.Maida + p.Suji + p.ChakkiAta + p.Tandoori
}

// GrandTotal returns the main total plus bran.
func (p ProductTons) GrandTotal() float64 {
	return p.MainTotal() + p.Bran
}

// ProductPercents is the percent-of-grand-total view of one report hour.
type ProductPercents struct {
	Maida     float64
	Suji      float64
	ChakkiAta float64
	Tandoori  float64
	MainTotal float64
	Bran      float64
}

// percentsOf computes each product's share of the grand total. A zero grand
// total yields all-zero percentages rather than an error.
func percentsOf(tons ProductTons) ProductPercents {
	grand := decimal.NewFromFloat(tons.GrandTotal())
	if grand.IsZero() {
		return ProductPercents{}
	}
	pct := func(v float64) float64 {
		f, _ := decimal.NewFromFloat(v).
			Div(grand).
			Mul(decimal.NewFromInt(100)).
			Float64()
		return f
	}
	return ProductPercents{
		Maida:     pct(tons.Maida),
		Suji:      pct(tons.Suji),
		ChakkiAta: pct(tons.ChakkiAta),
		Tandoori:  pct(tons.Tandoori),
		MainTotal: pct(tons.MainTotal()),
		Bran:      pct(tons.Bran),
	}
}

// HourlyReport is one hour's throughput breakdown for a grinding run.
// Report numbers are not required to be unique or sequential, and time
// ranges may overlap; the mill crew owns that discipline, not the system.
type HourlyReport struct {
	id           kernel.UUID
	jobID        kernel.UUID
	reportNumber int
	startTime    string
	endTime      string
	status       string
	tons         ProductTons
	percents     ProductPercents
	submittedAt  *time.Time

	isConstructed bool
}

// NewHourlyReport records one hour's output, deriving the percent-of-grand-
// total for each product.
func NewHourlyReport(
	id, jobID kernel.UUID,
	reportNumber int,
	startTime, endTime string,
	tons ProductTons,
	submittedAt time.Time,
) (*HourlyReport, error) {
	r := &HourlyReport{
		status:        ReportStatusSubmitted,
		isConstructed: true,
	}

	if err := errors.Join(id.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}
	if reportNumber < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"report number",
			fmt.Errorf("%d is not greater than 0", reportNumber),
		)
	}
	if startTime == "" {
		return nil, errs.NewValueIsRequiredError("start time")
	}
	if endTime == "" {
		return nil, errs.NewValueIsRequiredError("end time")
	}
	for _, v := range []struct {
		name string
		tons float64
	}{
		{"maida tons", tons.Maida},
		{"suji tons", tons.Suji},
		{"chakki ata tons", tons.ChakkiAta},
		{"tandoori tons", tons.Tandoori},
		{"bran tons", tons.Bran},
	} {
		if v.tons < 0 {
			return nil, errs.NewValueIsInvalidError(v.name)
		}
	}

	r.id = id
	r.jobID = jobID
	r.reportNumber = reportNumber
	r.startTime = startTime
	r.endTime = endTime
	r.tons = tons
	r.percents = percentsOf(tons)
	r.submittedAt = &submittedAt
	return r, nil
}

// RestoreHourlyReport reconstructs a report from persistence. Percentages are
// recomputed from the stored tons rather than trusted from the row.
func RestoreHourlyReport(
	id, jobID kernel.UUID,
	reportNumber int,
	startTime, endTime, status string,
	tons ProductTons,
	submittedAt *time.Time,
) (*HourlyReport, error) {
	if err := errors.Join(id.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}
	return &HourlyReport{
		id:            id,
		jobID:         jobID,
		reportNumber:  reportNumber,
		startTime:     startTime,
		endTime:       endTime,
		status:        status,
		tons:          tons,
		percents:      percentsOf(tons),
		submittedAt:   submittedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the report was built via its constructors.
func (r *HourlyReport) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrHourlyReportIsNotConstructed
	}
	return nil
}

// ID returns the report's unique identifier.
func (r *HourlyReport) ID() kernel.UUID { return r.id }

// JobID returns the grinding run this report belongs to.
func (r *HourlyReport) JobID() kernel.UUID { return r.jobID }

// ReportNumber returns the crew-assigned report number.
func (r *HourlyReport) ReportNumber() int { return r.reportNumber }

// StartTime returns the hour's start as entered by the crew.
func (r *HourlyReport) StartTime() string { return r.startTime }

// EndTime returns the hour's end as entered by the crew.
func (r *HourlyReport) EndTime() string { return r.endTime }

// Status returns the report status.
func (r *HourlyReport) Status() string { return r.status }

// Tons returns the per-product throughput.
func (r *HourlyReport) Tons() ProductTons { return r.tons }

// Percents returns the derived percent-of-grand-total view.
func (r *HourlyReport) Percents() ProductPercents { return r.percents }

// SubmittedAt returns when the report was submitted.
func (r *HourlyReport) SubmittedAt() *time.Time { return r.submittedAt }
