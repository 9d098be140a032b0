package grinding_test

import (
	"testing"
	"time"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(t *testing.T, binCount int) *grinding.Job {
	t.Helper()
	binIDs := make([]kernel.UUID, 0, binCount)
	for i := 0; i < binCount; i++ {
		binIDs = append(binIDs, kernel.NewUUID())
	}
	j, err := grinding.NewJob(kernel.NewUUID(), kernel.NewUUID(), binIDs, time.Now())
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("opens_started_with_feed_order", func(t *testing.T) {
		j := newJob(t, 3)

		assert.Equal(t, grinding.JobStarted, j.Status())
		assert.Equal(t, grinding.DefaultMachineID, j.MachineID())
		assert.True(t, j.AcceptsReports())
		require.NotNil(t, j.StartTime())

		bins := j.SourceBins()
		require.Len(t, bins, 3)
		assert.Equal(t, grinding.SourceBinInUse, bins[0].Status())
		assert.Equal(t, grinding.SourceBinPending, bins[1].Status())
		assert.Equal(t, grinding.SourceBinPending, bins[2].Status())
		assert.Equal(t, 1, bins[0].SequenceOrder())
		assert.Equal(t, 3, bins[2].SequenceOrder())
	})

	t.Run("requires_at_least_one_bin", func(t *testing.T) {
		_, err := grinding.NewJob(kernel.NewUUID(), kernel.NewUUID(), nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestJob_Stop(t *testing.T) {
	t.Run("records_duration_in_hours", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		binIDs := []kernel.UUID{kernel.NewUUID()}
		j, err := grinding.NewJob(kernel.NewUUID(), kernel.NewUUID(), binIDs, start)
		require.NoError(t, err)

		require.NoError(t, j.Stop(start.Add(90*time.Minute)))

		assert.Equal(t, grinding.JobStopped, j.Status())
		assert.False(t, j.AcceptsReports())
		require.NotNil(t, j.DurationHours())
		assert.InDelta(t, 1.5, *j.DurationHours(), 0.0001)
	})

	t.Run("stopping_twice_is_rejected", func(t *testing.T) {
		j := newJob(t, 1)
		require.NoError(t, j.Stop(time.Now()))

		err := j.Stop(time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func newReport(t *testing.T, number int, tons grinding.ProductTons) *grinding.HourlyReport {
	t.Helper()
	r, err := grinding.NewHourlyReport(
		kernel.NewUUID(), kernel.NewUUID(), number, "08:00", "09:00", tons, time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestNewHourlyReport(t *testing.T) {
	t.Run("derives_percentages_of_grand_total", func(t *testing.T) {
		r := newReport(t, 1, grinding.ProductTons{
			Maida:     6,
			Suji:      2,
			ChakkiAta: 1,
			Tandoori:  0.5,
			Bran:      0.5,
		})

		assert.InDelta(t, 9.5, r.Tons().MainTotal(), 0.0001)
		assert.InDelta(t, 10, r.Tons().GrandTotal(), 0.0001)

		p := r.Percents()
		assert.InDelta(t, 60, p.Maida, 0.0001)
		assert.InDelta(t, 20, p.Suji, 0.0001)
		assert.InDelta(t, 10, p.ChakkiAta, 0.0001)
		assert.InDelta(t, 5, p.Tandoori, 0.0001)
		assert.InDelta(t, 95, p.MainTotal, 0.0001)
		assert.InDelta(t, 5, p.Bran, 0.0001)
	})

	t.Run("zero_grand_total_yields_zero_percentages", func(t *testing.T) {
		r := newReport(t, 1, grinding.ProductTons{})

		assert.Zero(t, r.Percents())
	})

	t.Run("rejects_negative_tons", func(t *testing.T) {
		_, err := grinding.NewHourlyReport(
			kernel.NewUUID(), kernel.NewUUID(), 1, "08:00", "09:00",
			grinding.ProductTons{Suji: -1}, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_times", func(t *testing.T) {
		_, err := grinding.NewHourlyReport(
			kernel.NewUUID(), kernel.NewUUID(), 1, "", "09:00",
			grinding.ProductTons{}, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("sums_tons_and_averages_percentages", func(t *testing.T) {
		// Hour 1: 8 of 10 tons is maida (80%). Hour 2: 1 of 2 tons (50%).
		// The summary averages the percentages, so maida reads 65% even
		// though 9 of 12 total tons (75%) were maida.
		r1 := newReport(t, 1, grinding.ProductTons{Maida: 8, Bran: 2})
		r2 := newReport(t, 2, grinding.ProductTons{Maida: 1, Bran: 1})

		s := grinding.Summarize([]*grinding.HourlyReport{r1, r2})

		assert.Equal(t, 2, s.ReportCount)
		assert.InDelta(t, 9, s.Tons.Maida, 0.0001)
		assert.InDelta(t, 3, s.Tons.Bran, 0.0001)
		assert.InDelta(t, 65, s.Percents.Maida, 0.0001)
		assert.InDelta(t, 35, s.Percents.Bran, 0.0001)
	})

	t.Run("empty_input_yields_zero_summary", func(t *testing.T) {
		s := grinding.Summarize(nil)

		assert.Equal(t, 0, s.ReportCount)
		assert.Zero(t, s.Tons)
		assert.Zero(t, s.Percents)
	})
}

func TestLabTest(t *testing.T) {
	t.Run("records_sample", func(t *testing.T) {
		lt, err := grinding.NewLabTest(
			kernel.NewUUID(), kernel.NewUUID(), "10:00", "10:15", "MAIDA", 12.8, time.Now(),
		)
		require.NoError(t, err)

		assert.Equal(t, grinding.LabTestStatusSubmitted, lt.Status())
		assert.InDelta(t, 12.8, lt.Moisture(), 0.0001)
		assert.Equal(t, "MAIDA", lt.ProductType())
	})

	t.Run("rejects_missing_product_type", func(t *testing.T) {
		_, err := grinding.NewLabTest(
			kernel.NewUUID(), kernel.NewUUID(), "10:00", "10:15", "", 12.8, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_moisture", func(t *testing.T) {
		_, err := grinding.NewLabTest(
			kernel.NewUUID(), kernel.NewUUID(), "10:00", "10:15", "MAIDA", -0.1, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
