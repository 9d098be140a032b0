package grinding

// Summary rolls a run's SUBMITTED hourly reports into totals. Tons are
// summed; percentages are the plain average of the per-report percentages,
// not a tonnage-weighted average, so an hour with little throughput moves
// the summary as much as a busy one.
type Summary struct {
	ReportCount int
	Tons        ProductTons
	Percents    ProductPercents
}

// Summarize aggregates the given reports, skipping any that are not
// SUBMITTED. An empty input yields a zero-valued summary.
func Summarize(reports []*HourlyReport) Summary {
	var s Summary
	for _, r := range reports {
		if r == nil || r.Status() != ReportStatusSubmitted {
			continue
		}
		s.ReportCount++
		t := r.Tons()
		s.Tons.Maida += t.Maida
		s.Tons.Suji += t.Suji
		s.Tons.ChakkiAta += t.ChakkiAta
		s.Tons.Tandoori += t.Tandoori
		s.Tons.Bran += t.Bran

		p := r.Percents()
		s.Percents.Maida += p.Maida
		s.Percents.Suji += p.Suji
		s.Percents.ChakkiAta += p.ChakkiAta
		s.Percents.Tandoori += p.Tandoori
		s.Percents.MainTotal += p.MainTotal
		s.Percents.Bran += p.Bran
	}

	if s.ReportCount > 0 {
		n := float64(s.ReportCount)
		s.Percents.Maida /= n
		s.Percents.Suji /= n
		s.Percents.ChakkiAta /= n
		s.Percents.Tandoori /= n
		s.Percents.MainTotal /= n
		s.Percents.Bran /= n
	}
	return s
}
