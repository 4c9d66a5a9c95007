package harvest

import "fmt"

// Summary aggregates per-species outcomes of one harvest run.
type Summary struct {
	// RunID identifies the harvest run in logs.
	RunID string

	// TotalSpecies is the number of species queried.
	TotalSpecies int

	// WithRecords is the number of species with at least one candidate
	// record.
	WithRecords int

	// GramReported is the number of species whose gram stain had a
	// recorded value.
	GramReported int

	// Rows is the number of accumulated long-format rows.
	Rows int
}

// GramCoverage reports the share of species with a recorded gram stain,
// e.g. "42.86%".
func (s *Summary) GramCoverage() string {
	if s.TotalSpecies == 0 {
		return "0.00%"
	}
	pct := float64(s.GramReported) / float64(s.TotalSpecies) * 100
	return fmt.Sprintf("%.2f%%", pct)
}
