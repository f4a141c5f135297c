package bench

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Header is the fixed column order from spec.md §6. The combined harness
// uses every column; a per-engine harness may legitimately leave some
// columns zeroed (e.g. resolution's benchmark never sets Decisions).
var Header = []string{
	"Filename", "Expected", "Result", "Correct", "Time",
	"Decisions", "UnitProps", "Backtracks", "ResolutionSteps",
}

// WriteCSV writes rows to w with the fixed header, one row per line. Time
// is rendered as elapsed seconds to six decimal places, per spec.md §6.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Filename,
			r.Expected,
			r.Result,
			fmt.Sprintf("%t", r.Correct),
			fmt.Sprintf("%.6f", r.Time.Seconds()),
			fmt.Sprintf("%d", r.Decisions),
			fmt.Sprintf("%d", r.UnitProps),
			fmt.Sprintf("%d", r.Backtracks),
			fmt.Sprintf("%d", r.ResolutionSteps),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
