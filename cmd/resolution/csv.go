package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sat/satkit/bench"
)

// writeResolutionCSV reproduces resolution.py's narrower benchmark CSV:
// just the shared columns plus resolution_steps, no Decisions/Backtracks.
func writeResolutionCSV(w io.Writer, rows []bench.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Filename", "Expected", "Result", "Correct", "Time", "ResolutionSteps"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Filename,
			r.Expected,
			r.Result,
			fmt.Sprintf("%t", r.Correct),
			fmt.Sprintf("%.6f", r.Time.Seconds()),
			fmt.Sprintf("%d", r.ResolutionSteps),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
