package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sat/satkit/bench"
)

// writeDPLLCSV reproduces dpll.py's narrower benchmark CSV:
// decisions, unit_props, backtracks.
func writeDPLLCSV(w io.Writer, rows []bench.Row) error {
	cw := csv.NewWriter(w)
	header := []string{"Filename", "Expected", "Result", "Correct", "Time",
		"Decisions", "UnitProps", "Backtracks"}
	if err := cw.Write(header); err != nil {
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
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
