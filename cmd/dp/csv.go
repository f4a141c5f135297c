package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sat/satkit/bench"
)

// writeDPCSV reproduces dp.py's narrower benchmark CSV:
// unit_props, pure_literals, eliminations, resolution_steps.
func writeDPCSV(w io.Writer, rows []bench.Row) error {
	cw := csv.NewWriter(w)
	header := []string{"Filename", "Expected", "Result", "Correct", "Time",
		"UnitProps", "PureLiterals", "Eliminations", "ResolutionSteps"}
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
			fmt.Sprintf("%d", r.UnitProps),
			fmt.Sprintf("%d", r.PureLiterals),
			fmt.Sprintf("%d", r.Eliminations),
			fmt.Sprintf("%d", r.ResolutionSteps),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
