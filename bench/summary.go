package bench

import (
	"fmt"

	"github.com/ryanuber/columnize"
)

// Summary renders a human-readable filename/result/time table for terminal
// output after a benchmark run, grounded on hashicorp/nomad's use of
// columnize for CLI table output. The CSV file remains the authoritative,
// machine-readable record.
func Summary(rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Filename | Expected | Result | Correct | Time")
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %t | %.3fs",
			r.Filename, r.Expected, r.Result, r.Correct, r.Time.Seconds()))
	}
	return columnize.Format(lines, nil)
}
