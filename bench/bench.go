// Package bench implements the corpus benchmark harness (spec.md §4.6): it
// walks a directory of DIMACS instances split by expected verdict, runs a
// solver over each, and produces one CSV row per file.
package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/cnf"
)

// Expectation subdirectory names, per spec.md §6.
const (
	Satisfiable   = "satisfiable"
	Unsatisfiable = "unsatisfiable"
)

// Row is one line of the benchmark CSV. The combined harness (WriteCSV)
// only emits the fixed spec.md §6 header — Filename, Expected, Result,
// Correct, Time, Decisions, UnitProps, Backtracks, ResolutionSteps —
// but Row carries every counter in satkit.Stats so each per-engine CLI can
// render its own narrower column set (see cmd/dp, cmd/dpll, cmd/resolution).
type Row struct {
	Filename        string
	Expected        string
	Result          string
	Correct         bool
	Time            time.Duration
	Decisions       int64
	UnitProps       int64
	Backtracks      int64
	ResolutionSteps int64
	PureLiterals    int64
	Eliminations    int64
}

// errVerdict is reported as Result when a file couldn't even be parsed; it
// never matches an Expected value, so Correct is always false for it.
const errVerdict = "ERROR"

// RunFile solves a single DIMACS file with engine and reports it as a Row
// against the given expected verdict ("SAT" or "UNSAT").
func RunFile(ctx context.Context, engine satkit.Engine, path, expected string) (Row, error) {
	row := Row{Filename: filepath.Base(path), Expected: expected}

	f, err := os.Open(path)
	if err != nil {
		row.Result = errVerdict
		return row, &satkit.IOError{Path: path, Err: err}
	}
	defer f.Close()

	formula, err := cnf.ParseDIMACS(f)
	if err != nil {
		row.Result = errVerdict
		return row, fmt.Errorf("%s: %w", path, err)
	}

	res := engine.Solve(ctx, formula)
	row.Result = res.Verdict.String()
	row.Correct = row.Result == expected
	row.Time = res.Elapsed
	row.Decisions = res.Stats.Decisions
	row.UnitProps = res.Stats.UnitProps
	row.Backtracks = res.Stats.Backtracks
	row.ResolutionSteps = res.Stats.ResolutionSteps
	row.PureLiterals = res.Stats.PureLiterals
	row.Eliminations = res.Stats.Eliminations
	return row, nil
}

// RunCorpus walks root/satisfiable and root/unsatisfiable in
// filename-sorted order, running engine over up to limit files per
// subdirectory (limit <= 0 means unlimited). A file that fails to open or
// parse produces an ERROR row and is collected into the returned
// *multierror.Error rather than aborting the run, per spec.md §7's
// harness-level recoverability policy.
func RunCorpus(ctx context.Context, engine satkit.Engine, root string, limit int) ([]Row, error) {
	var rows []Row
	var errs *multierror.Error

	for _, sub := range []struct {
		dir      string
		expected string
	}{
		{Satisfiable, "SAT"},
		{Unsatisfiable, "UNSAT"},
	} {
		files, err := listCNFFiles(filepath.Join(root, sub.dir))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if limit > 0 && len(files) > limit {
			files = files[:limit]
		}
		for _, path := range files {
			row, err := RunFile(ctx, engine, path, sub.expected)
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			rows = append(rows, row)
		}
	}
	return rows, errs.ErrorOrNil()
}

func listCNFFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
