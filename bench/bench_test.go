package bench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sat/satkit/resolution"
)

func writeCNF(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunFileCorrectAndIncorrect(t *testing.T) {
	dir := t.TempDir()
	sat := writeCNF(t, dir, "sat.cnf", "p cnf 1 1\n1 0\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := RunFile(ctx, resolution.Solver{}, sat, "SAT")
	require.NoError(t, err)
	assert.Equal(t, "SAT", row.Result)
	assert.True(t, row.Correct)

	row, err = RunFile(ctx, resolution.Solver{}, sat, "UNSAT")
	require.NoError(t, err)
	assert.Equal(t, "SAT", row.Result)
	assert.False(t, row.Correct)
}

func TestRunFileParseErrorProducesErrorRow(t *testing.T) {
	dir := t.TempDir()
	bad := writeCNF(t, dir, "bad.cnf", "p cnf 1 1\nnotanumber 0\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := RunFile(ctx, resolution.Solver{}, bad, "SAT")
	assert.Error(t, err)
	assert.Equal(t, errVerdict, row.Result)
	assert.False(t, row.Correct)
}

func TestRunCorpusWalksBothSubdirsAndSkipsBadFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, Satisfiable), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, Unsatisfiable), 0o755))

	writeCNF(t, filepath.Join(root, Satisfiable), "a.cnf", "p cnf 1 1\n1 0\n")
	writeCNF(t, filepath.Join(root, Satisfiable), "bad.cnf", "p cnf 1 1\nxyz 0\n")
	writeCNF(t, filepath.Join(root, Unsatisfiable), "b.cnf", "p cnf 1 2\n1 0\n-1 0\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := RunCorpus(ctx, resolution.Solver{}, root, 0)
	require.Error(t, err, "one bad file should surface in the aggregated error")
	require.Len(t, rows, 3)

	var sawGoodSAT, sawGoodUNSAT, sawError bool
	for _, r := range rows {
		switch r.Filename {
		case "a.cnf":
			sawGoodSAT = r.Result == "SAT" && r.Correct
		case "b.cnf":
			sawGoodUNSAT = r.Result == "UNSAT" && r.Correct
		case "bad.cnf":
			sawError = r.Result == errVerdict
		}
	}
	assert.True(t, sawGoodSAT)
	assert.True(t, sawGoodUNSAT)
	assert.True(t, sawError)
}

func TestRunCorpusRespectsLimit(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, Satisfiable), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, Unsatisfiable), 0o755))
	writeCNF(t, filepath.Join(root, Satisfiable), "a.cnf", "p cnf 1 1\n1 0\n")
	writeCNF(t, filepath.Join(root, Satisfiable), "b.cnf", "p cnf 1 1\n1 0\n")
	writeCNF(t, filepath.Join(root, Satisfiable), "c.cnf", "p cnf 1 1\n1 0\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rows, err := RunCorpus(ctx, resolution.Solver{}, root, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWriteCSVHeaderAndRows(t *testing.T) {
	var buf strings.Builder
	rows := []Row{
		{Filename: "a.cnf", Expected: "SAT", Result: "SAT", Correct: true, Time: 1500 * time.Microsecond, Decisions: 3},
	}
	require.NoError(t, WriteCSV(&buf, rows))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Filename,Expected,Result,Correct,Time,Decisions,UnitProps,Backtracks,ResolutionSteps\n"))
	assert.Contains(t, out, "a.cnf,SAT,SAT,true,0.001500,3,0,0,0\n")
}

func TestSummaryIncludesEveryRow(t *testing.T) {
	rows := []Row{
		{Filename: "a.cnf", Expected: "SAT", Result: "SAT", Correct: true},
		{Filename: "b.cnf", Expected: "UNSAT", Result: "TIMEOUT", Correct: false},
	}
	out := Summary(rows)
	assert.Contains(t, out, "a.cnf")
	assert.Contains(t, out, "b.cnf")
}
