// Command resolution is the standalone CLI for the Resolution engine,
// reproducing original_source/algorithms/resolution.py's command-line
// behavior: a "run" mode for one file and a "benchmark" mode over a corpus,
// grounded on operator-lifecycle-manager's operator-cli cobra tree.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-sat/satkit/bench"
	"github.com/go-sat/satkit/cnf"
	"github.com/go-sat/satkit/resolution"
)

var (
	debug   bool
	timeout time.Duration
	limit   int
	output  string
)

func main() {
	root := &cobra.Command{
		Use:   "resolution",
		Short: "Resolution-only SAT solver CLI",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 300*time.Second, "solve deadline: per file for run, shared by the whole corpus for benchmark")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	}

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Solve a single DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE:  runFunc,
	}

	benchCmd := &cobra.Command{
		Use:   "benchmark <folder>",
		Short: "Run the resolution engine over a corpus and write a CSV report",
		Args:  cobra.ExactArgs(1),
		RunE:  benchmarkFunc,
	}
	benchCmd.Flags().IntVar(&limit, "limit", 0, "max files per expectation subdirectory (0 = unlimited)")
	benchCmd.Flags().StringVar(&output, "output", "resolution.csv", "CSV report path")

	root.AddCommand(runCmd, benchCmd)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runFunc(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	formula, err := cnf.ParseDIMACS(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res := resolution.Solver{}.Solve(ctx, formula)
	fmt.Println(res.Verdict)
	log.Debugf("elapsed=%s resolution_steps=%d", res.Elapsed, res.Stats.ResolutionSteps)
	return nil
}

func benchmarkFunc(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rows, err := bench.RunCorpus(ctx, resolution.Solver{}, args[0], limit)
	if err != nil {
		log.Warnf("some files could not be benchmarked: %v", err)
	}

	out, ferr := os.Create(output)
	if ferr != nil {
		return ferr
	}
	defer out.Close()
	if werr := writeResolutionCSV(out, rows); werr != nil {
		return werr
	}

	log.Infof("wrote %d rows to %s", len(rows), output)
	fmt.Fprintln(os.Stderr, bench.Summary(rows))
	return nil
}
