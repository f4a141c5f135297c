// Command satkit is the combined benchmark harness, reproducing
// original_source/benchmarks.py's SIZES × {satisfiable,unsatisfiable}
// corpus walk across all three engines (or one, if selected).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/bench"
	"github.com/go-sat/satkit/dp"
	"github.com/go-sat/satkit/dpll"
	"github.com/go-sat/satkit/resolution"
)

// sizes mirrors original_source/benchmarks.py's SIZES tiers.
var sizes = []string{"test", "small", "medium", "large"}

var (
	debug     bool
	timeout   time.Duration
	limit     int
	cnfsRoot  string
	resultDir string
)

func engines() map[string]satkit.Engine {
	return map[string]satkit.Engine{
		"resolution": resolution.Solver{},
		"dp":         dp.Solver{},
		"dpll":       dpll.Solver{},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "satkit [engine]",
		Short: "Run the combined SAT benchmark harness across size tiers",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFunc,
	}
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.Flags().DurationVar(&timeout, "timeout", 300*time.Second, "solve deadline shared by all files of one engine's size tier")
	root.Flags().IntVar(&limit, "limit", 0, "max files per expectation subdirectory (0 = unlimited)")
	root.Flags().StringVar(&cnfsRoot, "cnfs", "cnfs", "root directory containing <size>/{satisfiable,unsatisfiable} tiers")
	root.Flags().StringVar(&resultDir, "results", "results", "directory to write results/<engine>/<size>.csv into")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runFunc(cmd *cobra.Command, args []string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	selected := engines()
	if len(args) == 1 {
		eng, ok := selected[args[0]]
		if !ok {
			return fmt.Errorf("unknown engine %q (want resolution, dp, or dpll)", args[0])
		}
		selected = map[string]satkit.Engine{args[0]: eng}
	}

	for name, eng := range selected {
		for _, size := range sizes {
			tierRoot := filepath.Join(cnfsRoot, size)
			if _, err := os.Stat(tierRoot); err != nil {
				log.Debugf("skipping %s/%s: %v", name, size, err)
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			rows, err := bench.RunCorpus(ctx, eng, tierRoot, limit)
			cancel()
			if err != nil {
				log.Warnf("%s/%s: some files could not be benchmarked: %v", name, size, err)
			}

			outDir := filepath.Join(resultDir, name)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			outPath := filepath.Join(outDir, size+".csv")
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			werr := bench.WriteCSV(out, rows)
			out.Close()
			if werr != nil {
				return werr
			}
			log.Infof("%s/%s: wrote %d rows to %s", name, size, len(rows), outPath)
		}
	}
	return nil
}
