// Package satkit holds the small set of types shared by every decision
// procedure in the toolkit: the solved-for verdict, the statistics counters
// collected during a solve, and the result envelope returned by an Engine.
package satkit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sat/satkit/cnf"
)

// Verdict is the outcome of a solve attempt.
type Verdict int

const (
	// Unknown is the zero value and is never returned by a completed solve.
	Unknown Verdict = iota
	SAT
	UNSAT
	TIMEOUT
)

func (v Verdict) String() string {
	switch v {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case TIMEOUT:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Stats carries the counters every engine increments a subset of. Unused
// counters for a given engine stay zero; they're never negative and never
// decrease within one Solve call.
type Stats struct {
	UnitProps       int64
	PureLiterals    int64
	Eliminations    int64
	ResolutionSteps int64
	Decisions       int64
	Backtracks      int64
}

// Row renders the counters in the fixed order the combined harness CSV uses:
// Decisions, UnitProps, Backtracks, ResolutionSteps.
func (s Stats) Row() []string {
	return []string{
		fmt.Sprintf("%d", s.Decisions),
		fmt.Sprintf("%d", s.UnitProps),
		fmt.Sprintf("%d", s.Backtracks),
		fmt.Sprintf("%d", s.ResolutionSteps),
	}
}

// Result is what every engine's Solve returns.
type Result struct {
	Verdict Verdict
	Model   cnf.Assignment // nil unless Verdict == SAT and the engine produces one
	Stats   Stats
	Elapsed time.Duration

	// Err is set alongside a fail-closed Verdict when an engine detects its
	// own bookkeeping is in a state its invariants say can't occur; see
	// ErrInternalInvariant. Always nil on a normal solve.
	Err error
}

// Engine is implemented by each of the three decision procedures. ctx should
// carry a deadline (via context.WithTimeout/WithDeadline); each engine checks
// it at its own natural checkpoint (recursion entry for Resolution/DP, the
// top of each search-node iteration for DPLL) and returns TIMEOUT rather
// than an error when it expires.
type Engine interface {
	// Name is the engine's identifier as used in CLI selection and result
	// file paths ("resolution", "dp", or "dpll").
	Name() string
	Solve(ctx context.Context, f cnf.Formula) Result
}
