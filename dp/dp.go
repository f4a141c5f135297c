// Package dp implements the Davis-Putnam decision procedure: recursive
// unit propagation, pure-literal elimination, and variable elimination by
// resolution, directly grounded on
// original_source/algorithms/dp.py's DPSolver._dp.
package dp

import (
	"context"
	"time"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/cnf"
)

// Solver implements satkit.Engine using the Davis-Putnam procedure. The
// zero value is ready to use.
type Solver struct{}

// Name implements satkit.Engine.
func (Solver) Name() string { return "dp" }

// Solve decides satisfiability of f, returning a model when SAT. Unassigned
// variables (those eliminated by resolution rather than fixed directly) are
// left out of the returned model, matching spec.md §4.4's "model
// completion" note.
func (Solver) Solve(ctx context.Context, f cnf.Formula) satkit.Result {
	start := time.Now()
	var stats satkit.Stats
	phi := newClauseSet(f)
	assignment := make(cnf.Assignment)

	verdict, err := dp(ctx, phi, assignment, &stats)
	res := satkit.Result{Verdict: verdict, Stats: stats, Elapsed: time.Since(start), Err: err}
	if verdict == satkit.SAT {
		res.Model = assignment
	}
	return res
}

// dp is the recursive procedure from spec.md §4.4. phi is mutated in place
// within a single recursive call's scope only via local reassignment — each
// call receives its own clause set — and assignment accumulates across the
// whole recursion, since it's the single model being built up.
func dp(ctx context.Context, phi *clauseSet, assignment cnf.Assignment, stats *satkit.Stats) (satkit.Verdict, error) {
	select {
	case <-ctx.Done():
		return satkit.TIMEOUT, nil
	default:
	}

	// 1. Unit propagation.
	for {
		unit, ok := phi.findUnit()
		if !ok {
			break
		}
		assignment[unit.Var()] = unit.Polarity()
		stats.UnitProps++
		if conflict := phi.assign(unit); conflict {
			return satkit.UNSAT, nil
		}
	}

	// 2. Pure literal elimination, repeated until no pure literal is left:
	// dropping one pure literal's clauses can make another literal pure.
	for pures := phi.pureLiterals(); len(pures) > 0; pures = phi.pureLiterals() {
		for _, lit := range pures {
			assignment[lit.Var()] = lit.Polarity()
			stats.PureLiterals++
			phi.eliminatePure(lit)
			// The empty-clause check the Python original runs here
			// (`any(len(c) == 0 for c in phi)`) is vacuous: pure-literal
			// elimination only drops clauses containing lit, it never
			// shrinks a surviving clause, so it can never turn a
			// non-empty clause into an empty one. Omitted per spec.md §9.
		}
	}

	// 3. Termination checks.
	if phi.empty() {
		return satkit.SAT, nil
	}
	if phi.hasEmptyClause() {
		return satkit.UNSAT, nil
	}

	// 4. Variable elimination by resolution.
	lit, ok := phi.pickEliminationLiteral()
	if !ok {
		// No variable appears in both polarities and phi is neither empty
		// nor contains the empty clause: unreachable under the invariants
		// above, but fail closed rather than loop forever, and surface it
		// as ErrInternalInvariant rather than swallowing it as a plain
		// UNSAT (it's a solver bug, not a genuine result).
		return satkit.UNSAT, &satkit.ErrInternalInvariant{
			Detail: "dp: no elimination literal found in a non-empty clause set with no unit clauses",
		}
	}
	stats.Eliminations++

	next := phi.eliminateByResolution(lit, stats)
	return dp(ctx, next, assignment, stats)
}
