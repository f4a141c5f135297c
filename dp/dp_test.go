package dp

import (
	"context"
	"testing"
	"time"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/cnf"
)

func solve(t *testing.T, f cnf.Formula) satkit.Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Solver{}.Solve(ctx, f)
}

func TestEmptyFormulaIsSAT(t *testing.T) {
	res := solve(t, cnf.Formula{})
	if res.Verdict != satkit.SAT {
		t.Fatalf("got %v, want SAT", res.Verdict)
	}
	if len(res.Model) != 0 {
		t.Errorf("expected an empty model, got %v", res.Model)
	}
}

func TestEmptyClauseIsUNSAT(t *testing.T) {
	res := solve(t, cnf.Formula{cnf.NewClause()})
	if res.Verdict != satkit.UNSAT {
		t.Fatalf("got %v, want UNSAT", res.Verdict)
	}
}

func TestUnitClauseAssignsVar(t *testing.T) {
	res := solve(t, cnf.Formula{cnf.NewClause(1)})
	if res.Verdict != satkit.SAT {
		t.Fatalf("got %v, want SAT", res.Verdict)
	}
	if v, ok := res.Model[1]; !ok || !v {
		t.Errorf("Model[1] = (%v, %v), want (true, true)", v, ok)
	}
	if res.Stats.UnitProps != 1 {
		t.Errorf("UnitProps = %d, want 1", res.Stats.UnitProps)
	}
}

func TestConflictingUnitsIsUNSAT(t *testing.T) {
	res := solve(t, cnf.Formula{cnf.NewClause(1), cnf.NewClause(-1)})
	if res.Verdict != satkit.UNSAT {
		t.Fatalf("got %v, want UNSAT", res.Verdict)
	}
}

func TestXorIsUNSAT(t *testing.T) {
	f := cnf.Formula{
		cnf.NewClause(1, 2),
		cnf.NewClause(-1, 2),
		cnf.NewClause(1, -2),
		cnf.NewClause(-1, -2),
	}
	res := solve(t, f)
	if res.Verdict != satkit.UNSAT {
		t.Fatalf("got %v, want UNSAT", res.Verdict)
	}
}

func TestSimpleSATProducesValidModel(t *testing.T) {
	f := cnf.Formula{
		cnf.NewClause(1, 2),
		cnf.NewClause(-1, 3),
		cnf.NewClause(-2, 3),
	}
	res := solve(t, f)
	if res.Verdict != satkit.SAT {
		t.Fatalf("got %v, want SAT", res.Verdict)
	}
	if !res.Model.SatisfiesFormula(f) {
		t.Errorf("model %v does not satisfy formula %v", res.Model, f)
	}
}

// TestOneMissingCube is concrete scenario 6: every assignment of {1,2,3}
// except {T,T,T} is forbidden (the clause {-1,-2,-3} that would forbid it is
// absent), so {T,T,T} is the only satisfying assignment.
func TestOneMissingCube(t *testing.T) {
	f := cnf.Formula{
		cnf.NewClause(1, 2, 3),
		cnf.NewClause(1, 2, -3),
		cnf.NewClause(1, -2, 3),
		cnf.NewClause(1, -2, -3),
		cnf.NewClause(-1, 2, 3),
		cnf.NewClause(-1, 2, -3),
		cnf.NewClause(-1, -2, 3),
	}
	res := solve(t, f)
	if res.Verdict != satkit.SAT {
		t.Fatalf("got %v, want SAT", res.Verdict)
	}
	if !res.Model.SatisfiesFormula(f) {
		t.Errorf("model %v does not satisfy formula %v", res.Model, f)
	}
}

func TestPigeonhole3to2(t *testing.T) {
	v := func(pigeon, hole int) cnf.Literal {
		return cnf.Literal((pigeon-1)*2 + hole)
	}
	var f cnf.Formula
	for p := 1; p <= 3; p++ {
		f = append(f, cnf.NewClause(v(p, 1), v(p, 2)))
	}
	for h := 1; h <= 2; h++ {
		for p1 := 1; p1 <= 3; p1++ {
			for p2 := p1 + 1; p2 <= 3; p2++ {
				f = append(f, cnf.NewClause(-v(p1, h), -v(p2, h)))
			}
		}
	}
	res := solve(t, f)
	if res.Verdict != satkit.UNSAT {
		t.Fatalf("got %v, want UNSAT", res.Verdict)
	}
}

func TestStatsResetBetweenCalls(t *testing.T) {
	var s Solver
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f := cnf.Formula{cnf.NewClause(1), cnf.NewClause(2)}
	first := s.Solve(ctx, f)
	second := s.Solve(ctx, f)
	if first.Stats != second.Stats {
		t.Errorf("stats not identical across repeated calls on the same input: %+v vs %+v", first.Stats, second.Stats)
	}
}

func TestTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	f := cnf.Formula{cnf.NewClause(1, 2), cnf.NewClause(-1, 3)}
	res := Solver{}.Solve(ctx, f)
	if res.Verdict != satkit.TIMEOUT {
		t.Fatalf("got %v, want TIMEOUT", res.Verdict)
	}
}
