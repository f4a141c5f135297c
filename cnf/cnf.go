// Package cnf is the shared data model for propositional formulas in
// conjunctive normal form: literals, clauses, formulas, and assignments.
// Operations here are purely functional — nothing in this package mutates a
// Clause or Formula in place, so Resolution and DP can treat values as
// immutable inputs and DPLL can build its own mutable indices on top.
package cnf

import "sort"

// Var is a propositional variable, a positive integer in [1, V].
type Var int32

// Literal is a signed, nonzero reference to a Var: positive asserts the
// variable true, negative asserts it false. Literals are totally ordered by
// their numeric value.
type Literal int32

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return -l }

// Var returns the variable the literal refers to.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Polarity reports whether the literal asserts its variable true (positive)
// or false (negative).
func (l Literal) Polarity() bool { return l > 0 }

// Clause is a disjunction of literals in insertion order. DPLL relies on
// that order for its positional watches; Resolution and DP build their own
// deduplicated set view over a Clause when they ingest one (see
// resolution.newClauseSet / dp.newClauseSet).
type Clause []Literal

// Empty reports whether the clause is the empty clause (denotes falsity).
func (c Clause) Empty() bool { return len(c) == 0 }

// Unit reports whether the clause contains exactly one literal.
func (c Clause) Unit() bool { return len(c) == 1 }

// NewClause builds a Clause from a literal list, preserving order and
// duplicates exactly as given (callers that want set semantics should use
// the engine-local clause-set types instead).
func NewClause(lits ...Literal) Clause {
	c := make(Clause, len(lits))
	copy(c, lits)
	return c
}

// Vars returns the clause's variables in ascending order, deduplicated.
func (c Clause) Vars() []Var {
	seen := make(map[Var]struct{}, len(c))
	var vs []Var
	for _, l := range c {
		v := l.Var()
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			vs = append(vs, v)
		}
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Formula is a sequence of clauses. DPLL refers to clauses by their index
// into this slice, so the order here is load-bearing; Resolution and DP
// only care about the set of clauses and ignore index identity.
type Formula []Clause

// NewFormula builds a Formula from a clause sequence, preserving order.
func NewFormula(clauses ...Clause) Formula {
	f := make(Formula, len(clauses))
	copy(f, clauses)
	return f
}

// MaxVar returns the highest variable index occurring anywhere in f, or 0
// for the empty formula.
func MaxVar(f Formula) Var {
	var max Var
	for _, c := range f {
		for _, l := range c {
			if v := l.Var(); v > max {
				max = v
			}
		}
	}
	return max
}

// Assignment is a partial mapping from variables to boolean values.
type Assignment map[Var]bool

// Satisfies reports whether the assignment satisfies literal l. The second
// return value reports whether l's variable is assigned at all; if it is
// false, the first return value is meaningless.
func (a Assignment) Satisfies(l Literal) (sat bool, assigned bool) {
	v, ok := a[l.Var()]
	if !ok {
		return false, false
	}
	return v == l.Polarity(), true
}

// SatisfiesClause reports whether a satisfies every literal's disjunction,
// i.e. at least one literal of c is satisfied under a. A clause containing
// an unassigned literal and no satisfied literal is treated as unsatisfied
// (this is used only for fully-total assignments produced by a SAT
// verdict; partial assignments should not be checked this way).
func (a Assignment) SatisfiesClause(c Clause) bool {
	for _, l := range c {
		if sat, assigned := a.Satisfies(l); assigned && sat {
			return true
		}
	}
	return false
}

// SatisfiesFormula reports whether a satisfies every clause of f.
func (a Assignment) SatisfiesFormula(f Formula) bool {
	for _, c := range f {
		if !a.SatisfiesClause(c) {
			return false
		}
	}
	return true
}
