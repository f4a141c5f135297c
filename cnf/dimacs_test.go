package cnf

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		text string
		want Formula
	}{
		{
			text: `
c No vars or clauses
p cnf 0 0
`,
			want: Formula{},
		},
		{
			text: `
c 1 var, 1 clause
p cnf 1 1
1 0
`,
			want: Formula{NewClause(1)},
		},
		{
			text: `
c Empty clauses
p cnf 3 5
1 3 0 0 -3 0
0 -2 -1
`,
			want: Formula{NewClause(1, 3), NewClause(), NewClause(-3), NewClause(), NewClause(-2, -1)},
		},
		{
			text: `
c DIMACS example file
c
p cnf 4 3
1 3 -4 0
4 0 2
-3
`,
			want: Formula{NewClause(1, 3, -4), NewClause(4), NewClause(2, -3)},
		},
		{
			text: `
c percent sign
p cnf 2 2
1 2 0
-1 2 0
%
1 2 3
x y z
`,
			want: Formula{NewClause(1, 2), NewClause(-1, 2)},
		},
	} {
		text := strings.TrimSpace(tt.text)
		name := strings.TrimPrefix(text[:strings.IndexByte(text, '\n')], "c ")
		t.Run(name, func(t *testing.T) {
			got, err := ParseDIMACS(strings.NewReader(text))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ParseDIMACS (-got, +want):\n%s", diff)
			}
		})
	}
}

func TestParseDIMACSPercent(t *testing.T) {
	in := `p cnf 2 2
1 2 0
-1 2 0
%
1 2 3
x y z
`
	got, err := ParseDIMACS(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Formula{NewClause(1, 2), NewClause(-1, 2)}
	if diff := cmp.Diff(got, want, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("ParseDIMACS (-got, +want):\n%s", diff)
	}
}

func TestParseDIMACSBadToken(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("1 x 0\n"))
	if err == nil {
		t.Fatal("expected an error for a non-integer token")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if perr.Line != 1 || perr.Token != "x" {
		t.Errorf("got Line=%d Token=%q, want Line=1 Token=\"x\"", perr.Line, perr.Token)
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	f := Formula{NewClause(1, 3, -4), NewClause(4), NewClause(2, -3)}

	var b strings.Builder
	if err := WriteDIMACS(&b, f); err != nil {
		t.Fatal(err)
	}

	got, err := ParseDIMACS(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("re-parsing WriteDIMACS output: %v", err)
	}
	if diff := cmp.Diff(got, f, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip (-got, +want):\n%s\n\nserialized form:\n%s", diff, b.String())
	}
}

func TestWriteDIMACSHeader(t *testing.T) {
	f := Formula{NewClause(1, 2), NewClause(-2, 3)}
	var b strings.Builder
	if err := WriteDIMACS(&b, f); err != nil {
		t.Fatal(err)
	}
	want := "p cnf 3 2\n"
	if !strings.HasPrefix(b.String(), want) {
		t.Errorf("WriteDIMACS header = %q, want prefix %q", b.String(), want)
	}
}
