package dpll

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
)

// tracePretty prints the current trail to stderr via kr/pretty when a
// Solver is run with Debug set. cespare/saturday's bcp() used
// pretty.Println this way unconditionally on every propagation step; here
// it's gated so production solves stay silent.
func (s *search) tracePretty() {
	fmt.Fprintf(os.Stderr, "dpll: level=%d decisions=%d trail=%s\n",
		s.trail.level(), s.stats.Decisions, pretty.Sprint(s.trail.order))
}
