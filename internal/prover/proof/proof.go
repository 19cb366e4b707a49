// Package proof reconstructs the derivation trace from the empty
// clause back to its axioms by walking parent pointers.
package proof

import (
	"fmt"

	"foplprover/internal/prover/clause"
)

// Store resolves a clause id back to the clause that holds it; it is
// satisfied by *search.Engine.
type Store interface {
	ByID(id int) *clause.Clause
}

// Trace returns the derivation steps leading to empty, one line per
// resolution step, each formatted as:
//
//	parentA | parentB -> resolvent with substitution theta
//
// Steps are emitted in a topological order (every parent line
// precedes the lines of its children) obtained by a depth-first walk
// of the parent DAG rooted at empty, visiting each node's second
// parent before its first. That visiting order keeps a derivation
// chain feeding directly into the final step close to the end of the
// trace instead of being interleaved earlier just because it shares a
// level with an unrelated branch.
func Trace(store Store, empty *clause.Clause) []string {
	visited := make(map[int]bool)
	var order []*clause.Clause

	var visit func(c *clause.Clause)
	visit = func(c *clause.Clause) {
		if c == nil || visited[c.ID] {
			return
		}
		visited[c.ID] = true
		if c.Derived {
			visit(store.ByID(c.ParentB))
			visit(store.ByID(c.ParentA))
		}
		order = append(order, c)
	}
	visit(empty)

	lines := make([]string, 0, len(order))
	for _, c := range order {
		if !c.Derived {
			continue
		}
		parentA := store.ByID(c.ParentA)
		parentB := store.ByID(c.ParentB)
		lines = append(lines, fmt.Sprintf("%s | %s -> %s with substitution %s",
			parentA.String(), parentB.String(), c.String(), c.Subst.String()))
	}
	return lines
}
