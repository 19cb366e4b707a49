// Package session is the single entry point into the core engine: it
// parses a knowledge base and a negated goal, runs saturation, and
// hands back everything the external interfaces need to render
// output, without itself knowing about files, JSON or flags.
package session

import (
	"fmt"

	"foplprover/internal/prover/clause"
	"foplprover/internal/prover/parse"
	"foplprover/internal/prover/proof"
	"foplprover/internal/prover/search"
)

// Result is the outcome of a single proof attempt.
type Result struct {
	// Initial holds the clauses actually admitted at level 0, in
	// insertion order, after tautology and subsumption filtering.
	Initial []*clause.Clause
	// Found reports whether the empty clause was derived.
	Found bool
	// Trace holds the derivation lines (§4.G), populated only when
	// Found is true.
	Trace []string
}

// Run parses every clause string in kb and negatedGoal, loads them
// into a fresh search engine under limits, and runs saturation to
// completion. A parse error aborts the whole attempt; it is the
// caller's job to report it (see proverr.ErrParse).
func Run(kb, negatedGoal []string, limits search.Limits, logger search.Logger) (Result, error) {
	var parsed []*clause.Clause
	for _, s := range kb {
		c, err := parse.Clause(s)
		if err != nil {
			return Result{}, fmt.Errorf("knowledge base clause %q: %w", s, err)
		}
		parsed = append(parsed, c)
	}
	for _, s := range negatedGoal {
		c, err := parse.Clause(s)
		if err != nil {
			return Result{}, fmt.Errorf("negated goal clause %q: %w", s, err)
		}
		parsed = append(parsed, c)
	}

	engine := search.New(limits)
	if logger != nil {
		engine.SetLogger(logger)
	}

	initial := engine.Load(parsed)
	empty, found := engine.Run()

	result := Result{Initial: initial, Found: found}
	if found {
		result.Trace = proof.Trace(engine, empty)
	}
	return result, nil
}
