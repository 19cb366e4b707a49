// Package ioformat decodes the JSON problem file the CLI reads: a
// knowledge base and an already-negated goal, each a list of
// comma-separated clause strings.
package ioformat

import (
	"encoding/json"
	"fmt"

	"foplprover/internal/prover/proverr"
)

// Problem mirrors the two required top-level keys of the input
// document.
type Problem struct {
	KnowledgeBase            []string `json:"knowledge_base"`
	NegatedTheoremPredicates []string `json:"negated_theorem_predicates"`
}

// rawProblem distinguishes an absent key from an empty array: both
// fields in Problem default to nil on decode, which is what an
// absent key would also produce, so decoding goes through pointers
// first to catch the missing-key case before dropping to Problem.
type rawProblem struct {
	KnowledgeBase            *[]string `json:"knowledge_base"`
	NegatedTheoremPredicates *[]string `json:"negated_theorem_predicates"`
}

// Decode parses a problem document, requiring both keys to be
// present (an empty array satisfies the requirement; an absent key
// does not).
func Decode(data []byte) (Problem, error) {
	var raw rawProblem
	if err := json.Unmarshal(data, &raw); err != nil {
		return Problem{}, fmt.Errorf("%w: %v", proverr.ErrMalformedInput, err)
	}
	if raw.KnowledgeBase == nil {
		return Problem{}, fmt.Errorf("%w: missing key %q", proverr.ErrMalformedInput, "knowledge_base")
	}
	if raw.NegatedTheoremPredicates == nil {
		return Problem{}, fmt.Errorf("%w: missing key %q", proverr.ErrMalformedInput, "negated_theorem_predicates")
	}
	return Problem{
		KnowledgeBase:            *raw.KnowledgeBase,
		NegatedTheoremPredicates: *raw.NegatedTheoremPredicates,
	}, nil
}
