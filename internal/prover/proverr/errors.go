// Package proverr defines the core engine's error taxonomy. Of the
// five error kinds named by the specification, only MalformedInput
// and ParseError are ever surfaced past the core; UnificationFailure
// lives in package unify and drives control flow; NoProof is not an
// error at all, it is reported as a structured Result.
package proverr

import "errors"

var (
	// ErrMalformedInput signals an input JSON document missing a
	// required key or carrying the wrong shape.
	ErrMalformedInput = errors.New("malformed input")

	// ErrParse signals a clause string that violates the clause
	// grammar: unbalanced parentheses, an empty argument list, a
	// predicate used as an argument, wrong leading case, or an
	// unexpected character.
	ErrParse = errors.New("parse error")
)
