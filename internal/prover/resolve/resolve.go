// Package resolve implements the binary resolution rule: variable
// standardisation apart, complementary literal pairing, unification
// and resolvent construction. It does not own clause ids or the
// clause store — that belongs to the search engine — so it returns
// unassigned Candidates for the engine to accept or discard.
package resolve

import (
	"fmt"
	"strconv"

	"foplprover/internal/prover/clause"
	"foplprover/internal/prover/subst"
	"foplprover/internal/prover/term"
	"foplprover/internal/prover/unify"
)

// Candidate is a not-yet-admitted resolvent: its literals and the
// provenance needed to build a clause.Clause once the engine assigns
// it an id.
type Candidate struct {
	Literals []*clause.Literal
	ParentA  int
	ParentB  int
	LitIdxA  int
	LitIdxB  int
	Subst    subst.Substitution
}

// Pair resolves every complementary, unifiable literal pair between
// c1 and c2, returning zero or more candidates. Self-resolution
// (c1.ID == c2.ID) is excluded. freshSuffix supplies a fresh
// monotonic integer used to rename c2's variables when its variable
// names clash with c1's, preventing accidental capture.
func Pair(c1, c2 *clause.Clause, freshSuffix func() int) []Candidate {
	if c1.ID == c2.ID {
		return nil
	}

	c2s := standardizeApart(c1, c2, freshSuffix)

	var out []Candidate
	for i, l1 := range c1.Literals {
		for j, l2 := range c2s.Literals {
			theta, err := unify.Complementary(l1, l2)
			if err != nil {
				continue
			}

			newLits := make([]*clause.Literal, 0, len(c1.Literals)+len(c2s.Literals)-2)
			for idx, l := range c1.Literals {
				if idx != i {
					newLits = append(newLits, l.Substitute(theta))
				}
			}
			for idx, l := range c2s.Literals {
				if idx != j {
					newLits = append(newLits, l.Substitute(theta))
				}
			}

			out = append(out, Candidate{
				Literals: newLits,
				ParentA:  c1.ID,
				ParentB:  c2.ID,
				LitIdxA:  i,
				LitIdxB:  j,
				Subst:    theta,
			})
		}
	}
	return out
}

// standardizeApart renames c2's variables by appending "#k" (k from
// freshSuffix) whenever c1 and c2 share a variable name, so their
// name spaces become disjoint. When no names clash, c2 is returned
// unchanged — this keeps proof traces free of cosmetic suffixes in
// the common case where clauses already use distinct variable
// letters.
func standardizeApart(c1, c2 *clause.Clause, freshSuffix func() int) *clause.Clause {
	names1 := c1.VarNames()
	names2 := c2.VarNames()

	clashes := false
	for n := range names2 {
		if names1[n] {
			clashes = true
			break
		}
	}
	if !clashes {
		return c2
	}

	suffix := "#" + strconv.Itoa(freshSuffix())
	rename := make(map[string]term.Term, len(names2))
	for n := range names2 {
		rename[n] = term.NewVariable(n + suffix)
	}

	renamed := make([]*clause.Literal, len(c2.Literals))
	for i, l := range c2.Literals {
		renamed[i] = renameLiteral(l, rename)
	}
	out := clause.New(renamed)
	out.Level = c2.Level
	return out
}

func renameLiteral(l *clause.Literal, rename map[string]term.Term) *clause.Literal {
	args := make([]term.Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = renameTerm(a, rename)
	}
	return clause.NewLiteral(l.Predicate, args, l.Negated)
}

func renameTerm(t term.Term, rename map[string]term.Term) term.Term {
	if t.IsVariable() {
		if nv, ok := rename[t.Name()]; ok {
			return nv
		}
		return t
	}
	if f, ok := t.(*term.Function); ok {
		args := f.Args()
		newArgs := make([]term.Term, len(args))
		for i, a := range args {
			newArgs[i] = renameTerm(a, rename)
		}
		return term.NewFunction(f.Name(), newArgs)
	}
	return t
}

// Describe renders a short, human-readable label for a candidate's
// originating pair, useful for diagnostic logging.
func Describe(c1, c2 *clause.Clause) string {
	return fmt.Sprintf("%s | %s", c1.String(), c2.String())
}
