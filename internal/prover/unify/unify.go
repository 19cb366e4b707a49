// Package unify implements the Robinson-style most general unifier
// (MGU) over the term algebra, plus the complementary-literal check
// used by the resolver.
package unify

import (
	"errors"

	"foplprover/internal/prover/clause"
	"foplprover/internal/prover/subst"
	"foplprover/internal/prover/term"
)

// ErrFailed is returned whenever unification cannot succeed. It is
// expected control flow for the resolver and subsumption checker,
// never a surfaced program error.
var ErrFailed = errors.New("unification failure")

// Terms attempts to unify two terms under the accumulator theta,
// returning the extended substitution on success.
func Terms(a, b term.Term, theta subst.Substitution) (subst.Substitution, error) {
	if term.Equal(a, b) {
		return theta, nil
	}
	if a.IsVariable() {
		return unifyVar(a, b, theta)
	}
	if b.IsVariable() {
		return unifyVar(b, a, theta)
	}
	af, aIsFunc := a.(*term.Function)
	bf, bIsFunc := b.(*term.Function)
	if aIsFunc && bIsFunc {
		if af.Name() != bf.Name() || len(af.Args()) != len(bf.Args()) {
			return nil, ErrFailed
		}
		return TermLists(af.Args(), bf.Args(), theta)
	}
	return nil, ErrFailed
}

// TermLists unifies two equal-length lists of terms, walking
// left-to-right and threading the accumulating substitution through:
// at step i, aᵢ and bᵢ are unified under the substitution built up
// from steps 0..i-1.
func TermLists(as, bs []term.Term, theta subst.Substitution) (subst.Substitution, error) {
	if len(as) != len(bs) {
		return nil, ErrFailed
	}
	for i := range as {
		var err error
		theta, err = Terms(as[i], bs[i], theta)
		if err != nil {
			return nil, ErrFailed
		}
	}
	return theta, nil
}

func unifyVar(v, x term.Term, theta subst.Substitution) (subst.Substitution, error) {
	varName := v.Name()

	if bound, ok := theta.Lookup(varName); ok {
		return Terms(bound, x, theta)
	}
	if x.IsVariable() {
		if bound, ok := theta.Lookup(x.Name()); ok {
			return Terms(v, bound, theta)
		}
	}
	// Occurs check: refuse to build a cyclic binding such as f(x)/x.
	if x.ContainsVar(varName) {
		return nil, ErrFailed
	}
	// Compose the new binding into theta rather than merely appending
	// it: earlier bindings whose right-hand side mentions varName
	// must be updated too, or a later occurrence of the same variable
	// resolves against a stale term (§4.C).
	delta := subst.Substitution{{Var: varName, Term: x}}
	return subst.Compose(delta, theta), nil
}

// Complementary succeeds iff l1 and l2 name the same predicate, have
// opposite polarity and the same arity, and their argument lists
// unify.
func Complementary(l1, l2 *clause.Literal) (subst.Substitution, error) {
	if l1.Predicate != l2.Predicate {
		return nil, ErrFailed
	}
	if l1.Negated == l2.Negated {
		return nil, ErrFailed
	}
	if len(l1.Args) != len(l2.Args) {
		return nil, ErrFailed
	}
	return TermLists(l1.Args, l2.Args, nil)
}

// Literals unifies two literals of identical polarity (same name,
// same negation flag, same arity) under the accumulator theta, used
// by the subsumption check's assignment search — unlike
// Complementary, this requires matching rather than opposite
// polarity.
func Literals(l1, l2 *clause.Literal, theta subst.Substitution) (subst.Substitution, error) {
	if l1.Predicate != l2.Predicate || l1.Negated != l2.Negated {
		return nil, ErrFailed
	}
	if len(l1.Args) != len(l2.Args) {
		return nil, ErrFailed
	}
	return TermLists(l1.Args, l2.Args, theta)
}
