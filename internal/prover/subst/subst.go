// Package subst implements substitutions: ordered variable-to-term
// binding lists, their application to terms, and their composition.
package subst

import (
	"strings"

	"foplprover/internal/prover/term"
)

// Binding maps a variable name to a replacement term ("t / v").
type Binding struct {
	Var  string
	Term term.Term
}

// Substitution is an ordered list of bindings, distinct in their
// left-hand variable. Ordering only matters for display; bindings
// are always applied "in parallel" after composition.
type Substitution []Binding

// Lookup returns the term bound to v, if any.
func (s Substitution) Lookup(v string) (term.Term, bool) {
	for _, b := range s {
		if b.Var == v {
			return b.Term, true
		}
	}
	return nil, false
}

// Has reports whether v is bound.
func (s Substitution) Has(v string) bool {
	_, ok := s.Lookup(v)
	return ok
}

// With returns a copy of s with an additional binding appended. It
// does not check for an existing binding of v; callers are expected
// to have already resolved that case (see the unifier).
func (s Substitution) With(v string, t term.Term) Substitution {
	out := make(Substitution, len(s), len(s)+1)
	copy(out, s)
	return append(out, Binding{Var: v, Term: t})
}

// Apply replaces every occurrence of a bound variable in t with its
// bound term, in a single pass: the replacement term is not itself
// re-scanned for further substitution, since bindings are expected
// to already be fully reduced by composition.
func Apply(t term.Term, sigma Substitution) term.Term {
	if t.IsVariable() {
		if bound, ok := sigma.Lookup(t.Name()); ok {
			return bound
		}
		return t
	}
	if f, ok := t.(*term.Function); ok {
		args := f.Args()
		newArgs := make([]term.Term, len(args))
		for i, a := range args {
			newArgs[i] = Apply(a, sigma)
		}
		return term.NewFunction(f.Name(), newArgs)
	}
	return t // Constant
}

// isTrivial reports whether a binding t/v is a no-op renaming (t is
// exactly the variable v itself).
func isTrivial(v string, t term.Term) bool {
	return t.IsVariable() && t.Name() == v
}

// Compose computes sigma2 ∘ sigma1: apply sigma1 first, then sigma2.
// For each binding t/v in sigma1, the result contains (sigma2 t)/v,
// unless that collapses to the identity binding v/v. Bindings of
// sigma2 whose variable is not already bound by sigma1 are appended
// afterwards.
func Compose(sigma2, sigma1 Substitution) Substitution {
	result := make(Substitution, 0, len(sigma1)+len(sigma2))
	seen := make(map[string]bool, len(sigma1))
	for _, b := range sigma1 {
		newTerm := Apply(b.Term, sigma2)
		if !isTrivial(b.Var, newTerm) {
			result = append(result, Binding{Var: b.Var, Term: newTerm})
		}
		seen[b.Var] = true
	}
	for _, b := range sigma2 {
		if !seen[b.Var] && !isTrivial(b.Var, b.Term) {
			result = append(result, b)
		}
	}
	return result
}

// String renders the substitution as "[t1 / v1, t2 / v2]", or "[]"
// when empty.
func (s Substitution) String() string {
	if len(s) == 0 {
		return "[]"
	}
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = b.Term.String() + " / " + b.Var
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
