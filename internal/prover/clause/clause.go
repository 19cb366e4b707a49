// Package clause defines Literal and Clause, the predicate-atom and
// disjunction types that sit above the term algebra. Literals are
// modelled as a separate struct rather than a Term variant so that
// the invariant "predicates never nest inside functions or other
// predicates" holds statically.
package clause

import (
	"sort"
	"strings"

	"foplprover/internal/prover/subst"
	"foplprover/internal/prover/term"
)

// Literal is a possibly-negated predicate atom.
type Literal struct {
	Predicate string
	Args      []term.Term
	Negated   bool
}

// NewLiteral constructs a Literal.
func NewLiteral(predicate string, args []term.Term, negated bool) *Literal {
	return &Literal{Predicate: predicate, Args: args, Negated: negated}
}

func (l *Literal) String() string {
	prefix := ""
	if l.Negated {
		prefix = "~"
	}
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = a.String()
	}
	return prefix + l.Predicate + "(" + strings.Join(parts, ",") + ")"
}

// Negate returns the complementary literal (same predicate/args,
// opposite polarity).
func (l *Literal) Negate() *Literal {
	return NewLiteral(l.Predicate, l.Args, !l.Negated)
}

// Equal reports syntactic identity: same predicate name, polarity
// and structurally identical argument lists.
func (l *Literal) Equal(other *Literal) bool {
	if l.Predicate != other.Predicate || l.Negated != other.Negated {
		return false
	}
	if len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if !term.Equal(l.Args[i], other.Args[i]) {
			return false
		}
	}
	return true
}

// Substitute returns the literal with sigma applied to every
// argument.
func (l *Literal) Substitute(sigma subst.Substitution) *Literal {
	newArgs := make([]term.Term, len(l.Args))
	for i, a := range l.Args {
		newArgs[i] = subst.Apply(a, sigma)
	}
	return NewLiteral(l.Predicate, newArgs, l.Negated)
}

// Clause is an unordered, duplicate-free disjunction of literals. It
// additionally carries provenance used only by the search engine:
// an id, the ids of its two parents (zero if none), the two literal
// indices resolved upon, the level it was discovered at, and the
// substitution that produced it. Parent clauses are referenced by id
// rather than by pointer — ownership lives exclusively in the
// engine's clause store.
type Clause struct {
	ID         int
	Literals   []*Literal
	Level      int
	ParentA    int // 0 means "no parent" (ids are assigned starting at 1)
	ParentB    int
	LitIdxA    int
	LitIdxB    int
	Subst      subst.Substitution
	Derived    bool // false for clauses loaded directly from input
	Deleted    bool // true once subsumed by a live clause
}

// New builds a Clause in canonical form: duplicate literals removed,
// remaining literals sorted by predicate name (ties broken by the
// full printed form) so that a clause read back out always prints
// the same way regardless of the order its literals arrived in.
func New(literals []*Literal) *Clause {
	uniq := dedupe(literals)
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].Predicate != uniq[j].Predicate {
			return uniq[i].Predicate < uniq[j].Predicate
		}
		return uniq[i].String() < uniq[j].String()
	})
	return &Clause{Literals: uniq}
}

func dedupe(literals []*Literal) []*Literal {
	seen := make(map[string]bool, len(literals))
	out := make([]*Literal, 0, len(literals))
	for _, l := range literals {
		key := l.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, l)
		}
	}
	return out
}

func (c *Clause) String() string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IsEmpty reports whether this is the empty clause, denoting ⊥.
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Equal reports whether two clauses contain the same literals (they
// are already in canonical order, so this is a pointwise compare).
func (c *Clause) Equal(other *Clause) bool {
	if len(c.Literals) != len(other.Literals) {
		return false
	}
	for i := range c.Literals {
		if !c.Literals[i].Equal(other.Literals[i]) {
			return false
		}
	}
	return true
}

// VarNames collects the set of variable names occurring anywhere in
// the clause.
func (c *Clause) VarNames() map[string]bool {
	names := make(map[string]bool)
	var walk func(t term.Term)
	walk = func(t term.Term) {
		if t.IsVariable() {
			names[t.Name()] = true
			return
		}
		if f, ok := t.(*term.Function); ok {
			for _, a := range f.Args() {
				walk(a)
			}
		}
	}
	for _, l := range c.Literals {
		for _, a := range l.Args {
			walk(a)
		}
	}
	return names
}
