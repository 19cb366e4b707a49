// Package search implements the breadth-first level-saturation proof
// loop: tautology deletion, forward/backward subsumption, and the
// bookkeeping (clause store, deterministic pair ordering) needed for
// proof reconstruction.
package search

import (
	"sort"

	"foplprover/internal/prover/clause"
	"foplprover/internal/prover/resolve"
	"foplprover/internal/prover/subst"
	"foplprover/internal/prover/unify"
)

// Limits exposes the optional safety bounds the specification's
// design notes mention (§9): zero means unbounded, preserving
// observable behaviour on inputs that don't need them.
type Limits struct {
	MaxClauses int
	MaxLevels  int
}

// Logger receives diagnostic progress messages. It is satisfied by a
// zap.SugaredLogger; the core package never imports zap directly so
// that the pure logic stays free of a logging-framework dependency.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Engine owns the clause store for a single proof attempt. Clause
// ids are assigned in strictly increasing insertion order and the
// store is never mutated except to mark a clause deleted once it is
// subsumed, so a child clause's parent ids always stay resolvable.
type Engine struct {
	store        []*clause.Clause
	freshCounter int
	limits       Limits
	logger       Logger
}

// New creates an Engine with the given safety limits.
func New(limits Limits) *Engine {
	return &Engine{limits: limits, logger: nopLogger{}}
}

// SetLogger attaches a diagnostic logger; nil is a no-op.
func (e *Engine) SetLogger(l Logger) {
	if l != nil {
		e.logger = l
	}
}

// Clauses returns the full store, live and deleted alike, in
// insertion order.
func (e *Engine) Clauses() []*clause.Clause { return e.store }

// ByID looks up a clause by its id.
func (e *Engine) ByID(id int) *clause.Clause {
	if id < 1 || id > len(e.store) {
		return nil
	}
	return e.store[id-1]
}

func (e *Engine) allocID() int { return len(e.store) + 1 }

func (e *Engine) freshSuffix() int {
	e.freshCounter++
	return e.freshCounter
}

func (e *Engine) liveClauses() []*clause.Clause {
	out := make([]*clause.Clause, 0, len(e.store))
	for _, c := range e.store {
		if !c.Deleted {
			out = append(out, c)
		}
	}
	return out
}

// Load admits the initial clauses (parsed from the knowledge base and
// negated goal) into the store at level 0, applying tautology
// deletion and forward/backward subsumption exactly as it applies to
// derived clauses. It returns the clauses actually kept, in the
// order they were accepted.
func (e *Engine) Load(clauses []*clause.Clause) []*clause.Clause {
	var kept []*clause.Clause
	for _, c := range clauses {
		if IsTautology(c) {
			e.logger.Debugf("dropping tautology %s", c.String())
			continue
		}
		if e.subsumedByLive(c) {
			e.logger.Debugf("dropping subsumed clause %s", c.String())
			continue
		}
		c.ID = e.allocID()
		c.Level = 0
		e.store = append(e.store, c)
		kept = append(kept, c)
		e.markSubsumed(c)
	}
	return kept
}

// Run drives the level-saturation loop: at each level it enumerates
// unordered pairs where at least one side belongs to the current
// frontier, resolves each pair, and filters resolvents through the
// tautology and subsumption checks before admitting them at level
// k+1. It stops on finding the empty clause (proof found), on a
// level producing no new clause (no proof), or once a configured
// safety limit is hit (treated as no proof).
func (e *Engine) Run() (*clause.Clause, bool) {
	frontier := e.liveClauses()
	level := 0

	for {
		if e.limits.MaxLevels > 0 && level >= e.limits.MaxLevels {
			e.logger.Debugf("max level depth %d reached", e.limits.MaxLevels)
			return nil, false
		}

		pairs := e.pendingPairs(frontier)
		var nextFrontier []*clause.Clause

		for _, pr := range pairs {
			c1, c2 := pr[0], pr[1]
			if c1.Deleted || c2.Deleted {
				continue
			}

			for _, cand := range resolve.Pair(c1, c2, e.freshSuffix) {
				resolvent := clause.New(cand.Literals)
				if IsTautology(resolvent) {
					continue
				}
				if e.subsumedByLive(resolvent) {
					continue
				}
				if e.limits.MaxClauses > 0 && len(e.store) >= e.limits.MaxClauses {
					e.logger.Debugf("max clause count %d reached", e.limits.MaxClauses)
					return nil, false
				}

				resolvent.ID = e.allocID()
				resolvent.Level = level + 1
				resolvent.Derived = true
				resolvent.ParentA = cand.ParentA
				resolvent.ParentB = cand.ParentB
				resolvent.LitIdxA = cand.LitIdxA
				resolvent.LitIdxB = cand.LitIdxB
				resolvent.Subst = cand.Subst

				e.store = append(e.store, resolvent)
				e.markSubsumed(resolvent)
				nextFrontier = append(nextFrontier, resolvent)

				if resolvent.IsEmpty() {
					e.logger.Debugf("contradiction found at level %d", resolvent.Level)
					return resolvent, true
				}
			}
		}

		if len(nextFrontier) == 0 {
			return nil, false
		}
		frontier = nextFrontier
		level++
	}
}

// pendingPairs enumerates unordered pairs (A, B), A != B, where at
// least one side belongs to frontier and both are currently live,
// each normalised so the lower-id clause is first. The result is
// sorted lexicographically over (A.id, B.id) for reproducibility.
func (e *Engine) pendingPairs(frontier []*clause.Clause) [][2]*clause.Clause {
	live := e.liveClauses()
	seen := make(map[[2]int]bool)
	var pairs [][2]*clause.Clause

	for _, f := range frontier {
		for _, g := range live {
			if f.ID == g.ID {
				continue
			}
			a, b := f, g
			if a.ID > b.ID {
				a, b = b, a
			}
			key := [2]int{a.ID, b.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, [2]*clause.Clause{a, b})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0].ID != pairs[j][0].ID {
			return pairs[i][0].ID < pairs[j][0].ID
		}
		return pairs[i][1].ID < pairs[j][1].ID
	})
	return pairs
}

func (e *Engine) subsumedByLive(c *clause.Clause) bool {
	for _, existing := range e.store {
		if existing.Deleted {
			continue
		}
		if Subsumes(existing, c) {
			return true
		}
	}
	return false
}

func (e *Engine) markSubsumed(c *clause.Clause) {
	for _, existing := range e.store {
		if existing.ID == c.ID || existing.Deleted {
			continue
		}
		if StrictlySubsumes(c, existing) {
			existing.Deleted = true
		}
	}
}

// IsTautology reports whether a clause contains two literals with
// identical argument lists, identical predicate name, and opposite
// polarity.
func IsTautology(c *clause.Clause) bool {
	for i, l1 := range c.Literals {
		for j, l2 := range c.Literals {
			if i == j {
				continue
			}
			if l1.Predicate != l2.Predicate || l1.Negated == l2.Negated {
				continue
			}
			if len(l1.Args) != len(l2.Args) {
				continue
			}
			identical := true
			for k := range l1.Args {
				if l1.Args[k].String() != l2.Args[k].String() {
					identical = false
					break
				}
			}
			if identical {
				return true
			}
		}
	}
	return false
}

// Subsumes reports whether clause a subsumes clause b: there exists
// a substitution theta that maps each of a's literals onto a distinct
// literal of b with matching name, polarity and arity. Candidate
// assignments are found by unifying each mapped pair, accumulating the
// substitution across the whole assignment; an assignment is accepted
// only if the final theta turns every literal of a into exactly its
// partner in b, so a unifier that would have to instantiate b does not
// count. This is the sound, incomplete check named in the
// specification — a brute-force backtracking search over candidate
// assignments, practical for the small clauses this engine handles.
func Subsumes(a, b *clause.Clause) bool {
	used := make([]bool, len(b.Literals))
	assign := make([]int, len(a.Literals))

	var backtrack func(i int, theta subst.Substitution) bool
	backtrack = func(i int, theta subst.Substitution) bool {
		if i == len(a.Literals) {
			for k, la := range a.Literals {
				if !la.Substitute(theta).Equal(b.Literals[assign[k]]) {
					return false
				}
			}
			return true
		}
		la := a.Literals[i]
		for j, lb := range b.Literals {
			if used[j] {
				continue
			}
			next, err := unify.Literals(la, lb, theta)
			if err != nil {
				continue
			}
			used[j] = true
			assign[i] = j
			if backtrack(i+1, next) {
				return true
			}
			used[j] = false
		}
		return false
	}
	return backtrack(0, nil)
}

// StrictlySubsumes reports whether a strictly subsumes b: a subsumes
// b, |a| <= |b|, and a and b are not equal up to variable renaming
// (mutual subsumption of equal length). Only strict subsumption
// causes deletion of the subsumed clause.
func StrictlySubsumes(a, b *clause.Clause) bool {
	if len(a.Literals) > len(b.Literals) {
		return false
	}
	if !Subsumes(a, b) {
		return false
	}
	if len(a.Literals) == len(b.Literals) && Subsumes(b, a) {
		return false
	}
	return true
}
