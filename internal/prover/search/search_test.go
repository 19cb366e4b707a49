package search

import (
	"testing"

	"foplprover/internal/prover/clause"
	"foplprover/internal/prover/parse"
)

func mustParse(t *testing.T, s string) *clause.Clause {
	t.Helper()
	c, err := parse.Clause(s)
	if err != nil {
		t.Fatalf("parse(%q): %v", s, err)
	}
	return c
}

func TestIsTautology(t *testing.T) {
	tautology := mustParse(t, "p(x),~p(x)")
	if !IsTautology(tautology) {
		t.Error("expected p(x),~p(x) to be a tautology")
	}
	ordinary := mustParse(t, "p(x),q(x)")
	if IsTautology(ordinary) {
		t.Error("did not expect p(x),q(x) to be a tautology")
	}
}

func TestSubsumes(t *testing.T) {
	general := mustParse(t, "p(x)")
	specific := mustParse(t, "p(A)")
	if !Subsumes(general, specific) {
		t.Error("expected p(x) to subsume p(A)")
	}
	if Subsumes(specific, general) {
		t.Error("did not expect p(A) to subsume p(x)")
	}
}

func TestStrictlySubsumesRejectsEqualClauses(t *testing.T) {
	a := mustParse(t, "p(x)")
	b := mustParse(t, "p(y)")
	if StrictlySubsumes(a, b) {
		t.Error("clauses equal up to renaming must not strictly subsume each other")
	}
}

func TestLoadFiltersTautologies(t *testing.T) {
	e := New(Limits{})
	kept := e.Load([]*clause.Clause{
		mustParse(t, "p(x),~p(x)"),
		mustParse(t, "q(A)"),
	})
	if len(kept) != 1 {
		t.Fatalf("expected 1 clause kept (tautology dropped), got %d", len(kept))
	}
	if kept[0].String() != "[q(A)]" {
		t.Errorf("unexpected surviving clause: %s", kept[0].String())
	}
}

func TestLoadDropsSubsumedClause(t *testing.T) {
	e := New(Limits{})
	kept := e.Load([]*clause.Clause{
		mustParse(t, "p(x)"),
		mustParse(t, "p(A)"),
	})
	if len(kept) != 1 {
		t.Fatalf("expected p(A) to be rejected as subsumed, got %d clauses kept", len(kept))
	}
	if kept[0].String() != "[p(x)]" {
		t.Errorf("expected p(x) to survive, got %s", kept[0].String())
	}
}

func TestRunScenario1(t *testing.T) {
	e := New(Limits{})
	e.Load([]*clause.Clause{
		mustParse(t, "~p(x),q(x)"),
		mustParse(t, "p(y),r(y)"),
		mustParse(t, "~q(z),s(z)"),
		mustParse(t, "~r(t),s(t)"),
		mustParse(t, "~s(A)"),
	})
	empty, found := e.Run()
	if !found {
		t.Fatal("expected a contradiction to be found")
	}
	if !empty.IsEmpty() {
		t.Error("expected the returned clause to be the empty clause")
	}
}

func TestRunScenario4NoProof(t *testing.T) {
	e := New(Limits{})
	e.Load([]*clause.Clause{
		mustParse(t, "p(A)"),
		mustParse(t, "~q(A)"),
	})
	_, found := e.Run()
	if found {
		t.Error("expected no contradiction")
	}
}

func TestRunScenario6Subsumption(t *testing.T) {
	e := New(Limits{})
	kept := e.Load([]*clause.Clause{
		mustParse(t, "p(x)"),
		mustParse(t, "p(A)"),
		mustParse(t, "~p(A)"),
	})
	if len(kept) != 2 {
		t.Fatalf("expected p(A) to be subsumed away, kept %d clauses", len(kept))
	}
	_, found := e.Run()
	if !found {
		t.Error("expected p(x) and ~p(A) to resolve to the empty clause")
	}
}

func TestMaxLevelsStopsSearch(t *testing.T) {
	e := New(Limits{MaxLevels: 0})
	e.limits.MaxLevels = 1
	e.Load([]*clause.Clause{
		mustParse(t, "~p(x),q(x)"),
		mustParse(t, "p(y),r(y)"),
		mustParse(t, "~q(z),s(z)"),
		mustParse(t, "~r(t),s(t)"),
		mustParse(t, "~s(A)"),
	})
	_, found := e.Run()
	if found {
		t.Error("expected the level limit to prevent the proof from completing")
	}
}
