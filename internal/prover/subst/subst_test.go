package subst

import (
	"testing"

	"foplprover/internal/prover/term"
)

func TestApplyVariable(t *testing.T) {
	sigma := Substitution{{Var: "x", Term: term.NewConstant("A")}}
	got := Apply(term.NewVariable("x"), sigma)
	if got.String() != "A" {
		t.Errorf("Apply = %q, want %q", got.String(), "A")
	}
}

func TestApplyFunctionRecurses(t *testing.T) {
	sigma := Substitution{{Var: "x", Term: term.NewConstant("A")}}
	f := term.NewFunction("f", []term.Term{term.NewVariable("x"), term.NewConstant("B")})
	got := Apply(f, sigma)
	if got.String() != "f(A,B)" {
		t.Errorf("Apply = %q, want %q", got.String(), "f(A,B)")
	}
}

func TestApplyDoesNotRescanReplacement(t *testing.T) {
	// x/y, y/A: applying to x should yield y, not A, since Apply is
	// single-pass and does not chase chains.
	sigma := Substitution{{Var: "x", Term: term.NewVariable("y")}, {Var: "y", Term: term.NewConstant("A")}}
	got := Apply(term.NewVariable("x"), sigma)
	if got.String() != "y" {
		t.Errorf("Apply = %q, want %q (single pass, no chasing)", got.String(), "y")
	}
}

func TestString(t *testing.T) {
	var empty Substitution
	if got, want := empty.String(), "[]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	sigma := Substitution{{Var: "y", Term: term.NewVariable("t")}}
	if got, want := sigma.String(), "[t / y]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompose(t *testing.T) {
	// sigma1: x -> y ; sigma2: y -> A
	sigma1 := Substitution{{Var: "x", Term: term.NewVariable("y")}}
	sigma2 := Substitution{{Var: "y", Term: term.NewConstant("A")}}

	composed := Compose(sigma2, sigma1)
	got, ok := composed.Lookup("x")
	if !ok {
		t.Fatal("expected x to be bound in the composed substitution")
	}
	if got.String() != "A" {
		t.Errorf("composed x = %q, want %q", got.String(), "A")
	}
	if yBound, ok := composed.Lookup("y"); !ok || yBound.String() != "A" {
		t.Errorf("expected sigma2's own binding y/A to carry through, got %v, %v", yBound, ok)
	}
}

func TestComposeDropsTrivialRenaming(t *testing.T) {
	// sigma1: x -> y ; sigma2: y -> x. Composing round-trips x back to
	// itself, which must be dropped rather than kept as x/x.
	sigma1 := Substitution{{Var: "x", Term: term.NewVariable("y")}}
	sigma2 := Substitution{{Var: "y", Term: term.NewVariable("x")}}

	composed := Compose(sigma2, sigma1)
	if composed.Has("x") {
		t.Errorf("expected the round-tripped x/x binding to be dropped, got %v", composed)
	}
	if got, want := composed.String(), "[x / y]"; got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}
