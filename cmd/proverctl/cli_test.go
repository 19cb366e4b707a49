package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"foplprover/internal/prover/proverr"
)

func writeProblem(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunProveContradicts(t *testing.T) {
	logger = zap.NewNop()
	problemFile = writeProblem(t, `{
		"knowledge_base": ["~p(x),q(x)", "p(y),r(y)", "~q(z),s(z)", "~r(t),s(t)"],
		"negated_theorem_predicates": ["~s(A)"]
	}`)
	configFile = ""
	maxClausesArg, maxLevelsArg = 0, 0
	defer func() { problemFile = "" }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runProve(cmd, nil); err != nil {
		t.Fatalf("runProve failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Initial knowledge base clauses are:") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "Knowledge base contradicts, so inverse of the negated target clause is provable.") {
		t.Error("missing contradiction header")
	}
	if !strings.Contains(out, "-> [] with substitution []") {
		t.Error("missing final empty-clause derivation step")
	}
}

func TestRunProveNoContradiction(t *testing.T) {
	logger = zap.NewNop()
	problemFile = writeProblem(t, `{
		"knowledge_base": ["p(A)"],
		"negated_theorem_predicates": ["~q(A)"]
	}`)
	configFile = ""
	maxClausesArg, maxLevelsArg = 0, 0
	defer func() { problemFile = "" }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runProve(cmd, nil); err != nil {
		t.Fatalf("runProve failed: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "Knowledge base does not contradict.") {
		t.Errorf("expected the no-contradiction line, got %q", got)
	}
}

func TestRunProveMissingKeyIsMalformedInput(t *testing.T) {
	logger = zap.NewNop()
	problemFile = writeProblem(t, `{"knowledge_base": ["p(A)"]}`)
	configFile = ""
	maxClausesArg, maxLevelsArg = 0, 0
	defer func() { problemFile = "" }()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if err := runProve(cmd, nil); !errors.Is(err, proverr.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for a missing required key, got %v", err)
	}
}
