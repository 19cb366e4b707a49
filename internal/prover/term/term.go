// Package term implements the term algebra of first-order predicate
// logic: variables, constants and functions.
package term

import (
	"strings"
	"unicode"
)

// Term is a closed variant set: every value is exactly one of
// Variable, Constant or Function. Equality is structural, decided by
// comparing String() output.
type Term interface {
	Name() string
	IsVariable() bool
	String() string
	// ContainsVar reports whether the variable named name occurs
	// anywhere inside this term, used by the unifier's occurs check.
	ContainsVar(name string) bool
}

// Variable is a term whose name begins with a lower-case letter.
type Variable struct {
	name string
}

// NewVariable constructs a Variable with the given name.
func NewVariable(name string) *Variable { return &Variable{name: name} }

func (v *Variable) Name() string     { return v.name }
func (v *Variable) IsVariable() bool { return true }
func (v *Variable) String() string   { return v.name }
func (v *Variable) ContainsVar(name string) bool {
	return v.name == name
}

// Constant is a nullary term whose name begins with an upper-case
// letter.
type Constant struct {
	name string
}

// NewConstant constructs a Constant with the given name.
func NewConstant(name string) *Constant { return &Constant{name: name} }

func (c *Constant) Name() string            { return c.name }
func (c *Constant) IsVariable() bool        { return false }
func (c *Constant) String() string          { return c.name }
func (c *Constant) ContainsVar(string) bool { return false }

// Function is a term with a lower-case-initial name and a
// non-empty ordered list of child terms. There are no nullary
// functions; a nullary "function" is a Constant.
type Function struct {
	name string
	args []Term
}

// NewFunction constructs a Function term. args must be non-empty,
// per invariant 1 of the data model.
func NewFunction(name string, args []Term) *Function {
	return &Function{name: name, args: args}
}

func (f *Function) Name() string     { return f.name }
func (f *Function) IsVariable() bool { return false }
func (f *Function) Args() []Term     { return f.args }

func (f *Function) String() string {
	parts := make([]string, len(f.args))
	for i, arg := range f.args {
		parts[i] = arg.String()
	}
	return f.name + "(" + strings.Join(parts, ",") + ")"
}

func (f *Function) ContainsVar(name string) bool {
	for _, arg := range f.args {
		if arg.ContainsVar(name) {
			return true
		}
	}
	return false
}

// IsVariableName reports whether a bare identifier should be
// classified as a Variable, i.e. its first rune is lower-case.
// Classification is purely lexical, per invariant 2 of the data
// model: a name is never both a variable and a constant.
func IsVariableName(name string) bool {
	r := firstRune(name)
	return r != 0 && unicode.IsLower(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Equal reports whether two terms are structurally identical.
func Equal(a, b Term) bool {
	return a.String() == b.String()
}
