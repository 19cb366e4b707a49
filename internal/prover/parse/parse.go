// Package parse tokenises and recursively parses a clause string
// such as "~p(z,f(B)),q(z)" into a clause.Clause.
package parse

import (
	"fmt"
	"unicode"

	"foplprover/internal/prover/clause"
	"foplprover/internal/prover/proverr"
	"foplprover/internal/prover/term"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokLParen
	tokRParen
	tokComma
	tokTilde
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex tokenises s into identifier, '(', ')', ',', '~' tokens,
// skipping whitespace. An unrecognised rune makes lex return a parse
// error naming the rune and its position.
func lex(s string) ([]token, error) {
	runes := []rune(s)
	var toks []token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case r == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		case r == '~':
			toks = append(toks, token{tokTilde, "~", i})
			i++
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			toks = append(toks, token{tokIdent, string(runes[start:i]), start})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", proverr.ErrParse, r, i)
		}
	}
	toks = append(toks, token{tokEOF, "", len(runes)})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	src  string
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (in %q)", proverr.ErrParse, fmt.Sprintf(format, args...), p.src)
}

// Clause parses a single clause string: a comma-separated list of
// literals at the top level, where nested commas inside parentheses
// belong to the enclosing argument list.
func Clause(s string) (*clause.Clause, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, src: s}

	var literals []*clause.Literal
	for {
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		literals = append(literals, lit)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if p.peek().kind != tokEOF {
		return nil, p.errorf("unexpected trailing input at position %d", p.peek().pos)
	}
	if len(literals) == 0 {
		return nil, p.errorf("empty clause")
	}
	return clause.New(literals), nil
}

func (p *parser) literal() (*clause.Literal, error) {
	negated := false
	if p.peek().kind == tokTilde {
		p.advance()
		negated = true
	}

	nameTok := p.peek()
	if nameTok.kind != tokIdent {
		return nil, p.errorf("expected predicate name at position %d", nameTok.pos)
	}
	if !term.IsVariableName(nameTok.text) {
		return nil, p.errorf("predicate name %q must start with a lower-case letter", nameTok.text)
	}
	p.advance()

	if p.peek().kind != tokLParen {
		return nil, p.errorf("expected '(' after predicate %q", nameTok.text)
	}
	p.advance()

	args, err := p.argList()
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, p.errorf("predicate %q has an empty argument list", nameTok.text)
	}

	if p.peek().kind != tokRParen {
		return nil, p.errorf("unbalanced parentheses in predicate %q", nameTok.text)
	}
	p.advance()

	return clause.NewLiteral(nameTok.text, args, negated), nil
}

// argList parses a comma-separated list of terms, stopping before
// the closing ')'. An empty list (immediate ')') yields zero terms;
// callers decide whether that is an error (predicates and functions
// both require a non-empty list).
func (p *parser) argList() ([]term.Term, error) {
	var args []term.Term
	if p.peek().kind == tokRParen {
		return args, nil
	}
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	return args, nil
}

func (p *parser) term() (term.Term, error) {
	tok := p.peek()
	if tok.kind == tokTilde {
		return nil, p.errorf("a predicate cannot appear as an argument (at position %d)", tok.pos)
	}
	if tok.kind != tokIdent {
		return nil, p.errorf("expected a term at position %d", tok.pos)
	}
	p.advance()

	if p.peek().kind == tokLParen {
		if !term.IsVariableName(tok.text) {
			return nil, p.errorf("function name %q must start with a lower-case letter", tok.text)
		}
		p.advance()
		args, err := p.argList()
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, p.errorf("function %q has an empty argument list", tok.text)
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf("unbalanced parentheses in function %q", tok.text)
		}
		p.advance()
		return term.NewFunction(tok.text, args), nil
	}

	if term.IsVariableName(tok.text) {
		return term.NewVariable(tok.text), nil
	}
	return term.NewConstant(tok.text), nil
}
