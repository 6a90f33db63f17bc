package charter

import (
	"strconv"
	"unicode/utf8"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// name is the free variable of the expression, once known.
	name string
}

func newparsectx(opts []ParseOption) *parsectx {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

// variable checks that tok names the expression's free variable.
func (p *parsectx) variable(tok Token) error {
	if p.name == "" {
		p.name = tok.Lexeme
		return nil
	}
	if tok.Lexeme != p.name {
		return &VariableError{Line: tok.Line, Col: tok.Col, Name: tok.Lexeme, Want: p.name}
	}
	return nil
}

type varopt string

// FreeVariable sets the name of the free variable. Any other variable in the
// input is an error. Without this option, the first variable in the input is
// the free variable. Panics if name is not a single letter that scans as a
// variable.
func FreeVariable(name string) ParseOption {
	r, sz := utf8.DecodeRuneInString(name)
	if sz != len(name) || Classify(r, false) != ClassLetter {
		panic("charter: cannot use " + strconv.Quote(name) + " as a variable")
	}
	if _, ok := reserved[name]; ok {
		panic("charter: cannot use reserved word " + strconv.Quote(name) + " as a variable")
	}
	return varopt(name)
}

func (o varopt) parseOption(p parsectx) parsectx {
	p.name = string(o)
	return p
}
