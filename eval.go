package charter

import (
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Logger receives warnings from evaluating invalid expressions. It may be
// replaced before any expressions are evaluated.
var Logger = log.New(os.Stderr, "charter: ", log.LstdFlags)

// Expr is a parsed expression of one free variable. It is immutable, so it is
// safe to evaluate concurrently.
type Expr struct {
	// prog is the expression in postfix order.
	prog []instr
	// name is the free variable, or empty if the expression has none.
	name string
	// err is the reason the expression is invalid, or nil.
	err error
}

// instr is a postfix token with its numeric value decoded, if it has one.
type instr struct {
	tok Token
	val float32
}

// Parse parses an expression. It never fails; if the text is not a valid
// expression, the result reports the error through Err and evaluates to 0.
func Parse(text string, opts ...ParseOption) *Expr {
	return ParseReader(strings.NewReader(text), "", opts...)
}

// ParseReader parses an expression from a stream. name identifies the stream
// in error messages and may be empty.
func ParseReader(src io.RuneReader, name string, opts ...ParseOption) *Expr {
	p := newparsectx(opts)
	toks, err := p.postfix(NewScanner(src, name))
	if err != nil {
		return &Expr{err: err}
	}
	prog := make([]instr, len(toks))
	for i, tok := range toks {
		prog[i] = instr{tok: tok}
		switch {
		case tok.Type == TokenNumber:
			v, err := strconv.ParseFloat(tok.Lexeme, 32)
			if err != nil {
				// Only overflow can get here, since the scanner accepts
				// nothing but digits and one dot.
				if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
					panic("charter: invalid number " + strconv.Quote(tok.Lexeme) + ": " + err.Error())
				}
			}
			prog[i].val = float32(v)
		case tok.Type.IsConstant():
			prog[i].val = constants[tok.Type]
		}
	}
	return &Expr{prog: prog, name: p.name}
}

// Valid reports whether the expression parsed successfully.
func (e *Expr) Valid() bool {
	return e.err == nil
}

// Err returns the error that made the expression invalid, or nil.
func (e *Expr) Err() error {
	return e.err
}

// Var returns the name of the free variable, or the empty string if the
// expression doesn't use one.
func (e *Expr) Var() string {
	return e.name
}

// Eval evaluates the expression with its free variable set to x. Invalid and
// empty expressions log a warning and evaluate to 0.
func (e *Expr) Eval(x float32) float32 {
	if e.err != nil {
		Logger.Printf("warning: cannot evaluate invalid expression: %v", e.err)
		return 0
	}
	if len(e.prog) == 0 {
		Logger.Print("warning: cannot evaluate empty expression")
		return 0
	}
	stack := make([]float32, 0, len(e.prog))
	for _, in := range e.prog {
		switch typ := in.tok.Type; {
		case typ == TokenNumber, typ.IsConstant():
			stack = append(stack, in.val)
		case typ == TokenVariable:
			stack = append(stack, x)
		case typ.IsOperator():
			if len(stack) < 2 {
				panic("charter: stack underflow at " + in.tok.String() + " (bad postfix program?)")
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = binary(typ, a, b)
		default:
			f := unary[typ]
			if f == nil {
				panic("charter: cannot evaluate " + in.tok.String())
			}
			if len(stack) < 1 {
				panic("charter: stack underflow at " + in.tok.String() + " (bad postfix program?)")
			}
			stack[len(stack)-1] = f(stack[len(stack)-1])
		}
	}
	if len(stack) == 0 {
		return 0
	}
	return stack[len(stack)-1]
}

// Postfix returns a copy of the expression's postfix program.
func (e *Expr) Postfix() []Token {
	r := make([]Token, len(e.prog))
	for i, in := range e.prog {
		r[i] = in.tok
	}
	return r
}

// PostfixString returns the lexemes of the postfix program separated by
// spaces.
func (e *Expr) PostfixString() string {
	var b strings.Builder
	for i, in := range e.prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(in.tok.Lexeme)
	}
	return b.String()
}

// String returns the postfix string of a valid expression or the error of an
// invalid one.
func (e *Expr) String() string {
	if e.err != nil {
		return "invalid expression: " + e.err.Error()
	}
	return e.PostfixString()
}

// Eval is a shortcut to parse an expression and evaluate it once.
func Eval(text string, x float32, opts ...ParseOption) (float32, error) {
	e := Parse(text, opts...)
	if e.err != nil {
		return 0, e.err
	}
	return e.Eval(x), nil
}
