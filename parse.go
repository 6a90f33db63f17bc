package charter

// Operands are numbers, constants, and the variable. They go straight to the
// output. Functions wait on the operator stack until their argument's closing
// bracket. Infix operators follow the usual precedence rules, with ^ binding
// tightest and associating to the right. Factorial is postfix, so it is
// already in order when it is scanned.
//
// Unary minus is rewritten as subtraction from zero: a literal 0 is written
// to the output and the minus is then handled like any other subtraction.
// So "-x^2" is "0-(x^2)", but "2*-x" is "(2*0)-x".
//
// A * is inserted between adjacent terms, so "2x" is "2*x" and "xsin(x)" is
// "x*sin(x)".

// ToPostfix parses the tokens from scan into postfix order.
func ToPostfix(scan *Scanner, opts ...ParseOption) ([]Token, error) {
	p := newparsectx(opts)
	return p.postfix(scan)
}

// PostfixOf is a shortcut to parse a string into postfix order.
func PostfixOf(text string, opts ...ParseOption) ([]Token, error) {
	return ToPostfix(ScanString(text), opts...)
}

func (p *parsectx) postfix(scan *Scanner) ([]Token, error) {
	var out []Token
	var ops []pending
	// prev is the previous token, or a TokenBad if there was none.
	prev := Token{Type: TokenBad}
	for {
		tok, err := scan.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			break
		}
		if endsTerm(prev.Type) && startsTerm(tok.Type) {
			times := Token{Type: TokenTimes, Lexeme: "*", Line: tok.Line, Col: tok.Col}
			out, ops = pushop(out, ops, times)
		}
		switch typ := tok.Type; {
		case typ == TokenNumber, typ.IsConstant():
			out = append(out, tok)
		case typ == TokenVariable:
			if err := p.variable(tok); err != nil {
				return nil, err
			}
			out = append(out, tok)
		case typ.IsFunction(), typ == TokenLParen, typ == TokenLCurly:
			ops = append(ops, pending{tok: tok})
		case typ == TokenRParen, typ == TokenRCurly:
			out, ops, err = closebracket(out, ops, tok)
			if err != nil {
				return nil, err
			}
		case typ == TokenFactorial:
			out = append(out, tok)
		case typ == TokenMinus && unaryContext(prev.Type):
			zero := Token{Type: TokenNumber, Lexeme: "0", Line: tok.Line, Col: tok.Col}
			out = append(out, zero)
			fallthrough
		case typ.IsOperator():
			out, ops = pushop(out, ops, tok)
		case typ == TokenComma:
			for len(ops) > 0 && !isOpen(ops[len(ops)-1].tok.Type) {
				out = append(out, ops[len(ops)-1].tok)
				ops = ops[:len(ops)-1]
			}
		default:
			return nil, &TokenError{Token: tok}
		}
		prev = tok
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1].tok
		if isOpen(top.Type) {
			return nil, &BracketError{Line: top.Line, Col: top.Col, Left: top.Lexeme}
		}
		out = append(out, top)
		ops = ops[:len(ops)-1]
	}
	if err := checkOperands(out); err != nil {
		return nil, err
	}
	return out, nil
}

// pending is an entry on the operator stack. Functions and brackets have a
// zero operator.
type pending struct {
	tok Token
	op  operator
}

// pushop pushes an infix operator after popping the operators that bind
// more tightly than it.
func pushop(out []Token, ops []pending, tok Token) ([]Token, []pending) {
	cur := binop(tok.Type)
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.op.prec == 0 || !top.op.pops(cur) {
			break
		}
		out = append(out, top.tok)
		ops = ops[:len(ops)-1]
	}
	return out, append(ops, pending{tok: tok, op: cur})
}

// closebracket pops operators up to the open bracket matching tok, discards
// the bracket, and then pops the function it belongs to, if any.
func closebracket(out []Token, ops []pending, tok Token) ([]Token, []pending, error) {
	for len(ops) > 0 && !isOpen(ops[len(ops)-1].tok.Type) {
		out = append(out, ops[len(ops)-1].tok)
		ops = ops[:len(ops)-1]
	}
	if len(ops) == 0 {
		return nil, nil, &BracketError{Line: tok.Line, Col: tok.Col, Right: tok.Lexeme}
	}
	open := ops[len(ops)-1].tok
	if (open.Type == TokenLParen) != (tok.Type == TokenRParen) {
		return nil, nil, &BracketError{Line: tok.Line, Col: tok.Col, Left: open.Lexeme, Right: tok.Lexeme}
	}
	ops = ops[:len(ops)-1]
	if len(ops) > 0 && ops[len(ops)-1].tok.Type.IsFunction() {
		out = append(out, ops[len(ops)-1].tok)
		ops = ops[:len(ops)-1]
	}
	return out, ops, nil
}

// checkOperands verifies that prog never pops from an empty stack and leaves
// at most one value.
func checkOperands(prog []Token) error {
	// vals holds the token that produced each value on the stack.
	vals := make([]Token, 0, len(prog))
	for _, tok := range prog {
		n := operands(tok.Type)
		if len(vals) < n {
			return &OperandError{Token: tok, Missing: true}
		}
		vals = append(vals[:len(vals)-n], tok)
	}
	if len(vals) > 1 {
		return &OperandError{Token: vals[0]}
	}
	return nil
}

// operands returns the number of values a postfix token consumes.
func operands(t TokenType) int {
	switch {
	case t.IsOperator():
		return 2
	case t.IsFunction(), t == TokenFactorial:
		return 1
	default:
		return 0
	}
}

func isOpen(t TokenType) bool {
	return t == TokenLParen || t == TokenLCurly
}

// endsTerm reports whether a token of type t can be the last token of a term.
func endsTerm(t TokenType) bool {
	switch {
	case t == TokenNumber, t == TokenVariable, t.IsConstant():
		return true
	case t == TokenRParen, t == TokenRCurly, t == TokenFactorial:
		return true
	}
	return false
}

// startsTerm reports whether a token of type t can be the first token of a
// term.
func startsTerm(t TokenType) bool {
	switch {
	case t == TokenNumber, t == TokenVariable, t.IsConstant():
		return true
	case t.IsFunction(), t == TokenLParen, t == TokenLCurly:
		return true
	}
	return false
}

// unaryContext reports whether a minus following a token of type prev is
// unary. TokenBad stands for the start of the input.
func unaryContext(prev TokenType) bool {
	switch {
	case prev == TokenBad, prev.IsOperator(), prev.IsFunction():
		return true
	case prev == TokenLParen, prev == TokenLCurly, prev == TokenComma:
		return true
	}
	return false
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// pops reports whether an operator p on top of the stack is popped when
// operator cur arrives.
func (p operator) pops(cur operator) bool {
	if p.prec != cur.prec {
		return p.prec > cur.prec
	}
	return !cur.right
}

// binop gets the infix operator for a token type. Non-operators have zero
// precedence.
func binop(t TokenType) operator {
	switch t {
	case TokenPlus, TokenMinus:
		return operator{2, false}
	case TokenTimes, TokenDivide:
		return operator{3, false}
	case TokenExp:
		return operator{5, true}
	default:
		return operator{}
	}
}
