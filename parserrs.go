package charter

import "strconv"

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Line and Col are the position of the offending bracket.
	Line, Col int
	// Left is the opening bracket, or empty if a close bracket had no match.
	Left string
	// Right is the closing bracket, or empty if an open bracket was never
	// closed.
	Right string
}

func (err *BracketError) Error() string {
	var msg string
	switch {
	case err.Left == "":
		msg = "mismatched parentheses: close bracket " + err.Right + " with no open bracket"
	case err.Right == "":
		msg = "mismatched parentheses: open bracket " + err.Left + " with no close bracket"
	default:
		msg = "mismatched parentheses: " + err.Left + "expr" + err.Right
	}
	return errpos("", err.Line, err.Col, msg)
}

func (err *BracketError) Pos() (line, col int) {
	return err.Line, err.Col
}

// TokenError is an error indicating a token which is valid to the scanner but
// has no meaning in an expression, such as a relational operator. It
// implements InputError.
type TokenError struct {
	Token Token
}

func (err *TokenError) Error() string {
	return errpos("", err.Token.Line, err.Token.Col, "unexpected "+err.Token.Type.String()+" "+strconv.Quote(err.Token.Lexeme))
}

func (err *TokenError) Pos() (line, col int) {
	return err.Token.Line, err.Token.Col
}

// OperandError is an error indicating an operator or function without enough
// operands, or operands without an operator to combine them. It implements
// InputError.
type OperandError struct {
	// Token is the operator which lacks operands, or the first operand left
	// over at the end.
	Token Token
	// Missing is whether operands were missing rather than left over.
	Missing bool
}

func (err *OperandError) Error() string {
	if err.Missing {
		return errpos("", err.Token.Line, err.Token.Col, "missing operand for "+strconv.Quote(err.Token.Lexeme))
	}
	return errpos("", err.Token.Line, err.Token.Col, "unused operand "+strconv.Quote(err.Token.Lexeme))
}

func (err *OperandError) Pos() (line, col int) {
	return err.Token.Line, err.Token.Col
}

// VariableError is an error indicating a variable other than the expression's
// free variable. It implements InputError.
type VariableError struct {
	Line, Col int
	// Name is the offending variable.
	Name string
	// Want is the expression's free variable.
	Want string
}

func (err *VariableError) Error() string {
	return errpos("", err.Line, err.Col, "variable "+strconv.Quote(err.Name)+" in expression of "+strconv.Quote(err.Want))
}

func (err *VariableError) Pos() (line, col int) {
	return err.Line, err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(name string, line, col int, msg string) string {
	p := strconv.Itoa(line) + ":" + strconv.Itoa(col) + ": " + msg
	if name != "" {
		p = name + ":" + p
	}
	return p
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based line and column of the start of the token
	// that caused the error.
	Pos() (line, col int)
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*VariableError)(nil)
	_ InputError = (*LexError)(nil)
)
