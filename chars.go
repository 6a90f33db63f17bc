package charter

import "unicode"

// CharClass is the class of an input character as seen by the lexical state
// machine.
type CharClass uint8

const (
	ClassLetter CharClass = iota
	ClassDigit
	ClassWhitespace
	ClassNewline
	ClassDot

	ClassPlus
	ClassMinus
	ClassTimes
	ClassDivide
	ClassCaret
	ClassUnderscore
	ClassPipe
	ClassExclamation

	ClassEqual
	ClassLess
	ClassGreater

	ClassLParen
	ClassRParen
	ClassLCurly
	ClassRCurly
	ClassComma
	ClassSemicolon

	// ClassBad is any character with no meaning in an expression.
	ClassBad
	// ClassEOF marks the end of the input.
	ClassEOF
)

// numClasses is the number of character class values.
const numClasses = ClassEOF + 1

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=CharClass -trimprefix=Class
//go:generate go mod tidy

// symbolClasses holds the classes of the single-character symbols.
var symbolClasses = map[rune]CharClass{
	'.': ClassDot,
	'+': ClassPlus,
	'-': ClassMinus,
	'*': ClassTimes,
	'/': ClassDivide,
	'^': ClassCaret,
	'_': ClassUnderscore,
	'|': ClassPipe,
	'!': ClassExclamation,
	'=': ClassEqual,
	'<': ClassLess,
	'>': ClassGreater,
	'(': ClassLParen,
	')': ClassRParen,
	'{': ClassLCurly,
	'}': ClassRCurly,
	',': ClassComma,
	';': ClassSemicolon,
}

// Classify returns the class of r. If eof is true, r is ignored and the
// result is ClassEOF.
func Classify(r rune, eof bool) CharClass {
	switch {
	case eof:
		return ClassEOF
	case r == '\n':
		return ClassNewline
	case unicode.IsSpace(r):
		return ClassWhitespace
	case '0' <= r && r <= '9':
		return ClassDigit
	case unicode.IsLetter(r):
		return ClassLetter
	}
	if c, ok := symbolClasses[r]; ok {
		return c
	}
	return ClassBad
}
