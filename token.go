package charter

import "strconv"

// TokenType is the kind of a token.
type TokenType uint8

const (
	// constants
	TokenPi TokenType = iota // PI
	TokenEuler               // EULER
	TokenPhi                 // PHI
	TokenInfinity            // INFINITY
	TokenNaN                 // NAN

	// trigonometric functions
	TokenSin    // SINE
	TokenCos    // COSINE
	TokenTan    // TANGENT
	TokenCot    // COTANGENT
	TokenSec    // SECANT
	TokenCsc    // COSECANT
	TokenArcSin // ARCSINE
	TokenArcCos // ARCCOSINE
	TokenArcTan // ARCTANGENT
	TokenArcCot // ARCCOTANGENT
	TokenArcSec // ARCSECANT
	TokenArcCsc // ARCCOSECANT

	// other functions and operators
	TokenLog // LOGARITHM
	// TokenExp is the exponentiation operator ^.
	TokenExp  // EXPONENT
	TokenLn   // NATURALLOG
	TokenSqrt // SQUAREROOT
	// TokenFactorial is the postfix operator !.
	TokenFactorial // FACTORIAL
	TokenAbs       // ABSOLUTE
	TokenFloor     // FLOOR
	TokenCeil      // CEILING
	TokenSubscript // SUBSCRIPT
	TokenPipe      // PIPE

	// arithmetic
	TokenPlus   // PLUS
	TokenMinus  // MINUS
	TokenTimes  // TIMES
	TokenDivide // DIVIDE

	// relational
	TokenEqual        // EQUAL
	TokenLess         // LESS
	TokenLessEqual    // LESSEQUAL
	TokenGreater      // GREATER
	TokenGreaterEqual // GREATEREQUAL

	// separators
	TokenLParen    // LPAREN
	TokenRParen    // RPAREN
	TokenLCurly    // LCURLY
	TokenRCurly    // RCURLY
	TokenComma     // COMMA
	TokenSemicolon // SEMICOLON

	// TokenVariable is the free variable of an expression.
	TokenVariable // VARIABLE
	// TokenIdentifier is a name that is neither reserved nor a variable.
	TokenIdentifier // IDENTIFIER
	TokenNumber     // NUMBER
	TokenBad        // BAD
	TokenEOF        // EOF
)

// tokenLast is one past the last token type.
const tokenLast = TokenEOF + 1

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenType -linecomment
//go:generate go mod tidy

// IsFunction reports whether t is a prefix function such as sin or sqrt.
func (t TokenType) IsFunction() bool {
	switch t {
	case TokenSin, TokenCos, TokenTan, TokenCot, TokenSec, TokenCsc,
		TokenArcSin, TokenArcCos, TokenArcTan, TokenArcCot, TokenArcSec, TokenArcCsc,
		TokenLog, TokenLn, TokenSqrt, TokenAbs, TokenFloor, TokenCeil:
		return true
	}
	return false
}

// IsConstant reports whether t is a named constant such as pi.
func (t TokenType) IsConstant() bool {
	return t <= TokenNaN
}

// IsOperator reports whether t is an infix operator.
func (t TokenType) IsOperator() bool {
	switch t {
	case TokenPlus, TokenMinus, TokenTimes, TokenDivide, TokenExp:
		return true
	}
	return false
}

// reserved maps reserved words to their token types. It is never modified.
var reserved = map[string]TokenType{
	"pi":     TokenPi,
	"π":      TokenPi,
	"e":      TokenEuler,
	"phi":    TokenPhi,
	"φ":      TokenPhi,
	"inf":    TokenInfinity,
	"nan":    TokenNaN,
	"sin":    TokenSin,
	"cos":    TokenCos,
	"tan":    TokenTan,
	"cot":    TokenCot,
	"sec":    TokenSec,
	"csc":    TokenCsc,
	"arcsin": TokenArcSin,
	"arccos": TokenArcCos,
	"arctan": TokenArcTan,
	"arccot": TokenArcCot,
	"arcsec": TokenArcSec,
	"arccsc": TokenArcCsc,
	"log":    TokenLog,
	"ln":     TokenLn,
	"sqrt":   TokenSqrt,
	"abs":    TokenAbs,
	"floor":  TokenFloor,
	"ceil":   TokenCeil,
}

// Reserved returns the token type of a reserved word and whether word is one.
func Reserved(word string) (TokenType, bool) {
	t, ok := reserved[word]
	return t, ok
}

// Token is a lexeme with its type and position.
type Token struct {
	Type   TokenType
	Lexeme string
	// Line and Col are the 1-based position of the first rune of the lexeme.
	// Tokens synthesized by the parser carry the position of the token that
	// caused them.
	Line, Col int
}

// NewToken creates a token. If lexeme is a reserved word, the token has the
// reserved word's type regardless of typ.
func NewToken(typ TokenType, lexeme string) Token {
	if t, ok := reserved[lexeme]; ok {
		typ = t
	}
	return Token{Type: typ, Lexeme: lexeme}
}

func (t Token) String() string {
	return t.Type.String() + ":" + strconv.Quote(t.Lexeme) + "@" + strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Col)
}
