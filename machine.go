package charter

// State is a state of the lexical state machine.
type State uint8

const (
	StateStart State = iota

	StateIdentifier
	// StateNumber has seen only digits.
	StateNumber
	// StateNumberDot has seen digits then a dot, as in "1.".
	StateNumberDot
	// StateFloat has seen a dot followed by at least one digit.
	StateFloat
	// StateDot has seen a lone leading dot.
	StateDot
	// StateBadNumber has seen a second dot in a number. It accepts more
	// digits and dots so that the whole malformed number is reported.
	StateBadNumber

	StatePlus
	StateMinus
	StateTimes
	StateDivide
	StateCaret
	StateUnderscore
	StatePipe
	StateExclamation

	StateEqual
	StateLess
	StateLessEqual
	StateGreater
	StateGreaterEqual

	StateLParen
	StateRParen
	StateLCurly
	StateRCurly
	StateComma
	StateSemicolon

	// StateCantMove is reached from any state by a character which cannot
	// extend the current lexeme.
	StateCantMove
	// StateEOF is reached from StateStart at the end of the input.
	StateEOF
)

// numStates is the number of machine state values.
const numStates = StateEOF + 1

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=State -trimprefix=State
//go:generate go mod tidy

// transitions is the move table of the state machine. Pairs with no rule
// lead to StateCantMove. It is filled once by init and never written again.
var transitions [numStates][numClasses]State

// accepts gives the token type recognized when the machine stops in each
// state. States which cannot end a token accept TokenBad.
var accepts [numStates]TokenType

func init() {
	for s := range transitions {
		for c := range transitions[s] {
			transitions[s][c] = StateCantMove
		}
		accepts[s] = TokenBad
	}

	start := map[CharClass]State{
		ClassWhitespace:  StateStart,
		ClassNewline:     StateStart,
		ClassLetter:      StateIdentifier,
		ClassDigit:       StateNumber,
		ClassDot:         StateDot,
		ClassPlus:        StatePlus,
		ClassMinus:       StateMinus,
		ClassTimes:       StateTimes,
		ClassDivide:      StateDivide,
		ClassCaret:       StateCaret,
		ClassUnderscore:  StateUnderscore,
		ClassPipe:        StatePipe,
		ClassExclamation: StateExclamation,
		ClassEqual:       StateEqual,
		ClassLess:        StateLess,
		ClassGreater:     StateGreater,
		ClassLParen:      StateLParen,
		ClassRParen:      StateRParen,
		ClassLCurly:      StateLCurly,
		ClassRCurly:      StateRCurly,
		ClassComma:       StateComma,
		ClassSemicolon:   StateSemicolon,
		ClassEOF:         StateEOF,
	}
	for c, s := range start {
		transitions[StateStart][c] = s
	}

	transitions[StateIdentifier][ClassLetter] = StateIdentifier

	transitions[StateNumber][ClassDigit] = StateNumber
	transitions[StateNumber][ClassDot] = StateNumberDot
	transitions[StateNumberDot][ClassDigit] = StateFloat
	transitions[StateNumberDot][ClassDot] = StateBadNumber
	transitions[StateDot][ClassDigit] = StateFloat
	transitions[StateDot][ClassDot] = StateBadNumber
	transitions[StateFloat][ClassDigit] = StateFloat
	transitions[StateFloat][ClassDot] = StateBadNumber
	transitions[StateBadNumber][ClassDigit] = StateBadNumber
	transitions[StateBadNumber][ClassDot] = StateBadNumber

	transitions[StateLess][ClassEqual] = StateLessEqual
	transitions[StateGreater][ClassEqual] = StateGreaterEqual

	accepts[StateIdentifier] = TokenIdentifier
	accepts[StateNumber] = TokenNumber
	accepts[StateNumberDot] = TokenNumber
	accepts[StateFloat] = TokenNumber

	accepts[StatePlus] = TokenPlus
	accepts[StateMinus] = TokenMinus
	accepts[StateTimes] = TokenTimes
	accepts[StateDivide] = TokenDivide
	accepts[StateCaret] = TokenExp
	accepts[StateUnderscore] = TokenSubscript
	accepts[StatePipe] = TokenPipe
	accepts[StateExclamation] = TokenFactorial

	accepts[StateEqual] = TokenEqual
	accepts[StateLess] = TokenLess
	accepts[StateLessEqual] = TokenLessEqual
	accepts[StateGreater] = TokenGreater
	accepts[StateGreaterEqual] = TokenGreaterEqual

	accepts[StateLParen] = TokenLParen
	accepts[StateRParen] = TokenRParen
	accepts[StateLCurly] = TokenLCurly
	accepts[StateRCurly] = TokenRCurly
	accepts[StateComma] = TokenComma
	accepts[StateSemicolon] = TokenSemicolon

	accepts[StateEOF] = TokenEOF
}

// Step returns the state the machine moves to from s on a character of class
// c.
func Step(s State, c CharClass) State {
	return transitions[s][c]
}

// Accepts returns the token type recognized by stopping in s.
func Accepts(s State) TokenType {
	return accepts[s]
}
