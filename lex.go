package charter

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scanner splits input into tokens by driving the lexical state machine.
type Scanner struct {
	src  io.RuneReader
	name string
	// back holds runes pushed back onto the input, last pushed on top.
	back []rune
	buf  strings.Builder
	line int
	col  int
	// cols remembers the column count before each newline so that pushing a
	// newline back restores the column.
	cols []int
	eof  bool
}

// NewScanner creates a scanner reading from src. name identifies the input in
// error messages and may be empty.
func NewScanner(src io.RuneReader, name string) *Scanner {
	return &Scanner{
		src:  src,
		name: name,
		line: 1,
	}
}

// ScanString creates a scanner over an in-memory expression.
func ScanString(s string) *Scanner {
	return NewScanner(strings.NewReader(s), "")
}

// Name returns the name the scanner was created with.
func (s *Scanner) Name() string {
	return s.name
}

// Line returns the 1-based line of the next rune to be scanned.
func (s *Scanner) Line() int {
	return s.line
}

// readRune reads the next rune, preferring pushed-back runes, and updates the
// position info. At the end of the input, eof is true.
func (s *Scanner) readRune() (r rune, eof bool, err error) {
	if n := len(s.back); n > 0 {
		r = s.back[n-1]
		s.back = s.back[:n-1]
	} else {
		if s.eof {
			return 0, true, nil
		}
		r, _, err = s.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.eof = true
				return 0, true, nil
			}
			return 0, false, err
		}
	}
	if r == '\n' {
		s.cols = append(s.cols, s.col)
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return r, false, nil
}

// unreadRune pushes r back onto the input and restores the position info.
func (s *Scanner) unreadRune(r rune) {
	s.back = append(s.back, r)
	if r == '\n' {
		s.line--
		s.col = s.cols[len(s.cols)-1]
		s.cols = s.cols[:len(s.cols)-1]
		return
	}
	s.col--
}

// unreadString pushes the runes of text back so that they are read again in
// order.
func (s *Scanner) unreadString(text string) {
	for len(text) > 0 {
		r, sz := utf8.DecodeLastRuneInString(text)
		s.unreadRune(r)
		text = text[:len(text)-sz]
	}
}

// Next scans the next token. It consumes the longest lexeme the state machine
// accepts and leaves the input positioned just after it. At the end of the
// input, the result is an EOF token, repeatedly.
func (s *Scanner) Next() (Token, error) {
	defer s.buf.Reset()
	state := StateStart
	var tok Token
	for {
		r, eof, err := s.readRune()
		if err != nil {
			return Token{}, err
		}
		next := Step(state, Classify(r, eof))
		switch next {
		case StateStart:
			// Whitespace between tokens.
			continue
		case StateEOF:
			return Token{Type: TokenEOF, Line: s.line, Col: s.col + 1}, nil
		case StateCantMove:
			if state == StateStart {
				// Nothing can start with r. Consume it so the error names it.
				s.buf.WriteRune(r)
				return Token{}, s.error(s.line, s.col)
			}
			if !eof {
				s.unreadRune(r)
			}
			return s.token(accepts[state], tok.Line, tok.Col)
		}
		if state == StateStart {
			tok.Line, tok.Col = s.line, s.col
		}
		s.buf.WriteRune(r)
		state = next
	}
}

// token finishes a lexeme which the state machine accepted as typ.
func (s *Scanner) token(typ TokenType, line, col int) (Token, error) {
	text := s.buf.String()
	switch {
	case typ == TokenBad:
		return Token{}, s.error(line, col)
	case typ != TokenIdentifier:
		tok := NewToken(typ, text)
		tok.Line, tok.Col = line, col
		return tok, nil
	}
	// Identifiers are split into a reserved word or a single-letter variable
	// and whatever follows it, so that e.g. xsin is x followed by sin.
	word := longestReserved(text)
	if word == "" {
		_, sz := utf8.DecodeRuneInString(text)
		word = text[:sz]
	}
	s.unreadString(text[len(word):])
	tok := NewToken(TokenVariable, word)
	tok.Line, tok.Col = line, col
	return tok, nil
}

// longestReserved returns the longest prefix of text which is a reserved
// word, or the empty string if there is none.
func longestReserved(text string) string {
	for n := len(text); n > 0; {
		if _, ok := reserved[text[:n]]; ok {
			return text[:n]
		}
		_, sz := utf8.DecodeLastRuneInString(text[:n])
		n -= sz
	}
	return ""
}

func (s *Scanner) error(line, col int) error {
	return &LexError{
		Text: s.buf.String(),
		Name: s.name,
		Line: line,
		Col:  col,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the malformed lexeme, or the character that could not start a
	// token.
	Text string
	// Name is the name of the input, if it has one.
	Name string
	// Line and Col are the position of the start of the lexeme.
	Line, Col int
}

func (err *LexError) Error() string {
	return errpos(err.Name, err.Line, err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() (line, col int) {
	return err.Line, err.Col
}
