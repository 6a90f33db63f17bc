package charter

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

// lexemes joins the lexemes of a postfix program.
func lexemes(toks []Token) string {
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.Lexeme
	}
	return strings.Join(s, " ")
}

func TestPostfixTypes(t *testing.T) {
	cases := []struct {
		src  string
		want []TokenType
	}{
		{
			"3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3",
			[]TokenType{
				TokenNumber, TokenNumber, TokenNumber, TokenTimes, TokenNumber, TokenNumber, TokenMinus,
				TokenNumber, TokenNumber, TokenExp, TokenExp, TokenDivide, TokenPlus,
			},
		},
		{
			"sin(x) + log(10) * sqrt(4)",
			[]TokenType{TokenVariable, TokenSin, TokenNumber, TokenLog, TokenNumber, TokenSqrt, TokenTimes, TokenPlus},
		},
	}
	for _, c := range cases {
		toks, err := PostfixOf(c.src)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
			continue
		}
		got := make([]TokenType, len(toks))
		for i, tok := range toks {
			got[i] = tok.Type
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q: want %v, got %v", c.src, c.want, got)
		}
	}
}

func TestPostfixExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"emptyparen", "()", ""},
		{"num", "1", "1"},
		{"add", "1+2", "1 2 +"},
		{"leftassoc", "1-2-3", "1 2 - 3 -"},
		{"prec", "1+2*3", "1 2 3 * +"},
		{"precleft", "1*2+3", "1 2 * 3 +"},
		{"div", "8/4/2", "8 4 / 2 /"},
		{"pow", "2^3", "2 3 ^"},
		{"rightassoc", "2^3^2", "2 3 2 ^ ^"},
		{"parens", "(1+2)*3", "1 2 + 3 *"},
		{"curly", "{1+2}*3", "1 2 + 3 *"},
		{"nested", "((1))", "1"},
		// unary minus
		{"neg", "-x", "0 x -"},
		{"negpow", "-x^2", "0 x 2 ^ -"},
		{"negparen", "-(1)", "0 1 -"},
		{"subneg", "1--2", "1 0 - 2 -"},
		{"powneg", "2^-3*4", "2 0 ^ 3 4 * -"},
		{"mulneg", "2*-x", "2 0 * x -"},
		{"mulnegsum", "2*-3+1", "2 0 * 3 - 1 +"},
		{"divneg", "1/-x", "1 0 / x -"},
		{"parenneg", "(-1)", "0 1 -"},
		{"funcneg", "sin -x", "0 x - sin"},
		// functions
		{"call", "sin(x)", "x sin"},
		{"callexpr", "sqrt(x+1)", "x 1 + sqrt"},
		{"nestedcall", "ln(abs(x))", "x abs ln"},
		{"bare", "sin x + 1", "x 1 + sin"},
		{"callcurly", "floor{x}", "x floor"},
		{"factorial", "3!", "3 !"},
		{"factorialpow", "x!^2", "x ! 2 ^"},
		// constants
		{"pi", "pi", "pi"},
		{"unicode", "π*φ", "π φ *"},
		{"inf", "-inf", "0 inf -"},
		// implicit multiplication
		{"numvar", "2x", "2 x *"},
		{"varfunc", "xsin(x)", "x x sin *"},
		{"numparen", "2(x+1)", "2 x 1 + *"},
		{"parenparen", "(x)(x)", "x x *"},
		{"callcall", "sin(x)cos(x)", "x sin x cos *"},
		{"numconst", "2pi", "2 pi *"},
		{"exponent", "1e5", "1 e * 5 *"},
		{"factorialterm", "2x!", "2 x ! *"},
		{"implicitprec", "2x^2", "2 x 2 ^ *"},
		{"spaced", "x x", "x x *"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			toks, err := PostfixOf(c.src)
			if err != nil {
				t.Fatalf("%q: unexpected error %v", c.src, err)
			}
			if got := lexemes(toks); got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		res  []string
	}{
		{"left", "(1+2", new(BracketError), []string{`(?i)\bparenthes`, `\(`}},
		{"right", "1+2)", new(BracketError), []string{`(?i)\bparenthes`, `\)`}},
		{"mismatch", "(1}", new(BracketError), []string{`(?i)\bparenthes`, `\(`, `\}`}},
		{"mismatch-curly", "{1)", new(BracketError), []string{`\{`, `\)`}},
		{"call-eof", "sin(x", new(BracketError), []string{`\(`}},
		{"variables", "x y", new(VariableError), []string{`"y"`, `"x"`}},
		{"variables-implicit", "xy", new(VariableError), []string{`"y"`}},
		{"missing", "x+", new(OperandError), []string{`(?i)\bmissing\b`, `"\+"`}},
		{"nonunary", "*x", new(OperandError), []string{`(?i)\bmissing\b`, `"\*"`}},
		{"neg", "-", new(OperandError), []string{`(?i)\bmissing\b`, `"-"`}},
		{"call0", "sin()", new(OperandError), []string{`(?i)\bmissing\b`, `"sin"`}},
		{"call-bare", "sqrt", new(OperandError), []string{`"sqrt"`}},
		{"factorial", "!", new(OperandError), []string{`"!"`}},
		{"comma", "1, 2", new(OperandError), []string{`(?i)\bunused\b`, `"1"`}},
		{"call2", "log(10, 2)", new(OperandError), []string{`(?i)\bunused\b`}},
		{"equal", "x = 1", new(TokenError), []string{`EQUAL`, `"="`}},
		{"less", "x < 1", new(TokenError), []string{`LESS`}},
		{"greaterequal", "x >= 1", new(TokenError), []string{`GREATEREQUAL`}},
		{"semicolon", "1; 2", new(TokenError), []string{`";"`}},
		{"pipe", "|x|", new(TokenError), []string{`PIPE`}},
		{"subscript", "x_1", new(TokenError), []string{`SUBSCRIPT`}},
		{"lexer", "2^(-$)", new(LexError), []string{`\$`}},
		{"badnumber", "3.14.15.9", new(LexError), []string{`3\.14\.15\.9`}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			toks, err := PostfixOf(c.src)
			if toks != nil {
				t.Errorf("%q parsed to %v", c.src, toks)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			if err == nil {
				return
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestPostfixErrorPos(t *testing.T) {
	cases := []struct {
		src       string
		line, col int
	}{
		{"1 + (2", 1, 5},
		{"1 +\n 2)", 2, 3},
		{"x +\ny", 2, 1},
		{"1 = 2", 1, 3},
		{"(1}", 1, 3},
	}
	for _, c := range cases {
		_, err := PostfixOf(c.src)
		ierr, ok := err.(InputError)
		if !ok {
			t.Errorf("%q: expected InputError, got %#v", c.src, err)
			continue
		}
		if line, col := ierr.Pos(); line != c.line || col != c.col {
			t.Errorf("%q: want error at %d:%d, got %d:%d (%v)", c.src, c.line, c.col, line, col, err)
		}
	}
}

func TestPostfixDeterministic(t *testing.T) {
	srcs := []string{
		"3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3",
		"sin(x) + log(10) * sqrt(4)",
		"-x^2 + 2x - 1",
		"xsin(x)cos(x)!",
	}
	for _, src := range srcs {
		a, err := PostfixOf(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		b, _ := PostfixOf(src)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%q: parsed differently: %v then %v", src, a, b)
		}
	}
}

func TestFreeVariable(t *testing.T) {
	if _, err := PostfixOf("t^2 + t", FreeVariable("t")); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	_, err := PostfixOf("x^2", FreeVariable("t"))
	if _, ok := err.(*VariableError); !ok {
		t.Errorf("want VariableError, got %#v", err)
	}
	for _, name := range []string{"", "xy", "1", "e", "pi", "$"} {
		name := name
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FreeVariable(%q) did not panic", name)
				}
			}()
			FreeVariable(name)
		})
	}
}

func TestOperatorPops(t *testing.T) {
	plus, minus, times, pow := binop(TokenPlus), binop(TokenMinus), binop(TokenTimes), binop(TokenExp)
	cases := []struct {
		top, cur operator
		want     bool
	}{
		{plus, plus, true},
		{times, plus, true},
		{plus, times, false},
		{pow, pow, false},
		{pow, times, true},
		{minus, minus, true},
		{minus, times, false},
		{times, minus, true},
		{pow, minus, true},
	}
	for _, c := range cases {
		if got := c.top.pops(c.cur); got != c.want {
			t.Errorf("%+v pops %+v: want %t, got %t", c.top, c.cur, c.want, got)
		}
	}
}
