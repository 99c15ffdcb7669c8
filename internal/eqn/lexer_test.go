package eqn_test

import (
	"testing"

	"github.com/db47h/states/internal/eqn"
	"github.com/db47h/states/internal/lex"
)

type tok struct {
	typ lex.Type
	pos lex.Pos
	val interface{}
}

func lexAll(input string) []tok {
	var out []tok
	l := eqn.Lexer(input)
	for {
		i := l.Lex()
		out = append(out, tok{i.Type, i.Pos, i.Value})
		if i.Type == eqn.EOF || i.Type == eqn.Raw {
			return out
		}
	}
}

func TestLexer(t *testing.T) {
	td := []struct {
		in  string
		out []tok
	}{
		{"", []tok{{eqn.EOF, 0, "end of input"}}},
		{"a_1 and\tB", []tok{
			{eqn.Ident, 0, "a_1"},
			{eqn.Ident, 4, "and"},
			{eqn.Ident, 8, "B"},
			{eqn.EOF, 9, "end of input"},
		}},
		{`x[12:3]&"0101"='1'`, []tok{
			{eqn.Ident, 0, "x"},
			{eqn.BracketOpen, 1, "["},
			{eqn.Int, 2, 12},
			{eqn.Colon, 4, ":"},
			{eqn.Int, 5, 3},
			{eqn.BracketClose, 6, "]"},
			{eqn.Amp, 7, "&"},
			{eqn.Bits, 8, "0101"},
			{eqn.Equal, 14, "="},
			{eqn.Bits, 15, "1"},
			{eqn.EOF, 18, "end of input"},
		}},
		{"(a/=b)!=c+d-e*f", []tok{
			{eqn.ParenOpen, 0, "("},
			{eqn.Ident, 1, "a"},
			{eqn.Different, 2, "/="},
			{eqn.Ident, 4, "b"},
			{eqn.ParenClose, 5, ")"},
			{eqn.Different, 6, "!="},
			{eqn.Ident, 8, "c"},
			{eqn.Plus, 9, "+"},
			{eqn.Ident, 10, "d"},
			{eqn.Minus, 11, "-"},
			{eqn.Ident, 12, "e"},
			{eqn.Star, 13, "*"},
			{eqn.Ident, 14, "f"},
			{eqn.EOF, 15, "end of input"},
		}},
		{"a % b", []tok{{eqn.Ident, 0, "a"}, {eqn.Raw, 2, '%'}}},
		{"a/b", []tok{{eqn.Ident, 0, "a"}, {eqn.Raw, 1, '/'}}},
		{`"01`, []tok{{eqn.Raw, 0, "unterminated bit string"}}},
	}
	for _, d := range td {
		got := lexAll(d.in)
		if len(got) != len(d.out) {
			t.Errorf("%q: got %v, expected %v", d.in, got, d.out)
			continue
		}
		for i := range got {
			if got[i] != d.out[i] {
				t.Errorf("%q: token %d: got %v, expected %v", d.in, i, got[i], d.out[i])
			}
		}
	}
}

func TestLexer_eofIsSticky(t *testing.T) {
	l := eqn.Lexer("a")
	l.Lex()
	for i := 0; i < 3; i++ {
		if it := l.Lex(); it.Type != eqn.EOF {
			t.Fatalf("got %v, expected EOF", it)
		}
	}
}
