// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package eqn implements the lexer for equation text.
//
package eqn

import (
	"strings"
	"unicode"

	"github.com/db47h/states/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Int
	Bits // quoted bit string
	ParenOpen
	ParenClose
	BracketOpen
	BracketClose
	Colon
	Amp       // &
	Equal     // =
	Different // /= or !=
	Plus
	Minus
	Star
)

// Lexer returns a new lexer for equation text.
//
func Lexer(input string) lex.Interface {
	return lex.New(input, lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
		l.Ignore()
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case '0' <= r && r <= '9':
		return lexNumber
	case r == '"' || r == '\'':
		return lexBits
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == '[':
		l.Emit(BracketOpen, "[")
	case r == ']':
		l.Emit(BracketClose, "]")
	case r == ':':
		l.Emit(Colon, ":")
	case r == '&':
		l.Emit(Amp, "&")
	case r == '=':
		l.Emit(Equal, "=")
	case r == '+':
		l.Emit(Plus, "+")
	case r == '-':
		l.Emit(Minus, "-")
	case r == '*':
		l.Emit(Star, "*")
	case r == '/' || r == '!':
		if l.Next() == '=' {
			l.Emit(Different, l.Token())
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *lex.Lexer) lex.StateFn {
	i := int(l.Current() - '0')
	r := l.Next()
	for '0' <= r && r <= '9' {
		i = i*10 + int(r-'0')
		r = l.Next()
	}
	l.Backup()
	l.Emit(Int, i)
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, l.Token())
	return nil
}

// lexBits scans a quoted bit string. The emitted value is the unquoted
// content.
//
func lexBits(l *lex.Lexer) lex.StateFn {
	q := l.Current()
	var buf strings.Builder
	for r := l.Next(); r != q; r = l.Next() {
		if r == lex.EOF {
			l.Emit(Raw, "unterminated bit string")
			return lexEOF
		}
		buf.WriteRune(r)
	}
	l.Emit(Bits, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
