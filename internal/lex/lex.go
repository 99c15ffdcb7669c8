// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a state function based lexer.
//
// A lexer is driven by StateFn functions. Each call to Lex runs state
// functions until at least one Item has been emitted. When a StateFn returns
// nil, the lexer restarts with the initial state function at the next token.
//
package lex

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// EOF is both the rune returned by Next at end of input and the Type of the
// end of input Item.
//
const EOF = -1

// Type is the type of a lexical Item.
//
type Type int

// Pos is a byte offset in the input.
//
type Pos int

// Item is a lexical token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	if i.Type == EOF {
		return "end of input"
	}
	if r, ok := i.Value.(rune); ok {
		return strconv.QuoteRune(r)
	}
	return fmt.Sprintf("%q", fmt.Sprint(i.Value))
}

// Interface is the interface implemented by lexers.
//
type Interface interface {
	Lex() Item
}

// A StateFn is a state function. See package documentation.
//
type StateFn func(l *Lexer) StateFn

// Lexer is a state function lexer over a string.
//
type Lexer struct {
	input string
	init  StateFn
	state StateFn
	items []Item
	start int // start of the current token
	pos   int // position of the next rune
	cur   rune
	width int // width of cur
}

// New returns a new lexer for input. init is the initial state function.
//
func New(input string, init StateFn) *Lexer {
	return &Lexer{input: input, init: init}
}

// Lex returns the next Item.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.start = l.pos
			l.state = l.init
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next returns the next rune in the input, or EOF.
//
func (l *Lexer) Next() rune {
	if l.pos >= len(l.input) {
		l.cur, l.width = EOF, 0
		return EOF
	}
	l.cur, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return l.cur
}

// Backup steps back one rune. It can be called only once per call to Next.
//
func (l *Lexer) Backup() {
	l.pos -= l.width
	l.width = 0
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune { return l.cur }

// Peek returns the next rune without consuming it.
//
func (l *Lexer) Peek() rune {
	if l.pos >= len(l.input) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// AcceptWhile consumes runes while f returns true.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for r := l.Next(); r != EOF && f(r); r = l.Next() {
	}
	l.Backup()
}

// Ignore discards the input consumed so far in the current token.
//
func (l *Lexer) Ignore() { l.start = l.pos }

// Token returns the input consumed so far in the current token.
//
func (l *Lexer) Token() string { return l.input[l.start:l.pos] }

// Emit emits a new Item positioned at the start of the current token.
//
func (l *Lexer) Emit(t Type, value interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: Pos(l.start), Value: value})
	l.start = l.pos
}
