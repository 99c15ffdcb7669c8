// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package states

import (
	"strings"

	"github.com/db47h/states/internal/eqn"
	"github.com/db47h/states/internal/lex"
)

// keyword operators
var keywords = map[string]Operator{
	"not":  Not,
	"and":  And,
	"or":   Or,
	"xor":  Xor,
	"nand": Nand,
	"nor":  Nor,
	"xnor": Xnor,
}

func isKeyword(name string) bool {
	_, ok := keywords[strings.ToLower(name)]
	return ok
}

// binary operator precedence levels, lowest first.
var levels = [][]Operator{
	{Or, Nor},
	{Xor, Xnor},
	{And, Nand},
	{Equals, Different},
	{Concatenate},
	{Add, Subtract},
	{Multiply},
}

// ParseEquation parses an equation. Signal names are resolved in m.
//
// The grammar accepts the output of Equation.Text, except for empty operand
// slots:
//
//	expr    = operand { binop operand }
//	operand = "not" operand | primary { "[" int [ ":" int ] "]" }
//	primary = name | '"' bits '"' | "'" bits "'" | "(" expr ")"
//
// Binary operators by increasing precedence: "or" "nor", "xor" "xnor", "and"
// "nand", "=" "/=" "!=", "&", "+" "-", "*". A sequence of the same operator
// yields a single n-ary node: "a and b and c" has three operands.
//
// If the text is a single signal name, the result is an identity equation.
//
func ParseEquation(text string, m *Machine) (*Equation, error) {
	p := &parser{input: text, l: eqn.Lexer(text), m: m}
	p.next()
	x, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if p.i.Type != eqn.EOF {
		return nil, p.errorf("unexpected %s", p.i)
	}
	if e, ok := x.(*Equation); ok {
		return e, nil
	}
	return NewIdentity(x), nil
}

type parser struct {
	input string
	l     lex.Interface
	i     lex.Item
	m     *Machine
}

func (p *parser) next() { p.i = p.l.Lex() }

func (p *parser) errorf(format string, args ...interface{}) error {
	return parseError(p.input, p.i.Pos, format, args...)
}

// binop returns the operator of the current token if it belongs to the given
// precedence level.
func (p *parser) binop(level int) (Operator, bool) {
	var op Operator
	switch p.i.Type {
	case eqn.Ident:
		var ok bool
		if op, ok = keywords[strings.ToLower(p.i.Value.(string))]; !ok || op == Not {
			return 0, false
		}
	case eqn.Equal:
		op = Equals
	case eqn.Different:
		op = Different
	case eqn.Amp:
		op = Concatenate
	case eqn.Plus:
		op = Add
	case eqn.Minus:
		op = Subtract
	case eqn.Star:
		op = Multiply
	default:
		return 0, false
	}
	for _, o := range levels[level] {
		if o == op {
			return op, true
		}
	}
	return 0, false
}

func (p *parser) expr(level int) (Operand, error) {
	if level >= len(levels) {
		return p.operand()
	}
	x, err := p.expr(level + 1)
	if err != nil {
		return nil, err
	}
	// node built by this loop and open for more operands of the same operator
	var open *Equation
	for {
		op, ok := p.binop(level)
		if !ok {
			return x, nil
		}
		p.next()
		y, err := p.expr(level + 1)
		if err != nil {
			return nil, err
		}
		if open != nil && open.op == op && ops[op].max < 0 {
			open.operands = append(open.operands, y)
			continue
		}
		open = &Equation{op: op, operands: []Operand{x, y}}
		x = open
	}
}

func (p *parser) operand() (Operand, error) {
	if p.i.Type == eqn.Ident && strings.EqualFold(p.i.Value.(string), "not") {
		p.next()
		x, err := p.operand()
		if err != nil {
			return nil, err
		}
		return NewNot(x), nil
	}
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.i.Type == eqn.BracketOpen {
		p.next()
		if p.i.Type != eqn.Int {
			return nil, p.errorf("integer value expected after '['")
		}
		hi := p.i.Value.(int)
		p.next()
		if p.i.Type == eqn.Colon {
			p.next()
			if p.i.Type != eqn.Int {
				return nil, p.errorf("integer value expected after ':'")
			}
			lo := p.i.Value.(int)
			p.next()
			x = NewExtractRange(x, hi, lo)
		} else {
			x = NewExtractBit(x, hi)
		}
		if p.i.Type != eqn.BracketClose {
			return nil, p.errorf("closing ']' expected after index or range")
		}
		p.next()
	}
	return x, nil
}

func (p *parser) primary() (Operand, error) {
	switch p.i.Type {
	case eqn.Ident:
		name := p.i.Value.(string)
		if isKeyword(name) {
			return nil, p.errorf("unexpected operator %q", name)
		}
		if p.m == nil {
			return nil, p.errorf("unknown signal %q", name)
		}
		s, err := p.m.Lookup(name)
		if err != nil {
			return nil, p.errorf("unknown signal %q", name)
		}
		p.next()
		return s, nil
	case eqn.Bits:
		v, err := ParseBitVectorStrict(p.i.Value.(string))
		if err != nil || v.IsNull() {
			return nil, p.errorf("invalid bit string %q", p.i.Value)
		}
		p.next()
		return NewConstant(v), nil
	case eqn.ParenOpen:
		p.next()
		x, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		if p.i.Type != eqn.ParenClose {
			return nil, p.errorf("closing ')' expected")
		}
		p.next()
		return x, nil
	}
	return nil, p.errorf("unexpected %s", p.i)
}

func parseError(in string, pos lex.Pos, format string, args ...interface{}) error {
	args = append([]interface{}{in, pos + 1}, args...)
	return newError("Parser", CodeParse, "in %q at pos %d: "+format, args...)
}
