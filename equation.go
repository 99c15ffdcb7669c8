// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package states

import (
	"strconv"
	"strings"
)

// An Operand is a leaf *Signal or an *Equation.
//
type Operand interface {
	Value() BitVector
	Text() string
	isOperand()
}

// Operator is the kind of an Equation node.
//
type Operator int

// Operators.
//
const (
	Identity Operator = iota
	Not
	And
	Or
	Xor
	Nand
	Nor
	Xnor
	Equals
	Different
	Concatenate
	ExtractBit
	ExtractRange
	Add
	Subtract
	Multiply
)

// operator shapes.
type opSpec struct {
	name  string
	min   int // min operand count
	max   int // max operand count, -1 for no limit
	infix string
	fold  func(a, b BitVector) BitVector
	not   bool // complement folded result
}

var ops = [...]opSpec{
	Identity:     {name: "identity", min: 1, max: 1},
	Not:          {name: "not", min: 1, max: 1},
	And:          {name: "and", min: 2, max: -1, infix: "and", fold: BitVector.And},
	Or:           {name: "or", min: 2, max: -1, infix: "or", fold: BitVector.Or},
	Xor:          {name: "xor", min: 2, max: -1, infix: "xor", fold: BitVector.Xor},
	Nand:         {name: "nand", min: 2, max: -1, infix: "nand", fold: BitVector.And, not: true},
	Nor:          {name: "nor", min: 2, max: -1, infix: "nor", fold: BitVector.Or, not: true},
	Xnor:         {name: "xnor", min: 2, max: -1, infix: "xnor", fold: BitVector.Xor, not: true},
	Equals:       {name: "equals", min: 2, max: 2, infix: "="},
	Different:    {name: "different", min: 2, max: 2, infix: "/="},
	Concatenate:  {name: "concatenate", min: 2, max: -1, infix: "&"},
	ExtractBit:   {name: "extract-bit", min: 1, max: 1},
	ExtractRange: {name: "extract-range", min: 1, max: 1},
	Add:          {name: "add", min: 2, max: -1, infix: "+", fold: BitVector.Add},
	Subtract:     {name: "subtract", min: 2, max: -1, infix: "-", fold: BitVector.Sub},
	Multiply:     {name: "multiply", min: 2, max: -1, infix: "*", fold: BitVector.Mul},
}

func (o Operator) valid() bool { return o >= 0 && int(o) < len(ops) }

func (o Operator) String() string {
	if !o.valid() {
		return "Operator(" + strconv.Itoa(int(o)) + ")"
	}
	return ops[o].name
}

// An Equation is a node in an expression tree. Operands may be nil, in which
// case the equation evaluates to null until they are set.
//
type Equation struct {
	op       Operator
	operands []Operand
	hi, lo   int // ExtractBit uses hi only
}

// NewEquation returns a new equation for op with the given operands. It fails
// if the operand count does not fit the operator. ExtractBit and ExtractRange
// equations built this way extract bit 0; use SetRange to change that.
//
func NewEquation(op Operator, operands ...Operand) (*Equation, error) {
	if !op.valid() {
		return nil, newError("Equation", CodeArity, "invalid operator %d", int(op))
	}
	s := &ops[op]
	if len(operands) < s.min || s.max >= 0 && len(operands) > s.max {
		return nil, newError("Equation", CodeArity, "%s: %d operands", op, len(operands))
	}
	return &Equation{op: op, operands: append([]Operand(nil), operands...)}, nil
}

func mustEquation(op Operator, operands ...Operand) *Equation {
	e, err := NewEquation(op, operands...)
	if err != nil {
		panic(err)
	}
	return e
}

func cat(a, b Operand, more []Operand) []Operand {
	return append([]Operand{a, b}, more...)
}

// NewIdentity wraps x into an equation.
//
func NewIdentity(x Operand) *Equation { return mustEquation(Identity, x) }

// NewNot returns the equation "not x".
//
func NewNot(x Operand) *Equation { return mustEquation(Not, x) }

// NewAnd returns the equation "a and b and ...".
//
func NewAnd(a, b Operand, more ...Operand) *Equation { return mustEquation(And, cat(a, b, more)...) }

// NewOr returns the equation "a or b or ...".
//
func NewOr(a, b Operand, more ...Operand) *Equation { return mustEquation(Or, cat(a, b, more)...) }

// NewXor returns the equation "a xor b xor ...".
//
func NewXor(a, b Operand, more ...Operand) *Equation { return mustEquation(Xor, cat(a, b, more)...) }

// NewNand returns the equation "not (a and b and ...)".
//
func NewNand(a, b Operand, more ...Operand) *Equation { return mustEquation(Nand, cat(a, b, more)...) }

// NewNor returns the equation "not (a or b or ...)".
//
func NewNor(a, b Operand, more ...Operand) *Equation { return mustEquation(Nor, cat(a, b, more)...) }

// NewXnor returns the equation "not (a xor b xor ...)".
//
func NewXnor(a, b Operand, more ...Operand) *Equation { return mustEquation(Xnor, cat(a, b, more)...) }

// NewEquals returns the 1 bit equation "a = b".
//
func NewEquals(a, b Operand) *Equation { return mustEquation(Equals, a, b) }

// NewDifferent returns the 1 bit equation "a /= b".
//
func NewDifferent(a, b Operand) *Equation { return mustEquation(Different, a, b) }

// NewConcat returns the concatenation of its operands, a being the most
// significant.
//
func NewConcat(a, b Operand, more ...Operand) *Equation {
	return mustEquation(Concatenate, cat(a, b, more)...)
}

// NewExtractBit returns the equation "x[i]".
//
func NewExtractBit(x Operand, i int) *Equation {
	e := mustEquation(ExtractBit, x)
	e.hi, e.lo = i, i
	return e
}

// NewExtractRange returns the equation "x[hi:lo]".
//
func NewExtractRange(x Operand, hi, lo int) *Equation {
	e := mustEquation(ExtractRange, x)
	e.hi, e.lo = hi, lo
	return e
}

// NewAdd returns the equation "a + b + ...".
//
func NewAdd(a, b Operand, more ...Operand) *Equation { return mustEquation(Add, cat(a, b, more)...) }

// NewSubtract returns the equation "a - b - ...".
//
func NewSubtract(a, b Operand, more ...Operand) *Equation {
	return mustEquation(Subtract, cat(a, b, more)...)
}

// NewMultiply returns the equation "a * b * ...".
//
func NewMultiply(a, b Operand, more ...Operand) *Equation {
	return mustEquation(Multiply, cat(a, b, more)...)
}

func (*Equation) isOperand() {}

// isNil returns true for a nil interface as well as for a typed nil pointer.
func isNil(x Operand) bool {
	switch x := x.(type) {
	case nil:
		return true
	case *Signal:
		return x == nil
	case *Equation:
		return x == nil
	}
	return false
}

// Operator returns the operator of e.
//
func (e *Equation) Operator() Operator { return e.op }

// OperandCount returns the number of operand slots of e.
//
func (e *Equation) OperandCount() int { return len(e.operands) }

// Operands returns a copy of the operand list of e. Slots may be nil.
//
func (e *Equation) Operands() []Operand {
	return append([]Operand(nil), e.operands...)
}

// Operand returns the operand at the given rank. A nil Operand with a nil
// error denotes an unpopulated slot.
//
func (e *Equation) Operand(rank int) (Operand, error) {
	if rank < 0 || rank >= len(e.operands) {
		return nil, newError("Equation", CodeOperandRank, "%s: rank %d, have %d operands", e.op, rank, len(e.operands))
	}
	return e.operands[rank], nil
}

// operand returns the operand at rank i, or nil if e has no such slot.
func (e *Equation) operand(i int) Operand {
	if i < len(e.operands) {
		return e.operands[i]
	}
	return nil
}

// reaches returns true if e is x or one of its descendants.
func (e *Equation) reaches(x Operand) bool {
	found := false
	Walk(x, func(o Operand) bool {
		if sub, ok := o.(*Equation); ok && sub == e {
			found = true
		}
		return !found
	})
	return found
}

// SetOperand replaces the operand at the given rank. x may be nil. It fails
// with CodeCycle if e is reachable from x.
//
func (e *Equation) SetOperand(rank int, x Operand) error {
	if rank < 0 || rank >= len(e.operands) {
		return newError("Equation", CodeOperandRank, "%s: rank %d, have %d operands", e.op, rank, len(e.operands))
	}
	if e.reaches(x) {
		return newError("Equation", CodeCycle, "%s: operand %d would contain the equation itself", e.op, rank)
	}
	e.operands[rank] = x
	return nil
}

// AppendOperand adds an operand slot to an n-ary equation. It fails with
// CodeCycle if e is reachable from x.
//
func (e *Equation) AppendOperand(x Operand) error {
	if ops[e.op].max >= 0 && len(e.operands) >= ops[e.op].max {
		return newError("Equation", CodeArity, "%s: cannot have more than %d operands", e.op, ops[e.op].max)
	}
	if e.reaches(x) {
		return newError("Equation", CodeCycle, "%s: operand would contain the equation itself", e.op)
	}
	e.operands = append(e.operands, x)
	return nil
}

// Range returns the extraction bounds of ExtractBit and ExtractRange
// equations. For ExtractBit, hi == lo.
//
func (e *Equation) Range() (hi, lo int) { return e.hi, e.lo }

// SetRange sets the extraction bounds. For ExtractBit, lo is ignored.
//
func (e *Equation) SetRange(hi, lo int) {
	if e.op == ExtractBit {
		lo = hi
	}
	e.hi, e.lo = hi, lo
}

// Complete returns true if no operand slot in the tree rooted at e is empty.
//
func (e *Equation) Complete() bool {
	for _, x := range e.operands {
		if isNil(x) {
			return false
		}
		if sub, ok := x.(*Equation); ok && !sub.Complete() {
			return false
		}
	}
	return true
}

// Unwrap returns the operand of an identity equation, recursively. Any other
// operand is returned as is.
//
func Unwrap(x Operand) Operand {
	for {
		e, ok := x.(*Equation)
		if !ok || e == nil || e.op != Identity {
			return x
		}
		x = e.operand(0)
	}
}

// Name returns the name of the signal wrapped by an identity equation, or an
// empty string.
//
func (e *Equation) Name() string {
	if s, ok := Unwrap(e).(*Signal); ok && !isNil(s) {
		return s.Name()
	}
	return ""
}

// Clone returns a deep copy of the equation tree. Signals are shared.
//
func (e *Equation) Clone() *Equation {
	c := &Equation{op: e.op, operands: make([]Operand, len(e.operands)), hi: e.hi, lo: e.lo}
	for i, x := range e.operands {
		if sub, ok := x.(*Equation); ok && !isNil(x) {
			x = sub.Clone()
		}
		c.operands[i] = x
	}
	return c
}

// Value evaluates e against the current signal values. It returns the null
// value if any operand is missing or invalid, or if operand sizes do not fit
// the operator.
//
func (e *Equation) Value() BitVector {
	if len(e.operands) < ops[e.op].min {
		return Null()
	}
	vs := make([]BitVector, len(e.operands))
	for i, x := range e.operands {
		if isNil(x) {
			return Null()
		}
		if vs[i] = x.Value(); vs[i].IsNull() {
			return Null()
		}
	}

	s := &ops[e.op]
	switch e.op {
	case Identity:
		return vs[0]
	case Not:
		return vs[0].Not()
	case Equals, Different:
		if vs[0].Equal(vs[1]) == (e.op == Equals) {
			return Ones(1)
		}
		return Zeros(1)
	case Concatenate:
		r := vs[0]
		for _, v := range vs[1:] {
			r = r.Concat(v)
		}
		return r
	case ExtractBit, ExtractRange:
		return vs[0].Extract(e.hi, e.lo)
	}

	r := vs[0]
	for _, v := range vs[1:] {
		if r = s.fold(r, v); r.IsNull() {
			return r
		}
	}
	if s.not {
		r = r.Not()
	}
	return r
}

// Text returns a human readable representation of e. Empty operand slots are
// rendered as "?". The result can be parsed back with ParseEquation.
//
func (e *Equation) Text() string {
	var b strings.Builder
	e.text(&b)
	return b.String()
}

func operandText(b *strings.Builder, x Operand) {
	if isNil(x) {
		b.WriteByte('?')
		return
	}
	switch x := x.(type) {
	case *Equation:
		x.text(b)
	default:
		b.WriteString(x.Text())
	}
}

func (e *Equation) text(b *strings.Builder) {
	switch e.op {
	case Identity:
		operandText(b, e.operand(0))
	case Not:
		b.WriteString("not ")
		operandText(b, e.operand(0))
	case ExtractBit, ExtractRange:
		// a[0] binds tighter than not
		if x, ok := Unwrap(e.operand(0)).(*Equation); ok && x != nil && x.op == Not {
			b.WriteByte('(')
			operandText(b, e.operand(0))
			b.WriteByte(')')
		} else {
			operandText(b, e.operand(0))
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.hi))
		if e.op == ExtractRange {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.lo))
		}
		b.WriteByte(']')
	default:
		b.WriteByte('(')
		for i, x := range e.operands {
			if i > 0 {
				b.WriteByte(' ')
				b.WriteString(ops[e.op].infix)
				b.WriteByte(' ')
			}
			operandText(b, x)
		}
		b.WriteByte(')')
	}
}

func (e *Equation) String() string { return e.Text() }

// Walk traverses the operand tree rooted at x in depth-first order, calling
// fn for x and each non-nil operand. If fn returns false, the operands of the
// current node are skipped.
//
func Walk(x Operand, fn func(Operand) bool) {
	if isNil(x) || !fn(x) {
		return
	}
	if e, ok := x.(*Equation); ok {
		for _, sub := range e.operands {
			Walk(sub, fn)
		}
	}
}

// Signals returns the distinct non-constant signals referenced by e, in depth-first
// order of first appearance.
//
func (e *Equation) Signals() []*Signal {
	return extractSignals([]*Equation{e})
}

func extractSignals(eqs []*Equation) []*Signal {
	var out []*Signal
	seen := make(map[*Signal]bool)
	for _, e := range eqs {
		Walk(e, func(x Operand) bool {
			if s, ok := x.(*Signal); ok && s.kind != Constant && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
			return true
		})
	}
	return out
}
