// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package states

import (
	"strings"
)

// MaxTruthTableWidth is the maximum combined width, in bits, of the inputs of a
// TruthTable. The row count of a table is 2^width.
//
var MaxTruthTableWidth = 20

// A TruthTable enumerates the values of one or more equations for every
// combination of their input signals.
//
// Input signals are the distinct non-constant signals found in a depth-first
// traversal of the equations, in order of first appearance. Rows are ordered
// by the binary value of the concatenated inputs, the first input signal
// holding the most significant bits.
//
// Building a table is exponential in the combined input width; see
// MaxTruthTableWidth.
//
type TruthTable struct {
	inputs  []*Signal
	labels  []string
	width   int
	in      [][]BitVector
	out     [][]BitVector
	combine []BitVector
}

// NewTruthTable builds the truth table of the given equations.
//
// Signal values are set to every possible combination during the build and
// restored before NewTruthTable returns.
//
func NewTruthTable(eqs ...*Equation) (*TruthTable, error) {
	if len(eqs) == 0 {
		return nil, newError("TruthTable", CodeNoEquation, "empty equation list")
	}
	for i, e := range eqs {
		if e == nil {
			return nil, newError("TruthTable", CodeNoEquation, "equation %d is nil", i)
		}
	}
	t := &TruthTable{inputs: extractSignals(eqs)}
	for _, s := range t.inputs {
		t.width += s.Size()
	}
	if t.width > MaxTruthTableWidth {
		return nil, newError("TruthTable", CodeTooManyInputs, "%d input bits, limit is %d", t.width, MaxTruthTableWidth)
	}
	t.labels = make([]string, len(eqs))
	for i, e := range eqs {
		t.labels[i] = e.Text()
	}
	t.build(eqs)
	return t, nil
}

func (t *TruthTable) build(eqs []*Equation) {
	saved := make([]BitVector, len(t.inputs))
	for i, s := range t.inputs {
		saved[i] = s.value
	}
	defer func() {
		for i, s := range t.inputs {
			s.value = saved[i]
		}
	}()

	rows := 1 << uint(t.width)
	t.in = make([][]BitVector, 0, rows)
	t.out = make([][]BitVector, 0, rows)
	t.combine = make([]BitVector, 0, rows)

	c := Zeros(t.width)
	for {
		ins := make([]BitVector, len(t.inputs))
		top := t.width
		for i, s := range t.inputs {
			v := c.Extract(top-1, top-s.Size())
			top -= s.Size()
			s.value = v
			ins[i] = v
		}
		outs := make([]BitVector, len(eqs))
		for i, e := range eqs {
			outs[i] = e.Value()
		}
		t.in = append(t.in, ins)
		t.out = append(t.out, outs)
		t.combine = append(t.combine, c)
		if c.Increment() {
			break
		}
	}
}

// Inputs returns the input signals of t.
//
func (t *TruthTable) Inputs() []*Signal { return append([]*Signal(nil), t.inputs...) }

// Width returns the combined width of the inputs.
//
func (t *TruthTable) Width() int { return t.width }

// RowCount returns the number of rows in t.
//
func (t *TruthTable) RowCount() int { return len(t.in) }

// Row returns the concatenated input values of row i. It is null when the
// table has no inputs or i is out of range.
//
func (t *TruthTable) Row(i int) BitVector {
	if i < 0 || i >= len(t.combine) {
		return Null()
	}
	return t.combine[i]
}

// Labels returns the text of each equation.
//
func (t *TruthTable) Labels() []string { return append([]string(nil), t.labels...) }

// InputTable returns, for each row, the value of each input signal.
// The returned slices are shared with t and must not be modified.
//
func (t *TruthTable) InputTable() [][]BitVector { return t.in }

// OutputTable returns, for each row, the value of each equation.
// The returned slices are shared with t and must not be modified.
//
func (t *TruthTable) OutputTable() [][]BitVector { return t.out }

// SingleOutputTable returns the output column of a table built from a single
// equation. It returns nil if t was built from several equations.
//
func (t *TruthTable) SingleOutputTable() []BitVector {
	if len(t.labels) != 1 {
		return nil
	}
	col := make([]BitVector, len(t.out))
	for i, r := range t.out {
		col[i] = r[0]
	}
	return col
}

// String renders t as text, one row per line, inputs and outputs separated
// by '|'.
//
func (t *TruthTable) String() string {
	// column widths
	ws := make([]int, len(t.inputs)+len(t.labels))
	hdr := make([]string, len(ws))
	for i, s := range t.inputs {
		hdr[i] = s.Text()
	}
	copy(hdr[len(t.inputs):], t.labels)
	for i, h := range hdr {
		ws[i] = len(h)
	}
	cell := func(r, c int) string {
		if c < len(t.inputs) {
			return t.in[r][c].String()
		}
		return t.out[r][c-len(t.inputs)].String()
	}
	for r := range t.in {
		for c := range ws {
			if l := len(cell(r, c)); l > ws[c] {
				ws[c] = l
			}
		}
	}

	var b strings.Builder
	line := func(get func(c int) string) {
		for c, w := range ws {
			if c > 0 {
				if c == len(t.inputs) {
					b.WriteString(" | ")
				} else {
					b.WriteByte(' ')
				}
			}
			s := get(c)
			b.WriteString(s)
			if c < len(ws)-1 {
				b.WriteString(strings.Repeat(" ", w-len(s)))
			}
		}
		b.WriteByte('\n')
	}
	line(func(c int) string { return hdr[c] })
	for r := range t.in {
		line(func(c int) string { return cell(r, c) })
	}
	return b.String()
}
