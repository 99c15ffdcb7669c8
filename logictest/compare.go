// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logictest provides utility functions for testing equations.
//
package logictest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/states"
)

// TB is the subset of testing.TB used by this package.
//
type TB interface {
	Helper()
	Fatal(args ...interface{})
	Errorf(format string, args ...interface{})
}

var _ TB = (testing.TB)(nil)

func rowString(tt *states.TruthTable, r int) string {
	var b strings.Builder
	for i, s := range tt.Inputs() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.Text())
		b.WriteRune('=')
		b.WriteString(tt.InputTable()[r][i].String())
	}
	return b.String()
}

// CompareEquations checks that eq1 and eq2 evaluate to the same value for
// every combination of their inputs. Null results must match too.
//
func CompareEquations(t TB, eq1, eq2 *states.Equation) {
	t.Helper()

	tt, err := states.NewTruthTable(eq1, eq2)
	if err != nil {
		t.Fatal(err)
		return
	}
	for r, out := range tt.OutputTable() {
		if !out[0].Equal(out[1]) {
			t.Errorf("%s: %s = %s, %s = %s", rowString(tt, r), eq1.Text(), out[0], eq2.Text(), out[1])
		}
	}
}

// CheckTable checks the single output column of eq against expected values
// given as bit strings in row order. Use states.NullText for null outputs.
//
func CheckTable(t TB, eq *states.Equation, expected ...string) {
	t.Helper()

	tt, err := states.NewTruthTable(eq)
	if err != nil {
		t.Fatal(err)
		return
	}
	col := tt.SingleOutputTable()
	if len(col) != len(expected) {
		t.Fatal(fmt.Sprintf("%s: got %d rows, expected %d", eq.Text(), len(col), len(expected)))
		return
	}
	for r, v := range col {
		if v.String() != expected[r] {
			t.Errorf("%s: %s = %s, expected %s", rowString(tt, r), eq.Text(), v, expected[r])
		}
	}
}
