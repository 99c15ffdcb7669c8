/*
Package states provides the logic core of a finite state machine editor and
simulator: bit vector values, signals, boolean equations and truth tables.

A BitVector is a fixed width vector of bits. Its zero width form, the null
value, stands for "no valid value": binary operations on vectors of different
sizes return null instead of failing, and null propagates through equations.
This lets an editor evaluate equations that are temporarily invalid while the
user edits them.

Signals live in a Machine and are referenced by equations:

	m := states.NewMachine()
	a, _ := m.AddSignal("a", states.Input, 1)
	b, _ := m.AddSignal("b", states.Input, 1)
	eq := states.NewAnd(a, b)
	tt, _ := states.NewTruthTable(eq)
	fmt.Print(tt)

API misuse (bad operand rank, duplicate signal names, parse errors, etc.)
is reported as an *Error carrying a Code.

*/
package states
