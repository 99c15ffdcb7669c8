package states_test

import (
	"fmt"

	st "github.com/db47h/states"
)

func Example() {
	m := st.NewMachine()
	a, _ := m.AddSignal("a", st.Input, 1)
	b, _ := m.AddSignal("b", st.Input, 1)

	tt, err := st.NewTruthTable(st.NewAnd(a, b))
	if err != nil {
		panic(err)
	}
	fmt.Print(tt)

	// Output:
	// a b | (a and b)
	// 0 0 | 0
	// 0 1 | 0
	// 1 0 | 0
	// 1 1 | 1
}

func ExampleParseEquation() {
	m := st.NewMachine()
	sel, _ := m.AddSignal("sel", st.Input, 1)
	x, _ := m.AddSignal("x", st.Input, 4)

	eq, err := st.ParseEquation(`x[3:2] & (sel & not sel) xor "1010"`, m)
	if err != nil {
		panic(err)
	}
	fmt.Println(eq.Text())
	fmt.Println(eq.Signals()[0] == x, eq.Signals()[1] == sel)

	_ = sel.SetValue(st.Ones(1))
	_ = x.SetValue(st.ParseBitVector("0110"))
	fmt.Println(eq.Value())

	// Output:
	// ((x[3:2] & (sel & not sel)) xor "1010")
	// true true
	// 1100
}

func ExampleBitVector_Increment() {
	v := st.Zeros(2)
	for {
		fmt.Println(v)
		if v.Increment() {
			break
		}
	}
	// Output:
	// 00
	// 01
	// 10
	// 11
}
