package logictest_test

import (
	"fmt"
	"testing"

	st "github.com/db47h/states"
	"github.com/db47h/states/logictest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a logictest.TB that records failures.
type recorder struct {
	errors []string
	fatal  bool
}

func (r *recorder) Helper() {}

func (r *recorder) Fatal(args ...interface{}) {
	r.fatal = true
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func signals(t *testing.T) (a, b *st.Signal) {
	m := st.NewMachine()
	a, err := m.AddSignal("a", st.Input, 1)
	require.NoError(t, err)
	b, err = m.AddSignal("b", st.Input, 1)
	require.NoError(t, err)
	return a, b
}

func TestCompareEquations(t *testing.T) {
	a, b := signals(t)

	logictest.CompareEquations(t, st.NewXor(a, b), st.NewAnd(st.NewOr(a, b), st.NewNand(a, b)))

	var r recorder
	logictest.CompareEquations(&r, st.NewOr(a, b), st.NewXor(a, b))
	require.Len(t, r.errors, 1)
	assert.False(t, r.fatal)
	assert.Equal(t, "a=1, b=1: (a or b) = 1, (a xor b) = 0", r.errors[0])

	r = recorder{}
	logictest.CompareEquations(&r, st.NewOr(a, b), nil)
	assert.True(t, r.fatal)
}

func TestCheckTable(t *testing.T) {
	a, b := signals(t)

	logictest.CheckTable(t, st.NewNor(a, b), "1", "0", "0", "0")
	logictest.CheckTable(t, st.NewAnd(a, st.NewConcat(a, b)), st.NullText, st.NullText, st.NullText, st.NullText)

	var r recorder
	logictest.CheckTable(&r, st.NewNot(a), "1")
	assert.True(t, r.fatal)

	r = recorder{}
	logictest.CheckTable(&r, st.NewNot(a), "0", "1")
	assert.Len(t, r.errors, 2)
	assert.False(t, r.fatal)
}
