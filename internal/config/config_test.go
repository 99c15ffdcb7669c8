package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/states"
	"github.com/db47h/states/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const machine = `
signals: [
	{name: "a", width: 1},
	{name: "b", width: 2, kind: "output", initial: "01"},
	{name: "k", width: 2, kind: "constant", initial: "10"},
]
equations: [
	"a & b[0]",
	"b xor k",
]
`

func TestParse(t *testing.T) {
	f, err := config.Parse("machine.cue", []byte(machine))
	require.NoError(t, err)
	require.Len(t, f.Signals, 3)
	assert.Equal(t, config.Signal{Name: "a", Width: 1, Kind: "input"}, f.Signals[0])
	assert.Equal(t, config.Signal{Name: "b", Width: 2, Kind: "output", Initial: "01"}, f.Signals[1])
	assert.Equal(t, []string{"a & b[0]", "b xor k"}, f.Equations)

	m, eqs, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	b, err := m.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, states.Output, b.Kind())
	assert.Equal(t, "01", b.Value().String())
	require.Len(t, eqs, 2)
	assert.Equal(t, "(a & b[0])", eqs[0].Text())
	assert.Equal(t, "11", eqs[1].Value().String())

	tt, err := states.NewTruthTable(eqs...)
	require.NoError(t, err)
	// k is a constant and not an input
	assert.Equal(t, 8, tt.RowCount())
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
	}{
		{"syntax", `signals: [`},
		{"unknown field", `foo: 1`},
		{"unknown signal field", `signals: [{name: "a", width: 1, size: 2}]`},
		{"bad width", `signals: [{name: "a", width: 0}]`},
		{"bad kind", `signals: [{name: "a", width: 1, kind: "wire"}]`},
		{"bad name", `signals: [{name: "1a", width: 1}]`},
		{"bad initial", `signals: [{name: "a", width: 1, initial: "2"}]`},
		{"missing width", `signals: [{name: "a"}]`},
		{"bad equation type", `equations: [1]`},
	}
	for _, d := range td {
		_, err := config.Parse(d.name+".cue", []byte(d.src))
		assert.Error(t, err, d.name)
	}
}

func TestBuild_errors(t *testing.T) {
	td := []struct {
		name string
		f    config.File
		code states.Code
	}{
		{"duplicate", config.File{Signals: []config.Signal{{Name: "a", Width: 1}, {Name: "a", Width: 2}}}, states.CodeDuplicateName},
		{"keyword", config.File{Signals: []config.Signal{{Name: "xor", Width: 1}}}, states.CodeInvalidName},
		{"initial size", config.File{Signals: []config.Signal{{Name: "a", Width: 1, Initial: "01"}}}, states.CodeSizeMismatch},
		{"initial bits", config.File{Signals: []config.Signal{{Name: "a", Width: 1, Initial: "x"}}}, states.CodeParse},
		{"equation", config.File{Signals: []config.Signal{{Name: "a", Width: 1}}, Equations: []string{"a and b"}}, states.CodeParse},
		{"kind", config.File{Signals: []config.Signal{{Name: "a", Width: 1, Kind: "wire"}}}, states.CodeUnknown},
	}
	for _, d := range td {
		_, _, err := d.f.Build()
		require.Error(t, err, d.name)
		assert.Equal(t, d.code, states.CodeOf(err), "%s: %v", d.name, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "machine.cue")
	require.NoError(t, os.WriteFile(name, []byte(machine), 0o644))
	f, err := config.Load(name)
	require.NoError(t, err)
	assert.Len(t, f.Equations, 2)

	_, err = config.Load(filepath.Join(dir, "missing.cue"))
	assert.Error(t, err)
}
