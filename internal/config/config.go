// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads machine descriptions written in CUE.
//
// A description lists signals and equations:
//
//	signals: [
//		{name: "a", width: 1},
//		{name: "b", width: 2, kind: "input", initial: "01"},
//		{name: "k", width: 2, kind: "constant", initial: "10"},
//	]
//	equations: ["a & b[0]", "b xor k"]
//
package config

import (
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/db47h/states"
	"github.com/pkg/errors"
)

// schema validates descriptions. Fields outside the schema are rejected, at
// the top level and in signals.
const schema = `
signals?: [...close({
	name:     string & =~"^[A-Za-z_][A-Za-z0-9_]*$"
	width:    int & >=1
	kind:     *"input" | "output" | "variable" | "constant"
	initial?: string & =~"^[01]+$"
})]
equations?: [...string]
`

// Signal describes a signal.
//
type Signal struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Kind    string `json:"kind"`
	Initial string `json:"initial,omitempty"`
}

// File is a decoded machine description.
//
type File struct {
	Signals   []Signal `json:"signals"`
	Equations []string `json:"equations"`
}

// Parse compiles and validates a CUE description. filename is used in error
// messages only.
//
func Parse(filename string, src []byte) (*File, error) {
	ctx := cuecontext.New()
	sch := ctx.CompileString("close({" + schema + "})")
	if err := sch.Err(); err != nil {
		return nil, errors.Wrap(err, "compile schema")
	}
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	v = sch.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	var f File
	if err := v.Decode(&f); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return &f, nil
}

// Load reads and parses the description in the named file.
//
func Load(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Parse(filename, src)
}

// Build creates the machine and equations described by f.
//
func (f *File) Build() (*states.Machine, []*states.Equation, error) {
	m := states.NewMachine()
	for _, sd := range f.Signals {
		kind := states.Input
		if sd.Kind != "" {
			var ok bool
			if kind, ok = states.ParseSignalKind(sd.Kind); !ok {
				return nil, nil, errors.Errorf("signal %q: unknown kind %q", sd.Name, sd.Kind)
			}
		}
		s, err := m.AddSignal(sd.Name, kind, sd.Width)
		if err != nil {
			return nil, nil, err
		}
		if sd.Initial == "" {
			continue
		}
		v, err := states.ParseBitVectorStrict(sd.Initial)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "signal %q", sd.Name)
		}
		if err = s.SetInitialValue(v); err != nil {
			return nil, nil, err
		}
	}
	m.Reset()

	eqs := make([]*states.Equation, 0, len(f.Equations))
	for i, text := range f.Equations {
		eq, err := states.ParseEquation(text, m)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "equation %d", i)
		}
		eqs = append(eqs, eq)
	}
	return m, eqs, nil
}
