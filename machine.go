// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package states

import (
	"strings"
	"unicode"
)

// SignalKind is the role of a signal in a machine.
//
type SignalKind int

// Signal kinds.
//
const (
	Input SignalKind = iota
	Output
	Variable
	Constant
)

var kindNames = [...]string{"input", "output", "variable", "constant"}

func (k SignalKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseSignalKind returns the SignalKind named s.
//
func ParseSignalKind(s string) (SignalKind, bool) {
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return SignalKind(i), true
		}
	}
	return 0, false
}

// A SignalID identifies a signal within its Machine.
//
type SignalID int

// A Signal is a named, fixed width value holder.
//
// Equations read a signal's current value but never write it. A Signal that
// does not belong to a Machine has ID -1; the parser creates such anonymous
// constants for bit string literals.
//
type Signal struct {
	id      SignalID
	name    string
	kind    SignalKind
	size    int
	value   BitVector
	initial BitVector
}

// NewConstant returns an anonymous constant signal with the given value.
//
func NewConstant(v BitVector) *Signal {
	return &Signal{id: -1, kind: Constant, size: v.Size(), value: v, initial: v}
}

// ID returns the signal ID in its machine.
//
func (s *Signal) ID() SignalID { return s.id }

// Name returns the signal name. Anonymous constants have an empty name.
//
func (s *Signal) Name() string { return s.name }

// Kind returns the signal kind.
//
func (s *Signal) Kind() SignalKind { return s.kind }

// Size returns the signal width in bits.
//
func (s *Signal) Size() int { return s.size }

// Value returns the current value of s.
//
func (s *Signal) Value() BitVector { return s.value }

// InitialValue returns the value s takes when its machine is reset.
//
func (s *Signal) InitialValue() BitVector { return s.initial }

// SetValue sets the current value of s. It fails if v's size does not match
// the signal width.
//
func (s *Signal) SetValue(v BitVector) error {
	if v.Size() != s.size {
		return newError("Signal", CodeSizeMismatch, "%s: value %s has %d bits, want %d", s.Text(), v, v.Size(), s.size)
	}
	s.value = v
	return nil
}

// SetInitialValue sets the initial value of s. It fails if v's size does not
// match the signal width.
//
func (s *Signal) SetInitialValue(v BitVector) error {
	if v.Size() != s.size {
		return newError("Signal", CodeSizeMismatch, "%s: initial value %s has %d bits, want %d", s.Text(), v, v.Size(), s.size)
	}
	s.initial = v
	if s.kind == Constant {
		s.value = v
	}
	return nil
}

// Resize changes the width of s. Both current and initial values are resized.
//
func (s *Signal) Resize(size int) error {
	if size < 1 {
		return newError("Signal", CodeInvalidWidth, "%s: width %d", s.Text(), size)
	}
	s.size = size
	s.value.Resize(size)
	s.initial.Resize(size)
	return nil
}

// Text returns the signal name, or the quoted value for anonymous constants.
//
func (s *Signal) Text() string {
	if s.name == "" {
		return `"` + s.initial.String() + `"`
	}
	return s.name
}

func (s *Signal) String() string { return s.Text() }

func (*Signal) isOperand() {}

// Machine holds the signals of a state machine. Signals are allocated
// sequentially and addressed by ID or name.
//
type Machine struct {
	signals []*Signal
	names   map[string]SignalID
}

// NewMachine returns an empty machine.
//
func NewMachine() *Machine {
	return &Machine{names: make(map[string]SignalID)}
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return !isKeyword(name)
}

// AddSignal allocates a new signal of the given kind and width. The current
// and initial values are all zeros.
//
func (m *Machine) AddSignal(name string, kind SignalKind, size int) (*Signal, error) {
	if !validName(name) {
		return nil, newError("Machine", CodeInvalidName, "%q", name)
	}
	if _, ok := m.names[name]; ok {
		return nil, newError("Machine", CodeDuplicateName, "%q", name)
	}
	if size < 1 {
		return nil, newError("Machine", CodeInvalidWidth, "%q: width %d", name, size)
	}
	s := &Signal{
		id:      SignalID(len(m.signals)),
		name:    name,
		kind:    kind,
		size:    size,
		value:   Zeros(size),
		initial: Zeros(size),
	}
	m.signals = append(m.signals, s)
	m.names[name] = s.id
	return s, nil
}

// AddConstant allocates a named constant holding v.
//
func (m *Machine) AddConstant(name string, v BitVector) (*Signal, error) {
	s, err := m.AddSignal(name, Constant, v.Size())
	if err != nil {
		return nil, err
	}
	s.value, s.initial = v, v
	return s, nil
}

// Signal returns the signal with the given ID.
//
func (m *Machine) Signal(id SignalID) (*Signal, error) {
	if id < 0 || int(id) >= len(m.signals) {
		return nil, newError("Machine", CodeUnknownSignal, "ID %d", id)
	}
	return m.signals[id], nil
}

// Lookup returns the signal with the given name.
//
func (m *Machine) Lookup(name string) (*Signal, error) {
	id, ok := m.names[name]
	if !ok {
		return nil, newError("Machine", CodeUnknownSignal, "%q", name)
	}
	return m.signals[id], nil
}

// Signals returns all signals in allocation order.
//
func (m *Machine) Signals() []*Signal {
	return append([]*Signal(nil), m.signals...)
}

// Size returns the signal count.
//
func (m *Machine) Size() int { return len(m.signals) }

// Reset sets every signal to its initial value.
//
func (m *Machine) Reset() {
	for _, s := range m.signals {
		s.value = s.initial
	}
}
