// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package states

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies the reason of an Error.
//
type Code int

// Error codes.
//
const (
	CodeUnknown       Code = iota
	CodeOperandRank        // operand rank out of range
	CodeArity              // wrong operand count for an operator
	CodeSizeMismatch       // value size does not match the signal size
	CodeInvalidName        // empty or malformed signal name
	CodeDuplicateName      // signal name already in use
	CodeInvalidWidth       // signal width < 1
	CodeUnknownSignal      // no signal with the given name or ID
	CodeParse              // malformed equation or bit string
	CodeNoEquation         // truth table requested without equations
	CodeTooManyInputs      // truth table input width above MaxTruthTableWidth
	CodeCycle              // equation would contain itself
)

var codeNames = [...]string{
	CodeUnknown:       "unknown",
	CodeOperandRank:   "operand rank out of range",
	CodeArity:         "invalid operand count",
	CodeSizeMismatch:  "size mismatch",
	CodeInvalidName:   "invalid name",
	CodeDuplicateName: "duplicate name",
	CodeInvalidWidth:  "invalid width",
	CodeUnknownSignal: "unknown signal",
	CodeParse:         "parse error",
	CodeNoEquation:    "no equation",
	CodeTooManyInputs: "too many inputs",
	CodeCycle:         "cyclic equation",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "Code(" + fmt.Sprint(int(c)) + ")"
	}
	return codeNames[c]
}

// Error reports API misuse or malformed input. Component is the name of the
// part of the package that raised the error (e.g. "Equation", "Machine").
//
// Evaluation never returns an Error: invalid results are reported as a null
// BitVector.
//
type Error struct {
	Component string
	Code      Code
	Cause     string
}

func (e *Error) Error() string {
	return e.Component + ": " + e.Code.String() + ": " + e.Cause
}

// newError returns a new *Error annotated with a stack trace.
//
func newError(component string, code Code, format string, args ...interface{}) error {
	return errors.WithStack(&Error{
		Component: component,
		Code:      code,
		Cause:     fmt.Sprintf(format, args...),
	})
}

// CodeOf returns the Code of err if its cause is an *Error, CodeUnknown
// otherwise.
//
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
