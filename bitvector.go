// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package states

import (
	"strings"
)

// NullText is the text representation of the null BitVector.
//
const NullText = "(null value)"

// A BitVector is a fixed size vector of bits. Bit 0 is the least significant
// bit.
//
// The zero size BitVector is the null value. Binary operations between vectors
// of different sizes do not fail: they return the null value, which then
// propagates through any further operation.
//
// BitVector has value semantics: methods that modify a vector never write to
// storage that may be shared with a copy, so plain assignment is a deep copy.
//
type BitVector struct {
	bits []bool
}

func filled(size int, b bool) BitVector {
	if size <= 0 {
		return BitVector{}
	}
	v := BitVector{make([]bool, size)}
	if b {
		for i := range v.bits {
			v.bits[i] = true
		}
	}
	return v
}

// Zeros returns a BitVector of the given size with all bits cleared.
// Zeros(0) is the null value.
//
func Zeros(size int) BitVector { return filled(size, false) }

// Ones returns a BitVector of the given size with all bits set.
//
func Ones(size int) BitVector { return filled(size, true) }

// Null returns the null value.
//
func Null() BitVector { return BitVector{} }

// FromUint returns a BitVector of the given size holding the size low bits of u.
//
func FromUint(u uint64, size int) BitVector {
	v := Zeros(size)
	for i := 0; i < size && i < 64; i++ {
		v.bits[i] = u&(1<<uint(i)) != 0
	}
	return v
}

// ParseBitVector parses a string of '0' and '1' characters, most significant
// bit first. Any other character is skipped, so ParseBitVector("10_01") yields
// the same value as ParseBitVector("1001"). Use ParseBitVectorStrict to reject
// such input.
//
func ParseBitVector(s string) BitVector {
	bits := make([]bool, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		}
	}
	if len(bits) == 0 {
		return BitVector{}
	}
	return BitVector{bits}
}

// ParseBitVectorStrict is like ParseBitVector but returns an error if s
// contains characters other than '0' and '1'.
//
func ParseBitVectorStrict(s string) (BitVector, error) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return BitVector{}, newError("BitVector", CodeParse, "invalid character %q at offset %d in %q", c, i, s)
		}
	}
	return ParseBitVector(s), nil
}

// Size returns the number of bits in v.
//
func (v BitVector) Size() int { return len(v.bits) }

// IsNull returns true if v is the null value.
//
func (v BitVector) IsNull() bool { return len(v.bits) == 0 }

// Clone returns a copy of v that does not share storage with v.
//
func (v BitVector) Clone() BitVector {
	if len(v.bits) == 0 {
		return BitVector{}
	}
	return BitVector{append([]bool(nil), v.bits...)}
}

// Resize grows or shrinks v. New high bits are cleared, truncated high bits
// are lost. Resize(0) makes v null.
//
func (v *BitVector) Resize(size int) {
	if size <= 0 {
		v.bits = nil
		return
	}
	bits := make([]bool, size)
	copy(bits, v.bits)
	v.bits = bits
}

// Bit returns the value of bit i. Out of range bits read as false.
//
func (v BitVector) Bit(i int) bool {
	if i < 0 || i >= len(v.bits) {
		return false
	}
	return v.bits[i]
}

// SetBit sets bit i to b. It returns false and leaves v untouched if i is out
// of range.
//
func (v *BitVector) SetBit(i int, b bool) bool {
	if i < 0 || i >= len(v.bits) {
		return false
	}
	bits := v.Clone().bits
	bits[i] = b
	v.bits = bits
	return true
}

// Equal returns true if v and w have the same size and the same bits.
// Two null values are equal.
//
func (v BitVector) Equal(w BitVector) bool {
	if len(v.bits) != len(w.bits) {
		return false
	}
	for i, b := range v.bits {
		if w.bits[i] != b {
			return false
		}
	}
	return true
}

// Not returns the bitwise complement of v.
//
func (v BitVector) Not() BitVector {
	r := v.Clone()
	for i, b := range r.bits {
		r.bits[i] = !b
	}
	return r
}

func (v BitVector) bitwise(w BitVector, fn func(a, b bool) bool) BitVector {
	if len(v.bits) != len(w.bits) {
		return BitVector{}
	}
	r := v.Clone()
	for i, b := range w.bits {
		r.bits[i] = fn(r.bits[i], b)
	}
	return r
}

// And returns the bitwise AND of v and w, or null if their sizes differ.
//
func (v BitVector) And(w BitVector) BitVector {
	return v.bitwise(w, func(a, b bool) bool { return a && b })
}

// Or returns the bitwise OR of v and w, or null if their sizes differ.
//
func (v BitVector) Or(w BitVector) BitVector {
	return v.bitwise(w, func(a, b bool) bool { return a || b })
}

// Xor returns the bitwise XOR of v and w, or null if their sizes differ.
//
func (v BitVector) Xor(w BitVector) BitVector {
	return v.bitwise(w, func(a, b bool) bool { return a != b })
}

func (v *BitVector) assign(r BitVector) BitVector {
	if !r.IsNull() {
		v.bits = r.bits
	}
	return r
}

// AndAssign sets v to v.And(w) and returns the result. If the sizes differ,
// the null result is returned and v is left unchanged.
//
func (v *BitVector) AndAssign(w BitVector) BitVector { return v.assign(v.And(w)) }

// OrAssign sets v to v.Or(w) and returns the result. If the sizes differ,
// the null result is returned and v is left unchanged.
//
func (v *BitVector) OrAssign(w BitVector) BitVector { return v.assign(v.Or(w)) }

// XorAssign sets v to v.Xor(w) and returns the result. If the sizes differ,
// the null result is returned and v is left unchanged.
//
func (v *BitVector) XorAssign(w BitVector) BitVector { return v.assign(v.Xor(w)) }

// Increment adds one to v. It returns true on overflow, in which case v wraps
// around to all zeros. Incrementing the null value always overflows.
//
func (v *BitVector) Increment() (overflow bool) {
	bits := v.Clone().bits
	for i := range bits {
		if !bits[i] {
			bits[i] = true
			v.bits = bits
			return false
		}
		bits[i] = false
	}
	v.bits = bits
	return true
}

// Concat returns the concatenation of v and w, v occupying the high bits.
// If either is null, the result is null.
//
func (v BitVector) Concat(w BitVector) BitVector {
	if v.IsNull() || w.IsNull() {
		return BitVector{}
	}
	bits := make([]bool, 0, len(v.bits)+len(w.bits))
	bits = append(bits, w.bits...)
	return BitVector{append(bits, v.bits...)}
}

// Extract returns bits lo through hi of v, both inclusive. The result is null
// if the range is empty or out of bounds.
//
func (v BitVector) Extract(hi, lo int) BitVector {
	if lo < 0 || hi < lo || hi >= len(v.bits) {
		return BitVector{}
	}
	return BitVector{append([]bool(nil), v.bits[lo:hi+1]...)}
}

// Add returns v + w modulo 2^Size, or null if the sizes differ.
//
func (v BitVector) Add(w BitVector) BitVector {
	if len(v.bits) != len(w.bits) {
		return BitVector{}
	}
	r := Zeros(len(v.bits))
	carry := false
	for i, a := range v.bits {
		b := w.bits[i]
		r.bits[i] = a != b != carry
		carry = a && b || carry && (a != b)
	}
	return r
}

// Sub returns v - w modulo 2^Size, or null if the sizes differ.
//
func (v BitVector) Sub(w BitVector) BitVector {
	if len(v.bits) != len(w.bits) || v.IsNull() {
		return BitVector{}
	}
	n := w.Not()
	n.Increment()
	return v.Add(n)
}

// Mul returns v * w modulo 2^Size, or null if the sizes differ.
//
func (v BitVector) Mul(w BitVector) BitVector {
	if len(v.bits) != len(w.bits) {
		return BitVector{}
	}
	r := Zeros(len(v.bits))
	for i, b := range w.bits {
		if !b {
			continue
		}
		// v << i
		s := Zeros(len(v.bits))
		copy(s.bits[i:], v.bits)
		r = r.Add(s)
	}
	return r
}

// Uint64 returns the value of v as an unsigned integer. ok is false if v is
// null or wider than 64 bits.
//
func (v BitVector) Uint64() (u uint64, ok bool) {
	if v.IsNull() || len(v.bits) > 64 {
		return 0, false
	}
	for i, b := range v.bits {
		if b {
			u |= 1 << uint(i)
		}
	}
	return u, true
}

// String returns the bits of v, most significant bit first, or NullText if v
// is null.
//
func (v BitVector) String() string {
	if v.IsNull() {
		return NullText
	}
	var b strings.Builder
	b.Grow(len(v.bits))
	for i := len(v.bits) - 1; i >= 0; i-- {
		if v.bits[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
