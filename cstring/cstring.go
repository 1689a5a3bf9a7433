// Package cstring implements a small-string-optimized value type used for
// every token payload in the lexer: identifiers, string-literal content, and
// preprocessing-number spellings.
//
// A String fits short content (up to MaxInlineLen bytes) directly inside the
// value, avoiding an allocation for the overwhelming majority of C
// identifiers. Longer content is referenced through a slice owned by an
// intern table or by the caller; see the intern package.
package cstring

import "bytes"

// MaxInlineLen is the largest number of content bytes that fit in the
// inline representation. A well-formed inline string's storage is exactly
// MaxInlineLen+1 bytes: content, then a zero terminator/discriminant.
const MaxInlineLen = 15

// MaxLen is the largest length representable by the heap variant: seven
// bytes of little-endian length, masked to exclude the discriminant byte.
const MaxLen = 0x00ffffffffffffff

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "cstring: " + string(e) }

// ErrTooLong is returned by Set when the requested length exceeds MaxLen.
const ErrTooLong = Error("string length exceeds maximum supported size")

// String is a two-part value: a fixed-size shadow record that preserves the
// original C implementation's discriminant-byte contract (see DESIGN.md),
// and, for content that does not fit inline, a safe byte slice referencing
// the real backing storage.
//
// The zero value is the empty inline string.
type String struct {
	// shadow[0:15] holds inline content for the short form. For the heap
	// form, shadow[0:7] holds the length in little-endian, masked to
	// MaxLen; shadow[15] is zero for the short form and non-zero for the
	// heap form. This mirrors the original's union layout closely enough
	// to preserve the discriminant-byte testable properties without
	// requiring unsafe pointer arithmetic to get there.
	shadow [16]byte
	heap   []byte
}

// FromCString constructs a String from a null-terminated byte sequence,
// mirroring the C convention of the distilled spec's construct-from-cstr
// operation. The length is determined by scanning for the first zero byte,
// matching strlen. Panics with ErrTooLong if the resulting length exceeds
// MaxLen (the original calls error()/exit(1); see DESIGN.md Open Question 6
// on why this package panics instead).
func FromCString(b []byte) String {
	n := bytes.IndexByte(b, 0)
	if n < 0 {
		n = len(b)
	}
	var s String
	if err := Set(&s, b[:n]); err != nil {
		panic(err)
	}
	return s
}

// New constructs a String from buf, panicking with ErrTooLong if buf is
// longer than MaxLen.
func New(buf []byte) String {
	var s String
	if err := Set(&s, buf); err != nil {
		panic(err)
	}
	return s
}

// NewString is a convenience wrapper around New for Go string literals.
func NewString(s string) String {
	return New([]byte(s))
}

// Set writes buf into dst, choosing the inline or heap representation
// according to len(buf). It fails with ErrTooLong when len(buf) > MaxLen.
func Set(dst *String, buf []byte) error {
	n := len(buf)
	switch {
	case n <= MaxInlineLen:
		var shadow [16]byte
		copy(shadow[:], buf)
		*dst = String{shadow: shadow}
	case n <= MaxLen:
		var shadow [16]byte
		shadow[0] = byte(n)
		shadow[1] = byte(n >> 8)
		shadow[2] = byte(n >> 16)
		shadow[3] = byte(n >> 24)
		shadow[4] = byte(n >> 32)
		shadow[5] = byte(n >> 40)
		shadow[6] = byte(n >> 48)
		shadow[15] = 1
		*dst = String{shadow: shadow, heap: buf}
	default:
		return ErrTooLong
	}
	return nil
}

// isHeap reports whether s uses the heap (long-string) representation.
func (s String) isHeap() bool { return s.shadow[15] != 0 }

// Len returns the number of content bytes in s.
func (s String) Len() int {
	if s.isHeap() {
		return heapLen(s.shadow)
	}
	return inlineLen(s.shadow)
}

func inlineLen(shadow [16]byte) int {
	if n := bytes.IndexByte(shadow[:MaxInlineLen], 0); n >= 0 {
		return n
	}
	return MaxInlineLen
}

func heapLen(shadow [16]byte) int {
	n := int(shadow[0]) | int(shadow[1])<<8 | int(shadow[2])<<16 |
		int(shadow[3])<<24 | int(shadow[4])<<32 | int(shadow[5])<<40 |
		int(shadow[6])<<48
	return n & MaxLen
}

// IsEmpty reports whether s has zero length.
func (s String) IsEmpty() bool { return s.Len() == 0 }

// Raw returns the content bytes of s. The returned slice is valid only for
// the lifetime of s: for the inline variant it aliases a copy taken at call
// time (since s is passed by value, mutating the caller's copy is safe);
// for the heap variant it aliases the externally-owned storage referenced
// by s, which must outlive any use of the returned slice.
func (s String) Raw() []byte {
	if s.isHeap() {
		return s.heap
	}
	n := inlineLen(s.shadow)
	out := make([]byte, n)
	copy(out, s.shadow[:n])
	return out
}

// Equal reports whether s and o have the same content.
func (s String) Equal(o String) bool {
	if s.Len() != o.Len() {
		return false
	}
	return bytes.Equal(s.Raw(), o.Raw())
}

// Contains reports whether s contains the byte c.
func (s String) Contains(c byte) bool {
	if s.isHeap() {
		return bytes.IndexByte(s.heap, c) >= 0
	}
	n := inlineLen(s.shadow)
	return bytes.IndexByte(s.shadow[:n], c) >= 0
}

// String implements fmt.Stringer, returning the content as a Go string. It
// allocates; hot paths should prefer Raw.
func (s String) String() string {
	return string(s.Raw())
}
