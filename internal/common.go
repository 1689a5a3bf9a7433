// Package internal is a collection of the lexer's character-classification
// lookup tables.
//
// For performance reasons, these tables lack strong error checking and
// require that the caller ensure that strict invariants are kept.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lacc: " + string(e) }

var (
	// IdentStartLUT marks bytes valid as the first character of a C
	// identifier: alphabetic or underscore.
	IdentStartLUT [256]bool

	// IdentContLUT marks bytes valid as a non-first character of a C
	// identifier: alphanumeric or underscore.
	IdentContLUT [256]bool

	// HexDigitLUT marks bytes that are valid hexadecimal digits.
	HexDigitLUT [256]bool

	// OctalDigitLUT marks bytes that are valid octal digits.
	OctalDigitLUT [256]bool

	// PrintableASCIILUT marks bytes that print as themselves without
	// quoting, the set cstring.WriteQuoted passes through unescaped.
	PrintableASCIILUT [256]bool
)

func init() {
	for i := range IdentStartLUT {
		b := byte(i)
		IdentStartLUT[i] = b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	}
	for i := range IdentContLUT {
		b := byte(i)
		IdentContLUT[i] = IdentStartLUT[i] || (b >= '0' && b <= '9')
	}
	for i := range HexDigitLUT {
		b := byte(i)
		HexDigitLUT[i] = (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	}
	for i := range OctalDigitLUT {
		b := byte(i)
		OctalDigitLUT[i] = b >= '0' && b <= '7'
	}
	for i := range PrintableASCIILUT {
		PrintableASCIILUT[i] = i >= 0x20 && i < 0x7f
	}
}

// IsIdentStart reports whether b may begin a C identifier.
func IsIdentStart(b byte) bool { return IdentStartLUT[b] }

// IsIdentCont reports whether b may continue a C identifier.
func IsIdentCont(b byte) bool { return IdentContLUT[b] }

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool { return HexDigitLUT[b] }

// IsOctalDigit reports whether b is an octal digit.
func IsOctalDigit(b byte) bool { return OctalDigitLUT[b] }

// IsPrintableASCII reports whether b prints as itself without escaping.
func IsPrintableASCII(b byte) bool { return PrintableASCIILUT[b] }
