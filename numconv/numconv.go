// Package numconv classifies a C preprocessing number's spelling into one
// of the six built-in numeric types and parses its value, the Go
// realization of tokenize.c's convert_preprocessing_number.
package numconv

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/timgates42/lacc/cc"
	"github.com/timgates42/lacc/cctype"
	"github.com/timgates42/lacc/cstring"
	"github.com/timgates42/lacc/token"
)

// ErrInvalidNumericLiteral is raised when a spelling's integer and float
// parses both fail to consume the entire token.
const ErrInvalidNumericLiteral = cc.Error("invalid numeric literal")

// ErrOutOfRange is raised when the integer parse overflows 64 bits.
const ErrOutOfRange = cc.Error("numeric literal out of range")

// Convert parses spelling (a PREP_NUMBER token's raw text) into a typed
// token.Number, consulting tbl for the built-in type set. It calls
// cc.Fatal (panic, recovered by the caller via cc.Recover) on failure, so a
// successful return is always a fully populated Number.
func Convert(ctx *cc.Context, diag cc.Diagnostics, tbl cctype.Table, spelling cstring.String) token.Number {
	s := spelling.String()

	if n, ok := convertInt(diag, tbl, s); ok {
		return n
	}
	if n, ok := convertFloat(ctx, diag, tbl, s); ok {
		return n
	}

	cc.Fatal(diag, fmt.Errorf("%w: %q", ErrInvalidNumericLiteral, s))
	panic("unreachable")
}

// convertInt attempts the integer parse: a 0/0x/octal-prefixed digit run
// followed by u/l suffixes. It returns ok == false if the digit run is
// empty (not a valid integer start) or if, once started, it fails to
// consume the whole spelling — at which point the caller must retry as a
// float rather than treat this as a hard error, exactly mirroring the
// original's "if (endptr - in != len)" fallthrough.
//
// The digit run is always parsed as a 64-bit value first, since a suffix
// deciding between a 4-byte and an 8-byte type only appears after the
// digits; once that suffix fixes the real type, the value is re-checked
// against that type's actual width so a value that fits in 64 bits but not
// in the narrower suffixed type (e.g. "0xFFFFFFFFFFFFFFFFu") is still
// reported out of range instead of silently truncating.
func convertInt(diag cc.Diagnostics, tbl cctype.Table, s string) (token.Number, bool) {
	digits := scanIntPrefix(s)
	if digits == 0 {
		return token.Number{}, false
	}

	// Base 0 lets strconv itself recognize the 0x/0 prefixes scanIntPrefix
	// already validated, the same "base 0" strtoul is called with.
	u, err := strconv.ParseUint(s[:digits], 0, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			cc.Fatal(diag, fmt.Errorf("%w: %q", ErrOutOfRange, s))
		}
		return token.Number{}, false
	}

	i := digits
	typ := tbl.Int()

	if i < len(s) && isU(s[i]) {
		typ = tbl.UInt()
		i++
	}
	if i < len(s) && isL(s[i]) {
		if typ.IsUnsigned() {
			typ = tbl.ULong()
		} else {
			typ = tbl.Long()
		}
		i++
		// Long long: an immediately repeated identical suffix letter,
		// accepted syntactically and folded onto long (not part of C89).
		if i < len(s) && s[i] == s[i-1] {
			i++
		}
	}
	if typ.IsSigned() && i < len(s) && isU(s[i]) {
		if typ.Size() == 4 {
			typ = tbl.UInt()
		} else {
			typ = tbl.ULong()
		}
		i++
	}

	if i != len(s) {
		return token.Number{}, false
	}

	if typ.Size() == 4 && u > 0xffffffff {
		cc.Fatal(diag, fmt.Errorf("%w: %q", ErrOutOfRange, s))
	}

	n := token.Number{Type: typ}
	if typ.IsUnsigned() {
		n.U = u
	} else {
		n.I = int64(u)
	}
	return n, true
}

// convertFloat parses s as a double, reclassifying to float on a trailing
// f/F suffix. The mantissa/exponent span is rescanned from the start of s
// (mirroring the original's fresh strtod(in, &endptr) call) so an integer
// parse that partially matched (e.g. stopping at '.') does not bias it.
func convertFloat(ctx *cc.Context, diag cc.Diagnostics, tbl cctype.Table, s string) (token.Number, bool) {
	n := scanFloatPrefix(s, ctx.SupportsHexFloat())
	if n == 0 {
		return token.Number{}, false
	}

	d, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			cc.Fatal(diag, fmt.Errorf("%w: %q", ErrOutOfRange, s))
		}
		return token.Number{}, false
	}

	typ := tbl.Double()
	i := n
	if i < len(s) && isF(s[i]) {
		typ = tbl.Float()
		i++
	}

	if i != len(s) {
		return token.Number{}, false
	}

	if typ.IsFloat() {
		return token.Number{Type: typ, F: float32(d)}, true
	}
	return token.Number{Type: typ, D: d}, true
}

func isU(b byte) bool { return b == 'u' || b == 'U' }
func isL(b byte) bool { return b == 'l' || b == 'L' }
func isF(b byte) bool { return b == 'f' || b == 'F' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanIntPrefix returns the number of leading bytes of s that form a valid
// C integer constant under the 0/0x/octal/decimal prefix rules. It returns
// 0 if s does not start with a digit at all.
func scanIntPrefix(s string) int {
	n := len(s)
	if n == 0 || !isDecDigit(s[0]) {
		return 0
	}
	if n >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		i := 2
		for i < n && isHexDigit(s[i]) {
			i++
		}
		if i == 2 {
			// "0x" with no hex digits: not a valid hex literal, fall
			// back to treating the leading "0" as an octal/decimal run.
			return 1
		}
		return i
	}
	if s[0] == '0' {
		i := 1
		for i < n && isOctalDigit(s[i]) {
			i++
		}
		return i
	}
	i := 0
	for i < n && isDecDigit(s[i]) {
		i++
	}
	return i
}

// scanFloatPrefix returns the number of leading bytes of s that form a
// valid floating-point mantissa and exponent, decimal or (when
// allowHexExp) hex-float. It does not itself validate the result; a
// malformed span is rejected by the subsequent strconv.ParseFloat call.
func scanFloatPrefix(s string, allowHexExp bool) int {
	n := len(s)
	hex := false
	i := 0
	if allowHexExp && n >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		hex = true
		i = 2
	}

	digit := isDecDigit
	expByte := byte('e')
	if hex {
		digit = isHexDigit
		expByte = 'p'
	}

	start := i
	for i < n && digit(s[i]) {
		i++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && digit(s[i]) {
			i++
		}
	}
	if i == start || (i == start+1 && s[start] == '.') {
		return 0
	}

	if i < n && (s[i]|0x20) == expByte {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < n && isDecDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}
