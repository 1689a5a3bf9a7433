package cstring

import (
	"fmt"
	"io"
	"strings"

	"github.com/timgates42/lacc/internal"
)

// WriteQuoted writes s to w as a double-quoted, C-escaped string literal:
// printable bytes other than '"' and '\\' are emitted as-is; the standard
// single-letter escapes (\b \t \n \f \r \\ \") are used where they apply;
// every other byte is emitted as a zero-padded three-digit octal escape
// (\NNN). The result is always a valid C string literal.
func (s String) WriteQuoted(w io.Writer) (int, error) {
	n, err := io.WriteString(w, `"`)
	if err != nil {
		return n, err
	}
	for _, c := range s.Raw() {
		m, err := writeQuotedByte(w, c)
		n += m
		if err != nil {
			return n, err
		}
	}
	m, err := io.WriteString(w, `"`)
	return n + m, err
}

// Quoted returns the same text WriteQuoted would write, as a string.
func (s String) Quoted() string {
	var b strings.Builder
	_, _ = s.WriteQuoted(&b)
	return b.String()
}

func writeQuotedByte(w io.Writer, c byte) (int, error) {
	if internal.IsPrintableASCII(c) && c != '"' && c != '\\' {
		return w.Write([]byte{c})
	}
	switch c {
	case '\b':
		return io.WriteString(w, `\b`)
	case '\t':
		return io.WriteString(w, `\t`)
	case '\n':
		return io.WriteString(w, `\n`)
	case '\f':
		return io.WriteString(w, `\f`)
	case '\r':
		return io.WriteString(w, `\r`)
	case '\\':
		return io.WriteString(w, `\\`)
	case '"':
		return io.WriteString(w, `\"`)
	default:
		return fmt.Fprintf(w, `\%03o`, c)
	}
}
