// Package lexer scans a C translation unit's preprocessing tokens: it is
// the Go realization of tokenize.c's tokenize(), strtoident(), strtonum(),
// strtostr(), strtochar(), and strtoop().
package lexer

import (
	"github.com/timgates42/lacc/cc"
	"github.com/timgates42/lacc/intern"
	"github.com/timgates42/lacc/internal"
	"github.com/timgates42/lacc/token"
)

// Lexer holds the cursor over one input buffer. Unlike the original's
// tokenize(in, &endptr) free function, the cursor is carried on the
// receiver — the Go realization of flate.Reader's step/pos fields rather
// than a pointer-to-pointer threaded through every call.
type Lexer struct {
	buf      []byte
	pos      int
	interner intern.Interner
	diag     cc.Diagnostics
}

// New returns a Lexer scanning buf. buf is never mutated; callers may
// continue to read it after tokenization completes (a deliberate departure
// from the original's destructive string-literal scanning, see
// stringlit.go). The interner supplies the cstring.String handles for
// identifiers and the diagnostics sink receives error reports.
func New(buf []byte, interner intern.Interner, diag cc.Diagnostics) *Lexer {
	return &Lexer{buf: buf, interner: interner, diag: diag}
}

// Pos returns the current byte offset into the input buffer.
func (lx *Lexer) Pos() int { return lx.pos }

func (lx *Lexer) byteAt(off int) byte {
	if lx.pos+off >= len(lx.buf) {
		return 0
	}
	return lx.buf[lx.pos+off]
}

func (lx *Lexer) cur() byte { return lx.byteAt(0) }

// skipSpaces consumes horizontal whitespace (space and tab only — newline
// is its own token) and returns the count consumed.
func (lx *Lexer) skipSpaces() int {
	start := lx.pos
	for lx.cur() == ' ' || lx.cur() == '\t' {
		lx.pos++
	}
	return lx.pos - start
}

// Next scans and returns the next token, mirroring tokenize()'s dispatch:
// skip horizontal whitespace, then branch on the first significant byte.
// At end of input it returns a token.END token forever after.
func (lx *Lexer) Next(ctx *cc.Context) (token.Token, error) {
	ws := lx.skipSpaces()

	var tok token.Token
	var err error

	switch c := lx.cur(); {
	case c == 0:
		tok = token.Basic.Lookup(token.END)
	case internal.IsIdentStart(c):
		tok = lx.scanIdentifier()
	case c == '\n':
		lx.pos++
		tok = token.Basic.Lookup(token.NEWLINE)
	case isDigit(c) || (c == '.' && isDigit(lx.byteAt(1))):
		tok = lx.scanNumber(ctx)
	case c == '"':
		tok, err = lx.scanString()
	case c == '\'':
		tok, err = lx.scanChar()
	default:
		tok = lx.scanOperator()
	}

	tok.LeadingWhitespace = ws
	return tok, err
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
