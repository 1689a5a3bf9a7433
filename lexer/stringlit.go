package lexer

import (
	"strconv"

	"github.com/timgates42/lacc/cc"
	"github.com/timgates42/lacc/cctype"
	"github.com/timgates42/lacc/internal"
	"github.com/timgates42/lacc/token"
)

// ErrInvalidEscape is reported to the diagnostic sink (non-fatal) for an
// unrecognized '\c' sequence. Scanning continues, emitting c verbatim.
const ErrInvalidEscape = cc.Error("invalid escape sequence")

// ErrInvalidCharacterConstant is reported to the diagnostic sink
// (non-fatal) when a character literal's closing quote is missing.
const ErrInvalidCharacterConstant = cc.Error("invalid character constant")

// ErrInvalidString is fatal: raised when a string literal (or one segment
// of a concatenated run of adjacent literals) never finds its matching
// close quote, mirroring strtostr's error("Invalid string literal.") +
// exit(1). Reported to the diagnostic sink and raised by panic via
// cc.Fatal; a driver loop recovers it with cc.Recover.
const ErrInvalidString = cc.Error("invalid string literal")

// escapeChar decodes one escape sequence (or plain byte) at the cursor,
// ported from escpchar. Unlike the original, it never mutates the input
// buffer — it only advances lx.pos and returns the decoded byte.
func (lx *Lexer) escapeChar() (byte, error) {
	if lx.cur() != '\\' {
		return lx.advance(), nil
	}

	c := lx.byteAt(1)
	switch c {
	case 'a':
		lx.pos += 2
		return 0x7, nil
	case 'b':
		lx.pos += 2
		return 0x8, nil
	case 't':
		lx.pos += 2
		return 0x9, nil
	case 'n':
		lx.pos += 2
		return 0xa, nil
	case 'v':
		lx.pos += 2
		return 0xb, nil
	case 'f':
		lx.pos += 2
		return 0xc, nil
	case 'r':
		lx.pos += 2
		return 0xd, nil
	case '\\':
		lx.pos += 2
		return '\\', nil
	case '?':
		lx.pos += 2
		return '?', nil
	case '\'':
		lx.pos += 2
		return '\'', nil
	case '"':
		lx.pos += 2
		return '"', nil
	case '0':
		if isOctalDigit(lx.byteAt(2)) {
			start := lx.pos + 1
			end := start
			for isOctalDigit(lx.byteAt(1 + (end - start))) {
				end++
			}
			v, _ := strconv.ParseUint(string(lx.buf[start:end]), 8, 8)
			lx.pos = end
			return byte(v), nil
		}
		lx.pos += 2
		return 0, nil
	case 'x':
		start := lx.pos + 2
		end := start
		for internal.IsHexDigit(lx.byteAt(2 + (end - start))) {
			end++
		}
		var v uint64
		if end > start {
			v, _ = strconv.ParseUint(string(lx.buf[start:end]), 16, 8)
		}
		lx.pos = end
		return byte(v), nil
	default:
		lx.pos += 2
		lx.diag.Errorf("%s: '\\%c'", ErrInvalidEscape, c)
		return c, ErrInvalidEscape
	}
}

func isOctalDigit(b byte) bool { return internal.IsOctalDigit(b) }

// scanChar reads a character literal between single quotes, ported from
// strtochar: one escape-decoded byte, emitted as a NUMBER token typed
// cctype.Int. A missing closing quote reports ErrInvalidCharacterConstant
// but still returns a (best-effort) token.
func (lx *Lexer) scanChar() (token.Token, error) {
	lx.pos++ // opening '

	b, escErr := lx.escapeChar()
	tok := token.Token{Kind: token.NUMBER, Num: token.Number{Type: cctype.Int, I: int64(b)}}

	if lx.cur() != '\'' {
		lx.diag.Errorf("%s", ErrInvalidCharacterConstant)
		return tok, ErrInvalidCharacterConstant
	}
	lx.pos++
	return tok, escErr
}

// scanString reads one or more adjacent string literals (concatenated per
// the distilled spec), ported from strtostr but writing escape-resolved
// content into a scratch buffer instead of overwriting the input in
// place — callers may keep reading the original buffer afterward.
func (lx *Lexer) scanString() (token.Token, error) {
	startAll := lx.pos
	var out []byte
	var firstErr error

	for {
		if lx.cur() != '"' {
			break
		}
		lx.pos++
		for lx.cur() != '"' && lx.cur() != 0 {
			b, err := lx.escapeChar()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			out = append(out, b)
		}
		if lx.cur() != '"' {
			cc.Fatal(lx.diag, ErrInvalidString)
			panic("unreachable")
		}
		lx.pos++

		save := lx.pos
		for lx.cur() == ' ' || lx.cur() == '\t' {
			lx.pos++
		}
		if lx.cur() != '"' {
			lx.pos = save
			break
		}
	}

	if lx.pos == startAll {
		cc.Fatal(lx.diag, ErrInvalidString)
		panic("unreachable")
	}

	return token.Token{Kind: token.STRING, Str: lx.interner.Register(out)}, firstErr
}
