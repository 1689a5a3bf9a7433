package lexer

import (
	"github.com/timgates42/lacc/cc"
	"github.com/timgates42/lacc/token"
)

// scanNumber reads a preprocessing number, ported from strtonum: an
// optional leading '.', then a run of digits, '.', '_', letters, and the
// two-character 'e'/'E' (or, from C99 on, 'p'/'P') exponent-sign pairs.
// This grammar is deliberately broader than any valid C numeric literal —
// numconv.Convert performs the real classification later.
func (lx *Lexer) scanNumber(ctx *cc.Context) token.Token {
	start := lx.pos

	if lx.cur() == '.' {
		lx.pos++
	}

	for {
		switch c := lx.cur(); {
		case isDigit(c) || c == '.' || c == '_':
			lx.pos++
		case isAlpha(c):
			lower := c | 0x20
			if (lower == 'e' || (ctx.SupportsHexFloat() && lower == 'p')) &&
				(lx.byteAt(1) == '+' || lx.byteAt(1) == '-') {
				lx.pos++
			}
			lx.pos++
		default:
			return token.Token{
				Kind: token.PREP_NUMBER,
				Str:  lx.interner.Register(lx.buf[start:lx.pos]),
			}
		}
	}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
