package lexer

import "github.com/timgates42/lacc/token"

// scanOperator reads one punctuator, ported from strtoop: a greedy
// longest-match switch on the first byte, falling back to a single
// BasicTokenTable lookup keyed by the unmatched byte for the
// single-character punctuators.
func (lx *Lexer) scanOperator() token.Token {
	c := lx.advance()

	switch c {
	case '*':
		if lx.at('=') {
			return token.Basic.Lookup(token.MUL_ASSIGN)
		}
	case '/':
		if lx.at('=') {
			return token.Basic.Lookup(token.DIV_ASSIGN)
		}
	case '%':
		if lx.at('=') {
			return token.Basic.Lookup(token.MOD_ASSIGN)
		}
	case '+':
		if lx.at('+') {
			return token.Basic.Lookup(token.INCREMENT)
		}
		if lx.at('=') {
			return token.Basic.Lookup(token.PLUS_ASSIGN)
		}
	case '-':
		if lx.at('>') {
			return token.Basic.Lookup(token.ARROW)
		}
		if lx.at('-') {
			return token.Basic.Lookup(token.DECREMENT)
		}
		if lx.at('=') {
			return token.Basic.Lookup(token.MINUS_ASSIGN)
		}
	case '<':
		if lx.at('=') {
			return token.Basic.Lookup(token.LEQ)
		}
		if lx.at('<') {
			if lx.at('=') {
				return token.Basic.Lookup(token.LSHIFT_ASSIGN)
			}
			return token.Basic.Lookup(token.LSHIFT)
		}
	case '>':
		if lx.at('=') {
			return token.Basic.Lookup(token.GEQ)
		}
		if lx.at('>') {
			if lx.at('=') {
				return token.Basic.Lookup(token.RSHIFT_ASSIGN)
			}
			return token.Basic.Lookup(token.RSHIFT)
		}
	case '&':
		if lx.at('=') {
			return token.Basic.Lookup(token.AND_ASSIGN)
		}
		if lx.at('&') {
			return token.Basic.Lookup(token.LOGICAL_AND)
		}
	case '^':
		if lx.at('=') {
			return token.Basic.Lookup(token.XOR_ASSIGN)
		}
	case '|':
		if lx.at('=') {
			return token.Basic.Lookup(token.OR_ASSIGN)
		}
		if lx.at('|') {
			return token.Basic.Lookup(token.LOGICAL_OR)
		}
	case '.':
		if lx.cur() == '.' && lx.byteAt(1) == '.' {
			lx.pos += 2
			return token.Basic.Lookup(token.DOTS)
		}
	case '=':
		if lx.at('=') {
			return token.Basic.Lookup(token.EQ)
		}
	case '!':
		if lx.at('=') {
			return token.Basic.Lookup(token.NEQ)
		}
	case '#':
		if lx.at('#') {
			return token.Basic.Lookup(token.TOKEN_PASTE)
		}
	}

	return token.Basic.LookupByte(c)
}
