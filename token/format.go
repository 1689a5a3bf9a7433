package token

import (
	"strconv"

	"github.com/timgates42/lacc/cctype"
	"github.com/timgates42/lacc/cstring"
)

// CanonicalForm reconstructs a spelling for t (the original tokstr). The
// spelling of a NUMBER token is not retained during scanning, so it is
// rebuilt from the typed value and may differ from the source text in
// cosmetic ways (e.g. "0x2A" reprints as "42") while preserving the type
// suffix a later pass needs to see again.
func CanonicalForm(t Token) cstring.String {
	if t.Kind != NUMBER {
		return t.Str
	}

	num := t.Num
	var buf []byte
	switch {
	case num.Type.IsUnsigned():
		buf = strconv.AppendUint(buf, num.U, 10)
		buf = append(buf, 'u')
		if num.Type.Size() == 8 {
			buf = append(buf, 'l')
		}
	case num.Type.IsSigned():
		buf = strconv.AppendInt(buf, num.I, 10)
		if num.Type.Size() == 8 {
			buf = append(buf, 'l')
		}
	case num.Type == cctype.Float:
		buf = strconv.AppendFloat(buf, float64(num.F), 'f', 6, 32)
		buf = append(buf, 'f')
	default:
		buf = strconv.AppendFloat(buf, num.D, 'f', 6, 64)
	}

	return cstring.New(buf)
}

// Paste concatenates the canonical forms of a and b into a new STRING token
// (the original pastetok). The result is not re-lexed; a caller that needs
// the pasted text to behave as a new token of its own kind must run it back
// through the lexer.
func Paste(a, b Token) Token {
	as, bs := CanonicalForm(a), CanonicalForm(b)
	buf := make([]byte, 0, as.Len()+bs.Len())
	buf = append(buf, as.Raw()...)
	buf = append(buf, bs.Raw()...)
	return Token{Kind: STRING, Str: cstring.New(buf)}
}
