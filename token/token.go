package token

import (
	"github.com/timgates42/lacc/cctype"
	"github.com/timgates42/lacc/cstring"
)

// Token is a tagged value produced by the lexer: a Kind, the count of
// horizontal whitespace bytes immediately preceding it, and a payload that
// is either a string (Str) or a typed numeric value (Num), matching the
// distilled spec's §3 data model.
type Token struct {
	Kind              Kind
	LeadingWhitespace int
	Str               cstring.String
	Num               Number
}

// Number is a typed numeric value: a reference to one of the six built-in
// types plus the value, stored in whichever representation matches the
// type (distilled spec §3).
type Number struct {
	Type *cctype.BasicType
	I    int64   // valid when Type.IsSigned()
	U    uint64  // valid when Type.IsUnsigned()
	F    float32 // valid when Type == cctype.Float
	D    float64 // valid when Type == cctype.Double
}
