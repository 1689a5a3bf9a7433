package lexer

import (
	"testing"

	"github.com/timgates42/lacc/token"
)

func TestScanOperatorLongestMatch(t *testing.T) {
	vectors := []struct {
		src  string
		kind token.Kind
	}{
		{"*", token.STAR}, {"*=", token.MUL_ASSIGN},
		{"/", token.SLASH}, {"/=", token.DIV_ASSIGN},
		{"%", token.MODULO}, {"%=", token.MOD_ASSIGN},
		{"+", token.PLUS}, {"++", token.INCREMENT}, {"+=", token.PLUS_ASSIGN},
		{"-", token.MINUS}, {"->", token.ARROW}, {"--", token.DECREMENT}, {"-=", token.MINUS_ASSIGN},
		{"<", token.LT}, {"<=", token.LEQ}, {"<<", token.LSHIFT}, {"<<=", token.LSHIFT_ASSIGN},
		{">", token.GT}, {">=", token.GEQ}, {">>", token.RSHIFT}, {">>=", token.RSHIFT_ASSIGN},
		{"&", token.AND}, {"&=", token.AND_ASSIGN}, {"&&", token.LOGICAL_AND},
		{"^", token.XOR}, {"^=", token.XOR_ASSIGN},
		{"|", token.OR}, {"|=", token.OR_ASSIGN}, {"||", token.LOGICAL_OR},
		{".", token.DOT}, {"...", token.DOTS},
		{"=", token.ASSIGN}, {"==", token.EQ},
		{"!", token.NOT}, {"!=", token.NEQ},
		{"#", token.HASH}, {"##", token.TOKEN_PASTE},
		{"(", token.OPEN_PAREN}, {")", token.CLOSE_PAREN},
		{"[", token.OPEN_BRACKET}, {"]", token.CLOSE_BRACKET},
		{"{", token.OPEN_CURLY}, {"}", token.CLOSE_CURLY},
		{",", token.COMMA}, {";", token.SEMICOLON}, {":", token.COLON},
		{"?", token.QUESTION}, {"~", token.NEG},
	}
	for _, v := range vectors {
		t.Run(v.src, func(t *testing.T) {
			toks := scanAll(t, v.src, c11)
			if len(toks) != 2 || toks[0].Kind != v.kind || toks[1].Kind != token.END {
				t.Fatalf("scanAll(%q) = %+v, want [%v END]", v.src, toks, v.kind)
			}
		})
	}
}

// TestScanOperatorDotIsNotDots exercises the case where a single '.' must
// not greedily consume a following, unrelated '.' pair belonging to a
// second token (only a run of exactly three dots forms DOTS).
func TestScanOperatorDotIsNotDots(t *testing.T) {
	toks := scanAll(t, "..", c11)
	wantKinds := []token.Kind{token.DOT, token.DOT, token.END}
	if len(toks) != len(wantKinds) {
		t.Fatalf("scanAll(\"..\") = %+v, want %v", toks, wantKinds)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}
