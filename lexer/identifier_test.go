package lexer

import (
	"testing"

	"github.com/timgates42/lacc/cc"
	"github.com/timgates42/lacc/intern"
	"github.com/timgates42/lacc/token"
)

func scanOne(t *testing.T, src string) token.Token {
	t.Helper()
	lx := New([]byte(src), &intern.Table{}, cc.DiscardDiagnostics{})
	tok, err := lx.Next(c11)
	if err != nil {
		t.Fatalf("Next() error scanning %q: %v", src, err)
	}
	return tok
}

func TestScanIdentifierKeywords(t *testing.T) {
	vectors := []struct {
		src  string
		kind token.Kind
	}{
		{"auto", token.AUTO}, {"break", token.BREAK}, {"case", token.CASE},
		{"char", token.CHAR}, {"const", token.CONST}, {"continue", token.CONTINUE},
		{"default", token.DEFAULT}, {"do", token.DO}, {"double", token.DOUBLE},
		{"else", token.ELSE}, {"enum", token.ENUM}, {"extern", token.EXTERN},
		{"float", token.FLOAT}, {"for", token.FOR}, {"goto", token.GOTO},
		{"if", token.IF}, {"int", token.INT}, {"long", token.LONG},
		{"register", token.REGISTER}, {"return", token.RETURN},
		{"short", token.SHORT}, {"signed", token.SIGNED}, {"sizeof", token.SIZEOF},
		{"static", token.STATIC}, {"struct", token.STRUCT}, {"switch", token.SWITCH},
		{"typedef", token.TYPEDEF}, {"union", token.UNION}, {"unsigned", token.UNSIGNED},
		{"void", token.VOID}, {"volatile", token.VOLATILE}, {"while", token.WHILE},
	}
	for _, v := range vectors {
		t.Run(v.src, func(t *testing.T) {
			tok := scanOne(t, v.src)
			if tok.Kind != v.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, v.kind)
			}
		})
	}
}

// TestScanIdentifierKeywordPrefix exercises the backtrack-one-byte-on-
// mismatch path: each of these shares a keyword's prefix but is really a
// longer identifier (e.g. "double" is a prefix collision with "do").
func TestScanIdentifierKeywordPrefix(t *testing.T) {
	vectors := []string{
		"doubled", "ifdef", "intern", "constant", "forward", "continuex",
		"switcher", "registered", "structure", "unsigned_int", "whilex",
	}
	for _, src := range vectors {
		t.Run(src, func(t *testing.T) {
			tok := scanOne(t, src)
			if tok.Kind != token.IDENTIFIER {
				t.Errorf("Kind = %v, want IDENTIFIER", tok.Kind)
			}
			if got := tok.Str.String(); got != src {
				t.Errorf("spelling = %q, want %q", got, src)
			}
		})
	}
}

func TestScanIdentifierDoVsDouble(t *testing.T) {
	if got := scanOne(t, "do").Kind; got != token.DO {
		t.Errorf(`scanOne("do").Kind = %v, want DO`, got)
	}
	if got := scanOne(t, "double").Kind; got != token.DOUBLE {
		t.Errorf(`scanOne("double").Kind = %v, want DOUBLE`, got)
	}
	if got := scanOne(t, "doer").Kind; got != token.IDENTIFIER {
		t.Errorf(`scanOne("doer").Kind = %v, want IDENTIFIER`, got)
	}
}

func TestScanIdentifierUnderscoreAndDigits(t *testing.T) {
	vectors := []string{"_foo", "__bar__", "x1", "_1x2y3", "i", "intx"}
	for _, src := range vectors {
		t.Run(src, func(t *testing.T) {
			tok := scanOne(t, src)
			if tok.Kind != token.IDENTIFIER {
				t.Errorf("Kind = %v, want IDENTIFIER", tok.Kind)
			}
			if got := tok.Str.String(); got != src {
				t.Errorf("spelling = %q, want %q", got, src)
			}
		})
	}
}
