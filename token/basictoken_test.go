package token

import "testing"

func TestLookupKeywordsAndPunctuators(t *testing.T) {
	vectors := []struct {
		k    Kind
		want string
	}{
		{WHILE, "while"},
		{SIZEOF, "sizeof"},
		{DOTS, "..."},
		{LOGICAL_AND, "&&"},
		{TOKEN_PASTE, "##"},
		{END, "$"},
		{NEWLINE, "\n"},
	}
	for _, v := range vectors {
		got := Basic.Lookup(v.k)
		if got.Kind != v.k {
			t.Errorf("Lookup(%v).Kind = %v, want %v", v.k, got.Kind, v.k)
		}
		if s := got.Str.String(); s != v.want {
			t.Errorf("Lookup(%v).Str = %q, want %q", v.k, s, v.want)
		}
	}
}

func TestLookupPanicsOnCategoryMarker(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Lookup(NUMBER) did not panic")
		}
	}()
	Basic.Lookup(NUMBER)
}

func TestLookupByte(t *testing.T) {
	got := Basic.LookupByte('+')
	if got.Kind != PLUS {
		t.Errorf("LookupByte('+').Kind = %v, want PLUS", got.Kind)
	}
	if s := got.Str.String(); s != "+" {
		t.Errorf("LookupByte('+').Str = %q, want %q", s, "+")
	}

	unknown := Basic.LookupByte('@')
	if unknown.Kind != Kind(0) {
		t.Errorf("LookupByte('@').Kind = %v, want zero Kind", unknown.Kind)
	}
}
