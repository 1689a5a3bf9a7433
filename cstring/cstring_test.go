package cstring

import (
	"strings"
	"testing"
)

func TestSetLenRaw(t *testing.T) {
	vectors := []struct {
		desc string // Description of the test
		buf  string // Input content
	}{
		{desc: "empty", buf: ""},
		{desc: "one byte", buf: "x"},
		{desc: "exactly inline threshold", buf: strings.Repeat("a", MaxInlineLen)},
		{desc: "one past inline threshold", buf: strings.Repeat("b", MaxInlineLen+1)},
		{desc: "long heap string", buf: strings.Repeat("c", 1000)},
	}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			var s String
			if err := Set(&s, []byte(v.buf)); err != nil {
				t.Fatalf("Set: unexpected error: %v", err)
			}
			if got := s.Len(); got != len(v.buf) {
				t.Errorf("Len() = %d, want %d", got, len(v.buf))
			}
			if got := string(s.Raw()); got != v.buf {
				t.Errorf("Raw() = %q, want %q", got, v.buf)
			}
			if got, want := s.IsEmpty(), len(v.buf) == 0; got != want {
				t.Errorf("IsEmpty() = %v, want %v", got, want)
			}
		})
	}
}

func TestDiscriminantByte(t *testing.T) {
	vectors := []struct {
		n        int
		wantHeap bool
	}{
		{0, false},
		{MaxInlineLen, false},
		{MaxInlineLen + 1, true},
		{16, true},
		{1 << 20, true},
	}

	for _, v := range vectors {
		var s String
		if err := Set(&s, make([]byte, v.n)); err != nil {
			t.Fatalf("Set(%d): unexpected error: %v", v.n, err)
		}
		if got := s.isHeap(); got != v.wantHeap {
			t.Errorf("Set(%d): isHeap() = %v, want %v", v.n, got, v.wantHeap)
		}
		if v.wantHeap && heapLen(s.shadow) != v.n {
			t.Errorf("Set(%d): heapLen() = %d, want %d", v.n, heapLen(s.shadow), v.n)
		}
		if v.wantHeap && s.shadow[15] == 0 {
			t.Errorf("Set(%d): shadow[15] = 0, want non-zero for heap variant", v.n)
		}
		if !v.wantHeap && s.shadow[15] != 0 {
			t.Errorf("Set(%d): shadow[15] = %d, want 0 for inline variant", v.n, s.shadow[15])
		}
	}
}

func TestFromCString(t *testing.T) {
	vectors := []struct {
		input []byte
		want  string
	}{
		{input: []byte("hello\x00"), want: "hello"},
		{input: []byte("hello\x00world"), want: "hello"},
		{input: []byte("\x00"), want: ""},
	}
	for _, v := range vectors {
		got := FromCString(v.input)
		if got.String() != v.want {
			t.Errorf("FromCString(%q) = %q, want %q", v.input, got.String(), v.want)
		}
	}
}

func TestEqual(t *testing.T) {
	vectors := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"abc", "abcd", false},
		{strings.Repeat("x", 100), strings.Repeat("x", 100), true},
		{strings.Repeat("x", 100), strings.Repeat("x", 99) + "y", false},
		{"short", strings.Repeat("y", 100), false},
	}
	for _, v := range vectors {
		a, b := NewString(v.a), NewString(v.b)
		if got := a.Equal(b); got != v.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", v.a, v.b, got, v.want)
		}
	}
}

func TestContains(t *testing.T) {
	vectors := []struct {
		s    string
		c    byte
		want bool
	}{
		{"hello", 'e', true},
		{"hello", 'z', false},
		{strings.Repeat("a", 100) + "!", '!', true},
		{strings.Repeat("a", 100), '!', false},
		{"", 'a', false},
	}
	for _, v := range vectors {
		if got := NewString(v.s).Contains(v.c); got != v.want {
			t.Errorf("Contains(%q, %q) = %v, want %v", v.s, v.c, got, v.want)
		}
	}
}
