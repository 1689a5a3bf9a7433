// Package intern provides the default "register bytes, get a cheaply
// comparable handle back" table the lexer uses for identifiers, string
// literals, and preprocessing-number spellings that don't fit inline.
//
// This is an external collaborator per the distilled spec (§1, §6): the
// lexer only depends on the Interner interface, so an embedding compiler
// can supply a different table (e.g. one that persists across translation
// units, or one backed by a symbol table it already maintains).
package intern

import (
	"sync"

	"github.com/timgates42/lacc/cstring"
)

// Interner is the narrow collaborator the lexer needs: register a byte
// sequence once, get back a cstring.String that compares cheaply and
// shares storage with every other registration of the same content.
type Interner interface {
	Register(b []byte) cstring.String
}

// Table is the default, concrete Interner: a mutex-guarded map from
// content to a retained backing array. Content that fits inline is
// returned as an inline cstring.String with no map interaction at all,
// matching the distilled spec's lifecycle note that "CompactStrings are
// created by the intern table (heap variant) or constructed inline by the
// tokenizer... when they fit."
//
// The zero value is ready to use.
type Table struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// Register returns a cstring.String for b, reusing previously retained
// storage for identical content. The returned string's heap-variant
// lifetime equals the Table's lifetime.
func (t *Table) Register(b []byte) cstring.String {
	if len(b) <= cstring.MaxInlineLen {
		return cstring.New(b)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entries == nil {
		t.entries = make(map[string][]byte)
	}

	key := string(b) // allocates once; used only as the map key
	if stored, ok := t.entries[key]; ok {
		return cstring.New(stored)
	}

	stored := make([]byte, len(b))
	copy(stored, b)
	t.entries[key] = stored
	return cstring.New(stored)
}

// Len reports the number of distinct long strings currently retained. It
// is intended for tests and diagnostics, not the hot path.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
