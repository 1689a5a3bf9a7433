package token

import "github.com/timgates42/lacc/cstring"

// BasicTokenTable is the fixed fixture the distilled spec describes in §3:
// a canonical Token for every keyword and punctuator. It is built once at
// package init, mirroring flate/prefix.go's initPrefixLUTs() pattern of
// constructing fixed lookup tables ahead of time rather than on every call.
type BasicTokenTable struct {
	byKind [256 + numExtraKinds]Token
	byByte [256]Token
}

// numExtraKinds is the number of Kind values >= otherKindBase that
// BasicTokenTable actually stores (keywords and compound punctuators; the
// category markers NUMBER/IDENTIFIER/STRING/PARAM/EMPTY_ARG/PREP_NUMBER are
// never looked up through the table, since the lexer constructs those
// tokens directly).
const numExtraKinds = int(TOKEN_PASTE-otherKindBase) + 1

func kindIndex(k Kind) (int, bool) {
	if k.IsSingleByte() {
		return int(k), true
	}
	i := int(k - otherKindBase)
	if i >= 0 && i < numExtraKinds {
		return 256 + i, true
	}
	return 0, false
}

func (t *BasicTokenTable) set(k Kind, spelling string) {
	tok := Token{Kind: k, Str: cstring.NewString(spelling)}
	if idx, ok := kindIndex(k); ok {
		t.byKind[idx] = tok
	}
	if k.IsSingleByte() {
		t.byByte[byte(k)] = tok
	}
}

// Basic is the package-level BasicTokenTable, built once at init.
var Basic = buildBasicTokenTable()

func buildBasicTokenTable() *BasicTokenTable {
	t := &BasicTokenTable{}

	t.set(END, "$")
	t.set(NEWLINE, "\n")

	keywords := []struct {
		kind     Kind
		spelling string
	}{
		{AUTO, "auto"}, {BREAK, "break"}, {CASE, "case"}, {CHAR, "char"},
		{CONST, "const"}, {CONTINUE, "continue"}, {DEFAULT, "default"},
		{DO, "do"}, {DOUBLE, "double"}, {ELSE, "else"}, {ENUM, "enum"},
		{EXTERN, "extern"}, {FLOAT, "float"}, {FOR, "for"}, {GOTO, "goto"},
		{IF, "if"}, {INT, "int"}, {LONG, "long"}, {REGISTER, "register"},
		{RETURN, "return"}, {SHORT, "short"}, {SIGNED, "signed"},
		{SIZEOF, "sizeof"}, {STATIC, "static"}, {STRUCT, "struct"},
		{SWITCH, "switch"}, {TYPEDEF, "typedef"}, {UNION, "union"},
		{UNSIGNED, "unsigned"}, {VOID, "void"}, {VOLATILE, "volatile"},
		{WHILE, "while"},
	}
	for _, kw := range keywords {
		t.set(kw.kind, kw.spelling)
	}

	singleByte := []Kind{
		NOT, HASH, MODULO, AND, OPEN_PAREN, CLOSE_PAREN, STAR, PLUS, COMMA,
		MINUS, DOT, SLASH, COLON, SEMICOLON, LT, ASSIGN, GT, QUESTION,
		OPEN_BRACKET, CLOSE_BRACKET, XOR, OPEN_CURLY, OR, CLOSE_CURLY, NEG,
	}
	for _, k := range singleByte {
		t.set(k, string(byte(k)))
	}

	compound := []struct {
		kind     Kind
		spelling string
	}{
		{DOTS, "..."}, {LOGICAL_OR, "||"}, {LOGICAL_AND, "&&"}, {LEQ, "<="},
		{GEQ, ">="}, {EQ, "=="}, {NEQ, "!="}, {ARROW, "->"},
		{INCREMENT, "++"}, {DECREMENT, "--"}, {LSHIFT, "<<"}, {RSHIFT, ">>"},
		{MUL_ASSIGN, "*="}, {DIV_ASSIGN, "/="}, {MOD_ASSIGN, "%="},
		{PLUS_ASSIGN, "+="}, {MINUS_ASSIGN, "-="}, {LSHIFT_ASSIGN, "<<="},
		{RSHIFT_ASSIGN, ">>="}, {AND_ASSIGN, "&="}, {XOR_ASSIGN, "^="},
		{OR_ASSIGN, "|="}, {TOKEN_PASTE, "##"},
	}
	for _, c := range compound {
		t.set(c.kind, c.spelling)
	}

	return t
}

// Lookup returns the canonical Token for k. It panics if k is a category
// marker (NUMBER, IDENTIFIER, STRING, PARAM, EMPTY_ARG, PREP_NUMBER) or any
// other Kind outside the byte range and the stored keyword/punctuator
// range, since those never have a single canonical spelling. A byte-valued
// Kind that is not a registered punctuator returns the zero Token.
func (t *BasicTokenTable) Lookup(k Kind) Token {
	idx, ok := kindIndex(k)
	if !ok {
		panic("token: Lookup of a Kind with no canonical spelling: " + k.String())
	}
	return t.byKind[idx]
}

// LookupByte returns the canonical Token for the single-character
// punctuator b, the distilled spec's "operator scanner falls back by a
// single table lookup" path. If b is not a recognized punctuator, the
// returned Token's Kind is the zero Kind (Kind(0)), which callers
// should treat as lexically invalid.
func (t *BasicTokenTable) LookupByte(b byte) Token {
	return t.byByte[b]
}
