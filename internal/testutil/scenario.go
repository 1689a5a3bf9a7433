package testutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/timgates42/lacc/token"
)

// Step is one expected token in a Scenario-decoded stream: a Kind, and
// optionally the payload spelling a NUMBER/IDENTIFIER/STRING/PREP_NUMBER
// token is expected to carry.
type Step struct {
	Kind       token.Kind
	Spelling   string
	HasPayload bool
}

var reQuant = regexp.MustCompile(`[*][0-9]+$`)

// DecodeScenario decodes a Scenario formatted string into the sequence of
// tokens a Lexer is expected to produce.
//
// The format allows expected token streams to be scripted tersely for
// table-driven lexer tests: a series of tokens separated by whitespace of
// any kind, with '#' starting a line comment that runs to end of line.
//
// Each token is either a bare Kind name (its Go identifier in package
// token, e.g. SEMICOLON, END) or a Kind name followed by a colon and the
// spelling the payload is expected to carry, e.g. IDENTIFIER:foo,
// NUMBER:42. A token may be followed by a "*N" quantifier, repeating it N
// times in the decoded stream — useful for runs of whitespace-insensitive
// punctuation.
//
// Example Scenario string, for the first worked scenario in the
// specification's testable-properties section ("int x = 42;"): the lexer
// itself only classifies a numeric spelling as PREP_NUMBER, leaving the
// NUMBER/typed-Number distinction to numconv.Convert downstream.
//
//	INT IDENTIFIER:x ASSIGN PREP_NUMBER:42 SEMICOLON END
func DecodeScenario(s string) ([]Step, error) {
	var toks []string
	for _, line := range strings.Split(s, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		toks = append(toks, strings.Fields(line)...)
	}

	var steps []Step
	for _, t := range toks {
		rep := 1
		if reQuant.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		name, spelling, hasPayload := t, "", false
		if i := strings.IndexByte(t, ':'); i >= 0 {
			name, spelling, hasPayload = t[:i], t[i+1:], true
		}

		k, ok := token.ParseKindName(name)
		if !ok {
			return nil, errors.New("testutil: unknown token kind: " + name)
		}

		for i := 0; i < rep; i++ {
			steps = append(steps, Step{Kind: k, Spelling: spelling, HasPayload: hasPayload})
		}
	}
	return steps, nil
}
