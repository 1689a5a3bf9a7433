// +build gofuzz

package lexer

import (
	"github.com/timgates42/lacc/cc"
	"github.com/timgates42/lacc/intern"
	"github.com/timgates42/lacc/lexer"
	"github.com/timgates42/lacc/token"
)

// Fuzz drives a Lexer to the end of data, treating any non-fatal error as a
// normal outcome (this is preprocessing-number/string/char scanning, which
// is defined over almost all byte sequences) and any panic other than a
// recovered *cc.FatalError as a bug.
func Fuzz(data []byte) (score int) {
	var err error
	defer cc.Recover(&err)

	lx := lexer.New(data, &intern.Table{}, cc.DiscardDiagnostics{})
	ctx := &cc.Context{Standard: cc.C11}

	nonFatal := false
	for {
		tok, terr := lx.Next(ctx)
		if terr != nil {
			nonFatal = true
		}
		if tok.Kind == token.END {
			break
		}
	}
	if err != nil || nonFatal {
		return 0
	}
	return 1
}
