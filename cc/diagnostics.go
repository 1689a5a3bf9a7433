package cc

import (
	"log"
	"os"
)

// Diagnostics is the narrow interface the lexer reports errors through,
// matching the distilled spec's §6 "Diagnostic sink" collaborator (a single
// error(fmt, ...) operation in the original C source).
type Diagnostics interface {
	Errorf(format string, args ...interface{})
}

// StderrDiagnostics is the default Diagnostics implementation: it writes to
// os.Stderr with no extra prefix or timestamp, matching the original's
// unadorned error() call.
type StderrDiagnostics struct {
	logger *log.Logger
}

// NewStderrDiagnostics returns a StderrDiagnostics writing to os.Stderr.
func NewStderrDiagnostics() *StderrDiagnostics {
	return &StderrDiagnostics{logger: log.New(os.Stderr, "", 0)}
}

// Errorf implements Diagnostics.
func (d *StderrDiagnostics) Errorf(format string, args ...interface{}) {
	d.logger.Printf(format, args...)
}

// DiscardDiagnostics implements Diagnostics by discarding every message; it
// is convenient for tests that only care about the returned token/error,
// not the diagnostic text.
type DiscardDiagnostics struct{}

// Errorf implements Diagnostics.
func (DiscardDiagnostics) Errorf(format string, args ...interface{}) {}
