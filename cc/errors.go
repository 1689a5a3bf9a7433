package cc

import "github.com/dsnet/golib/errs"

// Error is the wrapper type for errors specific to this package, following
// the same package-local string-error convention used throughout the
// teacher library (flate.Error, brotli.Error).
type Error string

func (e Error) Error() string { return "cc: " + string(e) }

// FatalError wraps an error that should terminate tokenization of the
// current translation unit. The lexer raises these by panicking; a driver
// loop recovers them with Recover, mirroring the original C source's
// error(...); exit(1); without actually terminating the process (distilled
// spec §7, DESIGN.md Open Question 6).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Fatal reports err to diag and panics with it wrapped in a *FatalError.
// The lexer's and numconv's fatal error kinds (ErrInvalidString,
// ErrInvalidNumericLiteral, ErrOutOfRange) are raised this way;
// cstring.New and cstring.FromCString panic with a plain ErrTooLong
// instead, which Recover does not capture.
func Fatal(diag Diagnostics, err error) {
	diag.Errorf("%s", err)
	errs.Panic(&FatalError{Err: err})
}

// Recover turns a panic raised by Fatal back into a plain error, exactly
// mirroring errs.Recover's contract (and the teacher's own hand-rolled
// errRecover in flate/common.go and brotli/error.go before it adopted
// golib/errs in xflate/meta). Call it deferred at the top of any loop that
// drives a Lexer.
func Recover(err *error) {
	errs.Recover(err)
}

// Assert panics with a *FatalError wrapping err if cond is false, following
// the same invariant-checking idiom golib/errs brings to xflate/meta's
// reader and writer (errs.Assert(cond, sentinelErr)).
func Assert(cond bool, err error) {
	errs.Assert(cond, &FatalError{Err: err})
}
