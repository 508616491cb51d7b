package fixed

import "fmt"

// ErrOverflow, ErrDivideByZero and ErrBadValue are the three sentinel
// error kinds every failing operation surfaces. Errors returned by this
// package always wrap one of these three, so callers can branch with
// errors.Is(err, fixed.ErrOverflow) regardless of which operation
// produced it.
var (
	ErrOverflow     = sentinel("overflow")
	ErrDivideByZero = sentinel("divide by zero")
	ErrBadValue     = sentinel("bad value")
)

type sentinelError string

func sentinel(s string) error { return sentinelError(s) }

func (e sentinelError) Error() string { return string(e) }

// numberError adds operation context to one of the three sentinel
// kinds while staying transparent to errors.Is/errors.As, the pattern
// this corpus uses for its own wrapped errors rather than bare fmt.Errorf.
type numberError struct {
	op   string
	kind error
	msg  string
}

func (e *numberError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("fixed: %s: %s", e.op, e.kind)
	}
	return fmt.Sprintf("fixed: %s: %s: %s", e.op, e.kind, e.msg)
}

func (e *numberError) Unwrap() error { return e.kind }

func overflowf(op, format string, args ...interface{}) error {
	return &numberError{op: op, kind: ErrOverflow, msg: fmt.Sprintf(format, args...)}
}

func divideByZerof(op string) error {
	return &numberError{op: op, kind: ErrDivideByZero}
}

func badValuef(op, format string, args ...interface{}) error {
	return &numberError{op: op, kind: ErrBadValue, msg: fmt.Sprintf(format, args...)}
}
