package errcode

// Code is a stable error identifier for hardware-facing failures.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Non-blocking peripheral faults. These are fatal for the attempt that
	// observed them; retry or reset policy belongs to the caller.
	Overrun Code = "overrun"
	Framing Code = "framing"
	Noise   Code = "noise"
	Parity  Code = "parity"

	// Clock configuration rejected at freeze time. No register writes have
	// been performed when this is returned.
	Unsatisfiable Code = "unsatisfiable"

	// Ownership conflicts.
	PortTaken Code = "port_in_use"
	Busy      Code = "busy"

	Timeout Code = "timeout"

	Error Code = "error" // generic fallback
)

// E is an optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Err error
}

func (e *E) Error() string {
	if e.Op != "" {
		return e.Op + ": " + string(e.C)
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
