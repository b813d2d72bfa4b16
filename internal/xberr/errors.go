// Package xberr defines the two error scopes xb distinguishes: syntax
// errors (raised by the parser) and runtime errors (raised by the
// evaluator, Value methods, the Op façade, and Environment). This is
// component C1 of spec.md.
package xberr

import "fmt"

// Scope tags which collaborator raised an error.
type Scope string

const (
	Syntax  Scope = "syntax"
	Runtime Scope = "runtime"
)

// Error is the common xb error shape: a scope label plus a message. Its
// Error() rendering is normative — diagnostics tests match against the
// `error(<scope>): <message>` prefix and the message fragments documented
// in spec.md §7.
type Error struct {
	Scope   Scope
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("error(%s): %s", e.Scope, e.Message)
}

// Runtimef builds a runtime error from a format string, mirroring the
// message fragments spec.md §7 lists as normative.
func Runtimef(format string, args ...any) *Error {
	return &Error{Scope: Runtime, Message: fmt.Sprintf(format, args...)}
}

// Syntaxf builds a syntax error. The parser is an external collaborator per
// spec.md §1; this exists so the same driver can print both scopes
// uniformly.
func Syntaxf(format string, args ...any) *Error {
	return &Error{Scope: Syntax, Message: fmt.Sprintf(format, args...)}
}

// IsRuntime reports whether err is an xb runtime error.
func IsRuntime(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Scope == Runtime
}
