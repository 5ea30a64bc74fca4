package interpreter

import "github.com/eddmann/santa-lox/internal/token"

// RuntimeError is the one kind of error the interpreter can raise while
// evaluating a program. It carries the token whose line should be
// reported (spec.md §6.3: "<message>\n[line N]").
type RuntimeError struct {
	Tok     token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: message}
}

// returnSignal is the internal, non-error control-flow signal produced by
// a `return` statement. It rides the same (Value, error) plumbing as a
// genuine RuntimeError so it needs no separate threading mechanism, but
// callers must type-assert for it explicitly (errors.As) rather than
// treating every non-nil error alike — a return is not a failure.
type returnSignal struct {
	Value any
}

func (r *returnSignal) Error() string { return "return" }
