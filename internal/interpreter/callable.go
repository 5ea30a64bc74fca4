package interpreter

// Callable is any value that can appear on the left of a Call expression:
// a native function, a user-defined function or method, or a class
// (invoking it constructs an instance).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []any) (any, error)
	String() string
}
