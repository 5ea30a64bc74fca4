package interpreter

import "time"

// NativeFunction wraps a host-implemented builtin — §6.4.
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []any) (any, error)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, args []any) (any, error) {
	return n.fn(interp, args)
}

func (n *NativeFunction) String() string { return "<native fn " + n.name + ">" }

// defineNatives registers the built-in globals every Interpreter starts
// with.
func defineNatives(globals interface{ Define(string, any) }) {
	start := time.Now()
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []any) (any, error) {
			return time.Since(start).Seconds(), nil
		},
	})
	// str is an additive convenience (SPEC_FULL.md §6.4): the stringify
	// representation of any value, for building print messages without
	// relying on `+`'s string-coercion rules.
	globals.Define("str", &NativeFunction{
		name:  "str",
		arity: 1,
		fn: func(_ *Interpreter, args []any) (any, error) {
			return stringify(args[0]), nil
		},
	})
}
