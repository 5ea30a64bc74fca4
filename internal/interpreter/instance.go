package interpreter

import "github.com/eddmann/santa-lox/internal/token"

// Instance is a class instance: its own field map plus a reference to the
// class that created it, used for method dispatch and inheritance walks.
type Instance struct {
	Class  *Class
	Fields map[string]any
}

// Get implements property lookup (§4.5): fields shadow methods, then the
// class and its ancestors are searched for a matching method, bound to
// this instance.
func (i *Instance) Get(name token.Token) (any, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.Class.findMethod(name.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, newRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Set assigns a field directly, creating it if absent.
func (i *Instance) Set(name token.Token, value any) {
	i.Fields[name.Lexeme] = value
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
