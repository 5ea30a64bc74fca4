package interpreter

import (
	"errors"

	"github.com/eddmann/santa-lox/internal/ast"
	"github.com/eddmann/santa-lox/internal/environment"
)

// UserFunction is a closure: a function declaration paired with the
// environment that was active where it was declared. Methods are
// UserFunctions whose closure additionally binds `this` (and, for
// subclass methods, `super`) — see Bind.
type UserFunction struct {
	declaration   *ast.FunctionStmt
	closure       *environment.Environment
	isInitializer bool
}

func newUserFunction(declaration *ast.FunctionStmt, closure *environment.Environment, isInitializer bool) *UserFunction {
	return &UserFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *UserFunction) Arity() int { return len(f.declaration.Params) }

func (f *UserFunction) Call(interp *Interpreter, args []any) (any, error) {
	env := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			if f.isInitializer {
				return f.closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind produces a new UserFunction closing over an environment that maps
// `this` to instance, enclosing the method's original closure.
func (f *UserFunction) Bind(instance *Instance) *UserFunction {
	env := environment.New(f.closure)
	env.Define("this", instance)
	return &UserFunction{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *UserFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
