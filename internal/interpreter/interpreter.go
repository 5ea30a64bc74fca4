// Package interpreter tree-walks the AST produced by internal/parser,
// guided by the side-table built by internal/resolver, producing side
// effects (print output) and either finishing normally or surfacing a
// single RuntimeError.
package interpreter

import (
	"errors"
	"fmt"
	"io"

	"github.com/eddmann/santa-lox/internal/ast"
	"github.com/eddmann/santa-lox/internal/environment"
	"github.com/eddmann/santa-lox/internal/reporter"
	"github.com/eddmann/santa-lox/internal/token"
)

// Interpreter holds the globals environment, the environment currently in
// scope, and the resolver's side-table of (expression -> depth).
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	locals      map[ast.Expr]int
	reporter    *reporter.Reporter
	stdout      io.Writer
}

// New creates an Interpreter that writes `print` output to stdout and
// reports its single permitted runtime error to rep.
func New(stdout io.Writer, rep *reporter.Reporter) *Interpreter {
	globals := environment.New(nil)
	defineNatives(globals)
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		reporter:    rep,
		stdout:      stdout,
	}
}

// Resolve records the resolver's computed depth for expr. Only Variable,
// Assign, This, and Super nodes are ever passed here.
func (i *Interpreter) Resolve(expr ast.Expr, depth int) {
	i.locals[expr] = depth
}

// Interpret runs a full program (or REPL chunk). It executes statements
// in order, stopping — and reporting — at the first runtime error.
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			var rerr *RuntimeError
			if errors.As(err, &rerr) {
				i.reporter.RuntimeError(rerr.Tok.Line, rerr.Message)
				return
			}
			// A returnSignal escaping every function frame back to the
			// top level is an interpreter bug, not a user-facing error.
			panic(fmt.Sprintf("interpreter: unexpected control signal at top level: %v", err))
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.PrintStmt:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, stringify(v))
		return nil
	case *ast.VarStmt:
		var value any
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, environment.New(i.environment))
	case *ast.IfStmt:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil
	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.FunctionStmt:
		fn := newUserFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ReturnStmt:
		var value any
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}
	case *ast.ClassStmt:
		return i.executeClass(s)
	default:
		panic("interpreter: unhandled statement type")
	}
}

// executeBlock swaps in env for the duration of stmts, restoring the
// previous environment on every exit path — normal completion, a Return
// unwind, or a runtime error.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	methodEnv := i.environment
	if s.Superclass != nil {
		methodEnv = environment.New(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = newUserFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return i.environment.Assign(s.Name, class)
}

func (i *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return i.evalSuper(e)
	default:
		panic("interpreter: unhandled expression type")
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (any, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Bang:
		return !isTruthy(right), nil
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interpreter: unhandled unary operator")
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus, token.Slash, token.Star, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Slash:
			return ln / rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Greater:
			return ln > rn, nil
		case token.GreaterEqual:
			return ln >= rn, nil
		case token.Less:
			return ln < rn, nil
		case token.LessEqual:
			return ln <= rn, nil
		}
	case token.Plus:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.EqualEqual:
		return isEqual(left, right), nil
	case token.BangEqual:
		return !isEqual(left, right), nil
	}
	panic("interpreter: unhandled binary operator")
}

func (i *Interpreter) evalLogical(e *ast.Logical) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (any, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e]; ok {
		i.environment.AssignAt(depth, e.Name, value)
	} else if err := i.Globals.Assign(e.Name, value); err != nil {
		return nil, translateEnvError(err, e.Name)
	}
	return value, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (any, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (any, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	return inst.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.Set) (any, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (any, error) {
	depth := i.locals[e] // guaranteed present — resolver always resolves Super
	superclass := i.environment.GetAt(depth, "super").(*Class)
	object := i.environment.GetAt(depth-1, "this").(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(object), nil
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (any, error) {
	if depth, ok := i.locals[expr]; ok {
		return i.environment.GetAt(depth, name.Lexeme), nil
	}
	v, err := i.Globals.Get(name)
	if err != nil {
		return nil, translateEnvError(err, name)
	}
	return v, nil
}

// translateEnvError turns an environment.UndefinedVariableError into the
// RuntimeError shape the reporter expects.
func translateEnvError(err error, name token.Token) error {
	if _, ok := err.(*environment.UndefinedVariableError); ok {
		return newRuntimeError(name, err.Error())
	}
	return err
}
