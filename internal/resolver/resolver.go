// Package resolver implements the static pre-pass described in spec.md
// §4.3: for every local variable/assignment/this/super reference, it
// computes the number of enclosing scopes between the reference and its
// binding, and reports compile-time errors for invalid return, invalid
// this/super, self-referential initializers, and local redeclarations.
package resolver

import (
	"github.com/eddmann/santa-lox/internal/ast"
	"github.com/eddmann/santa-lox/internal/reporter"
	"github.com/eddmann/santa-lox/internal/token"
)

// Interpreter is the callback surface the resolver drives — satisfied by
// *interpreter.Interpreter. Keeping it as a small interface here (rather
// than importing the interpreter package) avoids a resolver<->interpreter
// import cycle.
type Interpreter interface {
	Resolve(expr ast.Expr, depth int)
}

type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftMethod
	ftInitializer
)

type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

// Resolver walks the AST once, before evaluation, recording scope depths
// into the attached Interpreter's side-table.
type Resolver struct {
	interp   Interpreter
	reporter *reporter.Reporter

	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that calls back into interp and reports errors
// to rep.
func New(interp Interpreter, rep *reporter.Reporter) *Resolver {
	return &Resolver{interp: interp, reporter: rep}
}

// ResolveStmts resolves a full program (or REPL chunk).
func (r *Resolver) ResolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.Report(name.Line, " at '"+name.Lexeme+"'", "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
	// Not found in any local scope: treated as global, no side-table entry.
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.ResolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.ResolveStmts(s.Statements)
		r.endScope()
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, ftFunction)
	case *ast.ClassStmt:
		r.resolveClass(s)
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.ReturnStmt:
		if r.currentFunction == ftNone {
			r.reporter.Report(s.Keyword.Line, " at 'return'", "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == ftInitializer {
				r.reporter.Report(s.Keyword.Line, " at 'return'", "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ctClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.Report(s.Superclass.Name.Line, " at '"+s.Superclass.Name.Lexeme+"'", "A class can't inherit from itself.")
		}
		r.currentClass = ctSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declType := ftMethod
		if method.Name.Lexeme == "init" {
			declType = ftInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.Report(e.Name.Line, " at '"+e.Name.Lexeme+"'", "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// no references to resolve
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.This:
		if r.currentClass == ctNone {
			r.reporter.Report(e.Keyword.Line, " at 'this'", "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Super:
		switch r.currentClass {
		case ctNone:
			r.reporter.Report(e.Keyword.Line, " at 'super'", "Can't use 'super' outside of a class.")
		case ctClass:
			r.reporter.Report(e.Keyword.Line, " at 'super'", "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic("resolver: unhandled expression type")
	}
}
