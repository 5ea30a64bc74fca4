// Package ast defines the expression and statement node types produced by
// the parser and consumed by the resolver and interpreter.
//
// Expressions and statements are deliberately disjoint families: a Block
// cannot appear where a value is required, and a Literal cannot appear
// where a Statement is required. Every node is handed around as a pointer
// so that its identity (used by the resolver's side-table) is the address
// of the allocation, never the contents.
package ast

import "github.com/eddmann/santa-lox/internal/token"

// Expr is implemented by every expression node.
type Expr interface{ exprNode() }

type Literal struct {
	Value any // nil, bool, float64, or string
}

type Unary struct {
	Operator token.Token
	Right    Expr
}

type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Grouping struct {
	Expression Expr
}

type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Variable struct {
	Name token.Token
}

type Assign struct {
	Name  token.Token
	Value Expr
}

type Call struct {
	Callee Expr
	Paren  token.Token // the closing ')' — used to locate arity errors
	Args   []Expr
}

type Get struct {
	Object Expr
	Name   token.Token
}

type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

type This struct {
	Keyword token.Token
}

type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
