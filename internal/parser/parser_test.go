package parser

import (
	"testing"

	"github.com/eddmann/santa-lox/internal/ast"
	"github.com/eddmann/santa-lox/internal/lexer"
	"github.com/eddmann/santa-lox/internal/reporter"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, errs := lexer.New(src).ScanTokens()
	require.Empty(t, errs)
	rep := reporter.New(&discard{})
	stmts := New(tokens, rep).Parse()
	require.False(t, rep.HadError(), "unexpected parse errors")
	return stmts
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, `var a = 1;`)
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "a", v.Name.Lexeme)
	lit, ok := v.Initializer.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, 1.0, lit.Value)
}

func TestParseBinaryPrecedence(t *testing.T) {
	stmts := parse(t, `1 + 2 * 3;`)
	expr := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.Binary)
	// top-level operator should be '+', with '*' nested on the right
	require.Equal(t, "+", expr.Operator.Lexeme)
	_, rightIsMul := expr.Right.(*ast.Binary)
	require.True(t, rightIsMul)
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts := parse(t, `a = 2;`)
	_, ok := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.Assign)
	require.True(t, ok)
}

func TestParseInvalidAssignmentTargetReportsNonFatalError(t *testing.T) {
	tokens, _ := lexer.New(`1 = 2;`).ScanTokens()
	rep := reporter.New(&discard{})
	New(tokens, rep).Parse()
	require.True(t, rep.HadError())
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*ast.VarStmt)
	require.True(t, isVar)
	whileStmt, isWhile := block.Statements[1].(*ast.WhileStmt)
	require.True(t, isWhile)
	bodyBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, bodyBlock.Statements, 2) // original body + increment
}

func TestParseForWithNoClausesUsesTrueCondition(t *testing.T) {
	tokens, _ := lexer.New(`for (;;) print 1;`).ScanTokens()
	rep := reporter.New(&discard{})
	stmts := New(tokens, rep).Parse()
	require.False(t, rep.HadError())
	whileStmt := stmts[0].(*ast.WhileStmt)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, true, lit.Value)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := parse(t, `class Cake < Pastry { bake() { return 1; } }`)
	class := stmts[0].(*ast.ClassStmt)
	require.Equal(t, "Cake", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	require.Equal(t, "Pastry", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	require.Equal(t, "bake", class.Methods[0].Name.Lexeme)
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parse(t, `fun add(a, b) { return a + b; }`)
	fn := stmts[0].(*ast.FunctionStmt)
	require.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseExpressionForReplAutoPrint(t *testing.T) {
	tokens, errs := lexer.New(`1 + 2`).ScanTokens()
	require.Empty(t, errs)
	expr, ok := New(tokens, reporter.New(&discard{})).ParseExpression()
	require.True(t, ok)
	_, isBinary := expr.(*ast.Binary)
	require.True(t, isBinary)
}

func TestParseExpressionRejectsTrailingTokens(t *testing.T) {
	tokens, _ := lexer.New(`1 + 2;`).ScanTokens()
	_, ok := New(tokens, reporter.New(&discard{})).ParseExpression()
	require.False(t, ok)
}

func TestSynchronizeRecoversAfterError(t *testing.T) {
	tokens, _ := lexer.New("var ;\nvar b = 1;").ScanTokens()
	rep := reporter.New(&discard{})
	stmts := New(tokens, rep).Parse()
	require.True(t, rep.HadError())
	// the malformed declaration is skipped but the next one still parses
	require.Len(t, stmts, 1)
	require.Equal(t, "b", stmts[0].(*ast.VarStmt).Name.Lexeme)
}
