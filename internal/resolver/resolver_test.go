package resolver

import (
	"testing"

	"github.com/eddmann/santa-lox/internal/ast"
	"github.com/eddmann/santa-lox/internal/lexer"
	"github.com/eddmann/santa-lox/internal/parser"
	"github.com/eddmann/santa-lox/internal/reporter"
	"github.com/stretchr/testify/require"
)

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

type recordingInterp struct {
	depths map[ast.Expr]int
}

func newRecordingInterp() *recordingInterp {
	return &recordingInterp{depths: make(map[ast.Expr]int)}
}

func (r *recordingInterp) Resolve(expr ast.Expr, depth int) {
	r.depths[expr] = depth
}

func resolveSource(t *testing.T, src string) (*recordingInterp, *reporter.Reporter, []ast.Stmt) {
	t.Helper()
	tokens, errs := lexer.New(src).ScanTokens()
	require.Empty(t, errs)
	rep := reporter.New(&discard{})
	stmts := parser.New(tokens, rep).Parse()
	require.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).ResolveStmts(stmts)
	return interp, rep, stmts
}

func TestResolveLocalVariableDepth(t *testing.T) {
	interp, rep, stmts := resolveSource(t, `
		var a = "global";
		{
			var a = "block";
			print a;
		}
	`)
	require.False(t, rep.HadError())

	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := interp.depths[variable]
	require.True(t, ok)
	require.Equal(t, 0, depth)
}

func TestResolveGlobalReferenceIsUnresolved(t *testing.T) {
	interp, rep, stmts := resolveSource(t, `
		var a = "global";
		print a;
	`)
	require.False(t, rep.HadError())

	printStmt := stmts[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	_, ok := interp.depths[variable]
	require.False(t, ok, "global references are not recorded in the side-table")
}

func TestResolveRedeclarationInSameScopeErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	require.True(t, rep.HadError())
}

func TestResolveSelfReferentialInitializerErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	require.True(t, rep.HadError())
}

func TestResolveReturnOutsideFunctionErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `return 1;`)
	require.True(t, rep.HadError())
}

func TestResolveReturnValueFromInitializerErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	require.True(t, rep.HadError())
}

func TestResolveThisOutsideClassErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `print this;`)
	require.True(t, rep.HadError())
}

func TestResolveSuperWithoutSuperclassErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `
		class Foo {
			bar() { return super.bar(); }
		}
	`)
	require.True(t, rep.HadError())
}

func TestResolveClassInheritingFromItselfErrors(t *testing.T) {
	_, rep, _ := resolveSource(t, `class Foo < Foo {}`)
	require.True(t, rep.HadError())
}

func TestResolveValidSuperUsage(t *testing.T) {
	_, rep, _ := resolveSource(t, `
		class A { bar() { return 1; } }
		class B < A {
			bar() { return super.bar(); }
		}
	`)
	require.False(t, rep.HadError())
}
