// Package driver wires the lexer, parser, resolver, and interpreter into
// the two run modes the CLI exposes: a one-shot file run and a REPL.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/eddmann/santa-lox/internal/ast"
	"github.com/eddmann/santa-lox/internal/interpreter"
	"github.com/eddmann/santa-lox/internal/lexer"
	"github.com/eddmann/santa-lox/internal/parser"
	"github.com/eddmann/santa-lox/internal/reporter"
	"github.com/eddmann/santa-lox/internal/resolver"
	"github.com/eddmann/santa-lox/internal/telemetry"
	"github.com/sirupsen/logrus"
)

const (
	ExitOK         = 0
	ExitDataErr    = 65 // scan/parse/resolve error
	ExitRuntimeErr = 70
)

// RunFile reads path, runs the full pipeline once, and returns the exit
// code dictated by spec.md §6.2.
func RunFile(path string, stdout, stderr io.Writer) int {
	telemetry.SetOutput(stderr)

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitDataErr
	}

	rep := reporter.New(stderr)
	interp := interpreter.New(stdout, rep)

	stmts, ok := compile(string(src), rep, interp)
	if !ok {
		return ExitDataErr
	}

	telemetry.Phase("interpret", logrus.Fields{"statements": len(stmts)})
	interp.Interpret(stmts)
	if rep.HadRuntimeError() {
		return ExitRuntimeErr
	}
	return ExitOK
}

// RunPrompt runs an interactive REPL: one reporter.Reset per line, but a
// single Interpreter (and so a single global environment) across the
// whole session, so declarations accumulate line to line.
func RunPrompt(stdin io.Reader, stdout, stderr io.Writer) int {
	telemetry.SetOutput(stderr)

	rep := reporter.New(stderr)
	interp := interpreter.New(stdout, rep)
	scanner := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return ExitOK
		}
		line := scanner.Text()
		rep.Reset()

		stmts, ok := compile(line, rep, interp)
		if !ok {
			// The straightforward parse failed — commonly because a bare
			// trailing expression has no terminating ';'. Retry, silently,
			// as a single `expression EOF` and auto-print its value if
			// that succeeds; otherwise the original diagnostics already
			// reported above stand.
			if expr, isExpr := lastBareExpression(line); isExpr {
				rep.Reset()
				printed := []ast.Stmt{&ast.PrintStmt{Expression: expr}}
				resolver.New(interp, rep).ResolveStmts(printed)
				if !rep.HadError() {
					interp.Interpret(printed)
				}
			}
			continue
		}

		telemetry.Phase("interpret", logrus.Fields{"statements": len(stmts)})
		interp.Interpret(stmts)
	}
}

// compile runs scan -> parse -> resolve, reporting diagnostics as they're
// found. ok is false if any phase reported an error, in which case stmts
// should not be interpreted.
func compile(src string, rep *reporter.Reporter, interp *interpreter.Interpreter) (stmts []ast.Stmt, ok bool) {
	telemetry.Phase("scan", logrus.Fields{"bytes": len(src)})
	sc := lexer.New(src)
	tokens, scanErrs := sc.ScanTokens()
	for _, e := range scanErrs {
		rep.Report(e.Line, "", e.Message)
	}

	telemetry.Phase("parse", logrus.Fields{"tokens": len(tokens)})
	p := parser.New(tokens, rep)
	stmts = p.Parse()
	if rep.HadError() {
		return nil, false
	}

	telemetry.Phase("resolve", logrus.Fields{"statements": len(stmts)})
	r := resolver.New(interp, rep)
	r.ResolveStmts(stmts)
	if rep.HadError() {
		return nil, false
	}

	return stmts, true
}

// lastBareExpression re-parses line speculatively as a single
// `expression EOF`, for the REPL's auto-print convenience. It never
// reports to the real reporter — a throwaway reporter absorbs any
// errors — since this is only attempted after the straightforward
// statement parse already failed (typically on a missing ';').
func lastBareExpression(line string) (ast.Expr, bool) {
	scratch := reporter.New(io.Discard)
	sc := lexer.New(line)
	tokens, scanErrs := sc.ScanTokens()
	if len(scanErrs) > 0 {
		return nil, false
	}
	return parser.New(tokens, scratch).ParseExpression()
}

