// Command interp is the santa-lox CLI: run a script file, drop into a
// REPL, or dump the scanner/parser's intermediate output for grading
// fixtures. It owns os.Args parsing and the two debug dumps; running a
// script or the REPL is left to internal/driver.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/eddmann/santa-lox/internal/driver"
	"github.com/eddmann/santa-lox/internal/lexer"
	"github.com/eddmann/santa-lox/internal/parser"
	"github.com/eddmann/santa-lox/internal/reporter"
	"github.com/eddmann/santa-lox/internal/telemetry"
)

func main() {
	trace := flag.Bool("trace", os.Getenv("SANTA_LOX_TRACE") != "", "emit phase-boundary tracing to stderr")
	tokensMode := flag.Bool("tokens", false, "dump scanned tokens as JSON instead of running")
	astMode := flag.Bool("ast", false, "dump the parsed statement list as JSON instead of running")
	flag.Parse()

	if *trace {
		telemetry.EnableTrace()
	}

	args := flag.Args()

	switch {
	case *tokensMode:
		requireOneArg(args)
		os.Exit(dumpTokens(args[0]))
	case *astMode:
		requireOneArg(args)
		os.Exit(dumpAST(args[0]))
	case len(args) == 0:
		os.Exit(driver.RunPrompt(os.Stdin, os.Stdout, os.Stderr))
	case len(args) == 1:
		os.Exit(driver.RunFile(args[0], os.Stdout, os.Stderr))
	default:
		fmt.Fprintln(os.Stderr, "Usage: interp [-trace] [script]")
		os.Exit(64)
	}
}

func requireOneArg(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: interp -tokens|-ast <file>")
		os.Exit(64)
	}
}

func dumpTokens(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 66
	}
	tokens, errs := lexer.New(string(src)).ScanTokens()
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tokens); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 70
	}
	return 0
}

func dumpAST(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 66
	}
	tokens, _ := lexer.New(string(src)).ScanTokens()
	rep := reporter.New(os.Stderr)
	stmts := parser.New(tokens, rep).Parse()
	if rep.HadError() {
		return 65
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 70
	}
	return 0
}
