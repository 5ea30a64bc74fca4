// Package token defines the token kinds shared by the scanner, parser,
// resolver, and interpreter.
package token

import "encoding/json"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var names = map[Kind]string{
	LeftParen:     "(",
	RightParen:    ")",
	LeftBrace:     "{",
	RightBrace:    "}",
	Comma:         ",",
	Dot:           ".",
	Minus:         "-",
	Plus:          "+",
	Semicolon:     ";",
	Slash:         "/",
	Star:          "*",
	Bang:          "!",
	BangEqual:     "!=",
	Equal:         "=",
	EqualEqual:    "==",
	Greater:       ">",
	GreaterEqual:  ">=",
	Less:          "<",
	LessEqual:     "<=",
	Identifier:    "IDENTIFIER",
	String:        "STRING",
	Number:        "NUMBER",
	And:           "and",
	Class:         "class",
	Else:          "else",
	False:         "false",
	Fun:           "fun",
	For:           "for",
	If:            "if",
	Nil:           "nil",
	Or:            "or",
	Print:         "print",
	Return:        "return",
	Super:         "super",
	This:          "this",
	True:          "true",
	Var:           "var",
	While:         "while",
	EOF:           "EOF",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// MarshalJSON renders a Kind as its name rather than its ordinal, so
// `-tokens` dumps are readable without this package's source open.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Keywords maps reserved identifiers to their keyword Kind.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a single lexeme produced by the scanner.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any // number (float64), string, or nil
	Line    int
}

func (t Token) String() string {
	return t.Kind.String() + " " + t.Lexeme
}
