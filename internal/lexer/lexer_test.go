package lexer

import (
	"testing"

	"github.com/eddmann/santa-lox/internal/token"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, errs := New("(){},.-+;*!!====<=<>=>/").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.Bang, token.BangEqual, token.EqualEqual, token.Equal, token.LessEqual, token.Less,
		token.GreaterEqual, token.Greater, token.Slash, token.EOF,
	}, kinds(tokens))
}

func TestScanIgnoresLineComment(t *testing.T) {
	tokens, errs := New("1 + 2 // three\n").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.EOF}, kinds(tokens))
}

func TestScanString(t *testing.T) {
	tokens, errs := New(`"hello world"`).ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, token.String, tokens[0].Kind)
	require.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	_, errs := New(`"never closed`).ScanTokens()
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "Unterminated string")
}

func TestScanNumberLiteral(t *testing.T) {
	tokens, errs := New("123.45").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, 123.45, tokens[0].Literal)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, errs := New("class fun orchid").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.Class, token.Fun, token.Identifier, token.EOF}, kinds(tokens))
}

func TestScanLineNumbersTrackNewlines(t *testing.T) {
	tokens, _ := New("var a = 1;\nvar b = 2;").ScanTokens()
	require.Equal(t, 1, tokens[0].Line)
	// "var b" starts on line 2
	var found bool
	for _, tk := range tokens {
		if tk.Kind == token.Identifier && tk.Lexeme == "b" {
			require.Equal(t, 2, tk.Line)
			found = true
		}
	}
	require.True(t, found)
}

func TestScanUnexpectedCharacterReportsErrorButContinues(t *testing.T) {
	tokens, errs := New("@ 1").ScanTokens()
	require.Len(t, errs, 1)
	require.Equal(t, []token.Kind{token.Number, token.EOF}, kinds(tokens))
}

func TestScanErrorCarriesLineSeparatelyFromMessage(t *testing.T) {
	_, errs := New("\n\n@").ScanTokens()
	require.Len(t, errs, 1)
	require.Equal(t, 3, errs[0].Line)
	require.Equal(t, `Unexpected character: "@"`, errs[0].Message)
}
