package transpiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scanAll(src string) []Token {
	sc := NewScanner()
	sc.Feed([]byte(src))
	var out []Token
	for {
		tok, ok := sc.TryNext()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestScanner_TryNext(t *testing.T) {
	t.Run("declaration", func(t *testing.T) {
		got := scanAll("int x = 10;")
		require.Equal(t, []Token{
			{Kind: TokenWord, Text: "int", Line: 1},
			{Kind: TokenWord, Text: "x", Line: 1},
			{Kind: TokenPunct, Text: "=", Line: 1},
			{Kind: TokenNumber, Text: "10", Line: 1},
			{Kind: TokenPunct, Text: ";", Line: 1},
		}, got)
	})

	t.Run("string escape", func(t *testing.T) {
		got := scanAll(`printf("a\"b");`)
		require.Equal(t, []Token{
			{Kind: TokenWord, Text: "printf", Line: 1},
			{Kind: TokenPunct, Text: "(", Line: 1},
			{Kind: TokenString, Text: `"a\"b"`, Line: 1},
			{Kind: TokenPunct, Text: ")", Line: 1},
			{Kind: TokenPunct, Text: ";", Line: 1},
		}, got)
	})

	t.Run("char literal", func(t *testing.T) {
		got := scanAll(`'x'`)
		require.Equal(t, []Token{
			{Kind: TokenChar, Text: "'x'", Line: 1},
		}, got)
	})

	t.Run("comments skipped", func(t *testing.T) {
		got := scanAll("a // c\nb /* d */ e\n")
		require.Equal(t, []Token{
			{Kind: TokenWord, Text: "a", Line: 1},
			{Kind: TokenWord, Text: "b", Line: 2},
			{Kind: TokenWord, Text: "e", Line: 2},
		}, got)
	})

	t.Run("block comment counts lines", func(t *testing.T) {
		got := scanAll("/* x\ny */ z")
		require.Equal(t, []Token{
			{Kind: TokenWord, Text: "z", Line: 2},
		}, got)
	})

	t.Run("division is not a comment", func(t *testing.T) {
		got := scanAll("a / b")
		require.Equal(t, []Token{
			{Kind: TokenWord, Text: "a", Line: 1},
			{Kind: TokenPunct, Text: "/", Line: 1},
			{Kind: TokenWord, Text: "b", Line: 1},
		}, got)
	})

	t.Run("number bodies", func(t *testing.T) {
		got := scanAll("0xFF 1.5f 10L")
		require.Equal(t, []Token{
			{Kind: TokenNumber, Text: "0xFF", Line: 1},
			{Kind: TokenNumber, Text: "1.5f", Line: 1},
			{Kind: TokenNumber, Text: "10L", Line: 1},
		}, got)
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, scanAll(""))
		require.Empty(t, scanAll("  \n\t\n"))
	})

	t.Run("incremental feed", func(t *testing.T) {
		sc := NewScanner()
		sc.Feed([]byte("int "))
		sc.Feed([]byte("x;"))
		var out []Token
		for {
			tok, ok := sc.TryNext()
			if !ok {
				break
			}
			out = append(out, tok)
		}
		require.Equal(t, []Token{
			{Kind: TokenWord, Text: "int", Line: 1},
			{Kind: TokenWord, Text: "x", Line: 1},
			{Kind: TokenPunct, Text: ";", Line: 1},
		}, out)
	})
}
