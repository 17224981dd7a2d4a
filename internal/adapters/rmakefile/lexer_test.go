package rmakefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/adapters/rmakefile"
)

func TestLexer_Next(t *testing.T) {
	input := "CC = gcc\n" +
		"\n" +
		"# objects\n" +
		"total: 1.o 2.o   \n" +
		"\t$(CC) 1.o 2.o -o total\r\n" +
		"\t  \n" +
		"clean:\n" +
		"\tFLAGS=-x rm -f *.o\n"

	lexer := rmakefile.NewLexer(strings.NewReader(input))

	var got []rmakefile.Token
	for {
		tok, err := lexer.Next()
		require.NoError(t, err)
		got = append(got, tok)
		if tok.Type == rmakefile.TokenEOF {
			break
		}
	}

	assert.Equal(t, []rmakefile.Token{
		{Type: rmakefile.TokenAssignment, Data: "CC = gcc", Line: 1},
		{Type: rmakefile.TokenRule, Data: "total: 1.o 2.o", Line: 4},
		{Type: rmakefile.TokenCommand, Data: "$(CC) 1.o 2.o -o total", Line: 5},
		{Type: rmakefile.TokenRule, Data: "clean:", Line: 7},
		{Type: rmakefile.TokenCommand, Data: "FLAGS=-x rm -f *.o", Line: 8},
		{Type: rmakefile.TokenEOF, Line: 8},
	}, got)
}

func TestLexer_Next_Empty(t *testing.T) {
	tok, err := rmakefile.NewLexer(strings.NewReader("")).Next()
	require.NoError(t, err)
	assert.Equal(t, rmakefile.TokenEOF, tok.Type)
}

func TestLexer_Next_LongCommand(t *testing.T) {
	command := "echo " + strings.Repeat("x", 100_000)
	lexer := rmakefile.NewLexer(strings.NewReader("app:\n\t" + command + "\nclean:\n"))

	tok, err := lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, rmakefile.TokenRule, tok.Type)

	tok, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, rmakefile.Token{Type: rmakefile.TokenCommand, Data: command, Line: 2}, tok)

	tok, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, rmakefile.Token{Type: rmakefile.TokenRule, Data: "clean:", Line: 3}, tok)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "eof", rmakefile.TokenEOF.String())
	assert.Equal(t, "rule", rmakefile.TokenRule.String())
	assert.Equal(t, "command", rmakefile.TokenCommand.String())
	assert.Equal(t, "assignment", rmakefile.TokenAssignment.String())
	assert.Equal(t, "unknown", rmakefile.TokenType(99).String())
}
