package rmakefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/adapters/rmakefile"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

const sample = `CC = gcc
OUT=total

total: 1.o 2.o
	$(CC) 1.o 2.o -o $(OUT)

1.o: 1.c 1.h
	$(CC) -c 1.c
2.o: 2.c
	@$(CC) -c 2.c

clean:
	rm -f *.o $(OUT)
total: extra.h
`

func TestParse(t *testing.T) {
	env := domain.NewEnvironment(nil, nil)

	bf, err := rmakefile.Parse("RMakefile", strings.NewReader(sample), env)
	require.NoError(t, err)

	assert.Equal(t, "RMakefile", bf.Path)
	assert.Equal(t, "total", bf.FirstTarget)
	assert.Equal(t, []string{"total", "1.o", "2.o", "clean"}, bf.Order)

	assert.Equal(t, []string{"1.o", "2.o", "extra.h"}, bf.Dependencies["total"])
	assert.Equal(t, []string{"1.c", "1.h"}, bf.Dependencies["1.o"])
	assert.Empty(t, bf.Dependencies["clean"])

	assert.Equal(t, []string{"$(CC) 1.o 2.o -o $(OUT)"}, bf.Commands["total"])
	assert.Equal(t, []string{"@$(CC) -c 2.c"}, bf.Commands["2.o"])
	assert.Equal(t, []string{"rm -f *.o $(OUT)"}, bf.Commands["clean"])

	assert.Equal(t, "gcc", env.Fetch("CC", ""))
	assert.Equal(t, "total", env.Fetch("OUT", ""))
}

func TestParse_LaterAssignmentWins(t *testing.T) {
	env := domain.NewEnvironment(nil, nil)

	_, err := rmakefile.Parse("RMakefile", strings.NewReader("X = 1\nX = 2\nall:\n"), env)
	require.NoError(t, err)
	assert.Equal(t, "2", env.Fetch("X", ""))
}

func TestParse_AssignmentWritesThroughToParent(t *testing.T) {
	root := domain.NewEnvironment(map[string]string{"CC": "cc"}, nil)
	child := domain.NewEnvironment(nil, root)

	_, err := rmakefile.Parse("RMakefile", strings.NewReader("CC = clang\nLOCAL = yes\n"), child)
	require.NoError(t, err)

	assert.Equal(t, "clang", root.Fetch("CC", ""))
	assert.False(t, root.Has("LOCAL"))
	assert.Equal(t, []string{"LOCAL"}, child.Keys())
}

func TestParse_ValueWithEquals(t *testing.T) {
	env := domain.NewEnvironment(nil, nil)

	_, err := rmakefile.Parse("RMakefile", strings.NewReader("FLAGS = -DX=1\n"), env)
	require.NoError(t, err)
	assert.Equal(t, "-DX=1", env.Fetch("FLAGS", ""))
}

func TestParse_Empty(t *testing.T) {
	bf, err := rmakefile.Parse("RMakefile", strings.NewReader("\n# nothing here\n"), domain.NewEnvironment(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, bf.FirstTarget)
	assert.Empty(t, bf.Order)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{
			name:  "command before target",
			input: "CC = gcc\n\techo hi\n",
			want:  domain.ErrCommandBeforeTarget,
			line:  2,
		},
		{
			name:  "assignment without name",
			input: "all:\n = value\n",
			want:  domain.ErrInvalidAssignment,
			line:  2,
		},
		{
			name:  "rule without name",
			input: "\n\n: dep\n",
			want:  domain.ErrInvalidRule,
			line:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rmakefile.Parse("RMakefile", strings.NewReader(tt.input), domain.NewEnvironment(nil, nil))
			require.ErrorIs(t, err, tt.want)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.line, zErr.Metadata()["line"])
		})
	}
}
