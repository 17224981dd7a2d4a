package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestEnvironment_Get(t *testing.T) {
	env := domain.NewEnvironment(map[string]string{"foo": "bar"}, nil)

	v, ok := env.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", v)

	_, ok = env.Get("baz")
	assert.False(t, ok)
	assert.True(t, env.Has("foo"))
	assert.False(t, env.Has("baz"))
}

func TestEnvironment_Fetch(t *testing.T) {
	env := domain.NewEnvironment(map[string]string{"foo": "bar", "empty": ""}, nil)

	assert.Equal(t, "bar", env.Fetch("foo", "default"))
	assert.Equal(t, "default", env.Fetch("baz", "default"))
	assert.Empty(t, env.Fetch("empty", "default"), "a defined empty value is not replaced by the default")
}

func TestEnvironment_ParentLookup(t *testing.T) {
	parent := domain.NewEnvironment(map[string]string{"foo": "baz"}, nil)
	env := domain.NewEnvironment(map[string]string{"bar": "qux"}, parent)

	assert.Equal(t, "baz", env.Fetch("foo", ""))
	assert.Equal(t, "qux", env.Fetch("bar", ""))
	assert.Same(t, parent, env.Parent())
}

func TestEnvironment_LocalShadowsParent(t *testing.T) {
	parent := domain.NewEnvironment(map[string]string{"CC": "gcc"}, nil)
	env := domain.NewEnvironment(map[string]string{"CC": "clang"}, parent)

	assert.Equal(t, "clang", env.Fetch("CC", ""))
	assert.Equal(t, "gcc", parent.Fetch("CC", ""))
}

func TestEnvironment_Set(t *testing.T) {
	tests := []struct {
		name        string
		parentVars  map[string]string
		localVars   map[string]string
		key         string
		wantLocal   bool
		wantInRoot  bool
		wantSibling string
	}{
		{
			name:        "overwrites local value",
			parentVars:  map[string]string{"K": "root"},
			localVars:   map[string]string{"K": "local"},
			key:         "K",
			wantLocal:   true,
			wantInRoot:  true,
			wantSibling: "root",
		},
		{
			name:        "writes through to the defining ancestor",
			parentVars:  map[string]string{"K": "root"},
			key:         "K",
			wantLocal:   false,
			wantInRoot:  true,
			wantSibling: "new",
		},
		{
			name:        "inserts locally when undefined",
			key:         "K",
			wantLocal:   true,
			wantInRoot:  false,
			wantSibling: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := domain.NewEnvironment(tt.parentVars, nil)
			child := domain.NewEnvironment(tt.localVars, root)
			sibling := domain.NewEnvironment(nil, root)

			child.Set(tt.key, "new")

			assert.Equal(t, "new", child.Fetch(tt.key, ""))
			assert.Equal(t, tt.wantLocal, slices.Contains(child.Keys(), tt.key))
			assert.Equal(t, tt.wantInRoot, root.Has(tt.key))
			assert.Equal(t, tt.wantSibling, sibling.Fetch(tt.key, ""))
		})
	}
}

func TestEnvironment_SharedCounterAcrossScopes(t *testing.T) {
	root := domain.NewEnvironment(map[string]string{"DEPTH": "0"}, nil)
	inner := domain.NewEnvironment(nil, domain.NewEnvironment(nil, root))

	inner.Set("DEPTH", "2")

	assert.Equal(t, "2", root.Fetch("DEPTH", ""))
	assert.Empty(t, inner.Keys())
}

func TestEnvironment_Delete(t *testing.T) {
	t.Run("removes from the first matching scope only", func(t *testing.T) {
		root := domain.NewEnvironment(map[string]string{"K": "root"}, nil)
		child := domain.NewEnvironment(map[string]string{"K": "child"}, root)

		v, ok := child.Delete("K")
		require.True(t, ok)
		assert.Equal(t, "child", v)
		assert.Equal(t, "root", child.Fetch("K", ""), "the ancestor value becomes visible again")

		v, ok = child.Delete("K")
		require.True(t, ok)
		assert.Equal(t, "root", v)
		assert.False(t, root.Has("K"))
	})

	t.Run("reports missing keys", func(t *testing.T) {
		env := domain.NewEnvironment(map[string]string{"foo": "bar"}, domain.NewEnvironment(nil, nil))

		_, ok := env.Delete("baz")
		assert.False(t, ok)
		assert.True(t, env.Has("foo"))
	})

	t.Run("keeps insertion order of remaining keys", func(t *testing.T) {
		env := domain.NewEnvironment(nil, nil)
		env.Set("a", "1")
		env.Set("b", "2")
		env.Set("c", "3")

		_, _ = env.Delete("b")
		assert.Equal(t, []string{"a", "c"}, env.Keys())
	})
}

func TestEnvironmentFrom(t *testing.T) {
	parent := domain.NewEnvironment(map[string]string{"ROOT": "1"}, nil)

	env, err := domain.EnvironmentFrom(map[string]any{"N": 3, "S": "x", "NIL": nil}, parent)
	require.NoError(t, err)
	assert.Equal(t, "3", env.Fetch("N", ""))
	assert.Equal(t, "x", env.Fetch("S", ""))
	assert.Empty(t, env.Fetch("NIL", "unset"))
	assert.Equal(t, "1", env.Fetch("ROOT", ""))

	env, err = domain.EnvironmentFrom(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, env.Parent())
}

func TestEnvironmentFrom_InvalidTable(t *testing.T) {
	_, err := domain.EnvironmentFrom("foo", nil)
	require.ErrorIs(t, err, domain.ErrInvalidEnvironmentTable)
	assert.ErrorContains(t, err, "not a mapping")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "string", zErr.Metadata()["table_type"])
}

func TestEnvironmentFrom_InvalidParent(t *testing.T) {
	_, err := domain.EnvironmentFrom(map[string]string{}, "foo")
	require.ErrorIs(t, err, domain.ErrInvalidEnvironmentParent)
	assert.ErrorContains(t, err, "parent")
}
