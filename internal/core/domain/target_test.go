package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestTarget_Staleness(t *testing.T) {
	target := domain.NewTarget("app", []string{"main.o", "util.o"}, []string{"cc -o app main.o util.o"})

	assert.Equal(t, "app", target.Name.String())
	require.Len(t, target.Dependencies, 2)
	require.Len(t, target.Commands, 1)
	assert.Equal(t, domain.StalenessUnknown, target.Staleness())

	assert.True(t, target.Resolve(true))
	assert.Equal(t, domain.StalenessNeedsRebuild, target.Staleness())

	target.MarkBuilt()
	assert.Equal(t, domain.StalenessUpToDate, target.Staleness())

	assert.False(t, target.Resolve(false))
	assert.Equal(t, "up-to-date", target.Staleness().String())
}

func TestRegistry_Add(t *testing.T) {
	r := domain.NewRegistry()
	target := domain.NewTarget("task1", nil, nil)

	require.NoError(t, r.Add(target))

	err := r.Add(domain.NewTarget("task1", nil, nil))
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "task1", zErr.Metadata()["target"])

	got, ok := r.Lookup(domain.NewInternedString("task1"))
	require.True(t, ok)
	assert.Same(t, target, got)

	_, ok = r.Lookup(domain.NewInternedString("missing"))
	assert.False(t, ok)
}

func TestRegistry_DeclarationOrder(t *testing.T) {
	r := domain.NewRegistry()
	for _, name := range []string{"all", "clean", "app", "main.o"} {
		require.NoError(t, r.Add(domain.NewTarget(name, nil, nil)))
	}

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"all", "clean", "app", "main.o"}, r.Names())
}

func TestNewCycleError(t *testing.T) {
	path := domain.NewInternedStrings([]string{"all", "a", "b"})

	err := domain.NewCycleError(path, domain.NewInternedString("a"))

	require.ErrorIs(t, err, domain.ErrCycleDetected)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "a -> b -> a", zErr.Metadata()["cycle"])
}

func TestBuildFile(t *testing.T) {
	bf := domain.NewBuildFile("RMakefile")

	require.NoError(t, bf.AddRule("total", []string{"1.o", "2.o"}))
	require.NoError(t, bf.AddRule("clean", nil))
	require.NoError(t, bf.AddRule("total", []string{"1.h"}))
	require.NoError(t, bf.AddCommand("total", "gcc 1.o 2.o -o total"))
	require.NoError(t, bf.AddCommand("clean", "rm -f *.o"))

	assert.Equal(t, "total", bf.FirstTarget)
	assert.Equal(t, []string{"total", "clean"}, bf.Order)
	assert.Equal(t, []string{"1.o", "2.o", "1.h"}, bf.Dependencies["total"])
	assert.NotNil(t, bf.Dependencies["clean"])
	assert.Empty(t, bf.Dependencies["clean"])

	require.ErrorIs(t, bf.AddRule("", nil), domain.ErrInvalidRule)
	require.ErrorIs(t, bf.AddCommand("unknown", "echo"), domain.ErrTargetNotFound)

	r, err := bf.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"total", "clean"}, r.Names())

	total, ok := r.Lookup(domain.NewInternedString("total"))
	require.True(t, ok)
	assert.Len(t, total.Commands, 1)

	deps := make([]string, 0, len(total.Dependencies))
	for _, d := range total.Dependencies {
		deps = append(deps, d.String())
	}
	assert.True(t, slices.Equal([]string{"1.o", "2.o", "1.h"}, deps))
}
