package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/adapters/fs"
)

func TestFileSystem_ModTime(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "main.o")
	require.NoError(t, os.WriteFile(path, []byte("obj"), 0o600))

	want := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, want, want))

	got, exists, err := fs.NewFileSystem().ModTime(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, want.Equal(got), "expected %v, got %v", want, got)
}

func TestFileSystem_ModTime_Missing(t *testing.T) {
	got, exists, err := fs.NewFileSystem().ModTime(filepath.Join(t.TempDir(), "clean"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.True(t, got.IsZero())
}

func TestFileSystem_ModTime_Directory(t *testing.T) {
	_, exists, err := fs.NewFileSystem().ModTime(t.TempDir())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWalker_WalkDirs(t *testing.T) {
	// tmp/
	//   .git/objects/
	//   .rmake/
	//   build/
	//   src/lib/
	tmpDir := t.TempDir()
	for _, dir := range []string{".git/objects", ".rmake", "build", "src/lib"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0o750))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "main.c"), []byte("int main;"), 0o600))

	dirs := make(map[string]bool)
	for path := range fs.NewWalker().WalkDirs(tmpDir, []string{"build"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		dirs[rel] = true
	}

	assert.Equal(t, map[string]bool{".": true, "src": true, "src/lib": true}, dirs)
}

func TestWalker_WalkDirs_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a", "b"), 0o750))

	count := 0
	for range fs.NewWalker().WalkDirs(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_ShouldSkip(t *testing.T) {
	walker := fs.NewWalker()
	assert.True(t, walker.ShouldSkip(".git", nil))
	assert.True(t, walker.ShouldSkip("node_modules", nil))
	assert.True(t, walker.ShouldSkip("tmp-1", []string{"tmp-*"}))
	assert.False(t, walker.ShouldSkip("src", []string{"tmp-*"}))
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hasher_test")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	hasher := fs.NewHasher()

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	// Verify determinism
	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	require.NoError(t, os.WriteFile(path, []byte("hello there"), 0o600))
	hash3, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestHasher_Fingerprint(t *testing.T) {
	hasher := fs.NewHasher()

	base := hasher.Fingerprint([]string{"gcc -c main.c", "gcc -o app main.o"})
	assert.Len(t, base, 16)
	assert.Equal(t, base, hasher.Fingerprint([]string{"gcc -c main.c", "gcc -o app main.o"}))

	// Order matters.
	assert.NotEqual(t, base, hasher.Fingerprint([]string{"gcc -o app main.o", "gcc -c main.c"}))
	// Line boundaries matter.
	assert.NotEqual(t, hasher.Fingerprint([]string{"ab", "c"}), hasher.Fingerprint([]string{"a", "bc"}))
	// Empty input still yields a stable value.
	assert.Equal(t, hasher.Fingerprint(nil), hasher.Fingerprint([]string{}))
}
