package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystemRoundTrip(t *testing.T) {
	m := NewMemoryFileSystem()

	require.NoError(t, m.WriteFile("results/run.json", []byte(`{"Algorithm":"GreedyJoining"}`), 0644))
	data, err := m.ReadFile("results/../results/run.json")
	require.NoError(t, err)
	assert.Equal(t, `{"Algorithm":"GreedyJoining"}`, string(data))

	f, err := m.Open("results/run.json")
	require.NoError(t, err)
	defer f.Close()
	all, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, data, all)

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), info.Size())
}

func TestMemoryFileSystemMissing(t *testing.T) {
	m := NewMemoryFileSystem()

	_, err := m.ReadFile("nope.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = m.Open("nope.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = m.Stat("nope.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, m.Exists("nope.json"))
}

func TestEnsureParent(t *testing.T) {
	m := NewMemoryFileSystem()

	require.NoError(t, EnsureParent(m, "out/plots/time.svg"))
	assert.True(t, m.Exists("out/plots"))
	assert.True(t, m.Exists("out"))

	info, err := m.Stat("out/plots")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, EnsureParent(m, "time.svg"))
}

func TestOSFileSystem(t *testing.T) {
	var osfs OSFileSystem
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bench.csv")

	require.NoError(t, EnsureParent(osfs, path))
	require.NoError(t, osfs.WriteFile(path, []byte("x,y\n1,2\n"), 0644))
	assert.True(t, osfs.Exists(path))

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n1,2\n", string(data))

	info, err := osfs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size())
}
