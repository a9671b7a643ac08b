package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkFiles(t *testing.T, d Directory) []string {
	t.Helper()
	var files []string
	err := d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("Assets/hero.prefab", "GameObject:")
	mfs.AddFile("Assets/Scenes/main.unity", "Scene:")

	dir, err := mfs.Open("/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"Assets/Scenes/main.unity", "Assets/hero.prefab"}, walkFiles(t, dir))
}

func TestMemoryFileSystem_OpenSubdirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("Assets/Prefabs/hero.prefab", "x")
	mfs.AddFile("Packages/other.prefab", "y")

	dir, err := mfs.Open("Assets")
	require.NoError(t, err)
	assert.Equal(t, "/project/Assets", dir.Path())
	assert.Equal(t, []string{"Prefabs/hero.prefab"}, walkFiles(t, dir))

	root, err := mfs.Open(".")
	require.NoError(t, err)
	assert.Len(t, walkFiles(t, root), 2)
}

func TestMemoryFileSystem_Open_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("a.prefab", "x")

	_, err := mfs.Open("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Open("a.prefab")
	assert.ErrorContains(t, err, "not a directory")
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("Assets/hero.png.meta", "guid: abc123")

	content, err := mfs.ReadFile("/project/Assets/hero.png.meta")
	require.NoError(t, err)
	assert.Equal(t, "guid: abc123", string(content))

	content, err = mfs.ReadFile("Assets/hero.png.meta")
	require.NoError(t, err)
	assert.Equal(t, "guid: abc123", string(content))

	_, err = mfs.ReadFile("Assets")
	assert.ErrorContains(t, err, "is a directory")

	_, err = mfs.ReadFile("nope.meta")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_FailRead(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("locked.prefab", "abc123")
	readErr := errors.New("permission denied")
	mfs.FailRead("locked.prefab", readErr)

	_, err := mfs.ReadFile("locked.prefab")
	assert.ErrorIs(t, err, readErr)

	dir, err := mfs.Open(".")
	require.NoError(t, err)
	err = dir.Walk(func(f File, err error) error {
		if f.RelativePath() == "locked.prefab" {
			_, readErr := f.ReadContent()
			assert.Error(t, readErr)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryFileSystem_StatAndReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("Assets/a.mat", "Material:")
	mfs.AddFile("Assets/Sub/b.mat", "Material:")
	mfs.AddDir("Assets/Empty")

	info, err := mfs.Stat("Assets/a.mat")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("Material:")), info.Size())

	info, err = mfs.Stat("Assets/Empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	infos, err := mfs.ReadDir("Assets")
	require.NoError(t, err)
	var names []string
	for _, i := range infos {
		names = append(names, i.Name())
	}
	assert.Equal(t, []string{"Empty", "Sub", "a.mat"}, names)
}

func TestMemoryDirectory_WalkStopsOnCallbackError(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("a.prefab", "")
	mfs.AddFile("b.prefab", "")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	stop := errors.New("stop")
	visited := 0
	err = dir.Walk(func(f File, err error) error {
		visited++
		if f.RelativePath() == "a.prefab" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited, "root and a.prefab only")
}
