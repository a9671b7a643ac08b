package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	require.NoError(t, err)

	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, absDir, d.Path())
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	assert.Error(t, err)
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "hero.prefab")
	writeFile(t, filePath, "GameObject:")

	_, err := NewOSFileSystem().Open(filePath)
	assert.ErrorContains(t, err, "not a directory")
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "hero.png.meta")
	writeFile(t, filePath, "guid: abc123\n")

	data, err := NewOSFileSystem().ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "guid: abc123\n", string(data))
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	_, err := NewOSFileSystem().ReadFile(filepath.Join(t.TempDir(), "missing.meta"))
	assert.True(t, os.IsNotExist(err), "expected not-exist error, got %v", err)
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mat"), "Material:")
	fs := NewOSFileSystem()

	info, err := fs.Stat(filepath.Join(dir, "a.mat"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "a.mat", info.Name())

	info, err = fs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fs.Stat(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.prefab"), "")
	writeFile(t, filepath.Join(dir, "Scenes", "main.unity"), "")

	infos, err := NewOSFileSystem().ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	assert.ElementsMatch(t, []string{"a.prefab", "Scenes"}, names)
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.prefab"), "x")
	writeFile(t, filepath.Join(dir, "Scenes", "b.unity"), "y")

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var files []string
	var sawRoot bool
	err = d.Walk(func(f File, walkErr error) error {
		require.NoError(t, walkErr)
		if f.RelativePath() == "." {
			sawRoot = true
		}
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)

	assert.True(t, sawRoot, "walk should visit the root as \".\"")
	assert.Equal(t, []string{"Scenes/b.unity", "a.prefab"}, files, "relative paths use forward slashes in lexical order")
}

func TestOSFile_ReadContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "content.asset"), "MonoBehaviour:")

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var content string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.RelativePath() == "content.asset" {
			data, err := f.ReadContent()
			require.NoError(t, err)
			content = string(data)
			assert.Equal(t, int64(len("MonoBehaviour:")), f.Info().Size())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "MonoBehaviour:", content)
}

func TestOSDirectory_Walk_RecoversCallbackPanic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.prefab"), "x")

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	err = d.Walk(func(f File, walkErr error) error {
		if f != nil && f.RelativePath() == "a.prefab" {
			panic("boom")
		}
		return nil
	})
	assert.ErrorContains(t, err, "walk callback panicked")
}
