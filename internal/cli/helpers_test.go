package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const heroGUID = "5f3a9c1e2b7d4e6f8a0b1c2d3e4f5a6b"

const heroPrefab = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &1
GameObject:
  m_Component:
  - component: {fileID: 2}
  - component: {fileID: 3}
  m_Name: Hero
--- !u!4 &2
Transform:
  m_GameObject: {fileID: 1}
  m_Children: []
--- !u!212 &3
SpriteRenderer:
  m_GameObject: {fileID: 1}
  m_Sprite: {fileID: 21300000, guid: 5f3a9c1e2b7d4e6f8a0b1c2d3e4f5a6b, type: 3}
`

// newTestProject lays out a small Unity project and returns its directory.
func newTestProject(t *testing.T, extra map[string]string) string {
	t.Helper()
	t.Setenv("ASSETREF_NON_INTERACTIVE", "1")
	for _, k := range []string{"ASSETREF_ROOT", "ASSETREF_OUTPUT", "ASSETREF_SPRITE_FILTER", "ASSETREF_WORKERS"} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	files := map[string]string{
		"Assets/Sprites/hero.png":      "png",
		"Assets/Sprites/hero.png.meta": "fileFormatVersion: 2\nguid: " + heroGUID + "\n",
		"Assets/Prefabs/hero.prefab":   heroPrefab,
		"Assets/Prefabs/notes.prefab":  "# was " + heroGUID + "\n",
		"Assets/Scenes/main.unity":     "m_Sprite: {fileID: 21300000, guid: " + heroGUID + "}\n",
		"Assets/Materials/hero.mat":    "m_Texture: {guid: " + heroGUID + "}\n",
	}
	for p, content := range extra {
		files[p] = content
	}
	for p, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return dir
}

// resetCommand restores a command's flags to their defaults and clears their
// changed state, and captures its output.
func resetCommand(cmd *cobra.Command) *bytes.Buffer {
	cmd.InheritedFlags()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return &buf
}

func resetFindFlags() *bytes.Buffer {
	return resetCommand(findCmd)
}
