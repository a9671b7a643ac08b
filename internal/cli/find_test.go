package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/assetref/internal/config"
	"github.com/vvka-141/assetref/internal/report"
	"github.com/vvka-141/assetref/pkg/assetref"
)

func TestFindCmd_ArgsValidation(t *testing.T) {
	resetFindFlags()

	err := findCmd.Args(findCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, assetref.ExitUsageError, assetref.ExitCodeForError(err))

	err = findCmd.Args(findCmd, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, assetref.ExitUsageError, assetref.ExitCodeForError(err))

	require.NoError(t, findCmd.Flags().Set("guid", "abc123"))
	assert.NoError(t, findCmd.Args(findCmd, []string{}), "--guid makes the asset optional")
}

func TestFind_PlainSearch(t *testing.T) {
	dir := newTestProject(t, nil)
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))

	require.NoError(t, runFind(findCmd, []string{"Assets/Sprites/hero.png"}))

	want := "Found 3 file(s) referencing `Assets/Sprites/hero.png`:\n" +
		"Assets/Prefabs/hero.prefab\n" +
		"Assets/Prefabs/notes.prefab\n" +
		"Assets/Scenes/main.unity\n"
	assert.Equal(t, want, out.String())

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(assetref.DefaultReportPath)))
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestFind_SpriteFilter(t *testing.T) {
	dir := newTestProject(t, nil)
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))
	require.NoError(t, findCmd.Flags().Set("sprite-filter", "true"))
	require.NoError(t, findCmd.Flags().Set("no-report", "true"))

	require.NoError(t, runFind(findCmd, []string{"Assets/Sprites/hero.png"}))

	assert.Equal(t, "Found 1 file(s) referencing `Assets/Sprites/hero.png`:\nAssets/Prefabs/hero.prefab\n", out.String())
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(assetref.DefaultReportPath)))
	assert.True(t, os.IsNotExist(err))
}

func TestFind_JSONWithMaterials(t *testing.T) {
	dir := newTestProject(t, nil)
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))
	require.NoError(t, findCmd.Flags().Set("prefabs", "false"))
	require.NoError(t, findCmd.Flags().Set("materials", "true"))
	require.NoError(t, findCmd.Flags().Set("json", "true"))
	require.NoError(t, findCmd.Flags().Set("no-report", "true"))

	require.NoError(t, runFind(findCmd, []string{filepath.Join(dir, "Assets", "Sprites", "hero.png")}))

	var doc report.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, report.Document{
		Asset:      "Assets/Sprites/hero.png",
		GUID:       heroGUID,
		Count:      2,
		References: []string{"Assets/Scenes/main.unity", "Assets/Materials/hero.mat"},
	}, doc)
}

func TestFind_GUIDFlag(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		"Assets/Other/legacy.prefab": "guid: deadbeef",
	})
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))
	require.NoError(t, findCmd.Flags().Set("guid", "deadbeef"))
	require.NoError(t, findCmd.Flags().Set("no-report", "true"))

	require.NoError(t, runFind(findCmd, nil))
	assert.Equal(t, "Found 1 file(s) referencing `deadbeef`:\nAssets/Other/legacy.prefab\n", out.String())
}

func TestFind_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		config.ConfigFileName: "search:\n  prefabs: false\n  scenes: false\n  materials: true\noutput: refs.txt\n",
	})
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))
	require.NoError(t, findCmd.Flags().Set("scenes", "true"))

	require.NoError(t, runFind(findCmd, []string{"Assets/Sprites/hero.png"}))

	assert.Equal(t, "Found 2 file(s) referencing `Assets/Sprites/hero.png`:\nAssets/Scenes/main.unity\nAssets/Materials/hero.mat\n", out.String())
	_, err := os.Stat(filepath.Join(dir, "refs.txt"))
	assert.NoError(t, err, "report goes to the configured output")
}

func TestFind_EnvOverridesConfig(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		config.ConfigFileName: "sprite_filter: false\n",
	})
	t.Setenv(config.EnvSpriteFilter, "true")
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))
	require.NoError(t, findCmd.Flags().Set("no-report", "true"))

	require.NoError(t, runFind(findCmd, []string{"Assets/Sprites/hero.png"}))
	assert.Contains(t, out.String(), "Found 1 file(s)")
}

func TestFind_NoReferences(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		"Assets/Sprites/unused.png.meta": "guid: 00000000000000000000000000000000\n",
	})
	out := resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))
	require.NoError(t, findCmd.Flags().Set("no-report", "true"))

	require.NoError(t, runFind(findCmd, []string{"Assets/Sprites/unused.png"}))
	assert.Equal(t, "Could not find any references to: Assets/Sprites/unused.png\n", out.String())
}

func TestFind_NoReferencesKeepsPreviousReport(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		"Assets/Sprites/unused.png.meta": "guid: 00000000000000000000000000000000\n",
	})
	reportFile := filepath.Join(dir, filepath.FromSlash(assetref.DefaultReportPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(reportFile), 0755))
	require.NoError(t, os.WriteFile(reportFile, []byte("previous report\n"), 0644))

	resetFindFlags()
	require.NoError(t, findCmd.Flags().Set("project", dir))

	require.NoError(t, runFind(findCmd, []string{"Assets/Sprites/unused.png"}))

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Equal(t, "previous report\n", string(data))
}

func TestProject_Relative(t *testing.T) {
	dir := t.TempDir()
	proj := &project{dir: dir}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"relative", "Assets/hero.png", "Assets/hero.png", false},
		{"cleaned", "Assets/./UI/../hero.png", "Assets/hero.png", false},
		{"dot dot prefix in name", "..hero.png", "..hero.png", false},
		{"absolute inside", filepath.Join(dir, "Assets", "hero.png"), "Assets/hero.png", false},
		{"parent", "..", "", true},
		{"escaping relative", "../x.png", "", true},
		{"escaping after clean", "Assets/../../x.png", "", true},
		{"absolute outside", filepath.Join(filepath.Dir(dir), "x.png"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := proj.relative(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, assetref.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind_Errors(t *testing.T) {
	tests := []struct {
		name     string
		flags    map[string]string
		args     []string
		wantCode int
	}{
		{"missing meta", nil, []string{"Assets/Sprites/missing.png"}, assetref.ExitResolutionFailure},
		{"missing root", map[string]string{"root": "Nope"}, []string{"Assets/Sprites/hero.png"}, assetref.ExitTraversalFailure},
		{"bad selector", map[string]string{"ext": "Assets/*.prefab"}, []string{"Assets/Sprites/hero.png"}, assetref.ExitInvalidInput},
		{"bad workers", map[string]string{"workers": "-3"}, []string{"Assets/Sprites/hero.png"}, assetref.ExitConfigError},
		{"asset outside project", nil, []string{"/definitely/elsewhere/hero.png"}, assetref.ExitInvalidInput},
		{"relative asset escaping project", nil, []string{"../hero.png"}, assetref.ExitInvalidInput},
		{"relative asset escaping through subdir", nil, []string{"Assets/../../hero.png"}, assetref.ExitInvalidInput},
		{"root escaping project", map[string]string{"root": "../Assets"}, []string{"Assets/Sprites/hero.png"}, assetref.ExitInvalidInput},
		{"missing project", map[string]string{"project": "/definitely/not/here"}, []string{"Assets/Sprites/hero.png"}, assetref.ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newTestProject(t, nil)
			resetFindFlags()
			require.NoError(t, findCmd.Flags().Set("project", dir))
			require.NoError(t, findCmd.Flags().Set("no-report", "true"))
			for k, v := range tt.flags {
				require.NoError(t, findCmd.Flags().Set(k, v))
			}

			err := runFind(findCmd, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, assetref.ExitCodeForError(err), "error: %v", err)
		})
	}
}

func TestApplyFindFlags(t *testing.T) {
	cfg := config.Default()
	flags := findOptions{
		root:         "Game",
		prefabs:      false,
		materials:    true,
		extensions:   []string{"*.controller"},
		spriteFilter: true,
		workers:      4,
		output:       "ignored.txt",
	}
	changed := map[string]bool{"root": true, "prefabs": true, "materials": true, "ext": true, "sprite-filter": true, "workers": true}

	require.NoError(t, applyFindFlags(cfg, flags, func(name string) bool { return changed[name] }))

	assert.Equal(t, "Game", cfg.Root)
	assert.Equal(t, []string{"*.unity", "*.mat", "*.controller"}, cfg.Extensions())
	assert.True(t, cfg.SpriteFilter)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, assetref.DefaultReportPath, cfg.Output, "unchanged flags keep the configured value")
}
