package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	require.Equal(t, FormatTable, cfg.Format)
	require.Equal(t, PolicyDefault, cfg.CountPolicy)
	require.Nil(t, cfg.IncludeRoot, "unset include_root is left for per-format resolution")
	require.False(t, cfg.Detailed)
	require.Empty(t, cfg.DefaultRoot)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"menubar\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, FormatMenubar, cfg.Format)
	require.Nil(t, cfg.IncludeRoot, "unset keys keep their defaults")
}

func TestLoad_ExplicitIncludeRoot(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want bool
	}{
		{"include_root = true\n", true},
		{"include_root = false\n", false},
	} {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(tc.raw), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.IncludeRoot)
		require.Equal(t, tc.want, *cfg.IncludeRoot)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = [broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_RejectsUnknownNames(t *testing.T) {
	dir := t.TempDir()

	badFormat := filepath.Join(dir, "f.toml")
	require.NoError(t, os.WriteFile(badFormat, []byte("format = \"tui\"\n"), 0644))
	_, err := Load(badFormat)
	require.ErrorContains(t, err, "unknown format")

	badPolicy := filepath.Join(dir, "p.toml")
	require.NoError(t, os.WriteFile(badPolicy, []byte("count_policy = \"some\"\n"), 0644))
	_, err = Load(badPolicy)
	require.ErrorContains(t, err, "unknown count policy")
}

func TestLoad_ExpandsHomeInDefaultRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_root = \"~/GitHub\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "GitHub"), cfg.DefaultRoot)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	includeRoot := false
	want := &Config{
		DefaultRoot: "/work/src",
		Format:      FormatMenubar,
		CountPolicy: PolicyAllLines,
		IncludeRoot: &includeRoot,
		Detailed:    true,
	}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
