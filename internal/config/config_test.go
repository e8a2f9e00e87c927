package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "pretty", cfg.Output.Format)
	opts := cfg.PhaseOptions()
	require.False(t, opts.SymmetricDelimiters)
	require.False(t, opts.KeywordHints)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := write(t, dir, `
[analysis]
symmetric_delimiters = true
keyword_hints = true

[output]
format = "json"
max_diagnostics = 50

[cache]
enabled = true
dir = ".cache"

[batch]
jobs = 4
extensions = ["js", ".ts"]
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, p, cfg.Path)
	require.True(t, cfg.Analysis.SymmetricDelimiters)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, "auto", cfg.Output.Color, "unset keys keep defaults")
	require.Equal(t, "auto", cfg.Output.Progress)
	require.Equal(t, filepath.Join(dir, ".cache"), cfg.Cache.Dir)
	require.Equal(t, []string{"js", ".ts"}, cfg.Batch.Extensions)

	opts := cfg.PhaseOptions()
	require.True(t, opts.KeywordHints)
	require.Equal(t, 50, opts.MaxDiagnostics)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	p := write(t, t.TempDir(), "[output]\nfromat = \"json\"\n")
	_, err := Load(p)
	require.ErrorContains(t, err, "output.fromat")
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"[output]\nformat = \"xml\"\n",
		"[output]\ncolor = \"sometimes\"\n",
		"[output]\nprogress = \"loud\"\n",
		"[output]\nmax_diagnostics = -1\n",
		"[batch]\njobs = -2\n",
		"[output]\nformat = \"\"\n",
		"not toml at all = = =",
	} {
		_, err := Load(write(t, t.TempDir(), body))
		require.Error(t, err, body)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := write(t, root, "[output]\nformat = \"short\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	cfg, err := Discover(nested)
	require.NoError(t, err)
	require.Equal(t, "short", cfg.Output.Format)
}
