package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lexiscope/internal/analysis"
	"lexiscope/internal/diag"
	"lexiscope/internal/phase"
)

func TestKeyDependsOnOptions(t *testing.T) {
	base := KeyFor("let x", phase.Options{})
	require.Equal(t, base, KeyFor("let x", phase.Options{}))
	require.NotEqual(t, base, KeyFor("let y", phase.Options{}))
	require.NotEqual(t, base, KeyFor("let x", phase.Options{SymmetricDelimiters: true}))
	require.NotEqual(t, base, KeyFor("let x", phase.Options{KeywordHints: true}))
	require.NotEqual(t, base, KeyFor("let x", phase.Options{MaxDiagnostics: 3}))
}

func TestPutGetRoundTrip(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	src := "let x = 1;\nlet x = '2"
	opts := phase.Options{}
	res := analysis.AnalyzeWithOptions(context.Background(), src, analysis.Options{Phase: opts})
	key := KeyFor(src, opts)

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(key, res))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, got.Characters, len(res.Characters))
	require.Len(t, got.Tokens, len(res.Tokens))
	require.Equal(t, res.Diagnostics, got.Diagnostics)
	require.Equal(t, res.Statistics, got.Statistics)
	require.Equal(t, diag.SevError, got.Diagnostics[0].Severity)

	// токены снова указывают в общий массив символов
	last := got.Tokens[len(got.Tokens)-1]
	require.NotEmpty(t, last.Characters)
	require.Same(t, &got.Characters[last.Start], &last.Characters[0])
}

func TestStatsAndDropAll(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	n, size, err := c.Stats()
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, size)

	for _, src := range []string{"a", "b", "c"} {
		require.NoError(t, c.Put(KeyFor(src, phase.Options{}), analysis.Analyze(src)))
	}
	n, size, err = c.Stats()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Positive(t, size)

	require.NoError(t, c.DropAll())
	n, _, err = c.Stats()
	require.NoError(t, err)
	require.Zero(t, n)

	_, ok, err := c.Get(KeyFor("a", phase.Options{}))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCorruptEntry(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	key := KeyFor("x", phase.Options{})
	p := c.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte{0xc1, 0x00}, 0o644))

	_, ok, err := c.Get(key)
	require.Error(t, err)
	require.False(t, ok)
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	require.NoError(t, c.Put(Key{}, analysis.Analyze("x")))
	_, ok, err := c.Get(Key{})
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, c.DropAll())
}
