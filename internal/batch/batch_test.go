package batch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"lexiscope/internal/cache"
	"lexiscope/internal/diag"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.js"), "b")
	writeFile(t, filepath.Join(dir, "a.js"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.JS"), "c")
	writeFile(t, filepath.Join(dir, "notes.txt"), "n")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref")

	all, err := ListFiles([]string{dir}, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)

	js, err := ListFiles([]string{dir, filepath.Join(dir, "a.js")}, []string{"js"})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "b.js"),
		filepath.Join(dir, "sub", "c.JS"),
	}, js)

	missing, err := ListFiles([]string{filepath.Join(dir, "nope.js")}, []string{"js"})
	require.NoError(t, err)
	require.Len(t, missing, 1)
}

func TestRunAnalysesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "let x = 1;")
	writeFile(t, filepath.Join(dir, "b.js"), "}")
	writeFile(t, filepath.Join(dir, "c.js"), "x x")

	_, results, err := Run(context.Background(), Request{Paths: []string{dir}, Jobs: 2, BaseDir: dir})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "a.js", results[0].Path)
	require.Empty(t, results[0].Diagnostics())
	require.Equal(t, diag.SynUnmatchedBrace, results[1].Diagnostics()[0].Code)
	require.Equal(t, diag.SemaRedeclaration, results[2].Diagnostics()[0].Code)

	sum := Summarize(results)
	require.Equal(t, 3, sum.Files)
	require.Equal(t, 2, sum.Diagnostics)
	worst, ok := sum.Worst()
	require.True(t, ok)
	require.Equal(t, diag.SevError, worst)
}

func TestRunLoadErrorIsDiagnostic(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.js")

	_, results, err := Run(context.Background(), Request{Paths: []string{missing}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Error(t, results[0].LoadErr)

	diags := results[0].Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, diag.IOLoadFileError, diags[0].Code)
	require.Equal(t, diag.PhaseLoad, diags[0].Phase)
	require.Equal(t, 1, Summarize(results).LoadFailed)
}

func TestRunUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "let a = 1;")
	c, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	req := Request{Paths: []string{dir}, Cache: c}
	_, first, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.False(t, first[0].Cached)

	_, second, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.True(t, second[0].Cached)
	require.Equal(t, first[0].Result.Statistics, second[0].Result.Statistics)
}

func TestRunEmitsProgress(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "a")
	writeFile(t, filepath.Join(dir, "b.js"), "b")

	var mu sync.Mutex
	counts := map[Status]int{}
	stages := map[string]bool{}
	sink := SinkFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		counts[ev.Status]++
		if ev.Stage == StageAnalyze {
			stages[ev.Detail] = true
		}
	})

	_, _, err := Run(context.Background(), Request{Paths: []string{dir}, Progress: sink})
	require.NoError(t, err)
	require.Equal(t, 2, counts[StatusQueued])
	require.Equal(t, 2, counts[StatusDone])
	require.True(t, stages["syntactic"])
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Run(ctx, Request{Paths: []string{dir}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "x", Status: StatusDone})
	ev := <-ch
	require.Equal(t, "x", ev.File)
	ChannelSink{}.OnEvent(Event{})
}
