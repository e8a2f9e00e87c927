package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lexiscope/internal/analysis"
	"lexiscope/internal/batch"
	"lexiscope/internal/cache"
	"lexiscope/internal/config"
	"lexiscope/internal/diag"
	"lexiscope/internal/diagfmt"
	"lexiscope/internal/phase"
	"lexiscope/internal/source"
	"lexiscope/internal/version"
)

const (
	stdinName = "<stdin>"
	textName  = "<text>"
)

// analyzeOptions is the merged view of lexiscope.toml and command flags.
type analyzeOptions struct {
	text     string
	hasText  bool
	format   string
	color    bool
	pathMode diagfmt.PathMode
	showSrc  bool
	phases   bool
	stats    bool
	timings  bool
	withChar bool
	withTok  bool
	phase    phase.Options
	jobs     int
	exts     []string
	cache    bool
	cacheDir string
	failOn   failOn
	ui       progressMode
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [flags] [file|dir|-]...",
		Short: "Analyze files, directories, stdin or --text",
		Long: `Analyze classifies every character, tokenizes the input and runs the lexical,
syntactic and semantic phases. Directories are walked recursively; with no
arguments the input is read from stdin.`,
		RunE: runAnalyze,
	}
	registerAnalyzeFlags(cmd)
	cmd.Flags().String("fail-on", "error", "exit with status 1 when a diagnostic reaches this severity (error|warning|never)")
	cmd.Flags().String("ui", "auto", "progress view for batches (auto|on|off); overrides [output].progress")
	return cmd
}

// registerAnalyzeFlags adds the flags shared by analyze and watch.
func registerAnalyzeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("text", "", "analyze this string instead of files")
	f.String("format", "pretty", "output format (pretty|short|json|cbor|sarif)")
	f.String("path-mode", "auto", "how to print paths (auto|absolute|relative|basename)")
	f.Bool("source", true, "show the source line under each diagnostic (pretty)")
	f.Bool("phases", false, "show per-phase status (pretty)")
	f.Bool("stats", false, "show statistics (pretty)")
	f.Bool("timings", false, "show stage timings")
	f.Bool("with-characters", false, "include classified characters (json|cbor)")
	f.Bool("with-tokens", false, "include tokens (json|cbor)")
	f.Bool("symmetric-delimiters", false, "also report unclosed parentheses and brackets")
	f.Bool("keyword-hints", false, "suggest reserved words for near-miss identifiers")
	f.Int("max-diagnostics", 0, "maximum diagnostics per phase (0 = unlimited)")
	f.IntP("jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
	f.StringSlice("ext", nil, "file extensions to pick from directories (default: all files)")
	f.Bool("cache", false, "memoise results on disk")
	f.String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/lexiscope)")
}

func readAnalyzeOptions(cmd *cobra.Command, cfg config.Config, out *os.File) (analyzeOptions, error) {
	var (
		opts analyzeOptions
		err  error
	)
	opts.text, err = cmd.Flags().GetString("text")
	if err != nil {
		return opts, fmt.Errorf("failed to get text flag: %w", err)
	}
	opts.hasText = cmd.Flags().Changed("text")

	if opts.format, err = stringFlag(cmd, "format", cfg.Output.Format); err != nil {
		return opts, err
	}
	opts.format = strings.ToLower(opts.format)
	switch opts.format {
	case "pretty", "short", "json", "cbor", "sarif":
	default:
		return opts, fmt.Errorf("unknown format: %s", opts.format)
	}
	if opts.color, err = useColor(cmd, cfg, out); err != nil {
		return opts, err
	}

	pathMode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return opts, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var ok bool
	if opts.pathMode, ok = diagfmt.ParsePathMode(pathMode); !ok {
		return opts, fmt.Errorf("invalid --path-mode value %q", pathMode)
	}

	for name, dst := range map[string]*bool{
		"source":          &opts.showSrc,
		"phases":          &opts.phases,
		"stats":           &opts.stats,
		"timings":         &opts.timings,
		"with-characters": &opts.withChar,
		"with-tokens":     &opts.withTok,
	} {
		if *dst, err = cmd.Flags().GetBool(name); err != nil {
			return opts, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
	}

	opts.phase = cfg.PhaseOptions()
	if opts.phase.SymmetricDelimiters, err = boolFlag(cmd, "symmetric-delimiters", opts.phase.SymmetricDelimiters); err != nil {
		return opts, err
	}
	if opts.phase.KeywordHints, err = boolFlag(cmd, "keyword-hints", opts.phase.KeywordHints); err != nil {
		return opts, err
	}
	if opts.phase.MaxDiagnostics, err = intFlag(cmd, "max-diagnostics", opts.phase.MaxDiagnostics); err != nil {
		return opts, err
	}
	if opts.jobs, err = intFlag(cmd, "jobs", cfg.Batch.Jobs); err != nil {
		return opts, err
	}
	opts.exts = cfg.Batch.Extensions
	if cmd.Flags().Changed("ext") {
		if opts.exts, err = cmd.Flags().GetStringSlice("ext"); err != nil {
			return opts, fmt.Errorf("failed to get ext flag: %w", err)
		}
	}
	if opts.cache, err = boolFlag(cmd, "cache", cfg.Cache.Enabled); err != nil {
		return opts, err
	}
	if opts.cacheDir, err = stringFlag(cmd, "cache-dir", cfg.Cache.Dir); err != nil {
		return opts, err
	}

	// fail-on и ui есть только у analyze
	opts.failOn = failOnError
	if f := cmd.Flags().Lookup("fail-on"); f != nil {
		if opts.failOn, err = parseFailOn(f.Value.String()); err != nil {
			return opts, err
		}
	}
	opts.ui = progressOff
	if cmd.Flags().Lookup("ui") != nil {
		origin, value := "--ui", cfg.Output.Progress
		if !cmd.Flags().Changed("ui") {
			origin = "[output].progress"
		}
		if value, err = stringFlag(cmd, "ui", value); err != nil {
			return opts, err
		}
		if opts.ui, err = parseProgressMode(origin, value); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := readAnalyzeOptions(cmd, cfg, os.Stdout)
	if err != nil {
		return err
	}
	var store *cache.Cache
	if opts.cache {
		if store, err = cache.Open(opts.cacheDir); err != nil {
			return err
		}
	}

	entries, err := collectEntries(cmd, args, opts, store)
	if err != nil {
		return err
	}
	if err := render(cmd.OutOrStdout(), entries, opts, os.Args[1:]); err != nil {
		return err
	}

	worst, ok := worstOf(entries)
	if code := opts.failOn.exitCode(worst, ok); code != 0 {
		return exitError{code: code}
	}
	return nil
}

// collectEntries analyses --text, stdin or the given paths.
func collectEntries(cmd *cobra.Command, args []string, opts analyzeOptions, store *cache.Cache) ([]diagfmt.Entry, error) {
	ctx := cmd.Context()
	aopts := analysis.Options{Phase: opts.phase}

	if opts.hasText {
		return []diagfmt.Entry{analyzeVirtual(ctx, textName, opts.text, aopts, store)}, nil
	}
	if len(args) == 0 || len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []diagfmt.Entry{analyzeVirtual(ctx, stdinName, string(data), aopts, store)}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	req := batch.Request{
		Paths:      args,
		Extensions: opts.exts,
		Jobs:       opts.jobs,
		BaseDir:    wd,
		Analysis:   aopts,
		Cache:      store,
	}

	var (
		fs      *source.FileSet
		results []batch.FileResult
	)
	if batchWantsProgress(opts.ui, req) {
		fs, results, err = runBatchWithUI(ctx, "analyze", req)
	} else {
		fs, results, err = batch.Run(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no files to analyze in %s", strings.Join(args, ", "))
	}
	return entriesFromBatch(fs, results), nil
}

// analyzeVirtual runs one in-memory input, consulting the cache if any.
func analyzeVirtual(ctx context.Context, name, text string, opts analysis.Options, store *cache.Cache) diagfmt.Entry {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	entry := diagfmt.Entry{Path: name, File: fs.Get(id)}

	var key cache.Key
	if store != nil {
		key = cache.KeyFor(text, opts.Phase)
		if res, ok, err := store.Get(key); err == nil && ok {
			entry.Result, entry.Cached = res, true
			return entry
		}
	}
	entry.Result = analysis.AnalyzeWithOptions(ctx, text, opts)
	if store != nil {
		// ошибка записи не влияет на результат
		_ = store.Put(key, entry.Result)
	}
	return entry
}

func entriesFromBatch(fs *source.FileSet, results []batch.FileResult) []diagfmt.Entry {
	entries := make([]diagfmt.Entry, len(results))
	for i := range results {
		r := &results[i]
		e := diagfmt.Entry{Path: r.Path, Result: r.Result, Cached: r.Cached}
		if r.LoadErr != nil {
			e.Diagnostics = r.Diagnostics()
		} else {
			e.File = fs.Get(r.FileID)
		}
		entries[i] = e
	}
	return entries
}

func render(w io.Writer, entries []diagfmt.Entry, opts analyzeOptions, argv []string) error {
	jsonOpts := diagfmt.JSONOpts{
		PathMode:          opts.pathMode,
		IncludeCharacters: opts.withChar,
		IncludeTokens:     opts.withTok,
		IncludeTimings:    opts.timings,
	}
	switch opts.format {
	case "pretty":
		return diagfmt.Pretty(w, entries, diagfmt.PrettyOpts{
			Color:       opts.color,
			PathMode:    opts.pathMode,
			ShowSource:  opts.showSrc,
			ShowPhases:  opts.phases,
			ShowStats:   opts.stats,
			ShowTimings: opts.timings,
		})
	case "short":
		return diagfmt.Short(w, entries, diagfmt.PrettyOpts{PathMode: opts.pathMode})
	case "json":
		return diagfmt.JSON(w, entries, jsonOpts, "lexiscope", version.Version)
	case "cbor":
		return diagfmt.CBOR(w, entries, jsonOpts, "lexiscope", version.Version)
	case "sarif":
		return diagfmt.Sarif(w, entries, jsonOpts, diagfmt.SarifRunMeta{
			ToolName:       "lexiscope",
			ToolVersion:    version.Version,
			InvocationArgs: argv,
		})
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}

func worstOf(entries []diagfmt.Entry) (diag.Severity, bool) {
	var (
		worst diag.Severity
		found bool
	)
	for i := range entries {
		if sev, ok := diag.Worst(entries[i].Diags()); ok && (!found || sev > worst) {
			worst, found = sev, true
		}
	}
	return worst, found
}
