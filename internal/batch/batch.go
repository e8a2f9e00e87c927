// Package batch analyses many files in parallel and reports progress.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"lexiscope/internal/analysis"
	"lexiscope/internal/cache"
	"lexiscope/internal/diag"
	"lexiscope/internal/source"
	"lexiscope/internal/trace"
)

// Request describes one batch run.
type Request struct {
	Paths      []string
	Extensions []string
	Jobs       int    // <= 0 means GOMAXPROCS
	BaseDir    string // for display paths
	Analysis   analysis.Options
	Cache      *cache.Cache // optional
	Progress   ProgressSink // optional
}

// FileResult содержит результат анализа одного файла
type FileResult struct {
	Path    string        // путь для вывода
	FileID  source.FileID // ID файла в FileSet (0 при ошибке загрузки)
	Result  *analysis.Result
	LoadErr error
	Cached  bool
	Elapsed time.Duration
}

// Diagnostics returns the file's diagnostics; a load failure becomes a
// single IO001 error.
func (r *FileResult) Diagnostics() []diag.Diagnostic {
	if r.LoadErr != nil {
		return []diag.Diagnostic{{
			ID:       string(diag.PhaseLoad) + "-1",
			Message:  "failed to load file: " + r.LoadErr.Error(),
			Line:     1,
			Column:   1,
			Severity: diag.SevError,
			Phase:    diag.PhaseLoad,
			Code:     diag.IOLoadFileError,
		}}
	}
	if r.Result == nil {
		return nil
	}
	return r.Result.Diagnostics
}

// Run lists the files of req and analyses them with at most req.Jobs
// workers. Results come back in file-list order. Unreadable files are
// reported per file; only cancellation or a walk failure returns an error.
// req.Analysis.Observer, when set, is called from several goroutines.
func Run(ctx context.Context, req Request) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(req.Paths, req.Extensions)
	if err != nil {
		return nil, nil, fmt.Errorf("list files: %w", err)
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: загружаем всё заранее
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	display := make([]string, len(files))
	for i, path := range files {
		display[i] = path
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = fileID
		display[i] = fileSet.Get(fileID).DisplayPath(req.BaseDir)
	}

	for _, name := range display {
		emit(req.Progress, Event{File: name, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = analyzeOne(gctx, req, fileSet, fileIDs[i], display[i], loadErrors[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func analyzeOne(ctx context.Context, req Request, fileSet *source.FileSet, id source.FileID, name string, loadErr error) FileResult {
	start := time.Now()
	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+name)

	if loadErr != nil {
		span.End("load failed")
		emit(req.Progress, Event{File: name, Stage: StageFinished, Status: StatusError, Err: loadErr})
		return FileResult{Path: name, LoadErr: loadErr, Elapsed: time.Since(start)}
	}

	text := fileSet.Get(id).Text()
	key := cache.KeyFor(text, req.Analysis.Phase)

	if req.Cache != nil {
		emit(req.Progress, Event{File: name, Stage: StageCache, Status: StatusWorking})
		res, ok, err := req.Cache.Get(key)
		if err != nil {
			trace.Point(ctx, trace.ScopeFile, "cache-read-failed", err.Error())
		}
		if ok {
			elapsed := time.Since(start)
			span.Set("cached", "true").End("")
			emit(req.Progress, Event{File: name, Stage: StageFinished, Status: StatusDone, Detail: "cached", Elapsed: elapsed})
			return FileResult{Path: name, FileID: id, Result: res, Cached: true, Elapsed: elapsed}
		}
	}

	opts := req.Analysis
	inner := opts.Observer
	opts.Observer = func(ev analysis.StageEvent) {
		if ev.Status == analysis.StageStart {
			emit(req.Progress, Event{File: name, Stage: StageAnalyze, Status: StatusWorking, Detail: ev.Name})
		}
		if inner != nil {
			inner(ev)
		}
	}
	res := analysis.AnalyzeWithOptions(ctx, text, opts)

	if req.Cache != nil {
		// ошибка записи кэша не должна валить анализ
		if err := req.Cache.Put(key, res); err != nil {
			trace.Point(ctx, trace.ScopeFile, "cache-write-failed", err.Error())
		}
	}

	elapsed := time.Since(start)
	detail := fmt.Sprintf("%d diagnostics", len(res.Diagnostics))
	span.End(detail)
	emit(req.Progress, Event{File: name, Stage: StageFinished, Status: StatusDone, Detail: detail, Elapsed: elapsed})
	return FileResult{Path: name, FileID: id, Result: res, Elapsed: elapsed}
}
