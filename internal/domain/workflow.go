// Package domain implements the pycodemap pipeline: structural extraction of
// Python files, deterministic rendering, and the workflows driving them over
// a source tree.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"pycodemap.dev/pkg/pycodemap/internal/adapter"
	"pycodemap.dev/pkg/pycodemap/internal/controller"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// ErrReportDrift is returned by Check when the stored report is out of date.
var ErrReportDrift = errors.New("report is out of date")

// SkippedFilesError lists the files a strict run could not summarize.
type SkippedFilesError struct {
	Paths []m.Path
}

func (e *SkippedFilesError) Error() string {
	return fmt.Sprintf("%d file(s) could not be summarized", len(e.Paths))
}

// SummarizeArgs holds the inputs shared by every workflow.
type SummarizeArgs struct {
	Root    m.Path
	Exclude m.ExcludeSet
	Options m.Options
	// Threads bounds the number of files processed at once; output order is
	// unaffected.
	Threads int
	// Strict turns skipped files into an error at the end of the run.
	Strict bool
}

// CheckArgs configures a comparison against a stored report.
type CheckArgs struct {
	SummarizeArgs
	Report m.Path
}

// WatchArgs configures a watch loop.
type WatchArgs struct {
	SummarizeArgs
	Debounce time.Duration
}

// SinkFactory opens a fresh sink for each report run.
type SinkFactory func() (adapter.ReportSink, error)

// Workflow drives the per-file pipeline over a source tree.
type Workflow interface {
	// Summarize writes every non-empty file block to sink in traversal order.
	Summarize(ctx context.Context, args SummarizeArgs, sink adapter.ReportSink) error
	// Report returns the whole report as it would be written to a file.
	Report(ctx context.Context, args SummarizeArgs) (string, error)
	// Stats displays declaration counts per file.
	Stats(ctx context.Context, args SummarizeArgs) error
	// Dump writes the extracted models as YAML documents.
	Dump(ctx context.Context, args SummarizeArgs, w io.Writer) error
	// Check compares a stored report with a fresh one.
	Check(ctx context.Context, args CheckArgs) error
	// View shows the report in the UI.
	View(ctx context.Context, args SummarizeArgs) error
	// Watch regenerates the report whenever a Python file changes.
	Watch(ctx context.Context, args WatchArgs, open SinkFactory) error
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	summarizer Summarizer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	summarizer Summarizer,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		summarizer:      summarizer,
	}
}

type fileResult struct {
	path  m.Path
	model m.FileModel
	err   error
}

func (w *workflow) Summarize(ctx context.Context, args SummarizeArgs, sink adapter.ReportSink) error {
	skipped, err := w.process(ctx, args, func(result fileResult) error {
		block := Render(result.model, args.Options)
		if block == "" {
			return nil
		}

		if err := sink.Write(block); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return w.finish(args, skipped)
}

func (w *workflow) Report(ctx context.Context, args SummarizeArgs) (string, error) {
	var b strings.Builder

	if err := w.Summarize(ctx, args, adapter.NewWriterSink(&b)); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (w *workflow) Stats(ctx context.Context, args SummarizeArgs) error {
	var stats []m.FileStats

	skipped, err := w.process(ctx, args, func(result fileResult) error {
		fileStats := m.StatsOf(result.model, args.Options)
		if fileStats.Classes+fileStats.Functions > 0 {
			stats = append(stats, fileStats)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := w.DisplayStats(ctx, stats); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return w.finish(args, skipped)
}

func (w *workflow) Dump(ctx context.Context, args SummarizeArgs, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	skipped, err := w.process(ctx, args, func(result fileResult) error {
		file := result.model
		if file.IsEmpty() {
			return nil
		}

		if args.Options.NoAttributes {
			file = withoutAttributes(file)
		}

		if err := encoder.Encode(file); err != nil {
			return fmt.Errorf("encode %s: %w", file.Path, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return w.finish(args, skipped)
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	stored, err := w.ReadFile(args.Report)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	current, err := w.Report(ctx, args.SummarizeArgs)
	if err != nil {
		return err
	}

	if string(stored) == current {
		w.DisplayUpToDate(ctx, args.Report)
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(stored)),
		B:        difflib.SplitLines(current),
		FromFile: string(args.Report),
		ToFile:   string(args.Root),
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	if err := w.DisplayDiff(ctx, args.Report, diff); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return ErrReportDrift
}

func (w *workflow) View(ctx context.Context, args SummarizeArgs) error {
	report, err := w.Report(ctx, args)
	if err != nil {
		return err
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// process enumerates the files under args.Root and runs the per-file
// pipeline on up to args.Threads of them at once. consume is called with
// every successful result strictly in traversal order; files that fail to
// read or parse are reported and returned as skipped.
func (w *workflow) process(ctx context.Context, args SummarizeArgs, consume func(fileResult) error) ([]m.Path, error) {
	if err := args.Options.Validate(); err != nil {
		return nil, err
	}

	var paths []m.Path

	err := w.Walk(ctx, args.Root, args.Exclude, func(path m.Path) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	slog.Debug("sources found", "root", args.Root, "count", len(paths), "threads", args.Threads)

	results := make([]fileResult, len(paths))

	done := make([]chan struct{}, len(paths))
	for i := range done {
		done[i] = make(chan struct{})
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var workers errgroup.Group

		workers.SetLimit(max(args.Threads, 1))

		for i, path := range paths {
			i, path := i, path
			workers.Go(func() error {
				defer close(done[i])

				file, err := w.summarizer.Model(groupCtx, path, args.Options)
				results[i] = fileResult{path: path, model: file, err: err}

				return nil
			})
		}

		return workers.Wait()
	})

	var skipped []m.Path

	group.Go(func() error {
		for i := range paths {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case <-done[i]:
			}

			result := results[i]
			if result.err != nil {
				if err := w.skip(groupCtx, result); err != nil {
					return err
				}

				skipped = append(skipped, result.path)

				continue
			}

			if err := consume(result); err != nil {
				return err
			}
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return skipped, err
	}

	return skipped, nil
}

// skip reports a per-file failure. Cancellation is not a per-file failure and
// is returned to stop the run.
func (w *workflow) skip(ctx context.Context, result fileResult) error {
	if errors.Is(result.err, context.Canceled) || errors.Is(result.err, context.DeadlineExceeded) {
		return result.err
	}

	slog.Warn("skipping file", "path", result.path, "error", result.err)
	w.DisplayFileError(ctx, result.path, result.err)

	return nil
}

func (w *workflow) finish(args SummarizeArgs, skipped []m.Path) error {
	if len(skipped) == 0 {
		return nil
	}

	slog.Info("files skipped", "root", args.Root, "count", len(skipped))

	if args.Strict {
		return &SkippedFilesError{Paths: skipped}
	}

	return nil
}

func withoutAttributes(file m.FileModel) m.FileModel {
	classes := make([]m.Class, len(file.Classes))
	for i, class := range file.Classes {
		class.Attributes = nil
		classes[i] = class
	}

	file.Classes = classes

	return file
}
