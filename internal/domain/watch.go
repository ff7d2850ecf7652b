package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// DefaultDebounce is how long Watch waits for the tree to settle.
const DefaultDebounce = 250 * time.Millisecond

const watchedOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch writes the report once, then again after every burst of changes to
// candidate files, until ctx is cancelled.
func (w *workflow) Watch(ctx context.Context, args WatchArgs, open SinkFactory) error {
	if err := args.Options.Validate(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := w.addDirs(watcher, args.Root, args.Root, args.Exclude); err != nil {
		return err
	}

	if err := w.rerun(ctx, args.SummarizeArgs, open); err != nil {
		return err
	}

	debounce := args.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(time.Hour)
	stopTimer(timer)

	pending := map[m.Path]bool{}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			path := m.Path(event.Name)
			if !w.relevant(watcher, args.SummarizeArgs, path, event.Op) {
				continue
			}

			slog.Debug("change detected", "path", path, "op", event.Op.String())

			if len(pending) > 0 {
				stopTimer(timer)
			}

			pending[path] = true

			timer.Reset(debounce)
		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			changed := make([]m.Path, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}

			sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })

			pending = map[m.Path]bool{}

			w.DisplayRerun(ctx, changed)

			if err := w.rerun(ctx, args.SummarizeArgs, open); err != nil {
				return err
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch: %w", watchErr)
		}
	}
}

// relevant filters an event down to candidate files; a newly created
// directory is added to the watch set and counts as a change.
func (w *workflow) relevant(watcher *fsnotify.Watcher, args SummarizeArgs, path m.Path, op fsnotify.Op) bool {
	if op&watchedOps == 0 {
		return false
	}

	if op&fsnotify.Create != 0 {
		if info, err := os.Stat(string(path)); err == nil && info.IsDir() {
			if w.IsExcluded(args.Root, path, args.Exclude) {
				return false
			}

			if err := w.addDirs(watcher, args.Root, path, args.Exclude); err != nil {
				slog.Warn("cannot watch directory", "path", path, "error", err)
			}

			return true
		}
	}

	return w.IsCandidate(args.Root, path, args.Exclude)
}

func (w *workflow) addDirs(watcher *fsnotify.Watcher, root, dir m.Path, excludes m.ExcludeSet) error {
	dirs, err := w.Dirs(dir, excludes)
	if err != nil {
		return fmt.Errorf("get directories: %w", err)
	}

	for _, d := range dirs {
		if d != root && w.IsExcluded(root, d, excludes) {
			continue
		}

		if err := watcher.Add(string(d)); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	return nil
}

// rerun regenerates the report into a fresh sink. Only cancellation and a
// sink that cannot be opened end the watch; other failures are reported.
func (w *workflow) rerun(ctx context.Context, args SummarizeArgs, open SinkFactory) error {
	sink, err := open()
	if err != nil {
		return err
	}

	err = w.Summarize(ctx, args, sink)
	if closeErr := sink.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close report: %w", closeErr)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil
	default:
		slog.Error("report run failed", "root", args.Root, "error", err)
		w.DisplayFileError(ctx, args.Root, err)

		return nil
	}
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
