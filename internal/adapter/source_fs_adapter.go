// Package adapter contains the infrastructure adapters of pycodemap: file
// enumeration, Python parsing and report sinks.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// pythonExt is the suffix a file needs to be summarized.
const pythonExt = ".py"

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning a project, so the workflow can be tested against temp
// directories without reaching for `os` directly.
type SourceFSAdapter interface {
	// Walk calls fn for every candidate Python file under root, top-down:
	// the files of a directory first, then its subdirectories, each in
	// lexical order. Excluded directories are not entered.
	Walk(ctx context.Context, root m.Path, excludes m.ExcludeSet, fn FileVisitFunc) error

	// Dirs returns root and every directory Walk would enter.
	Dirs(root m.Path, excludes m.ExcludeSet) ([]m.Path, error)

	// IsCandidate reports whether path, found under root, is a Python file
	// Walk would visit. Used to filter watch events.
	IsCandidate(root, path m.Path, excludes m.ExcludeSet) bool

	// IsExcluded reports whether path lies outside root or any component
	// between root and path matches an exclusion pattern.
	IsExcluded(root, path m.Path, excludes m.ExcludeSet) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FileVisitFunc receives each candidate file found by Walk. Returning an error
// stops the walk.
type FileVisitFunc func(path m.Path) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over candidate files under root.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, excludes m.ExcludeSet, fn FileVisitFunc) error {
	if err := a.checkRoot(root); err != nil {
		return err
	}

	w := walker{root: string(root), patterns: excludes.Patterns()}

	return w.walk(ctx, string(root), fn)
}

// Dirs lists the directories Walk would enter, root first.
func (a *LocalSourceFSAdapter) Dirs(root m.Path, excludes m.ExcludeSet) ([]m.Path, error) {
	if err := a.checkRoot(root); err != nil {
		return nil, err
	}

	w := walker{root: string(root), patterns: excludes.Patterns()}
	dirs := []m.Path{root}

	var collect func(dir string) error

	collect = func(dir string) error {
		_, subdirs, err := w.list(dir)
		if err != nil {
			return err
		}

		for _, sub := range subdirs {
			dirs = append(dirs, m.Path(sub))
			if err := collect(sub); err != nil {
				return err
			}
		}

		return nil
	}

	if err := collect(string(root)); err != nil {
		return nil, err
	}

	return dirs, nil
}

// IsCandidate checks a path against the extension and exclusion rules.
func (a *LocalSourceFSAdapter) IsCandidate(root, path m.Path, excludes m.ExcludeSet) bool {
	if !strings.HasSuffix(string(path), pythonExt) {
		return false
	}

	return !a.IsExcluded(root, path, excludes)
}

// IsExcluded checks every directory between root and path, and path itself.
func (a *LocalSourceFSAdapter) IsExcluded(root, path m.Path, excludes m.ExcludeSet) bool {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return true
	}

	if rel == "." {
		return false
	}

	w := walker{root: string(root), patterns: excludes.Patterns()}
	parts := strings.Split(filepath.ToSlash(rel), "/")

	for i, part := range parts {
		if w.excluded(part, strings.Join(parts[:i+1], "/")) {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

func (a *LocalSourceFSAdapter) checkRoot(root m.Path) error {
	info, err := os.Stat(string(root))
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("root path error: %s is not a directory", root)
	}

	return nil
}

type walker struct {
	root     string
	patterns []string
}

func (w walker) walk(ctx context.Context, dir string, fn FileVisitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	files, subdirs, err := w.list(dir)
	if err != nil {
		if dir == w.root {
			return fmt.Errorf("read %s: %w", dir, err)
		}

		slog.Warn("skipping unreadable directory", "path", dir, "error", err)

		return nil
	}

	for _, file := range files {
		if err := fn(m.Path(file)); err != nil {
			return err
		}
	}

	for _, sub := range subdirs {
		if err := w.walk(ctx, sub, fn); err != nil {
			return err
		}
	}

	return nil
}

// list splits a directory into candidate files and enterable subdirectories.
// Symlinked directories are listed as neither: they are not followed.
func (w walker) list(dir string) ([]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var files, subdirs []string

	for _, entry := range entries {
		name := entry.Name()
		full := joinPath(dir, name)
		rel := w.rel(full)

		if entry.IsDir() {
			if !w.excluded(name, rel) {
				subdirs = append(subdirs, full)
			}

			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(full); err == nil && info.IsDir() {
				continue
			}
		}

		if strings.HasSuffix(name, pythonExt) && !w.excluded(name, rel) {
			files = append(files, full)
		}
	}

	return files, subdirs, nil
}

// excluded matches a base name against every pattern; patterns holding a
// slash are matched against the root-relative path instead.
func (w walker) excluded(name, rel string) bool {
	for _, pattern := range w.patterns {
		target := name
		if strings.Contains(pattern, "/") {
			target = rel
		}

		ok, err := doublestar.Match(pattern, target)
		if err != nil {
			slog.Debug("invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}

		if ok {
			return true
		}
	}

	return false
}

func (w walker) rel(full string) string {
	rel, err := filepath.Rel(w.root, full)
	if err != nil {
		return full
	}

	return filepath.ToSlash(rel)
}

// joinPath appends name to dir without cleaning dir, so a root given as "./"
// or "src/" keeps its spelling in report headers.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}

	return dir + string(filepath.Separator) + name
}
