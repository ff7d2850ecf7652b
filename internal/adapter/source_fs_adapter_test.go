package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("files before subdirectories in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.py"), "x = 1\n")
		writeTestFile(t, filepath.Join(root, "a.py"), "x = 1\n")
		mustMkdir(t, filepath.Join(root, "aaa"))
		writeTestFile(t, filepath.Join(root, "aaa", "z.py"), "x = 1\n")
		mustMkdir(t, filepath.Join(root, "ccc"))
		writeTestFile(t, filepath.Join(root, "ccc", "c.py"), "x = 1\n")

		visited := collectWalk(t, adapter, root, m.NewExcludeSet())

		assert.Equal(t, []string{
			filepath.Join(root, "a.py"),
			filepath.Join(root, "b.py"),
			filepath.Join(root, "aaa", "z.py"),
			filepath.Join(root, "ccc", "c.py"),
		}, visited)
	})

	t.Run("only python files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.py"), "")
		writeTestFile(t, filepath.Join(root, "README.md"), "")
		writeTestFile(t, filepath.Join(root, "setup.pyc"), "")

		visited := collectWalk(t, adapter, root, m.NewExcludeSet())
		assert.Equal(t, []string{filepath.Join(root, "main.py")}, visited)
	})

	t.Run("default excludes skip directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		for _, dir := range []string{".git", ".venv311", "__pycache__", "pkg.egg-info", "build", "dist", "src"} {
			mustMkdir(t, filepath.Join(root, dir))
			writeTestFile(t, filepath.Join(root, dir, "mod.py"), "")
		}

		visited := collectWalk(t, adapter, root, m.NewExcludeSet())
		assert.Equal(t, []string{filepath.Join(root, "src", "mod.py")}, visited)
	})

	t.Run("user patterns match file names", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "models.py"), "")
		writeTestFile(t, filepath.Join(root, "test_models.py"), "")
		mustMkdir(t, filepath.Join(root, "migrations"))
		writeTestFile(t, filepath.Join(root, "migrations", "0001.py"), "")

		visited := collectWalk(t, adapter, root, m.NewExcludeSet("test_*|migrations"))
		assert.Equal(t, []string{filepath.Join(root, "models.py")}, visited)
	})

	t.Run("patterns with a slash match relative paths", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "app"))
		mustMkdir(t, filepath.Join(root, "app", "generated"))
		mustMkdir(t, filepath.Join(root, "lib"))
		mustMkdir(t, filepath.Join(root, "lib", "generated"))
		writeTestFile(t, filepath.Join(root, "app", "generated", "a.py"), "")
		writeTestFile(t, filepath.Join(root, "lib", "generated", "b.py"), "")

		visited := collectWalk(t, adapter, root, m.NewExcludeSet("app/generated"))
		assert.Equal(t, []string{filepath.Join(root, "lib", "generated", "b.py")}, visited)
	})

	t.Run("root spelling is preserved", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.py"), "")

		visited := collectWalk(t, adapter, root+"/", m.NewExcludeSet())
		assert.Equal(t, []string{root + "/a.py"}, visited)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := filepath.Join(t.TempDir(), "missing")

		err := adapter.Walk(context.Background(), m.Path(root), m.NewExcludeSet(), func(m.Path) error { return nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("file root is an error", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := filepath.Join(t.TempDir(), "a.py")
		writeTestFile(t, root, "")

		err := adapter.Walk(context.Background(), m.Path(root), m.NewExcludeSet(), func(m.Path) error { return nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.py"), "")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), m.NewExcludeSet(), func(m.Path) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalSourceFSAdapter_Dirs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "pkg"))
	mustMkdir(t, filepath.Join(root, "pkg", "sub"))
	mustMkdir(t, filepath.Join(root, "__pycache__"))

	dirs, err := adapter.Dirs(m.Path(root), m.NewExcludeSet())
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(root),
		m.Path(filepath.Join(root, "pkg")),
		m.Path(filepath.Join(root, "pkg", "sub")),
	}, dirs)
}

func TestLocalSourceFSAdapter_IsCandidate(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := m.Path("/project")
	excludes := m.NewExcludeSet("tests")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"python file", "/project/pkg/mod.py", true},
		{"not python", "/project/pkg/mod.txt", false},
		{"excluded directory", "/project/.venv/lib/mod.py", false},
		{"user excluded directory", "/project/tests/test_mod.py", false},
		{"outside root", "/elsewhere/mod.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.IsCandidate(root, m.Path(tt.path), excludes))
		})
	}
}

func TestLocalSourceFSAdapter_IsExcluded(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := m.Path("/project")
	excludes := m.NewExcludeSet()

	assert.False(t, adapter.IsExcluded(root, root, excludes))
	assert.False(t, adapter.IsExcluded(root, "/project/pkg", excludes))
	assert.True(t, adapter.IsExcluded(root, "/project/pkg/__pycache__", excludes))
	assert.True(t, adapter.IsExcluded(root, "/other", excludes))
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	content := "def main():\n    pass\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "pkg", "mod.py")

	rel, err := adapter.RelPath(m.Path(root), m.Path(file))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("pkg", "mod.py")), rel)

	info, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "./a.py", joinPath(".", "a.py"))
	assert.Equal(t, "./a.py", joinPath("./", "a.py"))
	assert.Equal(t, "src/pkg/a.py", joinPath("src/pkg", "a.py"))
}

func collectWalk(t *testing.T, adapter *LocalSourceFSAdapter, root string, excludes m.ExcludeSet) []string {
	t.Helper()

	var visited []string

	err := adapter.Walk(context.Background(), m.Path(root), excludes, func(path m.Path) error {
		visited = append(visited, string(path))
		return nil
	})
	require.NoError(t, err)

	return visited
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
