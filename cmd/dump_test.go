package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pycodemap.dev/pkg/pycodemap/internal/domain"
	domainmocks "pycodemap.dev/pkg/pycodemap/internal/domain/mocks"
)

func writeDump(_ context.Context, _ domain.SummarizeArgs, w io.Writer) error {
	_, err := io.WriteString(w, "path: a.py\n")
	return err
}

func TestDumpCmd_WritesToStdout(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Dump", mock.Anything, mock.Anything, mock.Anything).Return(writeDump)

	out, err := runSubcommand(t, newDumpCmd(), mockWorkflow, "dump")
	require.NoError(t, err)
	assert.Equal(t, "path: a.py\n", out)
}

func TestDumpCmd_WritesToOutputFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	output := filepath.Join(t.TempDir(), "codemap.yaml")

	mockWorkflow.On("Dump", mock.Anything, mock.Anything, mock.Anything).Return(writeDump)

	out, err := runSubcommand(t, newDumpCmd(), mockWorkflow, "dump", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "path: a.py\n", string(contents))
}

func TestDumpCmd_OutputFileError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	output := filepath.Join(t.TempDir(), "missing", "codemap.yaml")

	_, err := runSubcommand(t, newDumpCmd(), mockWorkflow, "dump", "-o", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open output")
}
