package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pycodemap.dev/pkg/pycodemap/internal/domain"
	domainmocks "pycodemap.dev/pkg/pycodemap/internal/domain/mocks"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

func TestStatsCmd_PassesArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Stats", mock.Anything, mock.MatchedBy(func(args domain.SummarizeArgs) bool {
		return args.Root == m.Path("./project") &&
			args.Options.NoAttributes &&
			args.Threads == 4 &&
			args.Strict
	})).Return(nil)

	_, err := runSubcommand(t, newStatsCmd(), mockWorkflow, "stats", "-a", "-p", "4", "--strict", "./project")
	require.NoError(t, err)
}

func TestStatsCmd_ConflictingScopeSkipsWorkflow(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := runSubcommand(t, newStatsCmd(), mockWorkflow, "stats", "-f", "-c")
	require.ErrorIs(t, err, m.ErrConflictingScope)
}
