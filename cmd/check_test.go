package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pycodemap.dev/pkg/pycodemap/internal/domain"
	domainmocks "pycodemap.dev/pkg/pycodemap/internal/domain/mocks"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

func TestCheckCmd_ReportAndDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Report == m.Path("codemap.txt") && args.Root == m.Path("./src")
	})).Return(nil)

	_, err := runSubcommand(t, newCheckCmd(), mockWorkflow, "check", "codemap.txt", "./src")
	require.NoError(t, err)
}

func TestCheckCmd_DirectoryDefaultsToCurrent(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Report == m.Path("codemap.txt") && args.Root == m.Path(".")
	})).Return(nil)

	_, err := runSubcommand(t, newCheckCmd(), mockWorkflow, "check", "codemap.txt")
	require.NoError(t, err)
}

func TestCheckCmd_DriftFails(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Check", mock.Anything, mock.Anything).Return(domain.ErrReportDrift)

	_, err := runSubcommand(t, newCheckCmd(), mockWorkflow, "check", "codemap.txt")
	require.ErrorIs(t, err, domain.ErrReportDrift)
}

func TestCheckCmd_ReportIsRequired(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := runSubcommand(t, newCheckCmd(), mockWorkflow, "check")
	require.Error(t, err)
}
