package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bvi.dev/pkg/bvi/internal/domain"
	domainmocks "bvi.dev/pkg/bvi/internal/domain/mocks"
	m "bvi.dev/pkg/bvi/internal/model"
)

func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	original := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = original })

	return mockWorkflow
}

func newTestRootCmd(sub *cobra.Command, args ...string) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd
}

func TestInstallCmd_Interactive(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.EXPECT().Install(mock.Anything, domain.InstallArgs{}).Return(nil)

	cmd := newTestRootCmd(newInstallCmd(), "install")

	require.NoError(t, cmd.Execute())
}

func TestInstallCmd_Flags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.EXPECT().Install(mock.Anything, domain.InstallArgs{
		ProjectName: "my-app",
		Framework:   m.FrameworkVue,
		Features:    []m.Feature{m.FeatureClean, m.FeatureTailwind},
		FeaturesSet: true,
	}).Return(nil)

	cmd := newTestRootCmd(newInstallCmd(), "install", "-n", "my-app", "-f", "vue", "--feature", "clean,tailwindcss")

	require.NoError(t, cmd.Execute())
}

func TestInstallCmd_SetupAliasWithoutFeatures(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.EXPECT().
		Install(mock.Anything, mock.MatchedBy(func(args domain.InstallArgs) bool {
			return args.Framework == m.FrameworkNuxt && args.FeaturesSet && len(args.Features) == 0
		})).
		Return(nil)

	cmd := newTestRootCmd(newInstallCmd(), "setup", "--framework", "nuxt", "--feature", "none")

	require.NoError(t, cmd.Execute())
}

func TestInstallCmd_InvalidFramework(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd(newInstallCmd(), "install", "--framework", "svelte")

	err := cmd.Execute()
	require.ErrorIs(t, err, m.ErrUnknownFramework)
}

func TestInstallCmd_RejectsArguments(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd(newInstallCmd(), "install", "my-app")

	require.Error(t, cmd.Execute())
}

func TestInstallCmd_WorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	failure := errors.New("scaffold failed")
	mockWorkflow.EXPECT().Install(mock.Anything, mock.Anything).Return(failure)

	cmd := newTestRootCmd(newInstallCmd(), "install", "--name", "my-app")

	err := cmd.Execute()
	assert.ErrorIs(t, err, failure)
}
