package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvi.dev/pkg/bvi/internal/controller"
	m "bvi.dev/pkg/bvi/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "bvi", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{verboseFlagName, logFileFlagName, noTUIFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "official scaffolder for Vue.js or Nuxt")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"install", "configure", "init", "version"})
}

func TestInit(t *testing.T) {
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, scaffoldAdapter)
	assert.NotNil(t, patcher)
}

func TestCurrentWorkflow_BuildsPlainUIWhenTUIDisabled(t *testing.T) {
	originalWorkflow, originalUI := workflow, ui
	t.Cleanup(func() { workflow, ui = originalWorkflow, originalUI })

	workflow = nil
	viper.Set(noTUIConfigKey, true)
	t.Cleanup(func() { viper.Set(noTUIConfigKey, defaultNoTUI) })

	cmd := newRootCmd()
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})

	built := currentWorkflow(cmd)
	require.NotNil(t, built)
	assert.Same(t, built, currentWorkflow(cmd))
	assert.IsType(t, &controller.SimpleUI{}, ui)
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantFramework m.Framework
		wantFeatures  []m.Feature
		wantSet       bool
		wantErr       error
	}{
		{name: "nothing given"},
		{
			name:          "framework only",
			args:          []string{"--framework", " Nuxt "},
			wantFramework: m.FrameworkNuxt,
		},
		{
			name:         "features",
			args:         []string{"--feature", "tailwindcss,clean", "--feature", "clean"},
			wantFeatures: []m.Feature{m.FeatureTailwind, m.FeatureClean},
			wantSet:      true,
		},
		{
			name:         "none selects no feature",
			args:         []string{"--feature", "none"},
			wantFeatures: []m.Feature{},
			wantSet:      true,
		},
		{
			name:    "unknown framework",
			args:    []string{"--framework", "svelte"},
			wantErr: m.ErrUnknownFramework,
		},
		{
			name:    "unknown feature",
			args:    []string{"--feature", "eslint"},
			wantErr: m.ErrUnknownFeature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var framework string
			var features []string

			cmd := &cobra.Command{Use: "test"}
			cmd.Flags().StringVar(&framework, frameworkFlagName, "", "")
			cmd.Flags().StringSliceVar(&features, featureFlagName, nil, "")
			require.NoError(t, cmd.ParseFlags(tt.args))

			gotFramework, gotFeatures, gotSet, err := parseSelection(cmd, framework, features)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFramework, gotFramework)
			assert.Equal(t, tt.wantFeatures, gotFeatures)
			assert.Equal(t, tt.wantSet, gotSet)
		})
	}
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	t.Cleanup(func() { rootCmd = originalRootCmd })

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// A successful command must return without exiting.
	Execute()
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "error occurred")
}
