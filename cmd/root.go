// Package cmd provides the root command and CLI setup for bvi.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bvi.dev/pkg/bvi/internal/adapter"
	"bvi.dev/pkg/bvi/internal/controller"
	"bvi.dev/pkg/bvi/internal/domain"
	m "bvi.dev/pkg/bvi/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var scaffoldAdapter adapter.ScaffoldAdapter
var patcher domain.Patcher

// ui and workflow are built on first use, once flags and config are known.
// Tests replace workflow with a mock before executing a command.
var ui controller.UI
var workflow domain.Workflow

var verboseFlag bool
var logFileFlag string
var noTUIFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scaffoldAdapter = adapter.NewLocalScaffoldAdapter()
	patcher = domain.NewPatcher(fsAdapter)
}

const rootLongDescription = `Better Vue Installer (bvi) initializes Vue.js based framework projects with
more options than the default installers.

It runs the official scaffolder for Vue.js or Nuxt, then applies optional
setup steps such as cleaning the demo template or installing Tailwind CSS.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "bvi",
		Short:        "Better Vue Installer",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")

	cmd.PersistentFlags().BoolVar(&noTUIFlag, noTUIFlagName, viper.GetBool(noTUIConfigKey), "use plain text prompts instead of the interactive interface")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noTUIFlagName), noTUIConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the workflow, building it for cmd on first use.
func currentWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	interactive := !viper.GetBool(noTUIConfigKey) && controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout)
	ui = controller.NewUI(cmd, interactive)

	registry := adapter.NewNPMRegistryAdapter(viper.GetString(registryURLKey), registryTimeout())
	configurator := domain.NewConfigurator(fsAdapter, registry, patcher, cleanPatternOptions()...)

	workflow = domain.NewWorkflow(ui, scaffoldAdapter, configurator, scaffoldCommands())

	return workflow
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseSelection reads the framework and feature flags shared by install and
// configure. featuresSet is true when --feature was given, even if empty.
func parseSelection(cmd *cobra.Command, frameworkValue string, featureValues []string) (m.Framework, []m.Feature, bool, error) {
	var framework m.Framework

	if frameworkValue != "" {
		parsed, err := m.ParseFramework(frameworkValue)
		if err != nil {
			return "", nil, false, err
		}

		framework = parsed
	}

	if !cmd.Flags().Changed(featureFlagName) {
		return framework, nil, false, nil
	}

	values := make([]string, 0, len(featureValues))
	for _, value := range featureValues {
		if value != "none" {
			values = append(values, value)
		}
	}

	features, err := m.ParseFeatures(values)
	if err != nil {
		return "", nil, false, err
	}

	return framework, features, true, nil
}
