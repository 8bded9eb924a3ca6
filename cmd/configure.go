package cmd

import (
	"github.com/spf13/cobra"

	"bvi.dev/pkg/bvi/internal/domain"
	m "bvi.dev/pkg/bvi/internal/model"
)

var configureFrameworkFlag string
var configureFeatureFlag []string

func newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure [DIR]",
		Short: "Apply setup steps to an existing project",
		Long: `Run the setup steps against a project that was already scaffolded.
DIR defaults to the current directory.

Target files such as main.css and vite.config.ts are found by searching DIR
recursively, and the first match wins. Once dependencies are installed that
match can lie inside node_modules; bvi warns when it does, so run configure
before installing dependencies.`,
		Example: `  bvi configure
  bvi configure ./my-app --framework vue --feature tailwindcss`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			framework, features, featuresSet, err := parseSelection(cmd, configureFrameworkFlag, configureFeatureFlag)
			if err != nil {
				return err
			}

			var dir string
			if len(args) > 0 {
				dir = args[0]
			}

			return currentWorkflow(cmd).Configure(cmd.Context(), domain.ConfigureArgs{
				ProjectDir:  m.Path(dir),
				Framework:   framework,
				Features:    features,
				FeaturesSet: featuresSet,
			})
		},
	}

	cmd.Flags().StringVarP(&configureFrameworkFlag, frameworkFlagName, "f", "", "framework of the project (vue or nuxt)")
	cmd.Flags().StringSliceVar(&configureFeatureFlag, featureFlagName, nil, "setup steps to apply (clean, tailwindcss or none)")

	return cmd
}

// configureCmd represents the configure command.
var configureCmd = newConfigureCmd()

func init() {
	rootCmd.AddCommand(configureCmd)
}
