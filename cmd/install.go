package cmd

import (
	"github.com/spf13/cobra"

	"bvi.dev/pkg/bvi/internal/domain"
)

var installNameFlag string
var installFrameworkFlag string
var installFeatureFlag []string

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install",
		Aliases: []string{"setup"},
		Short:   "Create a new Vue.js or Nuxt project",
		Long: `Scaffold a new project with the official installer of the chosen framework,
then apply the selected setup steps to it.

Anything not given through flags is asked interactively. Pass --feature none
to skip all setup steps.`,
		Example: `  bvi install
  bvi install --name my-app --framework vue --feature clean,tailwindcss
  bvi install -n my-app -f nuxt --feature none`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			framework, features, featuresSet, err := parseSelection(cmd, installFrameworkFlag, installFeatureFlag)
			if err != nil {
				return err
			}

			return currentWorkflow(cmd).Install(cmd.Context(), domain.InstallArgs{
				ProjectName: installNameFlag,
				Framework:   framework,
				Features:    features,
				FeaturesSet: featuresSet,
			})
		},
	}

	cmd.Flags().StringVarP(&installNameFlag, nameFlagName, "n", "", "project name passed to the scaffolder")
	cmd.Flags().StringVarP(&installFrameworkFlag, frameworkFlagName, "f", "", "framework to scaffold (vue or nuxt)")
	cmd.Flags().StringSliceVar(&installFeatureFlag, featureFlagName, nil, "setup steps to apply (clean, tailwindcss or none)")

	return cmd
}

// installCmd represents the install command.
var installCmd = newInstallCmd()

func init() {
	rootCmd.AddCommand(installCmd)
}
