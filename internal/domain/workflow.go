package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bvi.dev/pkg/bvi/internal/adapter"
	"bvi.dev/pkg/bvi/internal/controller"
	m "bvi.dev/pkg/bvi/internal/model"
)

// ProjectNamePlaceholder is suggested by the project name prompt.
const ProjectNamePlaceholder = "./my-app"

// Messages shown by the workflows.
const (
	InstallTitle         = "Better Vue Installer setup"
	ConfigureTitle       = "Better Vue Installer configuration"
	InstallComplete      = "Installation complete!"
	InstallIncomplete    = "Installation incomplete!"
	ConfigureComplete    = "Configuration complete!"
	ConfigureIncomplete  = "Configuration incomplete!"
	OperationCancelled   = "Operation cancelled."
	scaffoldFailedFormat = "%s failed or was aborted."
)

// InstallArgs contains the answers already known when install starts.
// Empty values are asked interactively.
type InstallArgs struct {
	ProjectName string
	Framework   m.Framework
	Features    []m.Feature
	// FeaturesSet marks Features as final even when empty.
	FeaturesSet bool
}

// ConfigureArgs contains the arguments for configuring an existing project.
type ConfigureArgs struct {
	ProjectDir  m.Path
	Framework   m.Framework
	Features    []m.Feature
	FeaturesSet bool
}

// Workflow drives the user facing flows of the installer.
type Workflow interface {
	// Install scaffolds a new project and applies the selected features.
	Install(ctx context.Context, args InstallArgs) error
	// Configure applies the selected features to an existing project.
	Configure(ctx context.Context, args ConfigureArgs) error
}

type workflow struct {
	controller.UI
	adapter.ScaffoldAdapter
	configurator Configurator
	commands     map[m.Framework]string
}

// NewWorkflow creates a Workflow. commands maps each framework to the
// scaffolding command the project name is appended to.
func NewWorkflow(
	ui controller.UI,
	scaffold adapter.ScaffoldAdapter,
	configurator Configurator,
	commands map[m.Framework]string,
) Workflow {
	return &workflow{
		UI:              ui,
		ScaffoldAdapter: scaffold,
		configurator:    configurator,
		commands:        commands,
	}
}

func (w *workflow) Install(ctx context.Context, args InstallArgs) error {
	err := w.install(ctx, args)
	if errors.Is(err, m.ErrCancelled) {
		w.Cancel(ctx, OperationCancelled)
		return nil
	}

	return err
}

func (w *workflow) install(ctx context.Context, args InstallArgs) error {
	w.Logo(ctx)
	w.Intro(ctx, InstallTitle)

	name := args.ProjectName

	if name == "" {
		var err error

		if name, err = w.AskProjectName(ctx, ProjectNamePlaceholder); err != nil {
			return err
		}
	}

	framework, err := w.framework(ctx, args.Framework)
	if err != nil {
		return err
	}

	command, ok := w.commands[framework]
	if !ok || command == "" {
		return fmt.Errorf("%w: no scaffold command for %q", m.ErrUnknownFramework, framework)
	}

	w.Step(ctx, fmt.Sprintf("Running: %s %s", command, name))

	if err := w.Run(ctx, command, name); err != nil {
		w.Error(ctx, fmt.Sprintf(scaffoldFailedFormat, command))
		w.Outro(ctx, InstallIncomplete)

		return err
	}

	features, err := w.features(ctx, args.Features, args.FeaturesSet)
	if err != nil {
		return err
	}

	if err := w.apply(ctx, m.Path(name), framework, features); err != nil {
		w.Outro(ctx, InstallIncomplete)
		return err
	}

	w.Outro(ctx, InstallComplete)

	return nil
}

func (w *workflow) Configure(ctx context.Context, args ConfigureArgs) error {
	err := w.configure(ctx, args)
	if errors.Is(err, m.ErrCancelled) {
		w.Cancel(ctx, OperationCancelled)
		return nil
	}

	return err
}

func (w *workflow) configure(ctx context.Context, args ConfigureArgs) error {
	w.Logo(ctx)
	w.Intro(ctx, ConfigureTitle)

	project := args.ProjectDir
	if project == "" {
		project = "."
	}

	framework, err := w.framework(ctx, args.Framework)
	if err != nil {
		return err
	}

	features, err := w.features(ctx, args.Features, args.FeaturesSet)
	if err != nil {
		return err
	}

	if err := w.apply(ctx, project, framework, features); err != nil {
		w.Outro(ctx, ConfigureIncomplete)
		return err
	}

	w.Outro(ctx, ConfigureComplete)

	return nil
}

func (w *workflow) framework(ctx context.Context, preset m.Framework) (m.Framework, error) {
	if preset != "" {
		if !preset.Valid() {
			return "", fmt.Errorf("%w: %q", m.ErrUnknownFramework, preset)
		}

		return preset, nil
	}

	return w.SelectFramework(ctx, m.Frameworks)
}

func (w *workflow) features(ctx context.Context, preset []m.Feature, set bool) ([]m.Feature, error) {
	if set {
		return preset, nil
	}

	return w.SelectFeatures(ctx, m.Features, m.DefaultFeatures)
}

// apply configures the features in order. A skipped or unsupported feature is
// reported and the next one runs; any error stops the run after the results
// collected so far are shown.
func (w *workflow) apply(ctx context.Context, project m.Path, framework m.Framework, features []m.Feature) error {
	results := make([]m.FeatureResult, 0, len(features))

	var runErr error

	for _, feature := range features {
		w.Step(ctx, fmt.Sprintf("Configuring %s...", feature.Title()))

		result, err := w.configurator.Configure(ctx, project, framework, feature)
		results = append(results, result)

		if err != nil {
			w.Error(ctx, fmt.Sprintf("%s failed: %v", feature.Title(), err))
			runErr = fmt.Errorf("configure %s: %w", feature, err)

			break
		}

		w.report(ctx, result)
	}

	if err := w.DisplayResults(ctx, results); err != nil {
		slog.Warn("Failed to display results", "error", err)
	}

	return runErr
}

func (w *workflow) report(ctx context.Context, result m.FeatureResult) {
	title := result.Feature.Title()

	for _, warning := range result.Warnings {
		w.Warn(ctx, warning)
	}

	switch result.Outcome {
	case m.OutcomeApplied:
		w.Success(ctx, title+" configured")
	case m.OutcomeUnsupported:
		w.Warn(ctx, result.Reason)
	case m.OutcomeSkipped:
		// No steps means a target file was missing.
		if len(result.Steps) == 0 {
			w.Error(ctx, result.Reason)
		} else {
			w.Success(ctx, fmt.Sprintf("%s: %s", title, result.Reason))
		}
	case m.OutcomeFailed:
		w.Error(ctx, fmt.Sprintf("%s failed: %s", title, result.Reason))
	}
}
