package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"bvi.dev/pkg/bvi/internal/adapter"
	m "bvi.dev/pkg/bvi/internal/model"
)

// Configurator applies a post-install feature to a scaffolded project.
type Configurator interface {
	// Configure runs feature against the project rooted at project. A target
	// file that cannot be located skips the feature and is reported in the
	// result, not as an error. Any other failure stops the feature and is
	// returned; steps already applied stay applied.
	Configure(ctx context.Context, project m.Path, framework m.Framework, feature m.Feature) (m.FeatureResult, error)
}

// ConfiguratorOption customizes a Configurator.
type ConfiguratorOption func(*configurator)

// WithCleanPatterns replaces the glob patterns removed by the clean feature
// for framework.
func WithCleanPatterns(framework m.Framework, patterns []string) ConfiguratorOption {
	return func(c *configurator) {
		c.cleanPatterns[framework] = append([]string(nil), patterns...)
	}
}

type configurator struct {
	fs            adapter.SourceFSAdapter
	registry      adapter.RegistryAdapter
	patcher       Patcher
	cleanPatterns map[m.Framework][]string
}

// NewConfigurator creates a Configurator.
func NewConfigurator(
	fsAdapter adapter.SourceFSAdapter,
	registry adapter.RegistryAdapter,
	patcher Patcher,
	options ...ConfiguratorOption,
) Configurator {
	c := &configurator{
		fs:            fsAdapter,
		registry:      registry,
		patcher:       patcher,
		cleanPatterns: make(map[m.Framework][]string, len(DefaultCleanPatterns)),
	}

	for framework, patterns := range DefaultCleanPatterns {
		c.cleanPatterns[framework] = append([]string(nil), patterns...)
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *configurator) Configure(ctx context.Context, project m.Path, framework m.Framework, feature m.Feature) (m.FeatureResult, error) {
	result := m.FeatureResult{Feature: feature, Framework: framework}

	if !framework.Valid() {
		return failFeature(&result, fmt.Errorf("%w: %q", m.ErrUnknownFramework, framework))
	}

	slog.Info("Configuring feature", "feature", feature, "framework", framework, "project", project)

	var err error

	switch feature {
	case m.FeatureClean:
		err = c.clean(ctx, project, framework, &result)
	case m.FeatureTailwind:
		err = c.tailwind(ctx, project, framework, &result)
	default:
		err = fmt.Errorf("%w: %q", m.ErrUnknownFeature, feature)
	}

	if err != nil {
		slog.Error("Feature failed", "feature", feature, "project", project, "error", err)

		return failFeature(&result, err)
	}

	slog.Info("Feature finished", "feature", feature, "outcome", result.Outcome.String(), "reason", result.Reason)

	return result, nil
}

// locate finds name below project. It returns an empty path when nothing
// matches so the caller can skip the feature.
func (c *configurator) locate(ctx context.Context, project m.Path, name string) (m.Path, error) {
	found, err := c.fs.FindElement(ctx, project, name, m.ElementFile)
	if err == nil {
		return found, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	if errors.Is(err, m.ErrNotFound) {
		return "", nil
	}

	return "", err
}

func (c *configurator) exists(ctx context.Context, path m.Path) bool {
	info, err := c.fs.FileInfo(ctx, path)

	return err == nil && info.Mode().IsRegular()
}

// resolveVersions fetches the latest version of every package concurrently.
// It fails as a whole when any lookup fails.
func (c *configurator) resolveVersions(ctx context.Context, packages ...string) (map[string]string, error) {
	versions := make([]string, len(packages))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, pkg := range packages {
		group.Go(func() error {
			version, err := c.registry.LatestVersion(groupCtx, pkg)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", pkg, err)
			}

			versions[i] = version

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	resolved := make(map[string]string, len(packages))
	for i, pkg := range packages {
		resolved[pkg] = versions[i]
	}

	return resolved, nil
}

func (c *configurator) readFile(ctx context.Context, path m.Path) ([]byte, error) {
	content, err := c.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", m.ErrIO, path, err)
	}

	return content, nil
}

func failFeature(result *m.FeatureResult, err error) (m.FeatureResult, error) {
	result.Outcome = m.OutcomeFailed
	result.Reason = err.Error()

	return *result, err
}

func skipFeature(result *m.FeatureResult, reason string) {
	result.Outcome = m.OutcomeSkipped
	result.Reason = reason
}

func finishFeature(result *m.FeatureResult, idleReason string) {
	if result.Applied() {
		result.Outcome = m.OutcomeApplied
		return
	}

	skipFeature(result, idleReason)
}
