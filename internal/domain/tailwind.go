package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"bvi.dev/pkg/bvi/internal/domain/patch"
	m "bvi.dev/pkg/bvi/internal/model"
)

const (
	tailwindPackage     = "tailwindcss"
	tailwindVitePackage = "@tailwindcss/vite"

	tailwindStylesheet = "main.css"
	tailwindCSSImport  = `@import "tailwindcss";`
	tailwindViteImport = "import tailwindcss from '@tailwindcss/vite'"
	tailwindPlugin     = "tailwindcss()"
	vitePluginsField   = "plugins"

	dependencyDir = "node_modules"

	manifestName       = "package.json"
	manifestDependency = "dependencies"
)

// NuxtTailwindUnsupported is the reason reported for Tailwind CSS on Nuxt.
const NuxtTailwindUnsupported = "Tailwind CSS configuration is not available for Nuxt yet"

var viteConfigNames = []string{"vite.config.ts", "vite.config.js"}

func (c *configurator) tailwind(ctx context.Context, project m.Path, framework m.Framework, result *m.FeatureResult) error {
	if framework == m.FrameworkNuxt {
		result.Outcome = m.OutcomeUnsupported
		result.Reason = NuxtTailwindUnsupported

		return nil
	}

	stylesheet, err := c.locate(ctx, project, tailwindStylesheet)
	if err != nil {
		return err
	}

	if stylesheet == "" {
		skipFeature(result, fmt.Sprintf("Could not find %s in %s", tailwindStylesheet, project))
		return nil
	}

	var viteConfig m.Path

	for _, name := range viteConfigNames {
		if viteConfig, err = c.locate(ctx, project, name); err != nil {
			return err
		}

		if viteConfig != "" {
			break
		}
	}

	if viteConfig == "" {
		skipFeature(result, fmt.Sprintf("Could not find %s or %s in %s", viteConfigNames[0], viteConfigNames[1], project))
		return nil
	}

	warnDependencyMatch(project, stylesheet, result)
	warnDependencyMatch(project, viteConfig, result)

	manifest := c.fs.JoinPath(ctx, string(project), manifestName)
	if !c.exists(ctx, manifest) {
		skipFeature(result, fmt.Sprintf("Could not find %s in %s", manifestName, project))
		return nil
	}

	versions, err := c.resolveVersions(ctx, tailwindVitePackage, tailwindPackage)
	if err != nil {
		return err
	}

	if err := c.importStylesheet(ctx, stylesheet, result); err != nil {
		return err
	}

	if err := c.importVitePlugin(ctx, viteConfig, result); err != nil {
		return err
	}

	inserted, err := c.patcher.InsertArrayElement(ctx, viteConfig, vitePluginsField, tailwindPlugin, true)
	if err != nil {
		return err
	}

	if inserted {
		result.AddStep("Register Vite plugin", viteConfig, m.OutcomeApplied, tailwindPlugin)
	} else {
		result.AddStep("Register Vite plugin", viteConfig, m.OutcomeSkipped, "plugins array missing or already registered")
	}

	for _, pkg := range []string{tailwindVitePackage, tailwindPackage} {
		version := "^" + versions[pkg]

		if err := c.patcher.MergeJSONKey(ctx, manifest, manifestDependency, pkg, version); err != nil {
			return err
		}

		result.AddStep("Add dependency "+pkg, manifest, m.OutcomeApplied, version)
	}

	finishFeature(result, "Tailwind CSS is already configured")

	return nil
}

func (c *configurator) importStylesheet(ctx context.Context, stylesheet m.Path, result *m.FeatureResult) error {
	content, err := c.readFile(ctx, stylesheet)
	if err != nil {
		return err
	}

	if patch.HasCSSImport(content, tailwindPackage) {
		result.AddStep("Import Tailwind CSS", stylesheet, m.OutcomeSkipped, "already imported")
		return nil
	}

	if err := c.patcher.PrependLine(ctx, stylesheet, tailwindCSSImport); err != nil {
		return err
	}

	result.AddStep("Import Tailwind CSS", stylesheet, m.OutcomeApplied, tailwindCSSImport)

	return nil
}

func (c *configurator) importVitePlugin(ctx context.Context, viteConfig m.Path, result *m.FeatureResult) error {
	content, err := c.readFile(ctx, viteConfig)
	if err != nil {
		return err
	}

	if patch.HasLine(content, tailwindViteImport) {
		result.AddStep("Import Vite plugin", viteConfig, m.OutcomeSkipped, "already imported")
		return nil
	}

	if err := c.patcher.PrependLine(ctx, viteConfig, tailwindViteImport); err != nil {
		return err
	}

	result.AddStep("Import Vite plugin", viteConfig, m.OutcomeApplied, tailwindViteImport)

	return nil
}

// warnDependencyMatch flags a located target that lies inside an installed
// package. The first match is still used.
func warnDependencyMatch(project, path m.Path, result *m.FeatureResult) {
	rel := string(path)

	if absProject, err := filepath.Abs(string(project)); err == nil {
		if r, err := filepath.Rel(absProject, string(path)); err == nil {
			rel = r
		}
	}

	if !slices.Contains(strings.Split(filepath.ToSlash(rel), "/"), dependencyDir) {
		return
	}

	slog.Warn("Located target inside dependencies", "project", project, "path", path)

	result.AddWarning(fmt.Sprintf("%s lies inside %s and will be patched; run configure before installing dependencies", path, dependencyDir))
}
