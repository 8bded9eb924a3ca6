package domain

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	m "bvi.dev/pkg/bvi/internal/model"
)

// DefaultCleanPatterns lists the demo files each scaffolder generates,
// relative to the project directory.
var DefaultCleanPatterns = map[m.Framework][]string{
	m.FrameworkVue: {
		"src/components/**/*.vue",
		"src/components/__tests__/**",
		"src/views/*.vue",
		"src/assets/logo.svg",
	},
	m.FrameworkNuxt: {
		"app/components/**/*.vue",
	},
}

// sourcePatterns match the project files that may import a demo file.
var sourcePatterns = map[m.Framework]string{
	m.FrameworkVue:  "src/**/*.{vue,js,ts,jsx,tsx,mjs,mts}",
	m.FrameworkNuxt: "app/**/*.{vue,js,ts}",
}

var rootComponents = map[m.Framework][]string{
	m.FrameworkVue:  {"src/App.vue"},
	m.FrameworkNuxt: {"app/app.vue", "app.vue"},
}

var rootTemplates = map[m.Framework]string{
	m.FrameworkVue: `<template>
  <main>
    <h1>Hello Vue!</h1>
  </main>
</template>
`,
	m.FrameworkNuxt: `<template>
  <div>
    <NuxtRouteAnnouncer />
    <h1>Hello Nuxt!</h1>
  </div>
</template>
`,
}

var routerFiles = map[m.Framework][]string{
	m.FrameworkVue: {"src/router/index.ts", "src/router/index.js"},
}

const vueRouterTemplate = `import { createRouter, createWebHistory } from 'vue-router'

const router = createRouter({
  history: createWebHistory(import.meta.env.BASE_URL),
  routes: [],
})

export default router
`

type cleanCandidate struct {
	path    m.Path
	pattern string
}

func (c *configurator) clean(ctx context.Context, project m.Path, framework m.Framework, result *m.FeatureResult) error {
	candidates, err := c.cleanCandidates(ctx, project, framework)
	if err != nil {
		return err
	}

	if err := c.resetRouter(ctx, project, framework, candidates, result); err != nil {
		return err
	}

	root := c.rootComponent(ctx, project, framework)

	retained, err := c.retainedDemoFiles(ctx, project, framework, candidates, root)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if importer, ok := retained[candidate.path]; ok {
			result.AddStep("Keep demo file", candidate.path, m.OutcomeSkipped, "still imported by "+string(importer))
			continue
		}

		if err := c.fs.RemoveAll(ctx, candidate.path); err != nil {
			return fmt.Errorf("%w: failed to remove %s: %w", m.ErrIO, candidate.path, err)
		}

		result.AddStep("Remove demo file", candidate.path, m.OutcomeApplied, candidate.pattern)
	}

	if len(candidates) == 0 {
		result.AddStep("Remove demo files", project, m.OutcomeSkipped, "no files matched")
	}

	if err := c.resetRootComponent(ctx, project, framework, root, result); err != nil {
		return err
	}

	finishFeature(result, "Nothing to clean")

	return nil
}

// cleanCandidates globs every clean pattern, keeping the first pattern that
// matched a file.
func (c *configurator) cleanCandidates(ctx context.Context, project m.Path, framework m.Framework) ([]cleanCandidate, error) {
	var candidates []cleanCandidate

	seen := make(map[m.Path]bool)

	for _, pattern := range c.cleanPatterns[framework] {
		matches, err := c.fs.Glob(ctx, project, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to match %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}

			seen[match] = true
			candidates = append(candidates, cleanCandidate{path: match, pattern: pattern})
		}
	}

	return candidates, nil
}

// resetRouter empties the demo routes when the router points at a file that
// is about to be removed.
func (c *configurator) resetRouter(ctx context.Context, project m.Path, framework m.Framework, candidates []cleanCandidate, result *m.FeatureResult) error {
	for _, name := range routerFiles[framework] {
		path := c.fs.JoinPath(ctx, string(project), name)
		if !c.exists(ctx, path) {
			continue
		}

		content, err := c.readFile(ctx, path)
		if err != nil {
			return err
		}

		if !referencesAny(content, candidates) {
			return nil
		}

		if err := c.fs.WriteFile(ctx, path, []byte(vueRouterTemplate)); err != nil {
			return fmt.Errorf("%w: failed to write %s: %w", m.ErrIO, path, err)
		}

		result.AddStep("Reset router", path, m.OutcomeApplied, "demo routes removed")

		return nil
	}

	return nil
}

// retainedDemoFiles maps every candidate that a surviving file still
// references to the first such file. A retained candidate survives too, so
// the files it references are retained as well.
//
// A reference is the candidate's base name after a slash, as in an import
// specifier. Unrelated files sharing that name keep the candidate, which
// errs on the side of not breaking the build.
func (c *configurator) retainedDemoFiles(ctx context.Context, project m.Path, framework m.Framework, candidates []cleanCandidate, root m.Path) (map[m.Path]m.Path, error) {
	retained := make(map[m.Path]m.Path)

	pattern, ok := sourcePatterns[framework]
	if !ok || len(candidates) == 0 {
		return retained, nil
	}

	sources, err := c.fs.Glob(ctx, project, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to match %q: %w", pattern, err)
	}

	pending := make(map[m.Path]bool, len(candidates))
	for _, candidate := range candidates {
		pending[candidate.path] = true
	}

	var survivors []m.Path

	contents := make(map[m.Path][]byte)

	for _, source := range sources {
		if pending[source] || source == root {
			continue
		}

		content, err := c.readFile(ctx, source)
		if err != nil {
			return nil, err
		}

		survivors = append(survivors, source)
		contents[source] = content
	}

	for changed := true; changed; {
		changed = false

		for _, candidate := range candidates {
			if _, ok := retained[candidate.path]; ok {
				continue
			}

			reference := []byte("/" + filepath.Base(string(candidate.path)))

			for _, survivor := range survivors {
				if !bytes.Contains(contents[survivor], reference) {
					continue
				}

				content, err := c.readFile(ctx, candidate.path)
				if err != nil {
					return nil, err
				}

				retained[candidate.path] = survivor
				survivors = append(survivors, candidate.path)
				contents[candidate.path] = content
				changed = true

				break
			}
		}
	}

	return retained, nil
}

func referencesAny(content []byte, candidates []cleanCandidate) bool {
	for _, candidate := range candidates {
		if bytes.Contains(content, []byte("/"+filepath.Base(string(candidate.path)))) {
			return true
		}
	}

	return false
}

// rootComponent returns the first existing root component, or "".
func (c *configurator) rootComponent(ctx context.Context, project m.Path, framework m.Framework) m.Path {
	for _, candidate := range rootComponents[framework] {
		path := c.fs.JoinPath(ctx, string(project), candidate)
		if c.exists(ctx, path) {
			return path
		}
	}

	return ""
}

func (c *configurator) resetRootComponent(ctx context.Context, project m.Path, framework m.Framework, root m.Path, result *m.FeatureResult) error {
	if root == "" {
		result.AddStep("Reset root component", project, m.OutcomeSkipped, "root component not found")
		return nil
	}

	if err := c.fs.WriteFile(ctx, root, []byte(rootTemplates[framework])); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", m.ErrIO, root, err)
	}

	result.AddStep("Reset root component", root, m.OutcomeApplied, "")

	return nil
}
