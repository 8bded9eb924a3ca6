package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bvi.dev/pkg/bvi/internal/model"
)

func newTestCommand(input string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)

	return cmd, &out
}

func TestSimpleUI_Messages(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand("")
	ui := NewSimpleUI(cmd)

	ui.Logo(ctx)
	ui.Intro(ctx, "Better Vue Installer setup")
	ui.Step(ctx, "Running: npm create vue@latest my-app")
	ui.Success(ctx, "Tailwind CSS configured")
	ui.Warn(ctx, "not available")
	ui.Error(ctx, "failed")
	ui.Outro(ctx, "Installation complete!")

	output := out.String()
	assert.Contains(t, output, "|_|_)etter")
	assert.Contains(t, output, "== Better Vue Installer setup ==")
	assert.Contains(t, output, "> Running: npm create vue@latest my-app")
	assert.Contains(t, output, "[ok] Tailwind CSS configured")
	assert.Contains(t, output, "[warn] not available")
	assert.Contains(t, output, "[error] failed")
	assert.Contains(t, output, "Installation complete!")
}

func TestSimpleUI_AskProjectName(t *testing.T) {
	ctx := context.Background()

	t.Run("re-asks on empty answer", func(t *testing.T) {
		cmd, out := newTestCommand("\n  \n my-app \n")
		ui := NewSimpleUI(cmd)

		name, err := ui.AskProjectName(ctx, "./my-app")
		require.NoError(t, err)
		assert.Equal(t, "my-app", name)
		assert.Equal(t, 2, strings.Count(out.String(), ProjectNameRequired))
	})

	t.Run("last line without newline", func(t *testing.T) {
		cmd, _ := newTestCommand("site")
		ui := NewSimpleUI(cmd)

		name, err := ui.AskProjectName(ctx, "./my-app")
		require.NoError(t, err)
		assert.Equal(t, "site", name)
	})

	t.Run("end of input cancels", func(t *testing.T) {
		cmd, _ := newTestCommand("")
		ui := NewSimpleUI(cmd)

		_, err := ui.AskProjectName(ctx, "./my-app")
		require.ErrorIs(t, err, m.ErrCancelled)
	})
}

func TestSimpleUI_SelectFramework(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  m.Framework
	}{
		{name: "by number", input: "2\n", want: m.FrameworkNuxt},
		{name: "by name", input: "Vue\n", want: m.FrameworkVue},
		{name: "invalid then valid", input: "3\nsvelte\n1\n", want: m.FrameworkVue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestCommand(tt.input)
			ui := NewSimpleUI(cmd)

			framework, err := ui.SelectFramework(ctx, m.Frameworks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, framework)
		})
	}

	t.Run("end of input cancels", func(t *testing.T) {
		cmd, _ := newTestCommand("7\n")
		ui := NewSimpleUI(cmd)

		_, err := ui.SelectFramework(ctx, m.Frameworks)
		require.ErrorIs(t, err, m.ErrCancelled)
	})
}

func TestSimpleUI_SelectFeatures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  []m.Feature
	}{
		{name: "empty keeps initial", input: "\n", want: []m.Feature{m.FeatureClean}},
		{name: "none", input: "none\n", want: []m.Feature{}},
		{name: "numbers", input: "2, 1\n", want: []m.Feature{m.FeatureTailwind, m.FeatureClean}},
		{name: "names with duplicates", input: "tailwindcss tailwindcss\n", want: []m.Feature{m.FeatureTailwind}},
		{name: "invalid then valid", input: "prettier\n1\n", want: []m.Feature{m.FeatureClean}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestCommand(tt.input)
			ui := NewSimpleUI(cmd)

			features, err := ui.SelectFeatures(ctx, m.Features, m.DefaultFeatures)
			require.NoError(t, err)
			assert.Equal(t, tt.want, features)
		})
	}
}

func TestSimpleUI_DisplayResults(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand("")
	ui := NewSimpleUI(cmd)

	result := m.FeatureResult{Feature: m.FeatureTailwind, Outcome: m.OutcomeApplied}
	result.AddStep("Import Tailwind CSS", "src/assets/main.css", m.OutcomeApplied, `@import "tailwindcss";`)

	require.NoError(t, ui.DisplayResults(ctx, []m.FeatureResult{result}))

	output := out.String()
	assert.Contains(t, output, "Import Tailwind CSS")
	assert.Contains(t, output, "src/assets/main.css")
	assert.Contains(t, output, "applied")

	out.Reset()
	require.NoError(t, ui.DisplayResults(ctx, nil))
	assert.Empty(t, out.String())
}
