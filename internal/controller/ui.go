// Package controller provides the interactive front-ends of the installer.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "bvi.dev/pkg/bvi/internal/model"
)

// ProjectNameRequired is shown when an empty project name is submitted.
const ProjectNameRequired = "Project name is required."

// UI defines everything the workflows show to or ask from the user.
// Implementations can use different output methods (simple text, TUI, etc).
// Prompts return model.ErrCancelled when the user aborts them.
type UI interface {
	Logo(ctx context.Context)
	Intro(ctx context.Context, title string)
	Outro(ctx context.Context, message string)
	Cancel(ctx context.Context, message string)
	Step(ctx context.Context, message string)
	Success(ctx context.Context, message string)
	Warn(ctx context.Context, message string)
	Error(ctx context.Context, message string)

	// AskProjectName asks for a non-empty project name. placeholder is only
	// a hint and is never returned as a default.
	AskProjectName(ctx context.Context, placeholder string) (string, error)
	SelectFramework(ctx context.Context, options []m.Framework) (m.Framework, error)
	// SelectFeatures lets the user pick any subset of options, initial
	// being preselected. An empty selection is valid.
	SelectFeatures(ctx context.Context, options []m.Feature, initial []m.Feature) ([]m.Feature, error)
	DisplayResults(ctx context.Context, results []m.FeatureResult) error
}

// NewUI returns the Bubble Tea front-end when interactive is true and the
// plain text one otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
