package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	m "bvi.dev/pkg/bvi/internal/model"
)

// SimpleUI implements UI with plain text on the command's streams. Prompt
// answers are read line by line from the command input, which makes it
// usable in pipes and scripts.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Logo prints the banner without colours.
func (s *SimpleUI) Logo(_ context.Context) {
	s.printf("%s\n", plainLogo())
}

// Intro prints the session title.
func (s *SimpleUI) Intro(_ context.Context, title string) {
	s.printf("== %s ==\n", title)
}

// Outro prints the closing message.
func (s *SimpleUI) Outro(_ context.Context, message string) {
	s.printf("%s\n", message)
}

// Cancel prints the cancellation message.
func (s *SimpleUI) Cancel(_ context.Context, message string) {
	s.printf("%s\n", message)
}

// Step prints a step announcement.
func (s *SimpleUI) Step(_ context.Context, message string) {
	s.printf("> %s\n", message)
}

// Success prints a success line.
func (s *SimpleUI) Success(_ context.Context, message string) {
	s.printf("[ok] %s\n", message)
}

// Warn prints a warning line.
func (s *SimpleUI) Warn(_ context.Context, message string) {
	s.printf("[warn] %s\n", message)
}

// Error prints an error line.
func (s *SimpleUI) Error(_ context.Context, message string) {
	s.printf("[error] %s\n", message)
}

// AskProjectName reads lines until a non-empty one is entered.
func (s *SimpleUI) AskProjectName(ctx context.Context, placeholder string) (string, error) {
	for {
		s.printf("Enter your project name (e.g. %s): ", placeholder)

		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}

		if line != "" {
			return line, nil
		}

		s.printf("%s\n", ProjectNameRequired)
	}
}

// SelectFramework accepts either the option number or the framework name.
func (s *SimpleUI) SelectFramework(ctx context.Context, options []m.Framework) (m.Framework, error) {
	s.printf("Pick a framework to use.\n")

	for i, framework := range options {
		s.printf("  %d) %s\n", i+1, framework.Label())
	}

	for {
		s.printf("Framework [1-%d]: ", len(options))

		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}

		if index, ok := parseIndex(line, len(options)); ok {
			return options[index], nil
		}

		if framework, err := m.ParseFramework(line); err == nil && slices.Contains(options, framework) {
			return framework, nil
		}

		s.printf("Invalid choice %q.\n", line)
	}
}

// SelectFeatures accepts a comma or space separated list of option numbers or
// feature names. An empty line keeps the preselected features and "none"
// selects nothing.
func (s *SimpleUI) SelectFeatures(ctx context.Context, options []m.Feature, initial []m.Feature) ([]m.Feature, error) {
	s.printf("Select additional setup steps:\n")

	for i, feature := range options {
		mark := " "
		if slices.Contains(initial, feature) {
			mark = "x"
		}

		hint := ""
		if feature.Hint() != "" {
			hint = " (" + feature.Hint() + ")"
		}

		s.printf("  [%s] %d) %s%s\n", mark, i+1, feature.Label(), hint)
	}

	for {
		s.printf("Features (empty keeps the selection, \"none\" for nothing): ")

		line, err := s.readLine(ctx)
		if err != nil {
			return nil, err
		}

		features, err := parseFeatureSelection(line, options, initial)
		if err == nil {
			return features, nil
		}

		s.printf("%v\n", err)
	}
}

// DisplayResults prints the per-step report as a table.
func (s *SimpleUI) DisplayResults(_ context.Context, results []m.FeatureResult) error {
	if len(results) == 0 {
		return nil
	}

	s.printf("\n%s\n", renderResultsTable(results))

	return nil
}

func (s *SimpleUI) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return "", m.ErrCancelled
		}

		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func parseIndex(value string, count int) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > count {
		return 0, false
	}

	return n - 1, true
}

func parseFeatureSelection(line string, options []m.Feature, initial []m.Feature) ([]m.Feature, error) {
	switch strings.ToLower(line) {
	case "":
		return append([]m.Feature{}, initial...), nil
	case "none":
		return []m.Feature{}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	features := make([]m.Feature, 0, len(fields))

	for _, field := range fields {
		feature, err := parseFeatureChoice(field, options)
		if err != nil {
			return nil, err
		}

		if !slices.Contains(features, feature) {
			features = append(features, feature)
		}
	}

	return features, nil
}

func parseFeatureChoice(value string, options []m.Feature) (m.Feature, error) {
	if index, ok := parseIndex(value, len(options)); ok {
		return options[index], nil
	}

	feature, err := m.ParseFeature(value)
	if err != nil {
		return "", err
	}

	if !slices.Contains(options, feature) {
		return "", fmt.Errorf("%w: %q", m.ErrUnknownFeature, value)
	}

	return feature, nil
}
