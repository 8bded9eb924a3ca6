package controller

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "bvi.dev/pkg/bvi/internal/model"
)

const (
	barGlyph     = "│"
	introGlyph   = "┌"
	outroGlyph   = "└"
	activeGlyph  = "◆"
	answerGlyph  = "◇"
	stepGlyph    = "◒"
	successGlyph = "✔"
	warnGlyph    = "▲"
	errorGlyph   = "■"
)

// TUI implements UI using Bubble Tea for the prompts and lipgloss for output.
type TUI struct {
	cmd *cobra.Command
	// programOptions are appended to every prompt program. Tests use it to
	// run prompts without a renderer.
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI bound to the command's input and output streams.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Logo prints the gradient banner.
func (t *TUI) Logo(_ context.Context) {
	t.print(renderLogo())
}

// Intro opens the prompt session.
func (t *TUI) Intro(_ context.Context, title string) {
	t.printf("%s  %s\n", styleBar.Render(introGlyph), styleIntro.Render(title))
	t.bar()
}

// Outro closes the prompt session.
func (t *TUI) Outro(_ context.Context, message string) {
	t.printf("%s  %s\n\n", styleBar.Render(outroGlyph), styleOutro.Render(message))
}

// Cancel closes the prompt session after the user aborted it.
func (t *TUI) Cancel(_ context.Context, message string) {
	t.printf("%s  %s\n\n", styleBar.Render(outroGlyph), styleError.Render(message))
}

// Step announces a long running step.
func (t *TUI) Step(_ context.Context, message string) {
	t.line(styleStep.Render(stepGlyph), message)
}

// Success reports a finished step.
func (t *TUI) Success(_ context.Context, message string) {
	t.line(styleSuccess.Render(successGlyph), message)
}

// Warn reports something the user should look at.
func (t *TUI) Warn(_ context.Context, message string) {
	t.line(styleWarn.Render(warnGlyph), styleWarn.Render(message))
}

// Error reports a failed step.
func (t *TUI) Error(_ context.Context, message string) {
	t.line(styleError.Render(errorGlyph), styleError.Render(message))
}

// AskProjectName runs a text prompt until a non-empty name is submitted.
func (t *TUI) AskProjectName(ctx context.Context, placeholder string) (string, error) {
	final, err := t.run(ctx, newTextPromptModel("Enter your project name:", placeholder))
	if err != nil {
		return "", err
	}

	prompt, _ := final.(textPromptModel)
	if prompt.cancelled {
		return "", m.ErrCancelled
	}

	t.answer("Enter your project name:", prompt.value)

	return prompt.value, nil
}

// SelectFramework runs a single choice prompt.
func (t *TUI) SelectFramework(ctx context.Context, options []m.Framework) (m.Framework, error) {
	choices := make([]choice, 0, len(options))
	for _, framework := range options {
		choices = append(choices, choice{label: framework.Label()})
	}

	final, err := t.run(ctx, newChoiceModel("Pick a framework to use.", choices, false, nil))
	if err != nil {
		return "", err
	}

	prompt, _ := final.(choiceModel)
	if prompt.cancelled {
		return "", m.ErrCancelled
	}

	selected := options[prompt.cursor]
	t.answer("Pick a framework to use.", selected.Label())

	return selected, nil
}

// SelectFeatures runs a multiple choice prompt.
func (t *TUI) SelectFeatures(ctx context.Context, options []m.Feature, initial []m.Feature) ([]m.Feature, error) {
	choices := make([]choice, 0, len(options))
	preselected := make([]int, 0, len(initial))

	for i, feature := range options {
		choices = append(choices, choice{label: feature.Label(), hint: feature.Hint()})

		if slices.Contains(initial, feature) {
			preselected = append(preselected, i)
		}
	}

	final, err := t.run(ctx, newChoiceModel("Select additional setup steps:", choices, true, preselected))
	if err != nil {
		return nil, err
	}

	prompt, _ := final.(choiceModel)
	if prompt.cancelled {
		return nil, m.ErrCancelled
	}

	features := make([]m.Feature, 0, len(options))
	labels := make([]string, 0, len(options))

	for i, feature := range options {
		if prompt.selected[i] {
			features = append(features, feature)
			labels = append(labels, feature.Label())
		}
	}

	answer := strings.Join(labels, ", ")
	if answer == "" {
		answer = "none"
	}

	t.answer("Select additional setup steps:", answer)

	return features, nil
}

// DisplayResults renders the per-step report.
func (t *TUI) DisplayResults(_ context.Context, results []m.FeatureResult) error {
	if len(results) == 0 {
		return nil
	}

	t.bar()
	t.print(renderResultsTable(results))
	t.bar()

	return nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	}, t.programOptions...)

	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}

	return final, nil
}

func (t *TUI) answer(question, value string) {
	t.printf("%s  %s\n", styleSuccess.Render(answerGlyph), question)
	t.printf("%s  %s\n", styleBar.Render(barGlyph), styleHint.Render(value))
	t.bar()
}

func (t *TUI) line(glyph, message string) {
	t.printf("%s  %s\n", glyph, message)
	t.bar()
}

func (t *TUI) bar() {
	t.printf("%s\n", styleBar.Render(barGlyph))
}

func (t *TUI) print(s string) {
	_, _ = io.WriteString(t.cmd.OutOrStdout(), s)
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

// textPromptModel asks for a single line of text.
type textPromptModel struct {
	title     string
	input     textinput.Model
	value     string
	err       string
	done      bool
	cancelled bool
}

func newTextPromptModel(title, placeholder string) textPromptModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	input.Focus()

	return textPromptModel{title: title, input: input}
}

func (tm textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (tm textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // Only the keys that end the prompt are handled here.
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			tm.cancelled = true
			return tm, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(tm.input.Value())
			if value == "" {
				tm.err = ProjectNameRequired
				return tm, nil
			}

			tm.value = value
			tm.done = true

			return tm, tea.Quit
		}
	}

	var cmd tea.Cmd

	tm.input, cmd = tm.input.Update(msg)

	return tm, cmd
}

func (tm textPromptModel) View() string {
	if tm.done || tm.cancelled {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", styleStep.Render(activeGlyph), styleTitle.Render(tm.title))
	fmt.Fprintf(&b, "%s  %s\n", styleStep.Render(barGlyph), tm.input.View())

	if tm.err != "" {
		fmt.Fprintf(&b, "%s  %s\n", styleWarn.Render(outroGlyph), styleWarn.Render(tm.err))
	} else {
		fmt.Fprintf(&b, "%s\n", styleStep.Render(outroGlyph))
	}

	return b.String()
}

type choice struct {
	label string
	hint  string
}

// choiceModel is a cursor list used for both single and multiple choice.
type choiceModel struct {
	title     string
	choices   []choice
	multi     bool
	cursor    int
	selected  map[int]bool
	done      bool
	cancelled bool
}

func newChoiceModel(title string, choices []choice, multi bool, preselected []int) choiceModel {
	selected := make(map[int]bool, len(preselected))
	for _, i := range preselected {
		selected[i] = true
	}

	return choiceModel{title: title, choices: choices, multi: multi, selected: selected}
}

func (cm choiceModel) Init() tea.Cmd {
	return nil
}

//nolint:cyclop // Key handling requires multiple cases for list navigation
func (cm choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return cm, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		cm.cancelled = true
		return cm, tea.Quit
	case "up", "k":
		if cm.cursor > 0 {
			cm.cursor--
		}
	case "down", "j":
		if cm.cursor < len(cm.choices)-1 {
			cm.cursor++
		}
	case " ":
		if cm.multi {
			cm.selected[cm.cursor] = !cm.selected[cm.cursor]
		}
	case "enter":
		if !cm.multi {
			cm.selected = map[int]bool{cm.cursor: true}
		}

		cm.done = true

		return cm, tea.Quit
	}

	return cm, nil
}

func (cm choiceModel) View() string {
	if cm.done || cm.cancelled {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", styleStep.Render(activeGlyph), styleTitle.Render(cm.title))

	for i, c := range cm.choices {
		marker := "○"

		switch {
		case cm.multi && cm.selected[i]:
			marker = "◼"
		case cm.multi:
			marker = "◻"
		case i == cm.cursor:
			marker = "●"
		}

		label := c.label
		if i == cm.cursor {
			marker = styleCursor.Render(marker)
		} else {
			label = styleHint.Render(label)
		}

		if c.hint != "" && i == cm.cursor {
			label += styleHint.Render(" (" + c.hint + ")")
		}

		fmt.Fprintf(&b, "%s  %s %s\n", styleStep.Render(barGlyph), marker, label)
	}

	if cm.multi {
		fmt.Fprintf(&b, "%s  %s\n", styleStep.Render(outroGlyph), styleHint.Render("space to toggle, enter to confirm"))
	} else {
		fmt.Fprintf(&b, "%s\n", styleStep.Render(outroGlyph))
	}

	return b.String()
}
