package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	renameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	editStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals: a Bubble Tea prompt for the
// confirmation and styled progress lines afterwards.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Confirm runs an inline text prompt until the user presses enter.
func (t *TUI) Confirm(ctx context.Context, root m.Path) (bool, error) {
	program := tea.NewProgram(
		newConfirmModel(root),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}

	model, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}

	return model.confirmed, nil
}

// DisplayStart prints the styled run header.
func (t *TUI) DisplayStart(ctx context.Context, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(titleStyle.Render("Umlaut converter is starting.") + " " + faintStyle.Render(string(root)))
}

// DisplayRename prints one renamed entry.
func (t *TUI) DisplayRename(ctx context.Context, rename m.Rename) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(renameStyle.Render("↻ "+string(rename.Kind)) + " " +
		faintStyle.Render(string(rename.From)) + " → " + string(rename.To))
}

// DisplayTagEdit prints the fields rewritten in one file.
func (t *TUI) DisplayTagEdit(ctx context.Context, edit m.TagEdit) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(editStyle.Render("✎ tags") + " " + string(edit.Path) + " " + faintStyle.Render(joinFields(edit.Changes)))
}

// DisplayFailure prints a soft failure.
func (t *TUI) DisplayFailure(ctx context.Context, failure m.Failure) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.cmd.ErrOrStderr(), failureStyle.Render("✗ "+failureText(failure)))
}

// DisplayAborted reports that the user declined.
func (t *TUI) DisplayAborted(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(faintStyle.Render("Aborting"))
}

// DisplayFatal reports the error that stopped the run.
func (t *TUI) DisplayFatal(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	_, _ = fmt.Fprintln(t.cmd.ErrOrStderr(), failureStyle.Bold(true).Render("The converter failed: "+err.Error()))
}

// DisplaySummary prints the edit table and the final count.
func (t *TUI) DisplaySummary(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(report.Edits) > 0 {
		t.println("\n" + strings.TrimRight(renderEditTable(report), "\n"))
	}

	t.println(faintStyle.Render(fmt.Sprintf("Renamed %d entries, %d failure(s).", len(report.Renames), len(report.Failures))))
	t.println(titleStyle.Render(finishedText(report)))
}

func (t *TUI) println(line string) {
	_, _ = fmt.Fprintln(t.cmd.OutOrStdout(), line)
}

// confirmModel is the Bubble Tea model behind the confirmation prompt.
type confirmModel struct {
	root      m.Path
	input     textinput.Model
	answered  bool
	confirmed bool
}

func newConfirmModel(root m.Path) confirmModel {
	input := textinput.New()
	input.Prompt = "==> "
	input.Placeholder = "y/n"
	input.CharLimit = 16
	input.Focus()

	return confirmModel{root: root, input: input}
}

func (cm confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (cm confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // every other key goes to the text input
		switch key.Type {
		case tea.KeyEnter:
			cm.answered = true
			cm.confirmed = IsConfirmation(cm.input.Value())

			return cm, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			cm.answered = true

			return cm, tea.Quit
		}
	}

	var cmd tea.Cmd
	cm.input, cmd = cm.input.Update(msg)

	return cm, cmd
}

func (cm confirmModel) View() string {
	if cm.answered {
		return ""
	}

	return titleStyle.Render(promptText(cm.root)) + "\n" + cm.input.View() + "\n"
}
