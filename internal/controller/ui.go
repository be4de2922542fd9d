// Package controller provides the user-facing output and prompts of the converter.
package controller

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

// UI defines how the converter talks to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Confirm asks whether root may be modified. Only answers starting with 'y' confirm.
	Confirm(ctx context.Context, root m.Path) (bool, error)
	DisplayStart(ctx context.Context, root m.Path)
	DisplayRename(ctx context.Context, rename m.Rename)
	DisplayTagEdit(ctx context.Context, edit m.TagEdit)
	DisplayFailure(ctx context.Context, failure m.Failure)
	DisplayAborted(ctx context.Context)
	DisplayFatal(ctx context.Context, err error)
	DisplaySummary(ctx context.Context, report m.Report)
}

// NewUI returns the TUI when tty is true and the plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsInteractive reports whether both the prompt input and the output are
// terminals. The TUI reads keys from in, so a piped stdin selects SimpleUI.
func IsInteractive(in, out *os.File) bool {
	return IsTTY(in) && IsTTY(out)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsConfirmation reports whether a prompt answer confirms the run.
func IsConfirmation(answer string) bool {
	return strings.HasPrefix(strings.TrimSpace(answer), "y")
}

func promptText(root m.Path) string {
	return "Going to permanently edit records in directory " + string(root) +
		", are you sure you want to continue? [y]/[n]"
}
