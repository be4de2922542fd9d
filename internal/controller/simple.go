package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

// SimpleUI implements UI with plain lines on cobra's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Confirm prints the prompt and reads one line from the command's input.
func (s *SimpleUI) Confirm(ctx context.Context, root m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.printf("%s\n==> ", promptText(root))

	answer, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	return IsConfirmation(answer), nil
}

// DisplayStart announces the beginning of the run.
func (s *SimpleUI) DisplayStart(ctx context.Context, _ m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Umlaut converter is starting.\n")
}

// DisplayRename prints one renamed entry.
func (s *SimpleUI) DisplayRename(ctx context.Context, rename m.Rename) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Renamed %s %s -> %s\n", rename.Kind, rename.From, rename.To)
}

// DisplayTagEdit prints the fields rewritten in one file.
func (s *SimpleUI) DisplayTagEdit(ctx context.Context, edit m.TagEdit) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Edited tags of %s (%s)\n", edit.Path, joinFields(edit.Changes))
}

// DisplayFailure prints a soft failure to the error stream.
func (s *SimpleUI) DisplayFailure(ctx context.Context, failure m.Failure) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorf("%s\n", failureText(failure))
}

// DisplayAborted reports that the user declined.
func (s *SimpleUI) DisplayAborted(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Aborting\n")
}

// DisplayFatal reports the error that stopped the run.
func (s *SimpleUI) DisplayFatal(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.errorf("The converter failed: %v\n", err)
}

// DisplaySummary prints the table of edited files and the final count.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(report.Edits) > 0 {
		s.printf("\n%s", renderEditTable(report))
	}

	s.printf("Renamed %d entries, %d failure(s).\n", len(report.Renames), len(report.Failures))
	s.printf("%s\n", finishedText(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func renderEditTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	edits := make([]m.TagEdit, len(report.Edits))
	copy(edits, report.Edits)
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].Path < edits[j].Path
	})

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Fields", "Saved"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, edit := range edits {
		saved := "yes"
		if !edit.Saved {
			saved = "no"
		}

		table.Append([]string{string(edit.Path), joinFields(edit.Changes), saved})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(edits)),
		"",
		fmt.Sprintf("%d", report.Edited),
	})

	table.Render()

	return tableBuffer.String()
}

func joinFields(changes []m.FieldChange) string {
	names := make([]string, 0, len(changes))
	for _, change := range changes {
		names = append(names, string(change.Field))
	}

	return strings.Join(names, ", ")
}

func failureText(failure m.Failure) string {
	switch failure.Kind {
	case m.FailureRead:
		return fmt.Sprintf("Couldn't read the file %s because: %s", failure.Path, failure.Message)
	case m.FailureWrite:
		return fmt.Sprintf("Failed to save tags of %s: %s", failure.Path, failure.Message)
	default:
		return fmt.Sprintf("Couldn't rename %s: %s", failure.Path, failure.Message)
	}
}

func finishedText(report m.Report) string {
	return fmt.Sprintf("Umlaut converter is finished. Edited total of %d records.", report.Edited)
}
