package domain

import (
	"context"
	"fmt"
	"log/slog"

	"umlauter.dev/pkg/umlauter/internal/adapter"
	"umlauter.dev/pkg/umlauter/internal/controller"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

// ConvertArgs contains the arguments for one conversion run.
type ConvertArgs struct {
	Root    m.Path
	Markers []string
	Report  m.Path // optional; empty disables the report file
}

// Workflow drives a complete run: confirmation, walk, summary and report.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) (m.Report, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.TagCodec
	adapter.ReportStore
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	codec adapter.TagCodec,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		TagCodec:        codec,
		ReportStore:     reportStore,
		ui:              ui,
	}
}

func (w *workflow) Convert(ctx context.Context, args ConvertArgs) (m.Report, error) {
	report := m.Report{Root: args.Root}

	confirmed, err := w.ui.Confirm(ctx, args.Root)
	if err != nil {
		return report, fmt.Errorf("confirmation: %w", err)
	}

	if !confirmed {
		w.ui.DisplayAborted(ctx)
		return report, ErrAborted
	}

	slog.Info("conversion started", "root", args.Root, "markers", args.Markers)
	w.ui.DisplayStart(ctx, args.Root)

	walker := NewWalker(w.SourceFSAdapter, w.TagCodec, w.ui, args.Markers)

	edited, walkErr := walker.Walk(ctx, args.Root, 0, &report)
	report.Edited = edited

	if walkErr != nil {
		report.Error = walkErr.Error()
		slog.Error("conversion failed", "root", args.Root, "edited", edited, "error", walkErr)
		w.ui.DisplayFatal(ctx, walkErr)

		if err := w.saveReport(args.Report, report); err != nil {
			slog.Error("save report", "path", args.Report, "error", err)
		}

		return report, walkErr
	}

	slog.Info("conversion finished", "root", args.Root, "edited", edited,
		"renames", len(report.Renames), "failures", len(report.Failures))
	w.ui.DisplaySummary(ctx, report)

	if err := w.saveReport(args.Report, report); err != nil {
		return report, fmt.Errorf("save report: %w", err)
	}

	return report, nil
}

func (w *workflow) saveReport(path m.Path, report m.Report) error {
	if path == "" {
		return nil
	}

	return w.SaveReport(path, report)
}
