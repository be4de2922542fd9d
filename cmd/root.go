// Package cmd provides the root command and CLI setup for umlauter.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"umlauter.dev/pkg/umlauter/internal/adapter"
	"umlauter.dev/pkg/umlauter/internal/controller"
	"umlauter.dev/pkg/umlauter/internal/domain"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var tagCodec adapter.TagCodec
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// markersFlag lists the name fragments that mark a file as tagged audio.
var markersFlag []string

// reportFlag is the optional path of the YAML run report.
var reportFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsInteractive(os.Stdin, os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tagCodec = adapter.NewLocalTagCodec()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		tagCodec,
		reportStore,
		ui,
	)
}

const rootLongDescription = `Umlauter replaces the umlauts ä, Ä, ö and Ö with a, A, o and O in
directory names, file names and the tags of audio files below the given
media directory.

Every directory and file is renamed in place. Files whose name contains a
media marker (default: .mp3, .flac) also get their track artist, track
title, album artist, album title and genre rewritten. The changes are
permanent, so the command asks for confirmation before touching anything.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "umlauter <media-dir>",
		Short:         "Strip umlauts from media file names and audio tags",
		Long:          rootLongDescription,
		Args:          validateArgs,
		SilenceErrors: true,
		RunE:          runConvert,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringArrayVarP(
			&markersFlag, markerFlagName, "m",
			viper.GetStringSlice(markersConfigKey),
			"name fragment marking a file as tagged audio (can be repeated)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(markerFlagName), markersConfigKey)

	cmd.PersistentFlags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "write a YAML report of the run to this path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

func validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New("provide the media directory as argument")
	case len(args) > 1:
		return errors.New("too many arguments")
	}

	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve media directory %q: %w", args[0], err)
	}

	report, err := workflow.Convert(cmd.Context(), domain.ConvertArgs{
		Root:    m.Path(root),
		Markers: viper.GetStringSlice(markersConfigKey),
		Report:  m.Path(viper.GetString(reportConfigKey)),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAborted) || report.Error != "" {
			return &displayedError{err: err}
		}

		return err
	}

	return nil
}

// displayedError marks an error the UI has already shown to the user.
type displayedError struct {
	err error
}

func (e *displayedError) Error() string { return e.err.Error() }
func (e *displayedError) Unwrap() error { return e.err }

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var displayed *displayedError
	if !errors.As(err, &displayed) {
		rootCmd.PrintErrln("Error:", err)
	}

	os.Exit(1)
}
