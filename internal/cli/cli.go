// Package cli implements the orthodraw command-line interface.
//
// This package provides commands for rendering third-angle orthographic
// projection drawings, serving them over HTTP, and editing the inputs
// interactively in a terminal UI. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Compose a drawing and write SVG, JSON, or PNG files
//   - serve: Expose the drawing engine over HTTP
//   - tui: Interactive input form with live spacing summary
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drafthaus/orthodraw/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "orthodraw"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Orthodraw lays out annotated orthographic projection drawings",
		Long:         `Orthodraw computes the layout and dimension annotations for a third-angle orthographic projection (TOP, FRONT, RIGHT views) of a rectangular solid and renders it as a technical diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to orthodraw.toml (default: XDG config dir)")

	// Attach the logger to the command context so subcommands and helpers
	// can retrieve it without threading the CLI through.
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())

	return root
}
