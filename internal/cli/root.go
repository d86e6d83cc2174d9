// Package cli implements the notify-generator commands.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notify-generator/internal/diagnostic"
	"notify-generator/internal/logger"
)

type rootOptions struct {
	logLevel string
	logJSON  bool
	noColor  bool
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "notify-generator",
		Short: "Generate change-notifying members for annotated fields",
		Long: `notify-generator reads a compilation model snapshot describing classes and
their annotated fields and generates properties, change events, trigger
methods and optional event payload types as partial class files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", string(logger.InfoLevel), "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "log in JSON format")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured diagnostics")

	cmd.AddCommand(GenCmd(opts))
	cmd.AddCommand(CheckCmd(opts))

	return cmd
}

func (o *rootOptions) logger(w io.Writer) logger.Logger {
	return logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(o.logLevel),
		Output:     w,
		JSON:       o.logJSON,
		TimeFormat: "15:04:05",
	})
}

// diagnosticPrinter is a gen.DiagnosticSink writing one line per diagnostic.
type diagnosticPrinter struct {
	w io.Writer
}

func (p diagnosticPrinter) Report(d diagnostic.Diagnostic) {
	var c *color.Color

	switch d.Severity {
	case diagnostic.DiagnosticError:
		c = color.New(color.FgRed)
	case diagnostic.DiagnosticWarning:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgBlue)
	}

	_, _ = c.Fprintln(p.w, d.String())
}

// failure returns an error when d should fail the command, nil otherwise.
func failure(what string, d *diagnostic.Diagnostics, warningsAsErrors bool) error {
	if !d.HasErrors() && !(warningsAsErrors && d.HasWarnings()) {
		return nil
	}

	return fmt.Errorf("%s failed: %d error(s), %d warning(s)", what, len(d.Errors), len(d.Warnings))
}
