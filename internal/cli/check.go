package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"notify-generator/internal/gen"
	"notify-generator/internal/snapshot"
)

// CheckCmd returns the check command.
func CheckCmd(root *rootOptions) *cobra.Command {
	var (
		input            string
		warningsAsErrors bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report diagnostics without writing files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd.ErrOrStderr())

			snap, err := snapshot.LoadFile(input)
			if err != nil {
				return err
			}

			out, err := gen.NewGenerator(gen.GeneratorConfig{Logger: log}).Generate(snap.Fields())
			if err != nil {
				return fmt.Errorf("generating: %w", err)
			}

			printer := diagnosticPrinter{w: cmd.ErrOrStderr()}
			for _, d := range out.Diagnostics.All() {
				printer.Report(d)
			}

			if err := failure("check", &out.Diagnostics, warningsAsErrors); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d file(s), %d warning(s)\n", len(out.Files), len(out.Diagnostics.Warnings))

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "compilation model snapshot (YAML)")
	cmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "fail when any warning is reported")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
