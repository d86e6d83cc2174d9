package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"notify-generator/internal/gen"
	"notify-generator/internal/snapshot"
)

// GenCmd returns the gen command.
func GenCmd(root *rootOptions) *cobra.Command {
	var (
		input            string
		outputDir        string
		warningsAsErrors bool
		dryRun           bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate members from a snapshot",
		Long: `Generate one file per class and artifact kind:
  <Class>.g.properties.cs, <Class>.g.events.cs,
  <Class>.g.eventMethods.cs, <Class>.g.eventArgs.cs

Generic classes append their arity to <Class>. A class whose name is already
taken gets its namespace prepended, then a numeric suffix.

Fields whose property name cannot be derived are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd.ErrOrStderr())

			snap, err := snapshot.LoadFile(input)
			if err != nil {
				return err
			}

			g := gen.NewGenerator(gen.GeneratorConfig{OutputDir: outputDir, Logger: log})

			out, err := g.Generate(snap.Fields())
			if err != nil {
				return fmt.Errorf("generating: %w", err)
			}

			printer := diagnosticPrinter{w: cmd.ErrOrStderr()}

			if err := failure("generation", &out.Diagnostics, warningsAsErrors); err != nil {
				for _, d := range out.Diagnostics.All() {
					printer.Report(d)
				}

				return err
			}

			listing := &gen.MemorySink{}

			var sources gen.SourceSink = g.Sink()
			if dryRun {
				sources = listing
			}

			if err := out.Emit(sources, printer); err != nil {
				return err
			}

			if dryRun {
				for _, f := range listing.Files {
					fmt.Fprintln(cmd.OutOrStdout(), f.Filename)
				}

				return nil
			}

			log.Info("generated", "files", len(out.Files), "dir", outputDir, "warnings", len(out.Diagnostics.Warnings))

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "compilation model snapshot (YAML)")
	cmd.Flags().StringVarP(&outputDir, "out", "o", gen.DefaultGeneratorConfig().OutputDir, "output directory")
	cmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "fail when any warning is reported")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files that would be written")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
