package main

import (
	"github.com/spf13/cobra"

	"subtidy/internal/report"
	"subtidy/internal/rules"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "report <input.srt>",
		Short: "Print a detailed compliance report without modifying anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := loadSequence(ctx, args[0])
			if err != nil {
				return err
			}
			p, err := ctx.resolveProfile(seq)
			if err != nil {
				return err
			}
			kids := ctx.kids()

			found := rules.Evaluate(seq, p, kids)
			summary := report.Build(displayName(args[0]), p, kids, seq, found)

			if jsonOut {
				return writeJSON(cmd, summary)
			}
			renderReport(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	return cmd
}
