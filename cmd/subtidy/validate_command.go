package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subtidy/internal/report"
	"subtidy/internal/rules"
	"subtidy/internal/services"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate <input.srt>",
		Short: "Check a subtitle file against the style limits",
		Long: "Validate scores every cue against the language's timed-text style limits\n" +
			"(line width, line count, reading speed, duration, and gaps) and exits\n" +
			"non-zero when any violation is found. Pass - to read from stdin.",
		Args: cobra.ExactArgs(1),
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
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
			} else if summary.TotalIssues == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s all %s pass the %s style limits\n",
					passMarker(), plural(summary.TotalCues, "entry"), summary.LanguageName)
			} else {
				renderReport(cmd.OutOrStdout(), summary)
			}

			if summary.TotalIssues > 0 {
				return services.Wrap(services.ErrValidation, "validate", displayName(args[0]),
					fmt.Sprintf("%s in %s", plural(summary.TotalIssues, "violation"), plural(summary.CuesWithIssues, "entry")), nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")
	return cmd
}
