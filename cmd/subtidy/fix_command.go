package main

import (
	"github.com/spf13/cobra"

	"subtidy/internal/fix"
	"subtidy/internal/report"
	"subtidy/internal/rules"
	"subtidy/internal/srt"
)

func newFixCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "fix <input.srt> <output.srt>",
		Short: "Repair style violations, keeping every cue",
		Long: "Fix re-wraps overlong lines, extends or shrinks cue durations, and widens\n" +
			"gaps to satisfy the style limits. Cues that cannot be repaired (typically\n" +
			"because the text is too dense for its duration) are kept and reported.\n" +
			"Pass - as input to read stdin, or as output to write stdout.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(ctx, cmd, args[0], args[1], fix.Options{Kids: ctx.kids()}, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the outcome summary as JSON")
	return cmd
}

func runFix(ctx *commandContext, cmd *cobra.Command, input, output string, opts fix.Options, jsonOut bool) error {
	seq, err := loadSequence(ctx, input)
	if err != nil {
		return err
	}
	p, err := ctx.resolveProfile(seq)
	if err != nil {
		return err
	}

	result := fix.Run(seq, p, opts)
	if err := writeOutput(output, srt.Format(result.Sequence)); err != nil {
		return err
	}

	ctx.ensureLogger().Info("processed subtitles",
		"input", displayName(input),
		"output", displayName(output),
		"cues", len(seq),
		"retained", len(result.Sequence),
		"dropped", result.Dropped,
	)

	residual := rules.Evaluate(result.Sequence, p, opts.Kids)
	summary := report.Build(displayName(input), p, opts.Kids, result.Sequence, residual)
	summary.AddOutcomes(result.Outcomes, result.Dropped)

	// When the subtitles themselves go to stdout, the summary moves to
	// stderr so piped output stays valid SRT.
	dest := cmd.OutOrStdout()
	if output == "-" {
		dest = cmd.ErrOrStderr()
	}
	if jsonOut {
		return writeJSONTo(dest, summary)
	}
	renderOutcomes(dest, summary)
	return nil
}
