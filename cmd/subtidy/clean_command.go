package main

import (
	"github.com/spf13/cobra"

	"subtidy/internal/fix"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "clean <input.srt> <output.srt>",
		Short: "Repair style violations, dropping unfixable cues",
		Long: "Clean behaves like fix but removes cues whose violations cannot be\n" +
			"repaired, renumbering the survivors. The output is guaranteed to pass\n" +
			"validate under the same language and audience limits.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fix.Options{Kids: ctx.kids(), DropUnfixable: true}
			return runFix(ctx, cmd, args[0], args[1], opts, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the outcome summary as JSON")
	return cmd
}
