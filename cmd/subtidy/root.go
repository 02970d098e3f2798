package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var langFlag string
	var kidsFlag bool

	ctx := newCommandContext(&configFlag, &langFlag, &kidsFlag)

	rootCmd := &cobra.Command{
		Use:           "subtidy",
		Short:         "Validate and fix SRT subtitles against timed-text style limits",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Language code (auto-detected when empty)")
	rootCmd.PersistentFlags().BoolVar(&kidsFlag, "kids", false, "Apply children's reading-speed limits")

	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newFixCommand(ctx))
	rootCmd.AddCommand(newCleanCommand(ctx))
	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
