package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stationdeck/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var profileID string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if lines <= 0 {
				return fmt.Errorf("--lines must be positive")
			}
			result, err := logs.Last(cfg.LogFilePath(), lines, logs.ForProfile(profileID))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result) == 0 {
				fmt.Fprintf(out, "No log lines in %s\n", cfg.LogFilePath())
				return nil
			}
			for _, line := range result {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "Only show lines for this export profile")
	return cmd
}
