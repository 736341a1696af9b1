package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogsCmd(a *app) *cobra.Command {
	var (
		level string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.base.GetLogs(level, limit, 0)
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}

			if len(entries) == 0 {
				a.println(cmd, "NoLogEntries", nil)
				return nil
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s %-5s %s: %s", e.Timestamp, e.Level, e.Module, e.Message)
				if e.InvocationId != "" {
					fmt.Fprintf(out, " (%s)", e.InvocationId)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "Only show entries at this level (debug, info, warn, error)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show (0 for all)")

	return cmd
}
