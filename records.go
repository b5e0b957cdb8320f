package main

import (
	"fmt"

	"github.com/automoto/playdead/records"
	"github.com/spf13/cobra"
)

const recordsTPS = 60

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show the fastest clears",
	Long: `List the ten fastest clears of a level, or of every cleared level when
no level is given.

Examples:
  playdead records
  playdead records sewer`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := records.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	levels := args
	if len(levels) == 0 {
		if levels, err = store.Levels(); err != nil {
			return err
		}
	}
	if len(levels) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No clears recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	for i, level := range levels {
		if i > 0 {
			fmt.Fprintln(out)
		}
		top, err := store.Top(level, 10)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Fastest clears - %s\n", level)
		if len(top) == 0 {
			fmt.Fprintln(out, "  none")
			continue
		}
		fmt.Fprintf(out, "  %-4s  %-9s  %-6s  %s\n", "Rank", "Time", "Deaths", "Date")
		for rank, c := range top {
			fmt.Fprintf(out, "  %-4d  %-9s  %-6d  %s\n",
				rank+1, records.FormatFrames(c.Frames, recordsTPS), c.Deaths, c.At.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
