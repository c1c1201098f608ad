package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past conversations (newest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		records := e.store.History()
		if len(records) == 0 {
			fmt.Println("No history yet — run 'glean run <action>' first")
			return nil
		}

		fmt.Printf("%-4s %-20s %-22s %-30s %s\n", "#", "WHEN", "ACTION", "RESULT", "PAGE")
		fmt.Println("──────────────────────────────────────────────────────────────────────────────────────")
		for i, r := range records {
			when := time.UnixMilli(r.Timestamp).Local().Format("2006-01-02 15:04")
			fmt.Printf("%-4d %-20s %-22s %-30s %s\n",
				i+1, when, r.Title, truncateCol(r.OutputSummary, 28), truncateCol(r.PageTitle, 40))
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Delete one history entry by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry number %q", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.store.DeleteHistory(n - 1); err != nil {
			return err
		}
		fmt.Printf("Deleted history entry %d\n", n)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		e.store.ClearHistory()
		fmt.Println("History cleared")
		return nil
	},
}

func truncateCol(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
