package cmd

import (
	"fmt"
	"strconv"
	"time"

	"glean/internal/classify"
	"glean/internal/widget"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var starredShowCopy bool

func init() {
	starredShowCmd.Flags().BoolVar(&starredShowCopy, "copy", false, "copy the item text to the clipboard")
	starredCmd.AddCommand(starredDeleteCmd)
	starredCmd.AddCommand(starredShowCmd)
	rootCmd.AddCommand(starredCmd)
}

var starredCmd = &cobra.Command{
	Use:   "starred",
	Short: "List starred results",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		items := e.store.Starred()
		if len(items) == 0 {
			fmt.Println("No starred results — press 's' on a result to star it")
			return nil
		}

		fmt.Printf("%-4s %-20s %-12s %s\n", "#", "WHEN", "TYPE", "TEXT")
		fmt.Println("──────────────────────────────────────────────────────────────────")
		for i, item := range items {
			when := time.UnixMilli(item.Timestamp).Local().Format("2006-01-02 15:04")
			fmt.Printf("%-4d %-20s %-12s %s\n", i+1, when, item.Type, truncateCol(item.Text, 50))
		}
		return nil
	},
}

var starredShowCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Render a starred result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item number %q", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		items := e.store.Starred()
		if n < 1 || n > len(items) {
			return fmt.Errorf("no starred item %d", n)
		}
		item := items[n-1]

		w := widget.FromResponse(classify.Decode(item.Data))
		fmt.Println(w.View(80))

		if starredShowCopy {
			if clip, _ := w.Handle("c"); clip != "" {
				if err := clipboard.WriteAll(clip); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Println("Copied to clipboard")
			}
		}
		return nil
	},
}

var starredDeleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Remove a starred result by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item number %q", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.store.DeleteStarred(n - 1); err != nil {
			return err
		}
		fmt.Printf("Removed starred item %d\n", n)
		return nil
	},
}
