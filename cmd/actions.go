package cmd

import (
	"fmt"

	"glean/internal/prompt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(actionsCmd)
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List available actions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-20s %-28s %-12s %s\n", "KEY", "LABEL", "OUTPUT", "SELECTION")
		fmt.Println("──────────────────────────────────────────────────────────────────────────")
		for _, a := range prompt.List() {
			sel := "required"
			if !a.RequiresSelection {
				sel = "optional"
			}
			fmt.Printf("%-20s %-28s %-12s %s\n", a.ID, a.Label, a.Output, sel)
		}
	},
}
