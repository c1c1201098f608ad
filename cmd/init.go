package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"glean/internal/config"
	"glean/internal/logging"
	"glean/internal/store"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the glean data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()

		dbFile := filepath.Join(cfg.DataDir, "glean.db")
		if _, err := os.Stat(dbFile); err == nil {
			fmt.Printf("Already initialized — %s exists\n", dbFile)
			return nil
		}

		log, err := logging.New(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("init failed: %w", err)
		}
		defer log.Sync()

		st, err := store.New(cfg.DataDir, log)
		if err != nil {
			return fmt.Errorf("init failed: %w", err)
		}
		st.Close()

		if err := config.WriteSkeleton(cfg.DataDir); err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		fmt.Printf("Initialized glean in %s\n", cfg.DataDir)
		fmt.Println("Set your API key in config.yaml or via GEMINI_API_KEY")
		return nil
	},
}
