package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"glean/internal/dispatch"
	"glean/internal/gemini"
	"glean/internal/page"
	"glean/internal/panel"
	"glean/internal/prompt"

	"github.com/spf13/cobra"
)

var (
	runURL   string
	runFile  string
	runStdin bool
)

func init() {
	runCmd.Flags().StringVar(&runURL, "url", "", "web page to use as context")
	runCmd.Flags().StringVar(&runFile, "file", "", "local text file to use as context")
	runCmd.Flags().BoolVar(&runStdin, "stdin", false, "read context text from stdin")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <action> [text...]",
	Short: "Run an action on the given text or page",
	Long: `Run an action against selected text and an optional page context.
Text follows the action name; page context comes from --url or --file.
Most actions require text. 'ask' works on the page alone.

Examples:
  glean run quiz --url https://en.wikipedia.org/wiki/Photosynthesis
  glean run fix_grammar "Their going to the store tomorow"
  glean run ask --url https://example.com "What is this page about?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actionID := args[0]
		action, ok := prompt.Get(actionID)
		if !ok {
			return fmt.Errorf("unknown action %q — see 'glean actions'", actionID)
		}

		input := strings.Join(args[1:], " ")
		if strings.TrimSpace(input) == "" && action.RequiresSelection {
			return fmt.Errorf("action %q requires text", actionID)
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if e.cfg.APIKey == "" {
			return fmt.Errorf("no API key — set GEMINI_API_KEY or api_key in config.yaml")
		}

		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		client := gemini.New(gemini.Config{
			APIKey:  e.cfg.APIKey,
			BaseURL: e.cfg.BaseURL,
			Model:   e.cfg.Model,
		}, e.log)
		d := dispatch.New(client, e.log)

		return panel.Run(action, input, snap, d, e.store, e.log)
	},
}

func loadSnapshot() (page.Snapshot, error) {
	switch {
	case runURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return page.Fetch(ctx, runURL)
	case runFile != "":
		return page.FromFile(runFile)
	case runStdin:
		return page.FromReader("(stdin)", os.Stdin)
	default:
		return page.Snapshot{Timestamp: time.Now().UTC()}, nil
	}
}
