package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"glean/internal/config"
	"glean/internal/logging"
	"glean/internal/store"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glean",
	Short: "AI study assistant — quizzes, flashcards, notes and rewrites from any page",
	Long: `glean runs AI actions against a web page or a text selection: generate
quizzes, flashcards and study notes, fix grammar, change tone, summarize,
or ask free-form questions. Results render interactively in the terminal
and are kept in a local history with starred favorites.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openEnv loads config, logger and store. Callers defer env.close().
type env struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.log != nil {
		e.log.Sync()
	}
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbFile := filepath.Join(cfg.DataDir, "glean.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("not initialized — run 'glean init' first")
	}

	log, err := logging.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.DataDir, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return &env{cfg: cfg, log: log, store: st}, nil
}
