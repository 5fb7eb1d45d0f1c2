package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkaneda/kotoba/internal/config"
	"github.com/mkaneda/kotoba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Flashcard quizzes in the terminal",
	Long:  "Kotoba — a terminal flashcard app for vocabulary drills, with kana transliteration and autoplay.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTOBA_DB env var)")
	rootCmd.PersistentFlags().String("quizzes", "", "Path to the quiz file directory (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(romajiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveQuizzesDir returns the quiz directory from the --quizzes flag
// or the config file.
func resolveQuizzesDir(cmd *cobra.Command, cfg *config.Config) string {
	if d, _ := cmd.Flags().GetString("quizzes"); d != "" {
		return d
	}
	return cfg.QuizzesDir
}
