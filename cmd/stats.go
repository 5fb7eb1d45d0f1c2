package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkaneda/kotoba/internal/config"
	"github.com/mkaneda/kotoba/internal/store"
)

var statsMissedLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		stats, err := repo.QuizStatsAll(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No finished attempts yet.")
			return nil
		}

		fmt.Printf("%-8s  %-30s  %8s  %6s  %5s\n", "QUIZ", "NAME", "ATTEMPTS", "AVG", "BEST")
		for _, s := range stats {
			fmt.Printf("%-8s  %-30s  %8d  %5.1f%%  %4d%%\n",
				s.QuizID, s.QuizName, s.Attempts, s.AvgPercentage, s.BestPercentage)
		}

		missed, err := repo.MostMissed(ctx, statsMissedLimit)
		if err != nil {
			return fmt.Errorf("query most missed: %w", err)
		}
		if len(missed) > 0 {
			fmt.Println()
			fmt.Println("Most missed words:")
			for _, m := range missed {
				fmt.Printf("  %-24s  %-24s  %d misses\n", m.Prompt, m.Expected, m.Misses)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsMissedLimit, "missed", 10, "How many most-missed words to show")
}
