package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkaneda/kotoba/internal/config"
	"github.com/mkaneda/kotoba/internal/quizfile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		loader := quizfile.New(resolveQuizzesDir(cmd, cfg), nil)
		quizzes, err := loader.LoadAll()
		if err != nil {
			return fmt.Errorf("load quizzes: %w", err)
		}

		if len(quizzes) == 0 {
			fmt.Println("No quiz files found. Add quiz1.json to the quizzes directory.")
			return nil
		}

		for _, q := range quizzes {
			fmt.Printf("%-8s  %-30s  %d questions\n", q.ID, q.Name, len(q.Items))
		}
		return nil
	},
}
