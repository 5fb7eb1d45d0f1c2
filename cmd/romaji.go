package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaneda/kotoba/internal/kana"
)

var romajiCmd = &cobra.Command{
	Use:   "romaji <text>...",
	Short: "Transliterate kana text to romaji",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(kana.ToRomaji(strings.Join(args, " ")))
	},
}
