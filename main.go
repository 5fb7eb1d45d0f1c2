package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mkaneda/kotoba/cmd"
)

func main() {
	// Optional .env for local overrides; missing file is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
