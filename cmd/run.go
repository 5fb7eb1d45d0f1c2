package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkaneda/kotoba/internal/app"
	"github.com/mkaneda/kotoba/internal/config"
	"github.com/mkaneda/kotoba/internal/logger"
	"github.com/mkaneda/kotoba/internal/quizfile"
	"github.com/mkaneda/kotoba/internal/store"
)

// runApp loads configuration, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	loader := quizfile.New(resolveQuizzesDir(cmd, cfg), log)

	return app.Run(app.Deps{
		Config: cfg,
		Log:    log,
		Loader: loader,
		Events: st.EventRepo(),
	})
}
