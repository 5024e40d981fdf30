package cli

import (
	"context"
	"fmt"

	"github.com/me/manpower/internal/store"
	"github.com/spf13/cobra"
)

// sourceFlags are the data-location flags shared by plan and validate.
type sourceFlags struct {
	dataDir string
	tasks   string
	dataset string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "Directory holding skills, people and skill matrix CSV files")
	cmd.Flags().StringVar(&f.tasks, "tasks", "", "Task list CSV (relative to --data-dir unless absolute)")
	cmd.Flags().StringVar(&f.dataset, "dataset", "", "Single YAML or JSON dataset file instead of CSV files")
}

// apply overrides configuration with the flags that were set.
func (f *sourceFlags) apply(cmd *cobra.Command) {
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if cmd.Flags().Changed("tasks") {
		cfg.Tasks = f.tasks
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = f.dataset
	}
}

// openStore opens and migrates the run history database.
func openStore(ctx context.Context, path string) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return st, nil
}

// dbFlag registers --db, overriding the configured database path.
func dbFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "db", "", "SQLite run history database (default from config)")
}

func dbPath(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("db") {
		return flagValue
	}
	return cfg.DBPath
}
