package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/me/manpower/pkg/model"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	var (
		db    string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), dbPath(cmd, db))
			if err != nil {
				return err
			}
			defer st.Close()

			opts := model.DefaultListOptions()
			opts.Limit = limit
			runs, total, err := st.ListRuns(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "No runs recorded.")
				return nil
			}

			rows := make([][]string, len(runs))
			for i, r := range runs {
				rows[i] = []string{
					r.ID,
					humanize.Comma(int64(r.TaskCount)),
					humanize.Comma(int64(r.PeopleCount)),
					humanize.Comma(int64(r.DayCount)),
					humanize.Time(r.CreatedAt),
				}
			}
			fmt.Fprintln(w, renderTable([]string{"ID", "TASKS", "PEOPLE", "DAYS", "CREATED"}, rows))

			if len(runs) < total {
				fmt.Fprintf(w, "\n(%d of %d shown)\n", len(runs), total)
			}
			return nil
		},
	}
	dbFlag(cmd, &db)
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
