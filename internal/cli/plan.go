package cli

import (
	"fmt"

	"github.com/me/manpower/internal/dataset"
	"github.com/me/manpower/internal/planner"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var (
		src     sourceFlags
		out     string
		db      string
		noStore bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Schedule the task list and record the result",
		Example: "  manpower plan --data-dir ./config --tasks week-12.csv --out schedule.csv\n" +
			"  manpower plan --dataset crew.yaml --no-store",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src.apply(cmd)
			if cmd.Flags().Changed("out") {
				cfg.Output = out
			}
			ctx := cmd.Context()

			var sinks []planner.Sink
			if cfg.Output != "" {
				sinks = append(sinks, &dataset.CSVSink{Path: cfg.Output})
			}
			if !noStore {
				st, err := openStore(ctx, dbPath(cmd, db))
				if err != nil {
					return err
				}
				defer st.Close()
				sinks = append(sinks, st)
			}

			res, err := planner.New(cfg.Source(), logger, planner.WithSinks(sinks...)).Run(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			renderSchedule(w, res.Assignments)
			fmt.Fprintln(w, summaryLine(res))
			if cfg.Output != "" {
				fmt.Fprintf(w, "Schedule written to %s\n", cfg.Output)
			}
			if !noStore {
				fmt.Fprintf(w, "Recorded as %s\n", res.Run.ID)
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "Write the schedule as TaskId,PersonId,Day CSV to this file")
	dbFlag(cmd, &db)
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not record the run in the database")
	return cmd
}
