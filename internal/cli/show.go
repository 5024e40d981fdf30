package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Print the assignments of a recorded schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), dbPath(cmd, db))
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get run: %w", err)
			}
			if run == nil {
				return fmt.Errorf("run %s not found", args[0])
			}
			records, err := st.ListAssignments(cmd.Context(), run.ID)
			if err != nil {
				return fmt.Errorf("list assignments: %w", err)
			}

			rows := make([][]string, len(records))
			for i, r := range records {
				rows[i] = []string{strconv.Itoa(r.Day), strconv.Itoa(r.TaskID), strconv.Itoa(r.PersonID)}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Run:     %s\n", run.ID)
			fmt.Fprintf(w, "Source:  %s\n", run.Source)
			fmt.Fprintf(w, "Created: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintln(w, renderTable([]string{"DAY", "TASK", "PERSON"}, rows))
			return nil
		},
	}
	dbFlag(cmd, &db)
	return cmd
}
