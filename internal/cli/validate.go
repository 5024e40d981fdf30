package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the data files and check their references without scheduling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src.apply(cmd)
			source := cfg.Source()

			ds, err := source.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", source.Name(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d skills, %d people, %d tasks\n",
				source.Name(), len(ds.Skills), len(ds.People), len(ds.Tasks))
			return nil
		},
	}
	src.register(cmd)
	return cmd
}
