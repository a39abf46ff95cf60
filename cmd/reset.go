package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tracked items for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		n, err := env.store.ProgressRepo().DeleteAll(cmd.Context(), env.learner)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d items for learner %q. Review history is kept.\n", n, env.learner)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
