package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parolabs/parola/internal/scheduler"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		counts, err := env.store.ProgressRepo().CountByState(ctx, env.learner)
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			fmt.Println("No items tracked yet. Try 'parola add' or 'parola import'.")
			return nil
		}

		total := 0
		fmt.Println("Items by kind and state:")
		for _, c := range counts {
			fmt.Printf("  %-10s %-10s %d\n", c.Kind, c.State, c.Count)
			total += c.Count
		}

		due, err := env.store.ProgressRepo().ListDue(ctx, env.learner, time.Now().UTC())
		if err != nil {
			return err
		}
		fmt.Printf("\n%d items tracked, %d due now\n", total, len(due))

		limit, _ := cmd.Flags().GetInt("recent")
		if limit <= 0 {
			return nil
		}
		recent, err := env.store.EventRepo().RecentReviews(ctx, env.learner, limit)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			return nil
		}
		fmt.Println("\nRecent reviews:")
		for _, r := range recent {
			fmt.Printf("  %s  %-10s %-5s %s\n",
				r.OccurredAt.Format("2006-01-02 15:04"), r.Kind, scheduler.Rating(r.Rating).String(), r.Transition)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 10, "How many recent reviews to show (0 = none)")
}
