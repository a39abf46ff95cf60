package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/parolabs/parola/internal/queue"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the review queue for this session",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		now := time.Now().UTC()
		rows, err := env.store.ProgressRepo().ListDue(cmd.Context(), env.learner, now)
		if err != nil {
			return err
		}

		mode := env.cfg.QueueMode()
		if m, _ := cmd.Flags().GetString("mode"); m != "" {
			switch queue.Mode(m) {
			case queue.ModePriority, queue.ModeBlocks, queue.ModeInterleave:
				mode = queue.Mode(m)
			default:
				return fmt.Errorf("unknown mode %q (want priority, blocks, or interleave)", m)
			}
		}

		budget, _ := cmd.Flags().GetDuration("budget")

		var rng *rand.Rand
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			rng = rand.New(rand.NewSource(seed))
		}

		vocab, grammar, errs := queue.Partition(rows, now)
		builder := queue.NewBuilder(env.cfg.QueueBuilder(), rng)
		items := builder.Build(vocab, grammar, errs, mode, int(budget.Seconds()))

		if len(items) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		total := 0
		for i, it := range items {
			total += it.EstimatedSeconds
			fmt.Printf("%2d. [%-10s] %-24s score %5.1f  overdue %dd  ~%ds\n",
				i+1, it.Kind, it.Metadata["term"], it.Score, it.DaysOverdue, it.EstimatedSeconds)
		}
		fmt.Printf("\n%d items, about %s of review\n", len(items), (time.Duration(total) * time.Second).String())
		return nil
	},
}

func init() {
	queueCmd.Flags().String("mode", "", "Ordering mode: priority, blocks, or interleave (default from config)")
	queueCmd.Flags().Duration("budget", 0, "Session time budget, e.g. 10m (0 = unlimited)")
	queueCmd.Flags().Int64("seed", 0, "Seed for the interleave shuffle (reproducible queues)")
}
