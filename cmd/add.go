package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parolabs/parola/internal/review"
)

var addCmd = &cobra.Command{
	Use:   "add <term> [translation]",
	Short: "Track a new item for review",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		term := args[0]
		translation := ""
		if len(args) == 2 {
			translation = args[1]
		}

		kindFlag, _ := cmd.Flags().GetString("kind")
		kind, err := parseKind(kindFlag)
		if err != nil {
			return err
		}

		schedFlag, _ := cmd.Flags().GetString("scheduler")
		sched, err := parseScheduler(schedFlag)
		if err != nil {
			return err
		}

		p, err := env.reviews.AddItem(cmd.Context(), env.learner, kind, sched, term, translation)
		if err != nil {
			return err
		}

		fmt.Printf("Added %s item %s (%s scheduler)\n", p.Kind, p.ItemID, p.Scheduler)
		return nil
	},
}

func init() {
	addCmd.Flags().String("kind", "vocabulary", "Item kind: vocabulary, grammar, or error")
	addCmd.Flags().String("scheduler", "", "Scheduler: adaptive or steps (default adaptive)")
}

func parseKind(s string) (review.Kind, error) {
	switch review.Kind(s) {
	case review.KindVocabulary, review.KindGrammar, review.KindError:
		return review.Kind(s), nil
	default:
		return "", fmt.Errorf("unknown kind %q (want vocabulary, grammar, or error)", s)
	}
}

// parseScheduler resolves the scheduler choice. Natively added items
// default to the adaptive scheduler; the step scheduler is what deck
// imports use, but it can be forced here.
func parseScheduler(s string) (review.SchedulerKind, error) {
	switch review.SchedulerKind(s) {
	case review.SchedulerAdaptive, review.SchedulerSteps:
		return review.SchedulerKind(s), nil
	case "":
		return review.SchedulerAdaptive, nil
	default:
		return "", fmt.Errorf("unknown scheduler %q (want adaptive or steps)", s)
	}
}
