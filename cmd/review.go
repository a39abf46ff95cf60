package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/parolabs/parola/internal/scheduler"
)

var reviewCmd = &cobra.Command{
	Use:   "review <item-id> <rating>",
	Short: "Record one review outcome",
	Long:  "Record a review outcome for an item. Rating is 0-3 (again, hard, good, easy) by number or name.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		rating, err := parseRating(args[1])
		if err != nil {
			return err
		}

		occurredAt := time.Now().UTC()
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			t, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("parse --at: %w", err)
			}
			occurredAt = t
		}

		latencyMs, _ := cmd.Flags().GetInt("latency-ms")

		p, entry, err := env.reviews.Submit(cmd.Context(), env.learner, args[0], rating, occurredAt, latencyMs)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", entry.Transition, p.Term)
		if p.DueAt != nil {
			fmt.Printf("Next review %s (in %s)\n", p.DueAt.Format(time.RFC3339), p.DueAt.Sub(occurredAt).Round(time.Minute))
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("at", "", "Review timestamp in RFC 3339 (default: now)")
	reviewCmd.Flags().Int("latency-ms", 0, "Answer latency in milliseconds")
}

func parseRating(s string) (scheduler.Rating, error) {
	switch s {
	case "again":
		return scheduler.RatingAgain, nil
	case "hard":
		return scheduler.RatingHard, nil
	case "good":
		return scheduler.RatingGood, nil
	case "easy":
		return scheduler.RatingEasy, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("rating %q: want 0-3 or again/hard/good/easy", s)
	}
	r := scheduler.Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rating %d out of range 0-3", n)
	}
	return r, nil
}
