package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <deck.json>",
	Short: "Import a vocabulary deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read deck: %w", err)
		}

		res, err := env.importer.Import(cmd.Context(), env.learner, raw, filepath.Base(args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("Imported deck %q: %d added, %d already tracked\n", res.DeckName, res.Imported, res.Skipped)
		return nil
	},
}
