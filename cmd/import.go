package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <pack.json>",
	Short: "Import a question pack into the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open pack: %w", err)
		}
		defer f.Close()

		pack, err := bank.DecodePack(f)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		res, err := bank.Import(cmd.Context(), st.QuestionRepo(), pack)
		if err != nil {
			return fmt.Errorf("import pack: %w", err)
		}

		name := pack.Name
		if name == "" {
			name = args[0]
		}
		fmt.Printf("Imported %d question(s) from %s.\n", res.Imported, name)
		if len(res.Skipped) > 0 {
			fmt.Printf("Skipped %d invalid question(s):\n", len(res.Skipped))
			for _, reason := range res.Skipped {
				fmt.Printf("  - %s\n", reason)
			}
		}
		return nil
	},
}
