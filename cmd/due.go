package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List questions due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		items, err := st.ReviewRepo().ListDue(ctx, session.DefaultUserID, time.Now())
		if err != nil {
			return fmt.Errorf("list due items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		fmt.Printf("%d item(s) due:\n\n", len(items))
		for _, item := range items {
			stem := "(question removed from bank)"
			category := "-"
			if item.Question != nil {
				stem = truncate(item.Question.Stem, 70)
				category = item.Question.Category
			}
			fmt.Printf("  %-28s  due %s  interval %dd  reviews %d\n",
				category,
				item.Entry.DueAt.Format("2006-01-02"),
				item.Entry.IntervalDays,
				item.Entry.ReviewCount)
			fmt.Printf("    %s\n", stem)
		}
		fmt.Println("\nRun `nclexprep review` to work through them.")
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
