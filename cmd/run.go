package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meera/nclexprep/internal/app"
	"github.com/meera/nclexprep/internal/awards"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/llm"
	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
	"github.com/meera/nclexprep/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// mode selects the screen the app opens on; empty means the home menu.
func runApp(cmd *cobra.Command, mode session.Mode) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	questions := st.QuestionRepo()
	reviews := st.ReviewRepo()
	snapshots := st.SnapshotRepo()

	if n, err := bank.SeedIfEmpty(ctx, questions); err != nil {
		return fmt.Errorf("seed question bank: %w", err)
	} else if n > 0 {
		fmt.Fprintf(os.Stderr, "Seeded %d starter questions.\n", n)
	}

	scheduler := review.NewScheduler(reviews)
	gate := entitlement.NewGate(events, entitlement.CurrentPlan())
	awardsSvc := awards.NewService(events)

	opts := app.Options{
		UserID:    session.DefaultUserID,
		Questions: questions,
		Events:    events,
		Snapshots: snapshots,
		Reviews:   reviews,
		Planner:   session.NewPlanner(questions, events, scheduler, gate),
		Engine:    session.NewEngine(events, snapshots, scheduler, awardsSvc),
		Gate:      gate,
		StartMode: mode,
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor explanations will be unavailable.")
	} else {
		opts.Tutor = tutor.NewService(provider)
	}

	return app.Run(opts)
}
