package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/llm"
	"github.com/meera/nclexprep/internal/qgen"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate practice questions with the configured LLM",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("category", "", "Content category, e.g. Pharmacology (required)")
	generateCmd.Flags().String("exam-category", "", "Official client-needs category tag")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, or hard")
	generateCmd.Flags().Int("count", 5, "Number of questions to generate")
	generateCmd.Flags().Bool("dry-run", false, "Preview without saving to the bank")
	_ = generateCmd.MarkFlagRequired("category")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	examCategory, _ := cmd.Flags().GetString("exam-category")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var difficulty bank.Difficulty
	switch difficultyVal {
	case "easy":
		difficulty = bank.DifficultyEasy
	case "medium":
		difficulty = bank.DifficultyMedium
	case "hard":
		difficulty = bank.DifficultyHard
	default:
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", difficultyVal)
	}
	if examCategory != "" && !bank.IsExamCategory(examCategory) {
		return fmt.Errorf("unknown exam category %q", examCategory)
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

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	gen := qgen.New(provider, qgen.DefaultConfig())

	// Prior stems for dedup: everything already in the bank for this category.
	recs, err := st.QuestionRepo().List(ctx, false)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	var priorStems []string
	for _, r := range recs {
		if r.Category == category {
			priorStems = append(priorStems, r.Stem)
		}
	}

	// Steer generation toward categories the user has been missing.
	var weakAreas []string
	history, err := st.EventRepo().QueryAnswerEvents(ctx, session.DefaultUserID, store.QueryOpts{})
	if err == nil {
		if weakest, ok := adaptive.WeakestCategory(bank.FromRecords(recs), history); ok {
			weakAreas = append(weakAreas, weakest)
		}
	}

	fmt.Printf("Generating %d %s question(s) for %s...\n\n", count, difficulty, category)

	var saved int
	for i := 1; i <= count; i++ {
		input := qgen.GenerateInput{
			Category:     category,
			ExamCategory: examCategory,
			Difficulty:   difficulty,
			PriorStems:   priorStems,
			WeakAreas:    weakAreas,
		}

		item, err := generateWithRetry(cmd, gen, input)
		if err != nil {
			fmt.Printf("%d. generation failed: %v\n\n", i, err)
			continue
		}
		priorStems = append(priorStems, item.Stem)

		fmt.Printf("%d. %s\n", i, item.Stem)
		for _, opt := range item.Options {
			marker := " "
			if opt.Label == item.CorrectLabel {
				marker = "*"
			}
			fmt.Printf("   %s %s) %s\n", marker, opt.Label, opt.Text)
		}
		fmt.Println()

		if dryRun {
			continue
		}
		q := item.ToQuestion()
		if err := st.QuestionRepo().Upsert(ctx, bank.ToRecord(q)); err != nil {
			return fmt.Errorf("save question: %w", err)
		}
		saved++
	}

	if dryRun {
		fmt.Println("Dry run: nothing saved.")
	} else {
		fmt.Printf("Saved %d question(s) to the bank.\n", saved)
	}
	return nil
}

// generateWithRetry retries generation when the failure is a retryable
// validation error, up to three attempts.
func generateWithRetry(cmd *cobra.Command, gen qgen.Generator, input qgen.GenerateInput) (*qgen.Item, error) {
	var item *qgen.Item
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		item, err = gen.Generate(cmd.Context(), input)
		if err == nil {
			return item, nil
		}
		var valErr *qgen.ValidationError
		if errors.As(err, &valErr) && !valErr.Retryable {
			break
		}
	}
	return nil, err
}
