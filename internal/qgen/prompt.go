package qgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced nursing educator writing NCLEX-RN practice questions.

Rules:
- Write a single multiple-choice question for the given category and difficulty.
- Use a realistic clinical scenario. Plain text only, no markdown or special symbols.
- Provide exactly 4 options where exactly one is correct. Distractors must be plausible nursing actions or values that reflect common reasoning errors, not obviously wrong answers.
- The stem must be answerable from the information given, with no trick wording.
- The rationale must explain why the correct option is right and briefly why each distractor is wrong.
- Use generic drug names and standard units (mg, mL, mEq/L).
- Do not repeat or closely paraphrase any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category)
	if input.ExamCategory != "" {
		fmt.Fprintf(&b, "Client needs category: %s\n", input.ExamCategory)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready in the bank for this category:\n")
	b.WriteString(buildDedup(input.PriorStems, cfg.MaxPriorStems))

	if len(input.WeakAreas) > 0 {
		b.WriteString("\n\nTopics this student keeps missing (prefer these):\n")
		for i, w := range input.WeakAreas {
			fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
