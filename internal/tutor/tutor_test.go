package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/llm"
)

func testQuestion() bank.Question {
	return bank.Question{
		ID:   "q1",
		Stem: "A client with COPD has an oxygen saturation of 88%. What should the nurse do first?",
		Options: []bank.Option{
			{Label: "A", Text: "Increase oxygen to 6 L/min"},
			{Label: "B", Text: "Raise the head of the bed"},
			{Label: "C", Text: "Call the provider"},
			{Label: "D", Text: "Document the finding"},
		},
		CorrectLabel: "B",
		Rationale:    "Positioning improves ventilation without risking CO2 retention in COPD.",
		Category:     "Respiratory",
	}
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"why_wrong": "High-flow oxygen can suppress the hypoxic drive in COPD.",
			"why_right": "Raising the head of the bed improves ventilation immediately and safely.",
			"takeaway": "Least invasive intervention first."
		}`),
	})
	svc := NewService(mock)

	exp, err := svc.Explain(context.Background(), testQuestion(), "A")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.Contains(exp.WhyWrong, "hypoxic drive") {
		t.Errorf("why wrong = %q", exp.WhyWrong)
	}
	if exp.Takeaway == "" {
		t.Error("takeaway missing")
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"COPD", "Student chose: A", "Correct answer: B", "Positioning improves"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestExplainNoProvider(t *testing.T) {
	svc := NewService(nil)
	if svc.Available() {
		t.Error("service without provider should report unavailable")
	}
	_, err := svc.Explain(context.Background(), testQuestion(), "A")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestExplainProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock)

	_, err := svc.Explain(context.Background(), testQuestion(), "C")
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("error = %v, want rate limit", err)
	}
}
