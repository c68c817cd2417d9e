package bank

import (
	"context"
	"fmt"

	"github.com/meera/nclexprep/internal/store"
)

// SeedPack is the starter question set bundled with the binary so a fresh
// install has something to practice before any pack is imported.
func SeedPack() *Pack {
	return &Pack{
		FormatVersion: PackFormatVersion,
		Name:          "starter",
		Questions:     seedQuestions,
	}
}

// SeedIfEmpty imports the starter pack when the bank has no questions.
// Returns the number of questions seeded (zero when the bank already has
// content).
func SeedIfEmpty(ctx context.Context, repo store.QuestionRepo) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	res, err := Import(ctx, repo, SeedPack())
	if err != nil {
		return 0, err
	}
	return res.Imported, nil
}

var seedQuestions = []Question{
	{
		ID:   "seed-pharm-001",
		Stem: "A client with atrial fibrillation is receiving warfarin. Which laboratory result indicates the medication is at a therapeutic level?",
		Options: []Option{
			{Label: "A", Text: "INR of 2.5"},
			{Label: "B", Text: "INR of 1.0"},
			{Label: "C", Text: "aPTT of 30 seconds"},
			{Label: "D", Text: "Platelet count of 250,000/mm3"},
		},
		CorrectLabel: "A",
		Rationale:    "Warfarin therapy for atrial fibrillation targets an INR of 2.0 to 3.0. An INR of 1.0 is a normal, untreated value; aPTT monitors heparin, not warfarin.",
		Category:     "Pharmacology",
		ExamCategory: "Pharmacological and Parenteral Therapies",
		Difficulty:   DifficultyMedium,
	},
	{
		ID:   "seed-pharm-002",
		Stem: "A client taking furosemide reports muscle cramps and weakness. Which laboratory value should the nurse check first?",
		Options: []Option{
			{Label: "A", Text: "Serum sodium"},
			{Label: "B", Text: "Serum potassium"},
			{Label: "C", Text: "Blood glucose"},
			{Label: "D", Text: "Serum creatinine"},
		},
		CorrectLabel: "B",
		Rationale:    "Furosemide is a potassium-wasting loop diuretic. Muscle cramps and weakness are classic signs of hypokalemia, which can progress to dangerous dysrhythmias.",
		Category:     "Pharmacology",
		ExamCategory: "Pharmacological and Parenteral Therapies",
		Difficulty:   DifficultyEasy,
	},
	{
		ID:   "seed-pharm-003",
		Stem: "Before administering digoxin to an adult client, the nurse counts an apical pulse of 54 beats per minute. What should the nurse do?",
		Options: []Option{
			{Label: "A", Text: "Give the dose and document the heart rate"},
			{Label: "B", Text: "Give half the prescribed dose"},
			{Label: "C", Text: "Hold the dose and notify the provider"},
			{Label: "D", Text: "Recheck the pulse in four hours and then give the dose"},
		},
		CorrectLabel: "C",
		Rationale:    "Digoxin slows conduction through the AV node. For an adult, the dose is held and the provider notified when the apical pulse is below 60 beats per minute.",
		Category:     "Pharmacology",
		ExamCategory: "Reduction of Risk Potential",
		Difficulty:   DifficultyEasy,
	},
	{
		ID:   "seed-safety-001",
		Stem: "The nurse is caring for a client on airborne precautions for active tuberculosis. Which personal protective equipment is required when entering the room?",
		Options: []Option{
			{Label: "A", Text: "Surgical mask"},
			{Label: "B", Text: "Fit-tested N95 respirator"},
			{Label: "C", Text: "Face shield and gown"},
			{Label: "D", Text: "Gloves only"},
		},
		CorrectLabel: "B",
		Rationale:    "Tuberculosis spreads by airborne droplet nuclei. A fit-tested N95 respirator is required; a surgical mask does not filter particles that small.",
		Category:     "Infection Control",
		ExamCategory: "Safety and Infection Control",
		Difficulty:   DifficultyEasy,
	},
	{
		ID:   "seed-safety-002",
		Stem: "The nurse receives report on four clients. Which client should the nurse assess first?",
		Options: []Option{
			{Label: "A", Text: "A client two days post appendectomy requesting pain medication"},
			{Label: "B", Text: "A client with asthma whose wheezing has suddenly stopped"},
			{Label: "C", Text: "A client with cellulitis and a temperature of 38.1 C"},
			{Label: "D", Text: "A client awaiting discharge teaching for new insulin"},
		},
		CorrectLabel: "B",
		Rationale:    "A silent chest in an asthmatic client signals severely diminished air movement and impending respiratory failure. Airway takes priority over pain, low-grade fever, and teaching.",
		Category:     "Prioritization",
		ExamCategory: "Management of Care",
		Difficulty:   DifficultyHard,
	},
	{
		ID:   "seed-cardiac-001",
		Stem: "A client admitted with heart failure has gained 2 kg in 24 hours. The nurse should recognize this finding as most likely indicating what?",
		Options: []Option{
			{Label: "A", Text: "Increased caloric intake"},
			{Label: "B", Text: "Fluid retention"},
			{Label: "C", Text: "Improved appetite"},
			{Label: "D", Text: "Muscle mass gain"},
		},
		CorrectLabel: "B",
		Rationale:    "Rapid weight gain of more than 1 to 2 kg in a day reflects fluid retention, not tissue gain. Daily weights are the most reliable indicator of fluid status in heart failure.",
		Category:     "Cardiac",
		ExamCategory: "Physiological Adaptation",
		Difficulty:   DifficultyEasy,
	},
	{
		ID:   "seed-cardiac-002",
		Stem: "A client reports crushing substernal chest pain radiating to the left arm. After obtaining a 12-lead ECG, which medication order should the nurse implement first?",
		Options: []Option{
			{Label: "A", Text: "Chewable aspirin 325 mg"},
			{Label: "B", Text: "Docusate sodium 100 mg"},
			{Label: "C", Text: "Atorvastatin 80 mg"},
			{Label: "D", Text: "Metoprolol 25 mg"},
		},
		CorrectLabel: "A",
		Rationale:    "Aspirin inhibits platelet aggregation and limits infarct extension; it is given immediately in suspected myocardial infarction. Statins and beta blockers follow, and stool softeners are not urgent.",
		Category:     "Cardiac",
		ExamCategory: "Pharmacological and Parenteral Therapies",
		Difficulty:   DifficultyMedium,
	},
	{
		ID:   "seed-renal-001",
		Stem: "A client with chronic kidney disease has a serum potassium of 6.8 mEq/L and peaked T waves on the monitor. Which prescription should the nurse administer first?",
		Options: []Option{
			{Label: "A", Text: "Sodium polystyrene sulfonate orally"},
			{Label: "B", Text: "IV calcium gluconate"},
			{Label: "C", Text: "Furosemide IV push"},
			{Label: "D", Text: "Fluid restriction teaching"},
		},
		CorrectLabel: "B",
		Rationale:    "Calcium gluconate stabilizes the myocardial membrane against the effects of hyperkalemia and acts within minutes. Exchange resins and diuretics lower potassium but too slowly to address ECG changes.",
		Category:     "Renal",
		ExamCategory: "Physiological Adaptation",
		Difficulty:   DifficultyHard,
	},
	{
		ID:   "seed-endo-001",
		Stem: "A client with type 1 diabetes is found diaphoretic, shaky, and confused. Bedside glucose is 48 mg/dL. The client is awake and able to swallow. What should the nurse do first?",
		Options: []Option{
			{Label: "A", Text: "Administer 15 g of a fast-acting carbohydrate"},
			{Label: "B", Text: "Give the scheduled mealtime insulin"},
			{Label: "C", Text: "Start an IV and give 50% dextrose"},
			{Label: "D", Text: "Recheck the glucose in 30 minutes"},
		},
		CorrectLabel: "A",
		Rationale:    "A conscious client who can swallow is treated with 15 g of oral fast-acting carbohydrate, rechecking in 15 minutes. IV dextrose is reserved for clients who cannot safely swallow.",
		Category:     "Endocrine",
		ExamCategory: "Reduction of Risk Potential",
		Difficulty:   DifficultyMedium,
	},
	{
		ID:   "seed-psych-001",
		Stem: "A client whose spouse died two months ago says, \"Sometimes I still set a place for him at dinner.\" Which response by the nurse is most therapeutic?",
		Options: []Option{
			{Label: "A", Text: "\"You should remove his belongings so you can move on.\""},
			{Label: "B", Text: "\"Tell me more about what mealtimes are like for you now.\""},
			{Label: "C", Text: "\"Two months is a long time to still be grieving this way.\""},
			{Label: "D", Text: "\"Have you considered joining a dating service?\""},
		},
		CorrectLabel: "B",
		Rationale:    "An open-ended invitation to talk validates the client's grief and encourages expression. The other responses dismiss, judge, or rush the normal grieving process.",
		Category:     "Mental Health",
		ExamCategory: "Psychosocial Integrity",
		Difficulty:   DifficultyMedium,
	},
	{
		ID:   "seed-maternity-001",
		Stem: "A nurse is teaching a prenatal class about folic acid. The nurse should explain that adequate intake before conception primarily reduces the risk of which condition?",
		Options: []Option{
			{Label: "A", Text: "Gestational diabetes"},
			{Label: "B", Text: "Neural tube defects"},
			{Label: "C", Text: "Preeclampsia"},
			{Label: "D", Text: "Preterm labor"},
		},
		CorrectLabel: "B",
		Rationale:    "Folic acid supplementation before conception and through early pregnancy reduces the incidence of neural tube defects such as spina bifida.",
		Category:     "Maternity",
		ExamCategory: "Health Promotion and Maintenance",
		Difficulty:   DifficultyEasy,
	},
	{
		ID:   "seed-comfort-001",
		Stem: "A client on strict bed rest asks how to prevent pressure injuries. Which instruction by the nurse is most appropriate?",
		Options: []Option{
			{Label: "A", Text: "\"Stay in one comfortable position to avoid friction.\""},
			{Label: "B", Text: "\"Shift your weight or be repositioned at least every two hours.\""},
			{Label: "C", Text: "\"Massage any reddened areas over bony prominences.\""},
			{Label: "D", Text: "\"Keep the head of the bed elevated at 60 degrees at all times.\""},
		},
		CorrectLabel: "B",
		Rationale:    "Repositioning at least every two hours relieves pressure over bony prominences. Massaging reddened areas damages fragile tissue, and high head-of-bed elevation increases shear.",
		Category:     "Fundamentals",
		ExamCategory: "Basic Care and Comfort",
		Difficulty:   DifficultyEasy,
	},
}
