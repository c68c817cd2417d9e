package bank

// ExamCategories are the official NCLEX test-plan client-needs categories.
// Questions carry one of these as their secondary tag; the primary category
// is a free-form content tag ("Pharmacology", "Cardiac", ...).
var ExamCategories = []string{
	"Management of Care",
	"Safety and Infection Control",
	"Health Promotion and Maintenance",
	"Psychosocial Integrity",
	"Basic Care and Comfort",
	"Pharmacological and Parenteral Therapies",
	"Reduction of Risk Potential",
	"Physiological Adaptation",
}

// IsExamCategory reports whether s is an official test-plan category.
func IsExamCategory(s string) bool {
	for _, c := range ExamCategories {
		if c == s {
			return true
		}
	}
	return false
}
