package ai

import "github.com/ecosnap/ecosnap-backend/internal/model"

// ExampleAnalysis is the deterministic offline result substituted when the
// model quota is exhausted, so the user flow is never blocked.
func ExampleAnalysis() *model.Analysis {
	return &model.Analysis{
		IsValidTrashImage: true,
		Name:              "Plastic Bottle (Example)",
		Materials:         []string{"Plastic (PET)"},
		RecyclingMethod:   "Rinse the bottle, remove the cap and label, and place it in your plastics recycling bin according to local rules.",
		ReuseMethod:       "Use as a watering bottle for plants, a DIY bird feeder, or refill with water instead of buying new bottles.",
		Category:          model.CategoryPlastics,
	}
}
