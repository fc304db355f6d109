package knowledge

import (
	"strings"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

// Base holds the supplement catalog in memory. The catalog is loaded once at
// startup and never mutated afterwards, so lookups need no locking.
//
// Goal matching is a deliberate recall-favoring substring heuristic, not
// semantic search: a goal matches an item when it appears inside one of the
// item's relevant goals or inside its description. False positives via
// description text are accepted.
type Base struct {
	supplements []*domain.Supplement
}

// NewBase builds a catalog from the given supplements. An empty or nil list
// falls back to the built-in defaults.
func NewBase(supplements []*domain.Supplement) *Base {
	if len(supplements) == 0 {
		supplements = defaultSupplements()
	}
	return &Base{supplements: supplements}
}

// NewDefaultBase builds a catalog from the built-in defaults.
func NewDefaultBase() *Base {
	return NewBase(nil)
}

// All returns every supplement in the catalog.
func (b *Base) All() []*domain.Supplement {
	return b.supplements
}

// FindForGoal returns the supplements relevant to a single health goal.
func (b *Base) FindForGoal(goal string) []*domain.Supplement {
	goal = strings.ToLower(strings.TrimSpace(goal))
	if goal == "" {
		return nil
	}

	var relevant []*domain.Supplement
	for _, sup := range b.supplements {
		if matchesGoal(sup, goal) {
			relevant = append(relevant, sup)
		}
	}
	return relevant
}

// FindForGoals returns the union of FindForGoal across goals, deduplicated by
// supplement name (first match wins, catalog order within each goal).
func (b *Base) FindForGoals(goals []string) []*domain.Supplement {
	var out []*domain.Supplement
	seen := make(map[string]bool)
	for _, goal := range goals {
		for _, sup := range b.FindForGoal(goal) {
			if seen[sup.Name] {
				continue
			}
			seen[sup.Name] = true
			out = append(out, sup)
		}
	}
	return out
}

func matchesGoal(sup *domain.Supplement, goal string) bool {
	for _, target := range sup.RelevantGoals {
		if strings.Contains(strings.ToLower(target), goal) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(sup.Description), goal)
}

// Disclaimer returns the medical disclaimer of the given kind. Unknown kinds
// fall back to the general disclaimer.
func (b *Base) Disclaimer(kind string) string {
	if text, ok := disclaimers[kind]; ok {
		return text
	}
	return disclaimers["general"]
}

var disclaimers = map[string]string{
	"general": "DISCLAIMER: This information is for educational purposes only and is not intended " +
		"as medical advice, diagnosis, or treatment. Always consult with a qualified " +
		"healthcare provider before making any changes to your health regimen.",

	"supplements": "SUPPLEMENT DISCLAIMER: Dietary supplements are not regulated by the FDA and " +
		"have not been evaluated to treat, cure, or prevent any disease. Results may " +
		"vary. Consult with a healthcare professional before starting any supplement.",

	"prescriptions": "PRESCRIPTION DISCLAIMER: Prescription medications require evaluation by a " +
		"licensed healthcare provider. This information does not constitute medical " +
		"advice and does not replace consultation with a healthcare professional.",
}
