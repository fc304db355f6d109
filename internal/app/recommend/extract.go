package recommend

import (
	"strings"
	"time"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

// Extract scans the generated answer for mentions of the candidate
// supplements and returns a structured payload for the matched subset, in
// candidate order. It returns nil, not an empty payload, when there are no
// candidates or no matches; callers must distinguish "no recommendation"
// from "empty recommendation list".
//
// Matching is a case-insensitive substring check on the item name. A short
// name occurring inside unrelated text counts as a mention; that imprecision
// is a known property of the heuristic and is kept as-is.
func Extract(responseText string, candidates []*domain.Supplement, now time.Time) *domain.Recommendation {
	if len(candidates) == 0 {
		return nil
	}

	lower := strings.ToLower(responseText)

	var matched []domain.RecommendedSupplement
	for _, sup := range candidates {
		if strings.Contains(lower, strings.ToLower(sup.Name)) {
			matched = append(matched, domain.RecommendedSupplement{
				Name:         sup.Name,
				Dosage:       sup.Dosage,
				ReferralLink: sup.ReferralLink,
			})
		}
	}

	if len(matched) == 0 {
		return nil
	}

	return &domain.Recommendation{
		Supplements: matched,
		CreatedAt:   now,
	}
}
