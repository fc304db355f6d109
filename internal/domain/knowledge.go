package domain

import "time"

// Supplement is a single recommendable item from the knowledge base.
// Immutable after load.
type Supplement struct {
	Name          string   `json:"name" firestore:"name"`
	Description   string   `json:"description" firestore:"description"`
	Dosage        string   `json:"dosage" firestore:"dosage"`
	Cautions      string   `json:"cautions" firestore:"cautions"`
	EvidenceLevel string   `json:"evidence_level" firestore:"evidence_level"`
	RelevantGoals []string `json:"relevant_goals" firestore:"relevant_goals"`
	ReferralLink  string   `json:"referral_link" firestore:"referral_link"`
}

// RecommendedSupplement is the subset of a Supplement surfaced to the caller
// when the item was mentioned in a generated answer.
type RecommendedSupplement struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	ReferralLink string `json:"referral_link"`
}

// Recommendation is the structured payload produced for one turn.
// Never mutated after creation; appended to the session for audit.
type Recommendation struct {
	Supplements []RecommendedSupplement `json:"supplements"`
	CreatedAt   time.Time               `json:"timestamp"`
}
