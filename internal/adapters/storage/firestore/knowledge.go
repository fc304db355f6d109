package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

// KnowledgeSource loads the supplement catalog from a Firestore collection.
// The catalog is read once at startup; the documents are treated as immutable.
type KnowledgeSource struct {
	client *firestore.Client
}

// NewKnowledgeSource creates a Firestore-backed knowledge source.
// Uses the project passed (LONGEVITY_GCP_PROJECT).
func NewKnowledgeSource(ctx context.Context, projectID string) (*KnowledgeSource, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore knowledge source")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &KnowledgeSource{client: client}, nil
}

func (s *KnowledgeSource) supplementsCol() *firestore.CollectionRef {
	return s.client.Collection("supplements")
}

type supplementDoc struct {
	Name          string   `firestore:"name"`
	Description   string   `firestore:"description"`
	Dosage        string   `firestore:"dosage"`
	Cautions      string   `firestore:"cautions"`
	EvidenceLevel string   `firestore:"evidence_level"`
	RelevantGoals []string `firestore:"relevant_goals"`
	ReferralLink  string   `firestore:"referral_link"`
}

// LoadSupplements reads the whole supplements collection.
func (s *KnowledgeSource) LoadSupplements(ctx context.Context) ([]*domain.Supplement, error) {
	iter := s.supplementsCol().Documents(ctx)
	defer iter.Stop()

	var out []*domain.Supplement
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				break
			}
			return nil, fmt.Errorf("firestore LoadSupplements: %w", err)
		}

		var doc supplementDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("firestore LoadSupplements decode %s: %w", snap.Ref.ID, err)
		}

		out = append(out, &domain.Supplement{
			Name:          doc.Name,
			Description:   doc.Description,
			Dosage:        doc.Dosage,
			Cautions:      doc.Cautions,
			EvidenceLevel: doc.EvidenceLevel,
			RelevantGoals: doc.RelevantGoals,
			ReferralLink:  doc.ReferralLink,
		})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("firestore supplements collection is empty")
	}

	return out, nil
}

// Close releases the underlying client.
func (s *KnowledgeSource) Close() error {
	return s.client.Close()
}
