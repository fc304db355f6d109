package llm_test

import (
	"strings"
	"testing"

	"github.com/PabloGalante/longevity-agent/internal/adapters/llm"
	"github.com/PabloGalante/longevity-agent/internal/domain"
)

func TestBuildSystemPromptWithoutItems(t *testing.T) {
	prompt := llm.BuildSystemPrompt(nil)

	if !strings.Contains(prompt, "Longevity Health Agent") {
		t.Fatal("expected persona block")
	}
	if strings.Contains(prompt, "Relevant supplements from knowledge base") {
		t.Fatal("knowledge block should be omitted when nothing matched")
	}
}

func TestBuildSystemPromptEmbedsItems(t *testing.T) {
	prompt := llm.BuildSystemPrompt([]*domain.Supplement{
		{
			Name:         "Magnesium",
			Description:  "Supports sleep quality.",
			Dosage:       "200-400mg daily",
			ReferralLink: "https://example.com/mag",
		},
	})

	for _, want := range []string{
		"Relevant supplements from knowledge base",
		"- Magnesium: Supports sleep quality.",
		"Typical dosage: 200-400mg daily",
		"Referral link: https://example.com/mag",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestHistoryWindowBoundsAndFilters(t *testing.T) {
	var history []*domain.Message
	for i := 0; i < 12; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		history = append(history, &domain.Message{Role: role, Content: "msg"})
	}
	history = append(history, &domain.Message{Role: domain.Role("system"), Content: "ignored"})

	window := llm.HistoryWindow(history, 10)

	if len(window) != 9 {
		t.Fatalf("expected 9 messages (10-window minus non-chat role), got %d", len(window))
	}
	for _, m := range window {
		if m.Role != domain.RoleUser && m.Role != domain.RoleAssistant {
			t.Fatalf("unexpected role %q in window", m.Role)
		}
	}
}
