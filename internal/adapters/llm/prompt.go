package llm

import (
	"strings"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

const baseSystemPrompt = `
You are a helpful, knowledgeable Longevity Health Agent specializing in longevity medicine.

Your goal is to understand the user's health concerns and goals, then provide evidence-based recommendations
on supplements, lifestyle changes, and general health practices that could help them.

Important guidelines:
1. ALWAYS include appropriate medical disclaimers when giving health advice.
2. Be clear about the level of scientific evidence supporting each recommendation.
3. When recommending supplements, include dosage information, potential side effects, and contraindications.
4. Encourage users to consult with healthcare professionals before starting any new health regimen.
5. Avoid making exaggerated claims or promises about health outcomes.
6. Be respectful, empathetic, and professional in your tone.
7. Do not diagnose conditions or prescribe medications.
8. When relevant, include referral links for recommended supplements using the format provided in the knowledge base.

For each response, try to:
1. Acknowledge the user's concerns or questions
2. Provide evidence-based information and context
3. Give clear, actionable recommendations when appropriate
4. Include relevant disclaimers
`

// BuildSystemPrompt combines the persona/policy instructions with the
// supplements matched for this turn. The knowledge block is omitted when
// nothing matched.
func BuildSystemPrompt(relevant []*domain.Supplement) string {
	if len(relevant) == 0 {
		return baseSystemPrompt
	}

	var b strings.Builder
	b.WriteString(baseSystemPrompt)
	b.WriteString("\n\nRelevant supplements from knowledge base:\n")
	for _, sup := range relevant {
		b.WriteString("- " + sup.Name + ": " + sup.Description + "\n")
		b.WriteString("  Typical dosage: " + sup.Dosage + "\n")
		b.WriteString("  Referral link: " + sup.ReferralLink + "\n\n")
	}
	return b.String()
}

// HistoryWindow converts the trailing n user/assistant turns of a session's
// history into provider messages. The newest user message is expected to
// already be part of history, so it reaches the model through the window.
func HistoryWindow(history []*domain.Message, n int) []domain.ChatMessage {
	if n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}

	out := make([]domain.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Role != domain.RoleUser && m.Role != domain.RoleAssistant {
			continue
		}
		out = append(out, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
