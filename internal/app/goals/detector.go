package goals

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PabloGalante/longevity-agent/internal/domain"
	"github.com/PabloGalante/longevity-agent/internal/observability"
)

// historyWindow is how many trailing turns feed the detection prompt.
const historyWindow = 5

const detectionSystemPrompt = "You are an AI assistant that identifies health goals and concerns from user messages. " +
	"Extract specific health goals like weight loss, longevity, muscle gain, hair loss, " +
	"sleep improvement, energy enhancement, mental clarity, etc. " +
	"Respond with a JSON array of identified goals, using lowercase with spaces. " +
	"If no goals are identified, return an empty array."

// fallbackVocabulary is the fixed list of common goal phrases used when no
// structured answer can be parsed from the delegate.
var fallbackVocabulary = []string{
	"weight loss", "longevity", "anti aging", "muscle gain",
	"hair loss", "sleep", "energy", "mental clarity",
	"stress reduction", "immune support",
}

// Detector extracts normalized health-goal phrases from freeform messages
// via a delegated classification call.
type Detector struct {
	llm domain.LLMClient
}

func NewDetector(llm domain.LLMClient) *Detector {
	return &Detector{llm: llm}
}

// Detect returns the goals identified in the new message given the recent
// history. Detection is an optimization, not a requirement: any delegate or
// parse failure degrades to the next tier and, ultimately, to an empty set.
// It never returns an error.
func (d *Detector) Detect(ctx context.Context, message string, history []*domain.Message) []string {
	log := observability.LoggerFromContext(ctx)

	window := renderWindow(history)

	userContent := fmt.Sprintf(
		"Based on this conversation and the latest message, identify the health goals:\n\n"+
			"Conversation history:\n%s\n\n"+
			"Latest message: %s\n\n"+
			"Return ONLY a JSON array of goals, nothing else. Example: [\"weight loss\", \"hair regrowth\"]",
		window, message,
	)

	raw, err := d.llm.Complete(ctx, domain.CompletionRequest{
		System:      detectionSystemPrompt,
		Messages:    []domain.ChatMessage{{Role: domain.RoleUser, Content: userContent}},
		Temperature: 0.3,
		JSONOutput:  true,
	})
	if err != nil {
		log.Warn("goal detection delegate call failed, proceeding with no goals", "error", err)
		return nil
	}

	if goals, ok := ParseGoals(raw); ok {
		return normalize(goals)
	}

	log.Warn("goal detection output unparsable, using vocabulary fallback", "raw", raw)
	return normalize(vocabularyGoals(message, window))
}

// renderWindow formats the last few user/assistant turns as "role: content"
// lines for the detection prompt.
func renderWindow(history []*domain.Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var lines []string
	for _, m := range history {
		if m.Role != domain.RoleUser && m.Role != domain.RoleAssistant {
			continue
		}
		lines = append(lines, string(m.Role)+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// ParseGoals runs the tiered structured parsers over the delegate's output.
// Each tier is a pure function from text to goals; first success wins.
func ParseGoals(text string) ([]string, bool) {
	for _, tier := range []func(string) ([]string, bool){
		parseArray,
		parseObject,
		parseBracketed,
	} {
		if goals, ok := tier(text); ok {
			return goals, true
		}
	}
	return nil, false
}

// parseArray accepts a bare JSON array of strings.
func parseArray(text string) ([]string, bool) {
	var goals []string
	if err := json.Unmarshal([]byte(text), &goals); err != nil {
		return nil, false
	}
	return goals, true
}

// parseObject accepts a JSON object with a "goals" array.
func parseObject(text string) ([]string, bool) {
	var payload struct {
		Goals []string `json:"goals"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}
	if payload.Goals == nil {
		return nil, false
	}
	return payload.Goals, true
}

var bracketRe = regexp.MustCompile(`\[[^\[\]]*\]`)

// parseBracketed extracts the first bracketed substring and parses that as a
// JSON array. Catches answers that wrap the array in prose.
func parseBracketed(text string) ([]string, bool) {
	candidate := bracketRe.FindString(text)
	if candidate == "" {
		return nil, false
	}
	return parseArray(candidate)
}

// vocabularyGoals checks each known phrase for case-insensitive membership in
// the new message or the rolling window.
func vocabularyGoals(message, window string) []string {
	msg := strings.ToLower(message)
	win := strings.ToLower(window)

	var goals []string
	for _, goal := range fallbackVocabulary {
		if strings.Contains(msg, goal) || strings.Contains(win, goal) {
			goals = append(goals, goal)
		}
	}
	return goals
}

// normalize lowercases, trims and deduplicates, keeping first-seen order.
func normalize(goals []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, g := range goals {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
