package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PabloGalante/longevity-agent/internal/adapters/llm"
	memstore "github.com/PabloGalante/longevity-agent/internal/adapters/storage/memory"
	"github.com/PabloGalante/longevity-agent/internal/app/chat"
	"github.com/PabloGalante/longevity-agent/internal/domain"
	"github.com/PabloGalante/longevity-agent/internal/knowledge"
)

func newTestService(mock *llm.MockLLM) (*chat.Service, *memstore.SessionStore) {
	store := memstore.NewSessionStore(time.Hour)
	svc := chat.NewService(mock, store, knowledge.NewDefaultBase(), 0)
	return svc, store
}

func TestTurnPipelineEndToEnd(t *testing.T) {
	mock := llm.NewMockLLM()
	mock.Responses = []string{
		// Goal extraction answer, then the generated reply.
		`{"goals": ["sleep improvement", "stress reduction"]}`,
		"Based on your goals, Magnesium before bed is a well-studied option. " +
			"DISCLAIMER: consult a healthcare provider first.",
	}

	svc, _ := newTestService(mock)

	out, err := svc.ProcessTurn(context.Background(), chat.TurnInput{
		SessionID: "sess-1",
		Message:   "I want to improve my sleep and reduce stress",
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	if !strings.Contains(out.Response, "Magnesium") {
		t.Fatalf("expected generated reply, got %q", out.Response)
	}

	if out.Recommendation == nil {
		t.Fatal("expected a recommendation payload")
	}
	if len(out.Recommendation.Supplements) != 1 {
		t.Fatalf("expected exactly one supplement, got %d", len(out.Recommendation.Supplements))
	}
	sup := out.Recommendation.Supplements[0]
	if sup.Name != "Magnesium" {
		t.Fatalf("expected Magnesium, got %q", sup.Name)
	}
	if sup.Dosage != "200-400mg daily, preferably magnesium glycinate or threonate forms for better absorption" {
		t.Fatalf("unexpected dosage: %q", sup.Dosage)
	}
	if !strings.Contains(sup.ReferralLink, "magnesium") {
		t.Fatalf("unexpected referral link: %q", sup.ReferralLink)
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 delegate calls (detection + generation), got %d", len(mock.Calls))
	}
	if !mock.Calls[0].JSONOutput {
		t.Fatal("detection call should request JSON output")
	}
	if !strings.Contains(mock.Calls[1].System, "Magnesium") {
		t.Fatal("generation system prompt should embed the matched knowledge items")
	}
	if !strings.Contains(mock.Calls[1].System, "Ashwagandha") {
		t.Fatal("generation system prompt should embed all matched items, not just the mentioned one")
	}
}

func TestMessagesGrowTwoPerTurn(t *testing.T) {
	mock := llm.NewMockLLM()
	svc, store := newTestService(mock)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := svc.ProcessTurn(ctx, chat.TurnInput{SessionID: "sess-1", Message: "hello"}); err != nil {
			t.Fatalf("turn %d failed: %v", i, err)
		}
	}

	sess, err := store.GetOrCreate("sess-1")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if len(sess.Messages) != 6 {
		t.Fatalf("expected 6 messages after 3 turns, got %d", len(sess.Messages))
	}
	for i, m := range sess.Messages {
		want := domain.RoleUser
		if i%2 == 1 {
			want = domain.RoleAssistant
		}
		if m.Role != want {
			t.Fatalf("message %d: expected role %s, got %s", i, want, m.Role)
		}
	}
}

func TestGoalsAccumulateAcrossTurns(t *testing.T) {
	mock := llm.NewMockLLM()
	mock.Responses = []string{
		`["sleep improvement"]`,
		"reply one",
		`["energy", "sleep improvement"]`,
		"reply two",
	}

	svc, store := newTestService(mock)
	ctx := context.Background()

	if _, err := svc.ProcessTurn(ctx, chat.TurnInput{SessionID: "s", Message: "first"}); err != nil {
		t.Fatalf("turn 1 failed: %v", err)
	}
	if _, err := svc.ProcessTurn(ctx, chat.TurnInput{SessionID: "s", Message: "second"}); err != nil {
		t.Fatalf("turn 2 failed: %v", err)
	}

	sess, _ := store.GetOrCreate("s")
	got := strings.Join(sess.IdentifiedGoals, ",")
	if got != "sleep improvement,energy" {
		t.Fatalf("expected deduplicated accumulated goals, got %q", got)
	}
}

// unconfiguredLLM fails the test if any delegate call is attempted.
type unconfiguredLLM struct {
	t *testing.T
}

func (u *unconfiguredLLM) Configured() bool { return false }

func (u *unconfiguredLLM) Complete(context.Context, domain.CompletionRequest) (string, error) {
	u.t.Fatal("delegate call attempted on unconfigured client")
	return "", nil
}

func TestUnconfiguredClientShortCircuits(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)
	svc := chat.NewService(&unconfiguredLLM{t: t}, store, knowledge.NewDefaultBase(), 0)

	out, err := svc.ProcessTurn(context.Background(), chat.TurnInput{
		SessionID: "s",
		Message:   "I want to sleep better",
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	want := "I'm sorry, but I'm not currently configured to process messages. " +
		"Please contact support to set up the language model integration."
	if out.Response != want {
		t.Fatalf("expected fixed support notice, got %q", out.Response)
	}
	if out.Recommendation != nil {
		t.Fatal("expected nil recommendations")
	}

	// The notice is still recorded as an assistant turn.
	sess, _ := store.GetOrCreate("s")
	if len(sess.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sess.Messages))
	}
}

func TestGenerationFailureYieldsApology(t *testing.T) {
	mock := llm.NewMockLLM()
	mock.Err = errors.New("rate limited")

	svc, store := newTestService(mock)

	out, err := svc.ProcessTurn(context.Background(), chat.TurnInput{
		SessionID: "s",
		Message:   "I want more energy",
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	if !strings.HasPrefix(out.Response, "I apologize, but I encountered an error processing your request:") {
		t.Fatalf("expected apologetic reply, got %q", out.Response)
	}
	if !strings.Contains(out.Response, "rate limited") {
		t.Fatalf("expected failure reason embedded, got %q", out.Response)
	}
	if out.Recommendation != nil {
		t.Fatal("expected nil recommendations on generation failure")
	}

	// The conversation log stays consistent: the error message is recorded
	// as if the assistant spoke it.
	sess, _ := store.GetOrCreate("s")
	if len(sess.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sess.Messages))
	}
	if sess.Messages[1].Role != domain.RoleAssistant || sess.Messages[1].Content != out.Response {
		t.Fatal("assistant entry should carry the apology text")
	}
}
