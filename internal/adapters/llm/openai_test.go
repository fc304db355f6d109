package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PabloGalante/longevity-agent/internal/adapters/llm"
	"github.com/PabloGalante/longevity-agent/internal/domain"
)

func TestOpenAIClientComplete(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "hello back"}},
			},
		})
	}))
	defer ts.Close()

	c := llm.NewOpenAIClient("sk-test", ts.URL, "gpt-4o")
	if !c.Configured() {
		t.Fatal("client with key should report configured")
	}

	out, err := c.Complete(context.Background(), domain.CompletionRequest{
		System:      "be brief",
		Messages:    []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   800,
		JSONOutput:  true,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "hello back" {
		t.Fatalf("unexpected completion %q", out)
	}

	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody["model"] != "gpt-4o" {
		t.Fatalf("unexpected model %v", gotBody["model"])
	}

	msgs := gotBody["messages"].([]any)
	first := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "be brief" {
		t.Fatalf("system prompt not first message: %+v", first)
	}

	rf := gotBody["response_format"].(map[string]any)
	if rf["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", rf)
	}
}

func TestOpenAIClientErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer ts.Close()

	c := llm.NewOpenAIClient("sk-test", ts.URL, "gpt-4o")
	_, err := c.Complete(context.Background(), domain.CompletionRequest{
		Messages: []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestOpenAIClientUnconfigured(t *testing.T) {
	c := llm.NewOpenAIClient("", "https://api.openai.com/v1", "gpt-4o")
	if c.Configured() {
		t.Fatal("client without key should not report configured")
	}
	if _, err := c.Complete(context.Background(), domain.CompletionRequest{}); err == nil {
		t.Fatal("expected error when called without a key")
	}
}
