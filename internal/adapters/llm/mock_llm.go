package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

// MockLLM is a deterministic LLMClient for local mode and tests.
//
// When Responses is set, calls consume it in order and the last entry
// repeats. Otherwise JSON-mode calls answer with an empty goals object and
// chat calls echo the last user message.
type MockLLM struct {
	mu        sync.Mutex
	Responses []string
	Err       error

	// Calls records every request received, newest last.
	Calls []domain.CompletionRequest

	next int
}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Configured() bool { return true }

func (m *MockLLM) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.Err != nil {
		return "", m.Err
	}

	if len(m.Responses) > 0 {
		resp := m.Responses[m.next]
		if m.next < len(m.Responses)-1 {
			m.next++
		}
		return resp, nil
	}

	if req.JSONOutput {
		return `{"goals": []}`, nil
	}

	last := ""
	for _, msg := range req.Messages {
		if msg.Role == domain.RoleUser {
			last = msg.Content
		}
	}
	return fmt.Sprintf("I hear you. You said %q. Tell me a bit more about your health goals so I can help.", last), nil
}
