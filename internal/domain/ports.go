package domain

import "context"

// ChatMessage is a role-tagged message sent to the LLM provider.
type ChatMessage struct {
	Role    Role
	Content string
}

// CompletionRequest describes one delegated call to the LLM provider.
type CompletionRequest struct {
	System      string
	Messages    []ChatMessage
	Temperature float32
	MaxTokens   int

	// JSONOutput asks the provider for a JSON-shaped response when supported.
	JSONOutput bool
}

// LLMClient defines how the core application interacts with an LLM service.
type LLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Configured reports whether the client has the credentials it needs.
	// The orchestrator checks this before attempting any delegate call.
	Configured() bool
}

// SessionStore defines session's persistence
type SessionStore interface {
	// GetOrCreate returns the live session for id, creating an empty one if
	// the id has never been seen (or was evicted). Never an error condition.
	GetOrCreate(id SessionID) (*Session, error)

	// Put replaces the stored state and refreshes last-accessed.
	Put(id SessionID, session *Session) error

	// Sweep removes sessions idle longer than the configured timeout and
	// returns how many were evicted.
	Sweep() int

	// ActiveCount reports how many non-expired sessions are held.
	ActiveCount() int
}

// KnowledgeSource loads the supplement catalog at startup.
type KnowledgeSource interface {
	LoadSupplements(ctx context.Context) ([]*Supplement, error)
}
