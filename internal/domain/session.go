package domain

// Message represents a single entry in a session's conversation history
type Message struct {
	ID        MessageID
	Role      Role
	Content   string
	CreatedAt Timestamp
}

// Session represents the conversational state for one opaque session token.
// Messages are append-only; once appended they are never mutated or reordered.
type Session struct {
	ID           SessionID
	CreatedAt    Timestamp
	LastAccessed Timestamp

	Messages        []*Message
	IdentifiedGoals []string
	Recommendations []*Recommendation
}

// AppendMessage adds a message to the end of the history.
func (s *Session) AppendMessage(m *Message) {
	s.Messages = append(s.Messages, m)
}

// MergeGoals adds any goals not already identified for this session.
// Insertion order is kept stable for readability, duplicates are skipped.
func (s *Session) MergeGoals(goals []string) {
	for _, g := range goals {
		if !s.HasGoal(g) {
			s.IdentifiedGoals = append(s.IdentifiedGoals, g)
		}
	}
}

func (s *Session) HasGoal(goal string) bool {
	for _, g := range s.IdentifiedGoals {
		if g == goal {
			return true
		}
	}
	return false
}
