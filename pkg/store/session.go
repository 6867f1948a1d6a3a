package store

import "time"

// Speaker roles recorded in a session transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Utterance is a single (speaker, text) pair in a conversation.
type Utterance struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Session holds the per-conversation dialogue state. One session per
// conversation, no state shared between sessions; the transcript feeds
// the text-completion collaborator for unclassified intents.
type Session struct {
	ID           string      `json:"id"`
	Transcript   []Utterance `json:"transcript"`
	LastQuery    string      `json:"last_query"`
	CreatedAt    time.Time   `json:"created_at"`
	LastActiveAt time.Time   `json:"last_active_at"`
}

// Append records an utterance and bumps the activity timestamp.
func (s *Session) Append(role, text string) {
	s.Transcript = append(s.Transcript, Utterance{Role: role, Text: text})
	s.LastActiveAt = time.Now()
}
