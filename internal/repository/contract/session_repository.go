package contract

import "commerce-chatbot-be/pkg/store"

// SessionRepository stores dialogue sessions keyed by session id.
// Implementations are expected to expire idle sessions on their own.
type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	Delete(sessionID string)
}
