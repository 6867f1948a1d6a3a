package redisstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"commerce-chatbot-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chatbot:session:"

// SessionRepository keeps dialogue sessions in Redis so they survive a
// process restart. Selected with SESSION_STORE=redis; the in-memory
// go-cache repository remains the default.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("[WARN] Failed to marshal session %s: %v", session.ID, err)
		return
	}
	if err := r.client.Set(context.Background(), sessionKeyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		log.Printf("[WARN] Failed to save session %s to redis: %v", session.ID, err)
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.client.Get(context.Background(), sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] Failed to read session %s from redis: %v", sessionID, err)
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("[WARN] Corrupt session %s in redis: %v", sessionID, err)
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	if err := r.client.Del(context.Background(), sessionKeyPrefix+sessionID).Err(); err != nil {
		log.Printf("[WARN] Failed to delete session %s from redis: %v", sessionID, err)
	}
}
