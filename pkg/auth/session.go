package auth

import (
	"sync"
	"time"
)

type SessionRegistryInterface interface {
	Add(sessionID string, expiresAt time.Time)
	Revoke(sessionID string)
	Active(sessionID string) bool
}

// SessionRegistry tracks issued session ids so that logout can revoke a
// token before it expires. Sessions live in memory only; a restart logs
// everyone out.
type SessionRegistry struct {
	sessions sync.Map
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{}
}

func (r *SessionRegistry) Add(sessionID string, expiresAt time.Time) {
	r.sessions.Store(sessionID, expiresAt)
}

func (r *SessionRegistry) Revoke(sessionID string) {
	r.sessions.Delete(sessionID)
}

func (r *SessionRegistry) Active(sessionID string) bool {
	v, ok := r.sessions.Load(sessionID)
	if !ok {
		return false
	}
	expiresAt, ok := v.(time.Time)
	if !ok || time.Now().After(expiresAt) {
		r.sessions.Delete(sessionID)
		return false
	}
	return true
}
