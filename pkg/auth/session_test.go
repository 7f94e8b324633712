package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionRegistry(t *testing.T) {
	registry := NewSessionRegistry()

	assert.False(t, registry.Active("unknown"))

	registry.Add("session-id", time.Now().Add(time.Hour))
	assert.True(t, registry.Active("session-id"))

	registry.Revoke("session-id")
	assert.False(t, registry.Active("session-id"))

	// Revoking twice is harmless.
	registry.Revoke("session-id")
	assert.False(t, registry.Active("session-id"))
}

func TestSessionRegistryExpiry(t *testing.T) {
	registry := NewSessionRegistry()

	registry.Add("session-id", time.Now().Add(-time.Minute))
	assert.False(t, registry.Active("session-id"))

	// An expired session is dropped on first check.
	assert.False(t, registry.Active("session-id"))
}
