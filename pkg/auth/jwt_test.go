package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateJWT(RoleAdministrator, "session-id", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdministrator, claims.Role)
	assert.Equal(t, "session-id", claims.Id)
	assert.Equal(t, "voltbook", claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "Garbage token",
			token: func() string { return "not-a-token" },
		},
		{
			name: "Wrong signing secret",
			token: func() string {
				other := NewJWTService("other-secret")
				token, _ := other.GenerateJWT(RoleAdministrator, "session-id", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Expired token",
			token: func() string {
				token, _ := service.GenerateJWT(RoleAdministrator, "session-id", time.Now().Add(-time.Hour))
				return token
			},
		},
		{
			name: "Missing session id",
			token: func() string {
				token, _ := service.GenerateJWT(RoleAdministrator, "", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Missing role",
			token: func() string {
				token, _ := service.GenerateJWT("", "session-id", time.Now().Add(time.Hour))
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token())
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
