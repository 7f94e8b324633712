package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSecretVerifier(t *testing.T) {
	verifier := NewFixedSecretVerifier("admin-secret", "customer-secret")

	tests := []struct {
		name         string
		credential   string
		expectedRole string
		expectErr    bool
	}{
		{
			name:         "Administrator secret",
			credential:   "admin-secret",
			expectedRole: RoleAdministrator,
		},
		{
			name:         "Customer secret",
			credential:   "customer-secret",
			expectedRole: RoleCustomer,
		},
		{
			name:       "Unknown secret",
			credential: "wrong",
			expectErr:  true,
		},
		{
			name:       "Empty credential",
			credential: "",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := verifier.Verify(tt.credential)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, role)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, role)
			}
		})
	}
}

func TestBcryptVerifier(t *testing.T) {
	hashService := &HashService{}
	adminHash, err := hashService.HashPassword("admin-secret")
	require.NoError(t, err)
	customerHash, err := hashService.HashPassword("customer-secret")
	require.NoError(t, err)

	verifier := NewBcryptVerifier(adminHash, customerHash, hashService)

	role, err := verifier.Verify("admin-secret")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdministrator, role)

	role, err = verifier.Verify("customer-secret")
	assert.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	_, err = verifier.Verify("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
