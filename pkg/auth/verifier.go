package auth

import (
	"crypto/subtle"
	"errors"
)

const (
	RoleAdministrator = "administrator"
	RoleCustomer      = "customer"
)

// ErrInvalidCredentials is deliberately generic: the caller must never learn
// which credential was expected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier maps a submitted credential to a role.
type CredentialVerifier interface {
	Verify(credential string) (string, error)
}

// FixedSecretVerifier compares against two plain shared secrets. Dev only,
// inherited from the original two-password scheme.
type FixedSecretVerifier struct {
	adminSecret    string
	customerSecret string
}

func NewFixedSecretVerifier(adminSecret, customerSecret string) *FixedSecretVerifier {
	return &FixedSecretVerifier{
		adminSecret:    adminSecret,
		customerSecret: customerSecret,
	}
}

func (v *FixedSecretVerifier) Verify(credential string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(v.adminSecret)) == 1 {
		return RoleAdministrator, nil
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(v.customerSecret)) == 1 {
		return RoleCustomer, nil
	}
	return "", ErrInvalidCredentials
}

// BcryptVerifier compares against bcrypt hashes of the two role credentials.
type BcryptVerifier struct {
	adminHash    string
	customerHash string
	hashService  HashServiceInterface
}

func NewBcryptVerifier(adminHash, customerHash string, hashService HashServiceInterface) *BcryptVerifier {
	return &BcryptVerifier{
		adminHash:    adminHash,
		customerHash: customerHash,
		hashService:  hashService,
	}
}

func (v *BcryptVerifier) Verify(credential string) (string, error) {
	if v.hashService.ComparePassword(v.adminHash, credential) {
		return RoleAdministrator, nil
	}
	if v.hashService.ComparePassword(v.customerHash, credential) {
		return RoleCustomer, nil
	}
	return "", ErrInvalidCredentials
}
