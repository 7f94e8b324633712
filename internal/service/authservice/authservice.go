package authservice

import (
	"context"
	"time"

	"github.com/aramvolt/voltbook/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenTTL = time.Hour

// Service maps a submitted credential to a role and owns the session
// lifecycle: login issues a token bound to a registered session id, logout
// revokes it.
type Service struct {
	verifier   auth.CredentialVerifier
	jwtService auth.JWTServiceInterface
	sessions   auth.SessionRegistryInterface
}

func New(verifier auth.CredentialVerifier, jwtService auth.JWTServiceInterface, sessions auth.SessionRegistryInterface) *Service {
	return &Service{
		verifier:   verifier,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (s *Service) Login(ctx context.Context, credential string) (string, string, error) {
	role, err := s.verifier.Verify(credential)
	if err != nil {
		zap.L().Info("login rejected")
		return "", "", err
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(role, sessionID, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", "", err
	}

	s.sessions.Add(sessionID, expiresAt)
	zap.L().Info("session opened", zap.String("role", role))
	return role, token, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	s.sessions.Revoke(sessionID)
	zap.L().Info("session closed")
	return nil
}
