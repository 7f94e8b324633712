package service

import (
	"github.com/aramvolt/voltbook/internal/config"
	authhandlers "github.com/aramvolt/voltbook/internal/handlers/auth"
	ledgerhandlers "github.com/aramvolt/voltbook/internal/handlers/ledger"
	partnerhandlers "github.com/aramvolt/voltbook/internal/handlers/partners"

	pkgauth "github.com/aramvolt/voltbook/pkg/auth"

	"github.com/aramvolt/voltbook/internal/repo"
	authservice "github.com/aramvolt/voltbook/internal/service/authservice"
	ledgerservice "github.com/aramvolt/voltbook/internal/service/ledgerservice"
	partnerservice "github.com/aramvolt/voltbook/internal/service/partnerservice"
)

type Services struct {
	AuthService    authhandlers.Service
	PartnerService partnerhandlers.Service
	LedgerService  ledgerhandlers.Service
}

func New(cfg *config.Config, repos *repo.Repositories, jwtService pkgauth.JWTServiceInterface, sessions pkgauth.SessionRegistryInterface) *Services {
	var verifier pkgauth.CredentialVerifier
	if cfg.UseHashedCredentials() {
		verifier = pkgauth.NewBcryptVerifier(cfg.AdminHash, cfg.CustomerHash, &pkgauth.HashService{})
	} else {
		verifier = pkgauth.NewFixedSecretVerifier(cfg.AdminPass, cfg.CustomerPass)
	}

	authService := authservice.New(verifier, jwtService, sessions)
	partnerService := partnerservice.New(repos.Partner)
	ledgerService := ledgerservice.New(repos.Partner)

	return &Services{
		AuthService:    authService,
		PartnerService: partnerService,
		LedgerService:  ledgerService,
	}
}
