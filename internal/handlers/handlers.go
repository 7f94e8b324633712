package handlers

import (
	"net/http"

	_ "github.com/aramvolt/voltbook/docs"
	authhandlers "github.com/aramvolt/voltbook/internal/handlers/auth"
	ledgerhandlers "github.com/aramvolt/voltbook/internal/handlers/ledger"
	partnerhandlers "github.com/aramvolt/voltbook/internal/handlers/partners"
	tariffhandlers "github.com/aramvolt/voltbook/internal/handlers/tariff"
	"github.com/aramvolt/voltbook/internal/service"
	"github.com/aramvolt/voltbook/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	ListPartners(w http.ResponseWriter, r *http.Request)
	CreatePartner(w http.ResponseWriter, r *http.Request)
	DeletePartner(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	AddEntry(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type TariffHandler interface {
	GetTariff(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PartnerHandler PartnerHandler
	LedgerHandler  LedgerHandler
	TariffHandler  TariffHandler
}

func New(s *service.Services, tariffService tariffhandlers.Service) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		PartnerHandler: partnerhandlers.New(s.PartnerService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService),
		TariffHandler:  tariffhandlers.New(tariffService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService auth.JWTServiceInterface, sessions auth.SessionRegistryInterface) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	admin := auth.RequireRole(auth.RoleAdministrator)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtService, sessions))
			r.Post("/auth/logout", h.AuthHandler.Logout)
			r.Get("/tariff", h.TariffHandler.GetTariff)

			r.Route("/partners", func(r chi.Router) {
				r.Get("/", h.PartnerHandler.ListPartners)
				r.With(admin).Post("/", h.PartnerHandler.CreatePartner)
				r.With(admin).Get("/overview", h.LedgerHandler.GetOverview)

				r.Route("/{name}", func(r chi.Router) {
					r.With(admin).Delete("/", h.PartnerHandler.DeletePartner)
					r.With(admin).Post("/entries", h.LedgerHandler.AddEntry)
					r.With(admin).Get("/entries", h.LedgerHandler.GetEntries)
					r.Get("/summary", h.LedgerHandler.GetSummary)
				})
			})
		})
	})

	return r
}
