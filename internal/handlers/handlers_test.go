package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/aramvolt/voltbook/docs"
	authhandlers "github.com/aramvolt/voltbook/internal/handlers/auth"
	ledgerhandlers "github.com/aramvolt/voltbook/internal/handlers/ledger"
	partnerhandlers "github.com/aramvolt/voltbook/internal/handlers/partners"
	tariffhandlers "github.com/aramvolt/voltbook/internal/handlers/tariff"
	"github.com/aramvolt/voltbook/internal/service"
	"github.com/aramvolt/voltbook/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		PartnerService: partnerhandlers.NewMockService(ctrl),
		LedgerService:  ledgerhandlers.NewMockService(ctrl),
	}

	h := New(services, tariffhandlers.NewMockService(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPartnerHandler := NewMockPartnerHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockTariffHandler := NewMockTariffHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockPartnerHandler.EXPECT().ListPartners(gomock.Any(), gomock.Any()).AnyTimes()
	mockPartnerHandler.EXPECT().CreatePartner(gomock.Any(), gomock.Any()).AnyTimes()
	mockPartnerHandler.EXPECT().DeletePartner(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().AddEntry(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetEntries(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetOverview(gomock.Any(), gomock.Any()).AnyTimes()
	mockTariffHandler.EXPECT().GetTariff(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		PartnerHandler: mockPartnerHandler,
		LedgerHandler:  mockLedgerHandler,
		TariffHandler:  mockTariffHandler,
	}

	jwtService := auth.NewJWTService("test-secret")
	sessions := auth.NewSessionRegistry()

	newToken := func(role, sessionID string) string {
		token, err := jwtService.GenerateJWT(role, sessionID, time.Now().Add(time.Hour))
		if err != nil {
			t.Fatal(err)
		}
		sessions.Add(sessionID, time.Now().Add(time.Hour))
		return token
	}
	adminToken := newToken(auth.RoleAdministrator, "admin-session")
	customerToken := newToken(auth.RoleCustomer, "customer-session")

	router := chi.NewRouter()
	h.InitRoutes(router, jwtService, sessions)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"POST", "/api/auth/logout", "", http.StatusUnauthorized},
		{"POST", "/api/auth/logout", customerToken, http.StatusOK},
		{"GET", "/api/tariff", "", http.StatusUnauthorized},
		{"GET", "/api/tariff", customerToken, http.StatusOK},
		{"GET", "/api/partners", "", http.StatusUnauthorized},
		{"GET", "/api/partners", customerToken, http.StatusOK},
		{"POST", "/api/partners", customerToken, http.StatusForbidden},
		{"POST", "/api/partners", adminToken, http.StatusOK},
		{"GET", "/api/partners/overview", customerToken, http.StatusForbidden},
		{"GET", "/api/partners/overview", adminToken, http.StatusOK},
		{"DELETE", "/api/partners/Acme", customerToken, http.StatusForbidden},
		{"DELETE", "/api/partners/Acme", adminToken, http.StatusOK},
		{"POST", "/api/partners/Acme/entries", customerToken, http.StatusForbidden},
		{"POST", "/api/partners/Acme/entries", adminToken, http.StatusOK},
		{"GET", "/api/partners/Acme/entries", customerToken, http.StatusForbidden},
		{"GET", "/api/partners/Acme/entries", adminToken, http.StatusOK},
		{"GET", "/api/partners/Acme/summary", customerToken, http.StatusOK},
		{"GET", "/api/partners/Acme/summary", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
