package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueToken(t *testing.T, jwtService *JWTService, sessions *SessionRegistry, role string) (string, string) {
	sessionID := "session-" + role
	token, err := jwtService.GenerateJWT(role, sessionID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	sessions.Add(sessionID, time.Now().Add(time.Hour))
	return token, sessionID
}

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	sessions := NewSessionRegistry()

	var gotRole, gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = r.Context().Value(RoleKey).(string)
		gotSessionID, _ = r.Context().Value(SessionIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(jwtService, sessions)(next)

	validToken, sessionID := issueToken(t, jwtService, sessions, RoleAdministrator)

	revokedToken, revokedID := issueToken(t, jwtService, sessions, RoleCustomer)
	sessions.Revoke(revokedID)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header without bearer prefix",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Revoked session",
			authHeader:     "Bearer " + revokedToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRole, gotSessionID = "", ""

			req := httptest.NewRequest(http.MethodGet, "/api/partners", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, RoleAdministrator, gotRole)
				assert.Equal(t, sessionID, gotSessionID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	sessions := NewSessionRegistry()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(jwtService, sessions)(RequireRole(RoleAdministrator)(next))

	adminToken, _ := issueToken(t, jwtService, sessions, RoleAdministrator)
	customerToken, _ := issueToken(t, jwtService, sessions, RoleCustomer)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "Administrator allowed",
			token:          adminToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Customer forbidden",
			token:          customerToken,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/partners", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
