package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aramvolt/voltbook/internal/dto"
	pkgauth "github.com/aramvolt/voltbook/pkg/auth"
	"github.com/aramvolt/voltbook/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, credential string) (string, string, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate with a shared credential
//	@Description	Exchange the portal password for a role-scoped session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	role, token, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, pkgauth.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Role:    role,
		Message: "Successfully authenticated",
	})
}

// Logout godoc
//
//	@Summary		End the current session
//	@Description	Revoke the session carried by the bearer token
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(pkgauth.SessionIDKey).(string)
	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Message: "Successfully logged out",
	})
}
