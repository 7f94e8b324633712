package partners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/dto"
	"github.com/aramvolt/voltbook/internal/repo/repoerrors"
	"github.com/aramvolt/voltbook/internal/service/partnerservice"
	"github.com/aramvolt/voltbook/pkg/utils"
)

type Service interface {
	ListPartners(ctx context.Context) ([]string, error)
	CreatePartner(ctx context.Context, name string) (*domain.Partner, error)
	DeletePartner(ctx context.Context, name string) error
}

type PartnerHandler struct {
	partnerService Service
}

func New(partnerService Service) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// ListPartners godoc
//
//	@Summary		List partner accounts
//	@Description	Enumerate every persisted partner record-set
//	@Tags			Partners
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ListPartnersResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/partners [get]
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	names, err := h.partnerService.ListPartners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if names == nil {
		names = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListPartnersResponseDTO{Partners: names})
}

// CreatePartner godoc
//
//	@Summary		Create a partner account
//	@Description	Register a new partner with an empty record-set
//	@Tags			Partners
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreatePartnerRequestDTO	true	"Create partner request body"
//	@Success		201		{object}	dto.CreatePartnerResponseDTO
//	@Failure		400		{object}	utils.Response	"Empty or invalid partner name"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		409		{object}	utils.Response	"Partner already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners [post]
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partner, err := h.partnerService.CreatePartner(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, partnerservice.ErrEmptyName), errors.Is(err, partnerservice.ErrInvalidName):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repoerrors.ErrPartnerExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreatePartnerResponseDTO{
		Name:    partner.Name,
		Message: "Partner successfully created",
	})
}

// DeletePartner godoc
//
//	@Summary		Delete a partner account
//	@Description	Remove the partner's record-set and all of its entries. Deleting an unknown partner succeeds.
//	@Tags			Partners
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string	true	"Partner name"
//	@Success		200		{object}	utils.Response	"Partner deleted"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/{name} [delete]
func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.partnerService.DeletePartner(r.Context(), name); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Partner deleted"})
}
