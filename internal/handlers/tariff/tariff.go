package tariff

import (
	"net/http"
	"time"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/dto"
	"github.com/aramvolt/voltbook/pkg/utils"
)

type Service interface {
	CurrentRate() (domain.Tariff, bool)
}

type TariffHandler struct {
	tariffService Service
}

func New(tariffService Service) *TariffHandler {
	return &TariffHandler{
		tariffService: tariffService,
	}
}

// GetTariff godoc
//
//	@Summary		Get the current electricity tariff
//	@Description	Latest price per kWh fetched from the configured provider, offered as a prefill for new entries
//	@Tags			Tariff
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TariffResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No tariff available"
//	@Router			/api/tariff [get]
func (h *TariffHandler) GetTariff(w http.ResponseWriter, r *http.Request) {
	rate, ok := h.tariffService.CurrentRate()
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No tariff available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TariffResponseDTO{
		Rate:      rate.Rate,
		Currency:  rate.Currency,
		UpdatedAt: rate.UpdatedAt.Format(time.RFC3339),
	})
}
