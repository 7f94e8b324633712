package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/dto"
	"github.com/aramvolt/voltbook/internal/repo/repoerrors"
	"github.com/aramvolt/voltbook/internal/service/ledgerservice"
	"github.com/aramvolt/voltbook/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	AddEntry(ctx context.Context, name string, date time.Time, lastRead, newRead, withdrawlPrice, paid float64) (*domain.UsageEntry, error)
	GetEntries(ctx context.Context, name string) ([]domain.UsageEntry, error)
	GetSummary(ctx context.Context, name string) (*domain.Summary, error)
	Overview(ctx context.Context) ([]domain.PartnerOverview, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// AddEntry godoc
//
//	@Summary		Append a usage entry
//	@Description	Record a meter-reading period for a partner; consumption, cash amount and balance are derived server-side.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string				true	"Partner name"
//	@Param			request	body		dto.AddEntryRequestDTO	true	"Entry request body"
//	@Success		201		{object}	dto.EntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or date"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		404		{object}	utils.Response	"Unknown partner"
//	@Failure		422		{object}	utils.Response	"Readings violate new_read > last_read"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/{name}/entries [post]
func (h *LedgerHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req dto.AddEntryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := h.ledgerService.AddEntry(r.Context(), name, date, req.LastRead, req.NewRead, req.WithdrawlPrice, req.Paid)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrReadingNotIncreased), errors.Is(err, ledgerservice.ErrNegativeValue):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, repoerrors.ErrPartnerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toEntryDTO(*entry))
}

// GetEntries godoc
//
//	@Summary		Get a partner's entries
//	@Description	Retrieve the partner's full record-set in insertion order
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string	true	"Partner name"
//	@Success		200		{array}		dto.EntryResponseDTO
//	@Failure		204		{object}	utils.Response	"No data available"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/{name}/entries [get]
func (h *LedgerHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	entries, err := h.ledgerService.GetEntries(r.Context(), name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.EntryResponseDTO, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toEntryDTO(entry))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSummary godoc
//
//	@Summary		Get a partner's aggregate totals
//	@Description	Total consumption, cash amount, paid amount and balance across the partner's entries
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string	true	"Partner name"
//	@Success		200		{object}	dto.SummaryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/{name}/summary [get]
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	summary, err := h.ledgerService.GetSummary(r.Context(), name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		TotalConsumption: summary.TotalConsumption,
		TotalCashAmount:  summary.TotalCashAmount,
		TotalPaid:        summary.TotalPaid,
		TotalBalance:     summary.TotalBalance,
	})
}

// GetOverview godoc
//
//	@Summary		Get totals for every partner
//	@Description	Per-partner entry counts and aggregate totals, for the administrator dashboard
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PartnerOverviewResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Administrator role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/overview [get]
func (h *LedgerHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.ledgerService.Overview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PartnerOverviewResponseDTO, 0, len(overviews))
	for _, o := range overviews {
		response = append(response, dto.PartnerOverviewResponseDTO{
			Name:             o.Name,
			Entries:          o.Entries,
			TotalConsumption: o.Summary.TotalConsumption,
			TotalCashAmount:  o.Summary.TotalCashAmount,
			TotalPaid:        o.Summary.TotalPaid,
			TotalBalance:     o.Summary.TotalBalance,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toEntryDTO(entry domain.UsageEntry) dto.EntryResponseDTO {
	return dto.EntryResponseDTO{
		Date:            entry.Date.Format(dateLayout),
		LastRead:        entry.LastRead,
		NewRead:         entry.NewRead,
		Withdrawl:       entry.Withdrawl,
		WithdrawlPrice:  entry.WithdrawlPrice,
		WithdrawlByCash: entry.WithdrawlByCash,
		Paid:            entry.Paid,
		Left:            entry.Left,
	}
}
