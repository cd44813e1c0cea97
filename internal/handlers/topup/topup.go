package topup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/internal/service/topupservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/utils"
	"github.com/jbaylon/stashbot/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, userID int64, amount int64, method string) (*domain.Topup, error)
	AttachProof(ctx context.Context, topupID string, fileID string) error
}

type TopupHandler struct {
	topupService Service
}

func New(topupService Service) *TopupHandler {
	return &TopupHandler{
		topupService: topupService,
	}
}

// CreateTopup godoc
//
//	@Summary		Create a pending top-up request
//	@Description	Parses the free-form amount the user typed, validates it, and records a PENDING top-up awaiting payment proof and admin approval.
//	@Tags			Topup
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopupCreateRequestDTO	true	"Amount and payment method"
//	@Success		201		{object}	dto.TopupResponseDTO		"Top-up created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid amount or method"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/topups [post]
func (h *TopupHandler) CreateTopup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.TopupCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := validate.ParseAmount(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}

	topup, err := h.topupService.Create(r.Context(), userID, amount, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, topupservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		case errors.Is(err, topupservice.ErrInvalidMethod):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unsupported payment method")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.TopupResponseDTO{
		TopupID: topup.ID,
		Amount:  topup.Amount,
		Method:  topup.Method,
		Status:  topup.Status,
	})
}

// AttachProof godoc
//
//	@Summary		Attach a payment proof to a pending top-up
//	@Description	Stores the chat platform file reference of the payment screenshot for admin review. Allowed only while the top-up is PENDING.
//	@Tags			Topup
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Top-up id"
//	@Param			request	body		dto.TopupProofRequestDTO	true	"File reference"
//	@Success		200		{object}	utils.Response			"Proof attached"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Top-up not found"
//	@Failure		409		{object}	utils.Response			"Top-up already decided"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/topups/{id}/proof [post]
func (h *TopupHandler) AttachProof(w http.ResponseWriter, r *http.Request) {
	topupID := chi.URLParam(r, "id")

	var req dto.TopupProofRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FileID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.topupService.AttachProof(r.Context(), topupID, req.FileID)
	if err != nil {
		switch {
		case errors.Is(err, topupservice.ErrTopupNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Top-up not found")
		case errors.Is(err, topupservice.ErrAlreadyDecided):
			utils.RespondWithError(w, http.StatusConflict, "Top-up already decided")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Proof attached"})
}
