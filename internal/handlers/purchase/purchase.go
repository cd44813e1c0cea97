package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/internal/service/inventoryservice"
	"github.com/jbaylon/stashbot/internal/service/ledgerservice"
	"github.com/jbaylon/stashbot/internal/service/purchaseservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, userID int64, variantID int, qty int) (*domain.Purchase, []string, error)
	History(ctx context.Context, userID int64) ([]domain.Purchase, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Purchase godoc
//
//	@Summary		Buy stock items of a variant
//	@Description	Debits the user balance and claims the requested quantity of stock items in one transaction. The response carries the claimed payloads for the gateway to deliver.
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Variant and quantity"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Purchase completed, payloads delivered"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Variant not found"
//	@Failure		409		{object}	utils.Response			"Variant inactive or out of stock"
//	@Failure		422		{object}	utils.Response			"Invalid quantity"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchase [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	purchase, payloads, err := h.purchaseService.Purchase(r.Context(), userID, req.VariantID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid quantity")
		case errors.Is(err, purchaseservice.ErrVariantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Variant not found")
		case errors.Is(err, purchaseservice.ErrVariantInactive):
			utils.RespondWithError(w, http.StatusConflict, "Variant is not for sale")
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance")
		case errors.Is(err, inventoryservice.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, "Out of stock")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Token:      purchase.Token,
		VariantID:  purchase.VariantID,
		Qty:        purchase.Qty,
		UnitPrice:  purchase.UnitPrice,
		TotalPrice: purchase.TotalPrice,
		Payloads:   payloads,
		CreatedAt:  purchase.CreatedAt,
	})
}

// GetHistory godoc
//
//	@Summary		List the user's purchases
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseHistoryItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/purchases [get]
func (h *PurchaseHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	purchases, err := h.purchaseService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.PurchaseHistoryItemDTO, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, dto.PurchaseHistoryItemDTO{
			Token:       p.Token,
			VariantID:   p.VariantID,
			Qty:         p.Qty,
			UnitPrice:   p.UnitPrice,
			TotalPrice:  p.TotalPrice,
			Delivered:   p.Delivered,
			CreatedAt:   p.CreatedAt,
			DeliveredAt: p.DeliveredAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
