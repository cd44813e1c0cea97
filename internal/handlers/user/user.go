package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/internal/service/userservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, userID int64) (*domain.User, error)
	GetBalance(ctx context.Context, userID int64) (int64, error)
	GenerateToken(userID int64) (string, error)
}

type UserHandler struct {
	userService   Service
	gatewaySecret string
}

func New(userService Service, gatewaySecret string) *UserHandler {
	return &UserHandler{
		userService:   userService,
		gatewaySecret: gatewaySecret,
	}
}

// Register godoc
//
//	@Summary		Register a platform user
//	@Description	Idempotent create-if-absent registration called by the chat gateway on first contact. Returns a JWT the gateway uses for subsequent calls on behalf of this user.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			X-Gateway-Secret	header		string					true	"Shared gateway secret"
//	@Param			request				body		dto.RegisterRequestDTO	true	"Platform user id"
//	@Success		200					{object}	dto.RegisterResponseDTO	"User registered or already known"
//	@Failure		400					{object}	utils.Response			"Invalid request body"
//	@Failure		401					{object}	utils.Response			"Bad gateway secret"
//	@Failure		500					{object}	utils.Response			"Internal server error"
//	@Router			/api/user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Gateway-Secret") != h.gatewaySecret {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.userService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		UserID:  user.ID,
		Balance: user.Balance,
		Token:   token,
	})
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current balance for the authenticated user.
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not registered"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	balance, err := h.userService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}
