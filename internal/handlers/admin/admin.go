package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/internal/service/catalogservice"
	"github.com/jbaylon/stashbot/internal/service/inventoryservice"
	"github.com/jbaylon/stashbot/internal/service/topupservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/utils"
)

type TopupService interface {
	ListPending(ctx context.Context, adminID int64) ([]domain.Topup, error)
	Approve(ctx context.Context, topupID string, adminID int64) error
	Reject(ctx context.Context, topupID string, adminID int64) error
}

type CatalogService interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	CreateProduct(ctx context.Context, categoryID *int, name, description string) (*domain.Product, error)
	CreateVariant(ctx context.Context, productID int, name string, price int64, thumbFileID *string) (*domain.Variant, error)
	DeactivateProduct(ctx context.Context, productID int) error
	DeactivateVariant(ctx context.Context, variantID int) error
}

type InventoryService interface {
	AddStock(ctx context.Context, variantID int, raw string) (int, error)
}

type AdminHandler struct {
	topupService     TopupService
	catalogService   CatalogService
	inventoryService InventoryService
}

func New(topupService TopupService, catalogService CatalogService, inventoryService InventoryService) *AdminHandler {
	return &AdminHandler{
		topupService:     topupService,
		catalogService:   catalogService,
		inventoryService: inventoryService,
	}
}

// GetPendingTopups godoc
//
//	@Summary		List top-ups awaiting a decision
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TopupDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/topups [get]
func (h *AdminHandler) GetPendingTopups(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int64)

	topups, err := h.topupService.ListPending(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, topupservice.ErrForbidden) {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TopupDTO, 0, len(topups))
	for _, t := range topups {
		resp = append(resp, dto.TopupDTO{
			TopupID:   t.ID,
			UserID:    t.UserID,
			Amount:    t.Amount,
			Method:    t.Method,
			Status:    t.Status,
			HasProof:  t.ProofFileID != nil,
			CreatedAt: t.CreatedAt,
			DecidedAt: t.DecidedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApproveTopup godoc
//
//	@Summary		Approve a pending top-up and credit the user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Top-up id"
//	@Success		200	{object}	utils.Response	"Top-up approved"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Top-up not found"
//	@Failure		409	{object}	utils.Response	"Top-up already decided"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/topups/{id}/approve [post]
func (h *AdminHandler) ApproveTopup(w http.ResponseWriter, r *http.Request) {
	h.decideTopup(w, r, h.topupService.Approve, "Top-up approved")
}

// RejectTopup godoc
//
//	@Summary		Reject a pending top-up
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Top-up id"
//	@Success		200	{object}	utils.Response	"Top-up rejected"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Top-up not found"
//	@Failure		409	{object}	utils.Response	"Top-up already decided"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/topups/{id}/reject [post]
func (h *AdminHandler) RejectTopup(w http.ResponseWriter, r *http.Request) {
	h.decideTopup(w, r, h.topupService.Reject, "Top-up rejected")
}

func (h *AdminHandler) decideTopup(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, topupID string, adminID int64) error, okMsg string) {
	adminID := r.Context().Value(auth.UserIDKey).(int64)
	topupID := chi.URLParam(r, "id")

	err := decide(r.Context(), topupID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, topupservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		case errors.Is(err, topupservice.ErrTopupNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Top-up not found")
		case errors.Is(err, topupservice.ErrAlreadyDecided):
			utils.RespondWithError(w, http.StatusConflict, "Top-up already decided")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: okMsg})
}

// CreateCategory godoc
//
//	@Summary		Create a catalog category
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CategoryCreateRequestDTO	true	"Category name"
//	@Success		201		{object}	dto.CategoryDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/categories [post]
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, catalogservice.ErrInvalidName) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid name")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CategoryDTO{ID: category.ID, Name: category.Name})
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProductCreateRequestDTO	true	"Product fields"
//	@Success		201		{object}	dto.ProductDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), req.CategoryID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, catalogservice.ErrInvalidName) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid name")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
	})
}

// CreateVariant godoc
//
//	@Summary		Create a purchasable variant
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VariantCreateRequestDTO	true	"Variant fields"
//	@Success		201		{object}	dto.VariantDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		422		{object}	utils.Response	"Invalid name or price"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/variants [post]
func (h *AdminHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	var req dto.VariantCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	variant, err := h.catalogService.CreateVariant(r.Context(), req.ProductID, req.Name, req.Price, req.ThumbFileID)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrInvalidName), errors.Is(err, catalogservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid name or price")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.VariantDTO{
		ID:    variant.ID,
		Name:  variant.Name,
		Price: variant.Price,
	})
}

// UploadStock godoc
//
//	@Summary		Upload stock items for a variant
//	@Description	Accepts one payload per non-empty line and inserts them as unsold stock.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Variant id"
//	@Param			request	body		dto.StockUploadRequestDTO	true	"Newline-separated payloads"
//	@Success		201		{object}	dto.StockUploadResponseDTO	"Items added"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not an admin"
//	@Failure		422		{object}	utils.Response				"No payloads supplied"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/variants/{id}/stock [post]
func (h *AdminHandler) UploadStock(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid variant id")
		return
	}

	var req dto.StockUploadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	added, err := h.inventoryService.AddStock(r.Context(), variantID, req.Payloads)
	if err != nil {
		if errors.Is(err, inventoryservice.ErrNoPayloads) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "No payloads supplied")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.StockUploadResponseDTO{Added: added})
}

// DeactivateProduct godoc
//
//	@Summary		Soft-disable a product
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Product id"
//	@Success		200	{object}	utils.Response	"Product deactivated"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{id}/deactivate [post]
func (h *AdminHandler) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.catalogService.DeactivateProduct(r.Context(), productID); err != nil {
		if errors.Is(err, catalogservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Product deactivated"})
}

// DeactivateVariant godoc
//
//	@Summary		Soft-disable a variant
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Variant id"
//	@Success		200	{object}	utils.Response	"Variant deactivated"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Variant not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/variants/{id}/deactivate [post]
func (h *AdminHandler) DeactivateVariant(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid variant id")
		return
	}

	if err := h.catalogService.DeactivateVariant(r.Context(), variantID); err != nil {
		if errors.Is(err, catalogservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Variant not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Variant deactivated"})
}
