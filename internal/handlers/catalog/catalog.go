package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/pkg/utils"
)

type Service interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, categoryID int) ([]domain.Product, error)
	ListVariants(ctx context.Context, productID int) ([]domain.Variant, error)
}

type InventoryService interface {
	Available(ctx context.Context, variantID int) (int, error)
}

type CatalogHandler struct {
	catalogService   Service
	inventoryService InventoryService
}

func New(catalogService Service, inventoryService InventoryService) *CatalogHandler {
	return &CatalogHandler{
		catalogService:   catalogService,
		inventoryService: inventoryService,
	}
}

// GetCategories godoc
//
//	@Summary		List catalog categories
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CategoryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/categories [get]
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.CategoryDTO{ID: c.ID, Name: c.Name})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetProducts godoc
//
//	@Summary		List active products of a category
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Category id"
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		400	{object}	utils.Response	"Invalid category id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/categories/{id}/products [get]
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	products, err := h.catalogService.ListProducts(r.Context(), categoryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ProductDTO{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetVariants godoc
//
//	@Summary		List active variants of a product with stock availability
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{array}		dto.VariantDTO
//	@Failure		400	{object}	utils.Response	"Invalid product id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/products/{id}/variants [get]
func (h *CatalogHandler) GetVariants(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	variants, err := h.catalogService.ListVariants(r.Context(), productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.VariantDTO, 0, len(variants))
	for _, v := range variants {
		inStock, err := h.inventoryService.Available(r.Context(), v.ID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		resp = append(resp, dto.VariantDTO{ID: v.ID, Name: v.Name, Price: v.Price, InStock: inStock})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
