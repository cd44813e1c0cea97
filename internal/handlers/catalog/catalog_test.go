package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/pkg/utils"
)

func NewMock(t *testing.T) (*CatalogHandler, *MockService, *MockInventoryService) {
	ctrl := gomock.NewController(t)
	catalogService := NewMockService(ctrl)
	inventoryService := NewMockInventoryService(ctrl)
	handler := New(catalogService, inventoryService)
	defer ctrl.Finish()
	return handler, catalogService, inventoryService
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetCategoriesHandler(t *testing.T) {
	handler, catalogService, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Returns categories",
			prepareMock: func() {
				catalogService.EXPECT().ListCategories(gomock.Any()).
					Return([]domain.Category{
						{ID: 1, Name: "Streaming"},
						{ID: 2, Name: "VPN"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Empty catalog",
			prepareMock: func() {
				catalogService.EXPECT().ListCategories(gomock.Any()).
					Return([]domain.Category{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service error",
			prepareMock: func() {
				catalogService.EXPECT().ListCategories(gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/catalog/categories", nil)
			rr := httptest.NewRecorder()

			handler.GetCategories(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp []dto.CategoryDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.NotNil(t, resp)
			}
		})
	}
}

func TestGetProductsHandler(t *testing.T) {
	handler, catalogService, _ := NewMock(t)

	tests := []struct {
		name          string
		categoryID    string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Returns products",
			categoryID: "1",
			prepareMock: func() {
				catalogService.EXPECT().ListProducts(gomock.Any(), 1).
					Return([]domain.Product{
						{ID: 3, Name: "VPN Premium", Description: "Fast servers"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid category id",
			categoryID:    "abc",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid category id",
		},
		{
			name:       "Service error",
			categoryID: "1",
			prepareMock: func() {
				catalogService.EXPECT().ListProducts(gomock.Any(), 1).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest("GET", "/api/catalog/categories/"+tt.categoryID+"/products", nil)
			req = withURLParam(req, "id", tt.categoryID)
			rr := httptest.NewRecorder()

			handler.GetProducts(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp []dto.ProductDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, 1)
				assert.Equal(t, "VPN Premium", resp[0].Name)
			}
		})
	}
}

func TestGetVariantsHandler(t *testing.T) {
	handler, catalogService, inventoryService := NewMock(t)

	tests := []struct {
		name          string
		productID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Returns variants with stock counts",
			productID: "3",
			prepareMock: func() {
				catalogService.EXPECT().ListVariants(gomock.Any(), 3).
					Return([]domain.Variant{
						{ID: 12, ProductID: 3, Name: "1-month plan", Price: 150, IsActive: true},
						{ID: 13, ProductID: 3, Name: "12-month plan", Price: 1200, IsActive: true},
					}, nil)
				inventoryService.EXPECT().Available(gomock.Any(), 12).Return(8, nil)
				inventoryService.EXPECT().Available(gomock.Any(), 13).Return(0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid product id",
			productID:     "abc",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid product id",
		},
		{
			name:      "Stock count error",
			productID: "3",
			prepareMock: func() {
				catalogService.EXPECT().ListVariants(gomock.Any(), 3).
					Return([]domain.Variant{
						{ID: 12, ProductID: 3, Name: "1-month plan", Price: 150, IsActive: true},
					}, nil)
				inventoryService.EXPECT().Available(gomock.Any(), 12).
					Return(0, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest("GET", "/api/catalog/products/"+tt.productID+"/variants", nil)
			req = withURLParam(req, "id", tt.productID)
			rr := httptest.NewRecorder()

			handler.GetVariants(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp []dto.VariantDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, 2)
				assert.Equal(t, 8, resp[0].InStock)
				assert.Equal(t, 0, resp[1].InStock)
			}
		})
	}
}
