package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/internal/service/catalogservice"
	"github.com/jbaylon/stashbot/internal/service/inventoryservice"
	"github.com/jbaylon/stashbot/internal/service/topupservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/utils"
)

func NewMock(t *testing.T) (*AdminHandler, *MockTopupService, *MockCatalogService, *MockInventoryService) {
	ctrl := gomock.NewController(t)
	topupService := NewMockTopupService(ctrl)
	catalogService := NewMockCatalogService(ctrl)
	inventoryService := NewMockInventoryService(ctrl)
	handler := New(topupService, catalogService, inventoryService)
	defer ctrl.Finish()
	return handler, topupService, catalogService, inventoryService
}

func newAdminRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, int64(7)))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestGetPendingTopupsHandler(t *testing.T) {
	handler, topupService, _, _ := NewMock(t)

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	proofID := "file-abc"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Returns pending top-ups",
			prepareMock: func() {
				topupService.EXPECT().ListPending(gomock.Any(), int64(7)).
					Return([]domain.Topup{
						{
							ID:          "t-1",
							UserID:      42,
							Amount:      500,
							Method:      domain.MethodGCash,
							Status:      domain.TopupPending,
							ProofFileID: &proofID,
							CreatedAt:   createdAt,
						},
						{
							ID:        "t-2",
							UserID:    43,
							Amount:    1000,
							Method:    domain.MethodGoTyme,
							Status:    domain.TopupPending,
							CreatedAt: createdAt,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Not an admin",
			prepareMock: func() {
				topupService.EXPECT().ListPending(gomock.Any(), int64(7)).
					Return(nil, topupservice.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name: "Service error",
			prepareMock: func() {
				topupService.EXPECT().ListPending(gomock.Any(), int64(7)).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newAdminRequest("GET", "/api/admin/topups", "")
			rr := httptest.NewRecorder()

			handler.GetPendingTopups(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			} else {
				var resp []dto.TopupDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
				assert.Equal(t, "t-1", resp[0].TopupID)
				assert.True(t, resp[0].HasProof)
				assert.False(t, resp[1].HasProof)
			}
		})
	}
}

func TestDecideTopupHandlers(t *testing.T) {
	handler, topupService, _, _ := NewMock(t)

	tests := []struct {
		name          string
		approve       bool
		mockErr       error
		expectedCode  int
		expectedMsg   string
	}{
		{
			name:         "Approve succeeds",
			approve:      true,
			expectedCode: http.StatusOK,
			expectedMsg:  "Top-up approved",
		},
		{
			name:         "Reject succeeds",
			approve:      false,
			expectedCode: http.StatusOK,
			expectedMsg:  "Top-up rejected",
		},
		{
			name:         "Not an admin",
			approve:      true,
			mockErr:      topupservice.ErrForbidden,
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Forbidden",
		},
		{
			name:         "Unknown top-up",
			approve:      true,
			mockErr:      topupservice.ErrTopupNotFound,
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Top-up not found",
		},
		{
			name:         "Already decided",
			approve:      false,
			mockErr:      topupservice.ErrAlreadyDecided,
			expectedCode: http.StatusConflict,
			expectedMsg:  "Top-up already decided",
		},
		{
			name:         "Service error",
			approve:      true,
			mockErr:      errors.New("db error"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.approve {
				topupService.EXPECT().Approve(gomock.Any(), "t-1", int64(7)).Return(tt.mockErr)
			} else {
				topupService.EXPECT().Reject(gomock.Any(), "t-1", int64(7)).Return(tt.mockErr)
			}

			req := withURLParam(newAdminRequest("POST", "/api/admin/topups/t-1/approve", ""), "id", "t-1")
			rr := httptest.NewRecorder()

			if tt.approve {
				handler.ApproveTopup(rr, req)
			} else {
				handler.RejectTopup(rr, req)
			}

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeError(t, rr))
		})
	}
}

func TestCreateCategoryHandler(t *testing.T) {
	handler, _, catalogService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Creates the category",
			body: `{"name":"Streaming"}`,
			prepareMock: func() {
				catalogService.EXPECT().CreateCategory(gomock.Any(), "Streaming").
					Return(&domain.Category{ID: 1, Name: "Streaming"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Blank name",
			body: `{"name":"  "}`,
			prepareMock: func() {
				catalogService.EXPECT().CreateCategory(gomock.Any(), "  ").
					Return(nil, catalogservice.ErrInvalidName)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid name",
		},
		{
			name: "Service error",
			body: `{"name":"Streaming"}`,
			prepareMock: func() {
				catalogService.EXPECT().CreateCategory(gomock.Any(), "Streaming").
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

			req := newAdminRequest("POST", "/api/admin/categories", tt.body)
			rr := httptest.NewRecorder()

			handler.CreateCategory(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			} else {
				var resp dto.CategoryDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, "Streaming", resp.Name)
			}
		})
	}
}

func TestCreateProductHandler(t *testing.T) {
	handler, _, catalogService, _ := NewMock(t)

	categoryID := 1

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Creates the product",
			body: `{"category_id":1,"name":"VPN Premium","description":"Fast servers"}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateProduct(gomock.Any(), &categoryID, "VPN Premium", "Fast servers").
					Return(&domain.Product{ID: 3, CategoryID: &categoryID, Name: "VPN Premium", Description: "Fast servers"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Uncategorized product",
			body: `{"name":"Gift card","description":""}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateProduct(gomock.Any(), (*int)(nil), "Gift card", "").
					Return(&domain.Product{ID: 4, Name: "Gift card"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Blank name",
			body: `{"name":""}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateProduct(gomock.Any(), (*int)(nil), "", "").
					Return(nil, catalogservice.ErrInvalidName)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := newAdminRequest("POST", "/api/admin/products", tt.body)
			rr := httptest.NewRecorder()

			handler.CreateProduct(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestCreateVariantHandler(t *testing.T) {
	handler, _, catalogService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Creates the variant",
			body: `{"product_id":3,"name":"1-month plan","price":150}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateVariant(gomock.Any(), 3, "1-month plan", int64(150), (*string)(nil)).
					Return(&domain.Variant{ID: 12, ProductID: 3, Name: "1-month plan", Price: 150, IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Negative price",
			body: `{"product_id":3,"name":"1-month plan","price":-5}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateVariant(gomock.Any(), 3, "1-month plan", int64(-5), (*string)(nil)).
					Return(nil, catalogservice.ErrInvalidPrice)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid name or price",
		},
		{
			name: "Blank name",
			body: `{"product_id":3,"name":"","price":150}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateVariant(gomock.Any(), 3, "", int64(150), (*string)(nil)).
					Return(nil, catalogservice.ErrInvalidName)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid name or price",
		},
		{
			name: "Service error",
			body: `{"product_id":3,"name":"1-month plan","price":150}`,
			prepareMock: func() {
				catalogService.EXPECT().
					CreateVariant(gomock.Any(), 3, "1-month plan", int64(150), (*string)(nil)).
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

			req := newAdminRequest("POST", "/api/admin/variants", tt.body)
			rr := httptest.NewRecorder()

			handler.CreateVariant(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			} else {
				var resp dto.VariantDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 12, resp.ID)
				assert.Equal(t, int64(150), resp.Price)
			}
		})
	}
}

func TestUploadStockHandler(t *testing.T) {
	handler, _, _, inventoryService := NewMock(t)

	tests := []struct {
		name          string
		variantID     string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Adds the payloads",
			variantID: "12",
			body:      `{"payloads":"acc1:pw1\nacc2:pw2"}`,
			prepareMock: func() {
				inventoryService.EXPECT().
					AddStock(gomock.Any(), 12, "acc1:pw1\nacc2:pw2").
					Return(2, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid variant id",
			variantID:     "abc",
			body:          `{"payloads":"acc1:pw1"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid variant id",
		},
		{
			name:          "Invalid request body",
			variantID:     "12",
			body:          `{invalid json`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:      "No payloads",
			variantID: "12",
			body:      `{"payloads":"\n \n"}`,
			prepareMock: func() {
				inventoryService.EXPECT().
					AddStock(gomock.Any(), 12, "\n \n").
					Return(0, inventoryservice.ErrNoPayloads)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "No payloads supplied",
		},
		{
			name:      "Service error",
			variantID: "12",
			body:      `{"payloads":"acc1:pw1"}`,
			prepareMock: func() {
				inventoryService.EXPECT().
					AddStock(gomock.Any(), 12, "acc1:pw1").
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

			req := withURLParam(newAdminRequest("POST", "/api/admin/variants/"+tt.variantID+"/stock", tt.body), "id", tt.variantID)
			rr := httptest.NewRecorder()

			handler.UploadStock(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			} else {
				var resp dto.StockUploadResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 2, resp.Added)
			}
		})
	}
}

func TestDeactivateHandlers(t *testing.T) {
	handler, _, catalogService, _ := NewMock(t)

	t.Run("Product deactivated", func(t *testing.T) {
		catalogService.EXPECT().DeactivateProduct(gomock.Any(), 3).Return(nil)

		req := withURLParam(newAdminRequest("POST", "/api/admin/products/3/deactivate", ""), "id", "3")
		rr := httptest.NewRecorder()

		handler.DeactivateProduct(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Product deactivated", decodeError(t, rr))
	})

	t.Run("Product not found", func(t *testing.T) {
		catalogService.EXPECT().DeactivateProduct(gomock.Any(), 99).Return(catalogservice.ErrNotFound)

		req := withURLParam(newAdminRequest("POST", "/api/admin/products/99/deactivate", ""), "id", "99")
		rr := httptest.NewRecorder()

		handler.DeactivateProduct(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Product not found", decodeError(t, rr))
	})

	t.Run("Bad product id", func(t *testing.T) {
		req := withURLParam(newAdminRequest("POST", "/api/admin/products/abc/deactivate", ""), "id", "abc")
		rr := httptest.NewRecorder()

		handler.DeactivateProduct(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Variant deactivated", func(t *testing.T) {
		catalogService.EXPECT().DeactivateVariant(gomock.Any(), 12).Return(nil)

		req := withURLParam(newAdminRequest("POST", "/api/admin/variants/12/deactivate", ""), "id", "12")
		rr := httptest.NewRecorder()

		handler.DeactivateVariant(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Variant deactivated", decodeError(t, rr))
	})

	t.Run("Variant not found", func(t *testing.T) {
		catalogService.EXPECT().DeactivateVariant(gomock.Any(), 99).Return(catalogservice.ErrNotFound)

		req := withURLParam(newAdminRequest("POST", "/api/admin/variants/99/deactivate", ""), "id", "99")
		rr := httptest.NewRecorder()

		handler.DeactivateVariant(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Variant not found", decodeError(t, rr))
	})
}
