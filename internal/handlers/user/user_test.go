package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/dto"
	"github.com/jbaylon/stashbot/internal/service/userservice"
	"github.com/jbaylon/stashbot/pkg/auth"
	"github.com/jbaylon/stashbot/pkg/utils"
)

const gatewaySecret = "test-gateway-secret"

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, gatewaySecret)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		secret        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful registration",
			body:   `{"user_id":100500}`,
			secret: gatewaySecret,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), int64(100500)).Return(&domain.User{
					ID:      100500,
					Balance: 0,
				}, nil)
				service.EXPECT().GenerateToken(int64(100500)).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:          "Wrong gateway secret",
			body:          `{"user_id":100500}`,
			secret:        "wrong",
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			secret:        gatewaySecret,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing user id",
			body:          `{}`,
			secret:        gatewaySecret,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:   "Service error",
			body:   `{"user_id":100500}`,
			secret: gatewaySecret,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), int64(100500)).Return(nil, errors.New("db error"))
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

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("X-Gateway-Secret", tt.secret)
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.RegisterResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(100500), resp.UserID)
				assert.Equal(t, "some-jwt-token", resp.Token)
			}
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Returns the balance",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), int64(42)).Return(int64(300), nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), int64(42)).Return(int64(0), userservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not registered",
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), int64(42)).Return(int64(0), errors.New("db error"))
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

			req := httptest.NewRequest("GET", "/api/user/balance", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, int64(42)))
			rr := httptest.NewRecorder()

			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.BalanceResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(300), resp.Balance)
			}
		})
	}
}
