package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"romarket/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *model.AuthRequest) (*model.Seller, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Seller), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *model.AuthRequest) (*model.Seller, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Seller), args.Error(1)
}

func TestAuthHandler_Auth(t *testing.T) {
	logger := zerolog.Nop()

	seller := &model.Seller{ID: 3, Username: "robloxking", Email: "king@example.com"}

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		mockMethod     string
		mockReturn     *model.Seller
		mockError      error
		expectedStatus int
	}{
		{
			name:   "Login success",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action:   model.AuthActionLogin,
				Email:    "king@example.com",
				Password: "secret123",
			},
			mockMethod:     "Login",
			mockReturn:     seller,
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Login invalid credentials",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action:   model.AuthActionLogin,
				Email:    "king@example.com",
				Password: "wrong",
			},
			mockMethod:     "Login",
			mockError:      model.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Register success",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action:   model.AuthActionRegister,
				Username: "robloxking",
				Email:    "king@example.com",
				Password: "secret123",
			},
			mockMethod:     "Register",
			mockReturn:     seller,
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Register email taken",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action:   model.AuthActionRegister,
				Username: "robloxking",
				Email:    "king@example.com",
				Password: "secret123",
			},
			mockMethod:     "Register",
			mockError:      model.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Register missing fields",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action: model.AuthActionRegister,
				Email:  "king@example.com",
			},
			mockMethod:     "Register",
			mockError:      model.ErrMissingFields,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Service internal error",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action:   model.AuthActionLogin,
				Email:    "king@example.com",
				Password: "secret123",
			},
			mockMethod:     "Login",
			mockError:      errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "Unknown action",
			method: http.MethodPost,
			requestBody: &model.AuthRequest{
				Action: "delete",
				Email:  "king@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			handler := NewAuthHandler(mockService, logger)

			var body []byte
			if tt.requestBody != nil {
				if str, ok := tt.requestBody.(string); ok {
					body = []byte(str)
				} else {
					var err error
					body, err = json.Marshal(tt.requestBody)
					require.NoError(t, err)
				}
			}

			if tt.mockMethod != "" {
				mockService.On(tt.mockMethod, mock.Anything, mock.AnythingOfType("*model.AuthRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/sellers", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Auth(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.mockMethod != "" {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestAuthHandler_Auth_ResponseShape(t *testing.T) {
	logger := zerolog.Nop()

	seller := &model.Seller{ID: 3, Username: "robloxking", Email: "king@example.com", Rating: 4.8}

	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, logger)

	mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.AuthRequest")).
		Return(seller, nil)

	body, err := json.Marshal(&model.AuthRequest{
		Action:   model.AuthActionLogin,
		Email:    "king@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/sellers", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Auth(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Seller)
	assert.Equal(t, 3, resp.Seller.ID)
	assert.Equal(t, "robloxking", resp.Seller.Username)
	assert.Empty(t, resp.Error)
}

func TestAuthHandler_Auth_FailureShape(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, logger)

	mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.AuthRequest")).
		Return(nil, model.ErrInvalidCredentials)

	body, err := json.Marshal(&model.AuthRequest{
		Action:   model.AuthActionLogin,
		Email:    "king@example.com",
		Password: "wrong",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/sellers", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Auth(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Error)
	assert.Nil(t, resp.Seller)
}
