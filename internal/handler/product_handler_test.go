package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brandbear/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context, category model.Category) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func newProductRouter(h *ProductHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/products", h.GetAll)
	r.Get("/api/products/{id}", h.GetByID)
	return r
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "1", Name: "Midnight Velvet Blazer", Price: 18999, Category: model.CategoryClassic, Sizes: []string{"S", "M"}},
		{ID: "3", Name: "Elysian Tailored Trousers", Price: 12499, Category: model.CategoryClassic, Sizes: []string{"32"}},
	}

	tests := []struct {
		name           string
		queryParams    string
		category       model.Category
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "No category defaults to All",
			queryParams:    "",
			category:       model.CategoryAll,
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Classic filter",
			queryParams:    "?category=Classic",
			category:       model.CategoryClassic,
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Unknown category",
			queryParams:    "?category=Formal",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidCategory,
			expectService:  false,
		},
		{
			name:           "Service error",
			queryParams:    "",
			category:       model.CategoryAll,
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			router := newProductRouter(NewProductHandler(mockService, logger))

			if tt.expectService {
				mockService.On("GetAll", mock.Anything, tt.category).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			} else {
				var products []model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
				assert.Equal(t, tt.mockReturn, products)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{
		ID:       "2",
		Name:     "Cyber-Punk Oversized Hoodie",
		Price:    8499,
		Category: model.CategoryStreetwear,
		Sizes:    []string{"M", "L", "XL", "XXL"},
	}

	tests := []struct {
		name           string
		path           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			path:           "/api/products/2",
			productID:      "2",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			path:           "/api/products/99",
			productID:      "99",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			router := newProductRouter(NewProductHandler(mockService, logger))

			mockService.On("GetByID", mock.Anything, tt.productID).
				Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.mockReturn != nil {
				var product model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
				assert.Equal(t, *tt.mockReturn, product)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{model.ErrCodeSessionNotFound, http.StatusNotFound},
		{model.ErrCodeProductNotFound, http.StatusNotFound},
		{model.ErrCodeSizeRequired, http.StatusUnprocessableEntity},
		{model.ErrCodeNoProductSelected, http.StatusConflict},
		{model.ErrCodeEmptyCart, http.StatusConflict},
		{model.ErrCodeInvalidSize, http.StatusBadRequest},
		{model.ErrCodeInvalidCategory, http.StatusBadRequest},
		{model.ErrCodeInvalidJSON, http.StatusBadRequest},
		{model.ErrCodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.code))
		})
	}
}
