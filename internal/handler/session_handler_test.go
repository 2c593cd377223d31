package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandbear/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSessionService is a mock implementation of SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) view(args mock.Arguments) (*model.SessionView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionView), args.Error(1)
}

func (m *MockSessionService) Create(ctx context.Context) (*model.SessionView, error) {
	return m.view(m.Called(ctx))
}

func (m *MockSessionService) Get(ctx context.Context, id uuid.UUID) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id))
}

func (m *MockSessionService) End(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionService) SetCategory(ctx context.Context, id uuid.UUID, category model.Category) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id, category))
}

func (m *MockSessionService) SelectProduct(ctx context.Context, id uuid.UUID, productID string) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id, productID))
}

func (m *MockSessionService) ChooseSize(ctx context.Context, id uuid.UUID, size string) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id, size))
}

func (m *MockSessionService) AddToCart(ctx context.Context, id uuid.UUID) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id))
}

func (m *MockSessionService) RemoveFromCart(ctx context.Context, id uuid.UUID, productID, size string) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id, productID, size))
}

func (m *MockSessionService) SetCartOpen(ctx context.Context, id uuid.UUID, open bool) (*model.SessionView, error) {
	return m.view(m.Called(ctx, id, open))
}

func (m *MockSessionService) Checkout(ctx context.Context, id uuid.UUID) (*model.CheckoutReceipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutReceipt), args.Error(1)
}

func (m *MockSessionService) SendMessage(ctx context.Context, id uuid.UUID, text string) (*model.SendResult, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SendResult), args.Error(1)
}

func newSessionRouter(h *SessionHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/sessions", h.Create)
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.End)
		r.Put("/category", h.SetCategory)
		r.Put("/selection", h.SelectProduct)
		r.Put("/selection/size", h.ChooseSize)
		r.Post("/cart", h.AddToCart)
		r.Delete("/cart/{productId}/{size}", h.RemoveFromCart)
		r.Put("/cart/open", h.SetCartOpen)
		r.Post("/checkout", h.Checkout)
		r.Post("/assistant/messages", h.SendMessage)
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestSessionHandler_Create(t *testing.T) {
	mockService := new(MockSessionService)
	router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

	view := &model.SessionView{ID: uuid.New(), Category: model.CategoryAll}
	mockService.On("Create", mock.Anything).Return(view, nil)

	w := doRequest(t, router, http.MethodPost, "/api/sessions", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	var got model.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, view.ID, got.ID)
	mockService.AssertExpectations(t)
}

func TestSessionHandler_Get(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.SessionView
		mockError      error
		expectService  bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			path:           "/api/sessions/" + id.String(),
			mockReturn:     &model.SessionView{ID: id},
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown session",
			path:           "/api/sessions/" + id.String(),
			mockError:      model.ErrSessionNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeSessionNotFound,
		},
		{
			name:           "Malformed session ID",
			path:           "/api/sessions/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSessionService)
			router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

			if tt.expectService {
				mockService.On("Get", mock.Anything, id).Return(tt.mockReturn, tt.mockError)
			}

			w := doRequest(t, router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_End(t *testing.T) {
	id := uuid.New()
	mockService := new(MockSessionService)
	router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

	mockService.On("End", mock.Anything, id).Return(nil).Once()

	w := doRequest(t, router, http.MethodDelete, "/api/sessions/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestSessionHandler_SetCategory(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		category       model.Category
		expectService  bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Streetwear",
			body:           `{"category":"Streetwear"}`,
			category:       model.CategoryStreetwear,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown category",
			body:           `{"category":"Formal"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidCategory,
		},
		{
			name:           "Missing category",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Invalid JSON",
			body:           `{"category":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSessionService)
			router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

			if tt.expectService {
				mockService.On("SetCategory", mock.Anything, id, tt.category).
					Return(&model.SessionView{ID: id, Category: tt.category}, nil)
			}

			w := doRequest(t, router, http.MethodPut, "/api/sessions/"+id.String()+"/category", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_SelectProduct(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		productID      string
		mockError      error
		expectedStatus int
	}{
		{name: "Select", body: `{"productId":"2"}`, productID: "2", expectedStatus: http.StatusOK},
		{name: "Clear", body: `{"productId":""}`, productID: "", expectedStatus: http.StatusOK},
		{name: "Unknown product", body: `{"productId":"99"}`, productID: "99", mockError: model.ErrProductNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSessionService)
			router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

			var view *model.SessionView
			if tt.mockError == nil {
				view = &model.SessionView{ID: id}
			}
			mockService.On("SelectProduct", mock.Anything, id, tt.productID).Return(view, tt.mockError)

			w := doRequest(t, router, http.MethodPut, "/api/sessions/"+id.String()+"/selection", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_ChooseSize(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockError      error
		expectService  bool
		expectedStatus int
		expectedCode   string
	}{
		{name: "Valid size", body: `{"size":"M"}`, expectService: true, expectedStatus: http.StatusOK},
		{name: "Size not offered", body: `{"size":"M"}`, mockError: model.ErrInvalidSize, expectService: true, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidSize},
		{name: "No selection", body: `{"size":"M"}`, mockError: model.ErrNoProductSelected, expectService: true, expectedStatus: http.StatusConflict, expectedCode: model.ErrCodeNoProductSelected},
		{name: "Missing size", body: `{"size":""}`, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeMissingField},
		{name: "Size too long", body: `{"size":"` + strings.Repeat("X", 17) + `"}`, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSessionService)
			router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

			if tt.expectService {
				var view *model.SessionView
				if tt.mockError == nil {
					view = &model.SessionView{ID: id, Selection: model.SelectionView{Size: "M"}}
				}
				mockService.On("ChooseSize", mock.Anything, id, "M").Return(view, tt.mockError)
			}

			w := doRequest(t, router, http.MethodPut, "/api/sessions/"+id.String()+"/selection/size", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_AddToCart(t *testing.T) {
	id := uuid.New()

	t.Run("Size required", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))
		mockService.On("AddToCart", mock.Anything, id).Return(nil, model.ErrSizeRequired)

		w := doRequest(t, router, http.MethodPost, "/api/sessions/"+id.String()+"/cart", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, model.ErrCodeSizeRequired, errorCode(t, w))
		mockService.AssertExpectations(t)
	})

	t.Run("Added", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))
		view := &model.SessionView{
			ID:        id,
			Cart:      []model.CartLineView{{ProductID: "1", Size: "M", Quantity: 1, Price: 18999, Subtotal: 18999}},
			ItemCount: 1,
			Total:     18999,
			CartOpen:  true,
		}
		mockService.On("AddToCart", mock.Anything, id).Return(view, nil)

		w := doRequest(t, router, http.MethodPost, "/api/sessions/"+id.String()+"/cart", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var got model.SessionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, view.Cart, got.Cart)
		assert.True(t, got.CartOpen)
		mockService.AssertExpectations(t)
	})
}

func TestSessionHandler_RemoveFromCart(t *testing.T) {
	id := uuid.New()
	mockService := new(MockSessionService)
	router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

	mockService.On("RemoveFromCart", mock.Anything, id, "3", "32").Return(&model.SessionView{ID: id}, nil)

	w := doRequest(t, router, http.MethodDelete, "/api/sessions/"+id.String()+"/cart/3/32", "")

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSessionHandler_SetCartOpen(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		open           bool
		expectService  bool
		expectedStatus int
	}{
		{name: "Open", body: `{"open":true}`, open: true, expectService: true, expectedStatus: http.StatusOK},
		{name: "Close", body: `{"open":false}`, open: false, expectService: true, expectedStatus: http.StatusOK},
		{name: "Missing flag", body: `{}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSessionService)
			router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

			if tt.expectService {
				mockService.On("SetCartOpen", mock.Anything, id, tt.open).
					Return(&model.SessionView{ID: id, CartOpen: tt.open}, nil)
			}

			w := doRequest(t, router, http.MethodPut, "/api/sessions/"+id.String()+"/cart/open", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_Checkout(t *testing.T) {
	id := uuid.New()

	t.Run("Empty cart", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))
		mockService.On("Checkout", mock.Anything, id).Return(nil, model.ErrEmptyCart)

		w := doRequest(t, router, http.MethodPost, "/api/sessions/"+id.String()+"/checkout", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, model.ErrCodeEmptyCart, errorCode(t, w))
	})

	t.Run("Receipt", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))
		receipt := &model.CheckoutReceipt{ID: uuid.New(), Total: 3999, FormattedTotal: "₹3,999", Notice: "demo"}
		mockService.On("Checkout", mock.Anything, id).Return(receipt, nil)

		w := doRequest(t, router, http.MethodPost, "/api/sessions/"+id.String()+"/checkout", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var got model.CheckoutReceipt
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, receipt.ID, got.ID)
		assert.Equal(t, "₹3,999", got.FormattedTotal)
	})
}

func TestSessionHandler_SendMessage(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		text           string
		accepted       bool
		expectService  bool
		expectedStatus int
	}{
		{name: "Accepted", body: `{"text":"Hi"}`, text: "Hi", accepted: true, expectService: true, expectedStatus: http.StatusOK},
		{name: "Blank is ignored", body: `{"text":"  "}`, text: "  ", accepted: false, expectService: true, expectedStatus: http.StatusOK},
		{name: "Too long", body: `{"text":"` + strings.Repeat("a", 4001) + `"}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSessionService)
			router := newSessionRouter(NewSessionHandler(mockService, zerolog.Nop()))

			if tt.expectService {
				mockService.On("SendMessage", mock.Anything, id, tt.text).
					Return(&model.SendResult{Accepted: tt.accepted, Session: model.SessionView{ID: id}}, nil)
			}

			w := doRequest(t, router, http.MethodPost, "/api/sessions/"+id.String()+"/assistant/messages", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectService {
				var got model.SendResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.accepted, got.Accepted)
			}
			mockService.AssertExpectations(t)
		})
	}
}
