package handler

import (
	"net/http"

	"brandbear/internal/model"
	"brandbear/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionHandler handles storefront session HTTP requests.
type SessionHandler struct {
	service  service.SessionService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "session").Logger(),
	}
}

// sessionID parses the {id} path parameter.
func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid session ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// respond writes view or maps err.
func (h *SessionHandler) respond(w http.ResponseWriter, status int, view *model.SessionView, err error) {
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, status, view)
}

// Create handles POST /api/sessions requests.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Create(r.Context())
	h.respond(w, http.StatusCreated, view, err)
}

// Get handles GET /api/sessions/{id} requests.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	h.respond(w, http.StatusOK, view, err)
}

// End handles DELETE /api/sessions/{id} requests.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetCategory handles PUT /api/sessions/{id}/category requests.
func (h *SessionHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.CategoryRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	category, err := model.ParseCategory(req.Category)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	view, err := h.service.SetCategory(r.Context(), id, category)
	h.respond(w, http.StatusOK, view, err)
}

// SelectProduct handles PUT /api/sessions/{id}/selection requests.
func (h *SessionHandler) SelectProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.SelectionRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	view, err := h.service.SelectProduct(r.Context(), id, req.ProductID)
	h.respond(w, http.StatusOK, view, err)
}

// ChooseSize handles PUT /api/sessions/{id}/selection/size requests.
func (h *SessionHandler) ChooseSize(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.SizeRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	view, err := h.service.ChooseSize(r.Context(), id, req.Size)
	h.respond(w, http.StatusOK, view, err)
}

// AddToCart handles POST /api/sessions/{id}/cart requests.
func (h *SessionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.AddToCart(r.Context(), id)
	h.respond(w, http.StatusOK, view, err)
}

// RemoveFromCart handles DELETE /api/sessions/{id}/cart/{productId}/{size} requests.
func (h *SessionHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.RemoveFromCart(r.Context(), id, chi.URLParam(r, "productId"), chi.URLParam(r, "size"))
	h.respond(w, http.StatusOK, view, err)
}

// SetCartOpen handles PUT /api/sessions/{id}/cart/open requests.
func (h *SessionHandler) SetCartOpen(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.CartOpenRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	view, err := h.service.SetCartOpen(r.Context(), id, *req.Open)
	h.respond(w, http.StatusOK, view, err)
}

// Checkout handles POST /api/sessions/{id}/checkout requests.
func (h *SessionHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	receipt, err := h.service.Checkout(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// SendMessage handles POST /api/sessions/{id}/assistant/messages requests.
// Blank or concurrent messages are reported with accepted=false.
func (h *SessionHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.MessageRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	result, err := h.service.SendMessage(r.Context(), id, req.Text)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
