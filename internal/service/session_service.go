package service

import (
	"context"
	"errors"

	"brandbear/internal/catalog"
	"brandbear/internal/model"
	"brandbear/internal/money"
	"brandbear/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutNotice is returned by every simulated checkout.
const CheckoutNotice = "This is a demo. In a live environment, you would be redirected to our secure payment processor."

// sessionService implements SessionService.
type sessionService struct {
	sessions *session.Manager
	catalog  *catalog.Catalog
	logger   zerolog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(sessions *session.Manager, c *catalog.Catalog, logger zerolog.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		catalog:  c,
		logger:   logger.With().Str("service", "session").Logger(),
	}
}

// Create starts a new session.
func (s *sessionService) Create(ctx context.Context) (*model.SessionView, error) {
	sess := s.sessions.Create()

	s.logger.Info().Str("session_id", sess.ID.String()).Msg("session started")

	return s.view(sess), nil
}

// Get returns the current view of a session.
func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// End discards a session.
func (s *sessionService) End(ctx context.Context, id uuid.UUID) error {
	if !s.sessions.Delete(id) {
		return model.ErrSessionNotFound
	}

	s.logger.Info().Str("session_id", id.String()).Msg("session ended")

	return nil
}

// SetCategory changes the category filter.
func (s *sessionService) SetCategory(ctx context.Context, id uuid.UUID, category model.Category) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	sess.Filter(category)
	return s.view(sess), nil
}

// SelectProduct opens a product for inspection; an empty productID clears the selection.
func (s *sessionService) SelectProduct(ctx context.Context, id uuid.UUID, productID string) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	if productID == "" {
		sess.SelectProduct(nil)
		return s.view(sess), nil
	}

	product, ok := s.catalog.ByID(productID)
	if !ok {
		s.logger.Debug().
			Str("session_id", id.String()).
			Str("product_id", productID).
			Msg("selected product not found")
		return nil, model.ErrProductNotFound
	}

	sess.SelectProduct(&product)
	return s.view(sess), nil
}

// ChooseSize records the size for the inspected product.
func (s *sessionService) ChooseSize(ctx context.Context, id uuid.UUID, size string) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	if err := sess.ChooseSize(size); err != nil {
		s.logger.Debug().
			Str("session_id", id.String()).
			Str("size", size).
			Err(err).
			Msg("size rejected")
		return nil, err
	}

	return s.view(sess), nil
}

// AddToCart adds the inspected product at the chosen size.
func (s *sessionService) AddToCart(ctx context.Context, id uuid.UUID) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	if err := sess.AddToCart(); err != nil {
		if errors.Is(err, model.ErrSizeRequired) {
			s.logger.Debug().Str("session_id", id.String()).Msg("add to cart without size")
		}
		return nil, err
	}

	view := s.view(sess)

	s.logger.Debug().
		Str("session_id", id.String()).
		Int("lines", view.ItemCount).
		Int64("total", view.Total).
		Msg("cart updated")

	return view, nil
}

// RemoveFromCart removes the (productID, size) line if present.
func (s *sessionService) RemoveFromCart(ctx context.Context, id uuid.UUID, productID, size string) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	sess.RemoveFromCart(productID, size)
	return s.view(sess), nil
}

// SetCartOpen shows or hides the cart.
func (s *sessionService) SetCartOpen(ctx context.Context, id uuid.UUID, open bool) (*model.SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	sess.SetCartOpen(open)
	return s.view(sess), nil
}

// Checkout simulates a checkout: nothing is charged or persisted, the cart is
// left as is and closed.
func (s *sessionService) Checkout(ctx context.Context, id uuid.UUID) (*model.CheckoutReceipt, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	state := sess.Snapshot().State
	if len(state.Cart) == 0 {
		return nil, model.ErrEmptyCart
	}

	sess.SetCartOpen(false)

	total := state.Total()
	receipt := &model.CheckoutReceipt{
		ID:             uuid.New(),
		Lines:          cartLineViews(state.Cart),
		Total:          total,
		FormattedTotal: money.FormatINR(total),
		Notice:         CheckoutNotice,
	}

	s.logger.Info().
		Str("session_id", id.String()).
		Str("receipt_id", receipt.ID.String()).
		Int("lines", len(receipt.Lines)).
		Int64("total", total).
		Msg("simulated checkout completed")

	return receipt, nil
}

// SendMessage forwards a message to the styling assistant and blocks until
// the reply, or the fallback, is in the transcript.
func (s *sessionService) SendMessage(ctx context.Context, id uuid.UUID, text string) (*model.SendResult, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	accepted := sess.Send(ctx, text)
	if !accepted {
		s.logger.Debug().Str("session_id", id.String()).Msg("message ignored")
	}

	return &model.SendResult{
		Accepted: accepted,
		Session:  *s.view(sess),
	}, nil
}

// view builds the read model from a consistent snapshot.
func (s *sessionService) view(sess *session.Session) *model.SessionView {
	snap := sess.Snapshot()
	state := snap.State
	total := state.Total()

	return &model.SessionView{
		ID:             snap.ID,
		Category:       state.Category,
		Products:       s.catalog.Filter(state.Category),
		Cart:           cartLineViews(state.Cart),
		ItemCount:      state.ItemCount(),
		Total:          total,
		FormattedTotal: money.FormatINR(total),
		CartOpen:       state.CartOpen,
		Selection: model.SelectionView{
			Product:   state.Selected,
			Size:      state.Size,
			SizeError: state.SizeError,
		},
		Transcript: snap.Messages,
		Pending:    snap.Pending,
	}
}

func cartLineViews(lines []model.CartLine) []model.CartLineView {
	views := make([]model.CartLineView, len(lines))
	for i, l := range lines {
		views[i] = model.CartLineView{
			ProductID:         l.Product.ID,
			Name:              l.Product.Name,
			Image:             l.Product.Image,
			Size:              l.SelectedSize,
			Quantity:          l.Quantity,
			Price:             l.Product.Price,
			Subtotal:          l.Subtotal(),
			FormattedSubtotal: money.FormatINR(l.Subtotal()),
		}
	}
	return views
}
