package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"brandbear/internal/assistant"
	"brandbear/internal/model"
	"brandbear/internal/storefront"

	"github.com/google/uuid"
)

// Session owns one shopper's storefront state and assistant transcript.
// Mutations are serialized by the session mutex in arrival order.
type Session struct {
	ID uuid.UUID

	conversation   *assistant.Conversation
	sizeErrorDelay time.Duration

	mu           sync.Mutex
	state        storefront.State
	lastSeen     time.Time
	sizeErrTimer *time.Timer
	sizeErrGen   uint64
	closed       bool
}

// Snapshot is a consistent read of a session.
type Snapshot struct {
	ID       uuid.UUID
	State    storefront.State
	Messages []model.Message
	Pending  bool
}

func newSession(id uuid.UUID, conversation *assistant.Conversation, sizeErrorDelay time.Duration, now time.Time) *Session {
	return &Session{
		ID:             id,
		conversation:   conversation,
		sizeErrorDelay: sizeErrorDelay,
		state:          storefront.NewState(),
		lastSeen:       now,
	}
}

// Snapshot returns the current state and transcript.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	return Snapshot{
		ID:       s.ID,
		State:    state,
		Messages: s.conversation.Messages(),
		Pending:  s.conversation.Pending(),
	}
}

// Filter sets the active category.
func (s *Session) Filter(category model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Filter(category)
}

// SelectProduct opens p for inspection; nil clears the selection.
func (s *Session) SelectProduct(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.SelectProduct(p)
}

// ChooseSize records the size and cancels any pending size-error clear.
func (s *Session) ChooseSize(size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.ChooseSize(size)
	if err != nil {
		return err
	}
	s.state = next
	s.cancelSizeErrorClear()
	return nil
}

// AddToCart adds the inspected product at the chosen size. When no size is
// chosen the size-error flag is raised and cleared again after the configured
// delay unless a later event supersedes it.
func (s *Session) AddToCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.AddToCart()
	s.state = next
	if errors.Is(err, model.ErrSizeRequired) {
		s.armSizeErrorClear()
	}
	return err
}

// RemoveFromCart drops the (productID, size) line if present.
func (s *Session) RemoveFromCart(productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.RemoveFromCart(productID, size)
}

// SetCartOpen shows or hides the cart.
func (s *Session) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.SetCartOpen(open)
}

// Send forwards text to the assistant. See assistant.Conversation.Send.
func (s *Session) Send(ctx context.Context, text string) bool {
	return s.conversation.Send(ctx, text)
}

// armSizeErrorClear schedules the flag reset. Callers hold s.mu.
func (s *Session) armSizeErrorClear() {
	s.cancelSizeErrorClear()
	if s.closed {
		return
	}

	gen := s.sizeErrGen
	s.sizeErrTimer = time.AfterFunc(s.sizeErrorDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.sizeErrGen != gen {
			return
		}
		s.state = s.state.ClearSizeError()
		s.sizeErrTimer = nil
	})
}

// cancelSizeErrorClear invalidates any scheduled reset. Callers hold s.mu.
func (s *Session) cancelSizeErrorClear() {
	s.sizeErrGen++
	if s.sizeErrTimer != nil {
		s.sizeErrTimer.Stop()
		s.sizeErrTimer = nil
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// close stops timers. The session must not be used afterwards.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelSizeErrorClear()
	s.closed = true
}
